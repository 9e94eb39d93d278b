package selah

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A SentimentSignal supplies a continuous polarity score for a piece of
// text.
//
// Score reports a value in [-1, +1]: negative values indicate negative
// affect, positive values positive affect, and values near zero neutral or
// ambiguous affect. Implementations must be safe for concurrent use. A
// non-finite result is tolerated; the classifier coerces it to 0.
type SentimentSignal interface {
	Score(text string) float64
}

// FixedSignal is a SentimentSignal that always reports the same polarity.
// It exists for tests and for callers that need deterministic behavior.
type FixedSignal float64

// Score returns the fixed polarity.
func (f FixedSignal) Score(string) float64 { return float64(f) }

// VaderSignal scores text with the VADER sentiment model. Multi-sentence
// input is segmented and scored per sentence, with compound scores averaged
// by each sentence's share of the text, so one effusive clause cannot swamp
// a long mixed entry.
type VaderSignal struct {
	mu        sync.Mutex
	sia       *govader.SentimentIntensityAnalyzer
	segmenter *sentences.DefaultSentenceTokenizer
}

// NewVaderSignal creates the default sentiment backend.
func NewVaderSignal() *VaderSignal {
	// The English training data ships inside the library, so the error
	// path only fires for a corrupted build; fall back to whole-text
	// scoring in that case.
	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		segmenter = nil
	}
	return &VaderSignal{
		sia:       govader.NewSentimentIntensityAnalyzer(),
		segmenter: segmenter,
	}
}

// Score implements SentimentSignal. The underlying analyzer is not
// documented as goroutine-safe, so scoring is serialized.
func (v *VaderSignal) Score(text string) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	sents := v.segment(text)
	if len(sents) <= 1 {
		return v.compound(text)
	}

	var weighted, total float64
	for _, sent := range sents {
		length := float64(len([]rune(strings.TrimSpace(sent))))
		if length == 0 {
			continue
		}
		weighted += v.compound(sent) * length
		total += length
	}
	if total == 0 {
		return 0
	}
	return clamp(weighted/total, -1, 1)
}

// compound returns VADER's compound score, already normalized to [-1, 1].
func (v *VaderSignal) compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.sia.PolarityScores(text).Compound
}

// segment splits text into sentences, or returns nil when no segmenter is
// available.
func (v *VaderSignal) segment(text string) []string {
	if v.segmenter == nil {
		return nil
	}
	segmented := v.segmenter.Tokenize(text)
	out := make([]string, 0, len(segmented))
	for _, s := range segmented {
		out = append(out, s.Text)
	}
	return out
}
