package selah

import (
	"math"
	"sort"
	"strings"
)

const (
	// negativeThreshold and positiveThreshold bound the neutral band of
	// the sentiment polarity blend.
	negativeThreshold = -0.3
	positiveThreshold = 0.3

	// sentimentBoost is the weight the polarity branch contributes.
	sentimentBoost = 0.5

	// maxCandidates caps the detected-emotions sequence.
	maxCandidates = 3
)

// A stateWeight pairs an emotional state with its combined classifier
// weight.
type stateWeight struct {
	State  EmotionalState
	Weight float64
}

// emotionClassifier blends lexicon keyword density with a continuous
// sentiment signal into ranked candidate emotions.
type emotionClassifier struct {
	lexicon map[EmotionalState][]string
	signal  SentimentSignal
}

// classify returns up to three candidate states ordered by descending
// weight. Ties break by state declaration order, so the result is
// deterministic for a fixed lexicon and signal. Zero-weight states still
// appear when fewer than three states scored.
func (c *emotionClassifier) classify(text string) []EmotionalState {
	scored := c.score(text)

	candidates := make([]EmotionalState, 0, maxCandidates)
	for _, sw := range scored {
		if len(candidates) == maxCandidates {
			break
		}
		candidates = append(candidates, sw.State)
	}
	return candidates
}

// score computes combined weights for every state, sorted descending.
//
// Keyword weighting counts substring occurrences of each lexicon phrase in
// the lowercased input, so a phrase appearing twice contributes 2, and
// overlapping phrases ("joy" inside "joyful") each count.
func (c *emotionClassifier) score(text string) []stateWeight {
	lowered := strings.ToLower(text)

	scored := make([]stateWeight, 0, len(AllEmotionalStates))
	for _, state := range AllEmotionalStates {
		weight := 0.0
		for _, phrase := range c.lexicon[state] {
			weight += float64(strings.Count(lowered, phrase))
		}
		scored = append(scored, stateWeight{State: state, Weight: weight})
	}

	c.applySentiment(scored, text)

	// The slice starts in declaration order, so a stable sort keeps that
	// order for equal weights.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Weight > scored[j].Weight
	})
	return scored
}

// applySentiment folds the polarity score into the keyword weights:
// markedly negative text boosts struggle in proportion to its polarity,
// markedly positive text boosts joy, peace, and worship equally, and the
// neutral band boosts peace alone.
func (c *emotionClassifier) applySentiment(scored []stateWeight, text string) {
	polarity := c.signal.Score(text)
	if math.IsNaN(polarity) || math.IsInf(polarity, 0) {
		polarity = 0
	}

	switch {
	case polarity < negativeThreshold:
		addWeight(scored, Struggle, sentimentBoost*math.Abs(polarity))
	case polarity > positiveThreshold:
		addWeight(scored, Joy, sentimentBoost)
		addWeight(scored, Peace, sentimentBoost)
		addWeight(scored, Worship, sentimentBoost)
	default:
		addWeight(scored, Peace, sentimentBoost)
	}
}

func addWeight(scored []stateWeight, state EmotionalState, delta float64) {
	for i := range scored {
		if scored[i].State == state {
			scored[i].Weight += delta
			return
		}
	}
}

// confidence estimates how explicit the emotional language was: the count
// of whitespace tokens exactly matching (case-insensitively) a lexicon
// phrase of any candidate state, against a nominal three matches. Only
// single-word phrases can match a token, so this pass is stricter than the
// classifier's substring scan.
func (c *emotionClassifier) confidence(candidates []EmotionalState, text string) float64 {
	phrases := make(map[string]struct{})
	for _, state := range candidates {
		for _, phrase := range c.lexicon[state] {
			phrases[phrase] = struct{}{}
		}
	}

	matches := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := phrases[token]; ok {
			matches++
		}
	}
	return clamp(float64(matches)/3.0, 0, 1)
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}
