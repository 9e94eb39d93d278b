// Package selah analyzes free-form text about a life situation, classifies
// its emotional state, and recommends curated scripture for it. The engine
// blends lexicon keyword density with a continuous sentiment signal, keeps
// a bounded in-memory journal of past analyses, and answers trend queries
// over that history. Durability, transport, and presentation belong to the
// caller.
package selah

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// An Option represents a setting that changes how an Analyzer is built.
//
// For example, tests swap the sentiment backend for a fixed stub:
//
//	a := selah.NewAnalyzer(selah.WithSentiment(selah.FixedSignal(0.6)))
type Option func(a *Analyzer)

// WithSentiment specifies the sentiment backend. The default is the VADER
// signal from NewVaderSignal.
func WithSentiment(signal SentimentSignal) Option {
	return func(a *Analyzer) {
		if signal != nil {
			a.signal = signal
		}
	}
}

// WithLogger routes the engine's debug output to the supplied logger. The
// default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock overrides the timestamp source, letting tests and replay tools
// inject synthetic times.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithCapacity sets the history journal capacity. Non-positive values keep
// the default of 100.
func WithCapacity(capacity int) Option {
	return func(a *Analyzer) {
		if capacity > 0 {
			a.capacity = capacity
		}
	}
}

// WithHistory seeds the journal with previously persisted analyses, oldest
// first. Seeds longer than the capacity keep only the most recent entries.
// The engine itself never persists anything; callers that want history to
// survive a restart store it themselves and rehydrate here.
func WithHistory(history []LifeSituation) Option {
	return func(a *Analyzer) {
		a.seed = history
	}
}

// An Analyzer turns free-form text into an emotional classification with
// matched scripture recommendations, and tracks a bounded history of past
// analyses for trend queries.
//
// An Analyzer is safe for concurrent use: each analysis is fully assembled
// before the serialized journal append, and readers work on snapshots, so
// no caller can observe a partially-built entry.
type Analyzer struct {
	signal   SentimentSignal
	logger   *log.Logger
	clock    func() time.Time
	capacity int
	seed     []LifeSituation

	classifier *emotionClassifier
	journal    *historyJournal
}

// NewAnalyzer creates an Analyzer according to the user-specified options.
//
// For example,
//
//	a := selah.NewAnalyzer()
//	situation := a.Analyze("I am so anxious about tomorrow")
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:   log.New(io.Discard),
		clock:    time.Now,
		capacity: defaultJournalCapacity,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.signal == nil {
		a.signal = NewVaderSignal()
	}
	a.classifier = &emotionClassifier{lexicon: emotionLexicon, signal: a.signal}
	a.journal = newHistoryJournal(a.capacity)
	if len(a.seed) > 0 {
		a.journal.seed(a.seed)
		a.seed = nil
	}
	return a
}

// Analyze classifies text and assembles the full situation record: detected
// emotions, dominant emotion, confidence, suggested verses, and a guidance
// prompt. It is a total function: empty and unrecognized input degrade to
// defined fallbacks rather than errors. The result is appended to the
// history journal before it is returned.
func (a *Analyzer) Analyze(text string) LifeSituation {
	candidates := a.classifier.classify(text)

	dominant := Struggle
	if len(candidates) > 0 {
		dominant = candidates[0]
	}

	confidence := a.classifier.confidence(candidates, text)

	recs := rankForMood(dominant)
	verses := make([]CuratedVerse, 0, len(recs))
	for _, rec := range recs {
		verses = append(verses, rec.Verse)
	}

	situation := LifeSituation{
		ID:               uuid.NewString(),
		Text:             text,
		DetectedEmotions: candidates,
		DominantEmotion:  dominant,
		Confidence:       confidence,
		Timestamp:        a.clock(),
		SuggestedVerses:  verses,
		GuidancePrompt:   guidancePrompts[dominant],
	}

	a.journal.append(situation)
	a.logger.Debug("analyzed situation",
		"dominant", dominant,
		"confidence", confidence,
		"candidates", len(candidates))

	return situation
}

// EmotionalJourney returns the journal contents in insertion order, oldest
// first. The result is a copy that shares no memory with the journal, so
// mutating it leaves the recorded history intact.
func (a *Analyzer) EmotionalJourney() []LifeSituation {
	return a.journal.snapshot()
}

// MostCommonEmotions counts dominant emotions over a trailing window of
// days, most frequent first; equal counts keep state declaration order. A
// non-positive windowDays means the default 30-day window.
func (a *Analyzer) MostCommonEmotions(windowDays int) []EmotionCount {
	return countEmotions(a.windowed(windowDays))
}

// Trends summarizes the same trailing window as MostCommonEmotions: emotion
// counts, confidence statistics, and the recurring themes in the analyzed
// text.
func (a *Analyzer) Trends(windowDays int) TrendReport {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	entries := a.windowed(windowDays)
	mean, stddev := confidenceStats(entries)

	return TrendReport{
		WindowDays:       windowDays,
		Entries:          len(entries),
		Counts:           countEmotions(entries),
		MeanConfidence:   mean,
		StdDevConfidence: stddev,
		TopThemes:        topThemes(entries, defaultThemeLimit),
	}
}

// VersesForMood returns the curated recommendations for a mood in ranked
// order.
func (a *Analyzer) VersesForMood(mood EmotionalState) []VerseRecommendation {
	return rankForMood(mood)
}

// VersesForCategory returns a mood's recommendations re-weighted for a life
// category.
func (a *Analyzer) VersesForCategory(category LifeCategory, mood EmotionalState) []VerseRecommendation {
	return rankForCategory(category, mood)
}

// GuidancePrompt returns the fixed pastoral message for an emotional state.
func (a *Analyzer) GuidancePrompt(mood EmotionalState) string {
	return guidancePrompts[mood]
}

// windowed selects the journal entries newer than the trailing window.
func (a *Analyzer) windowed(windowDays int) []LifeSituation {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	cutoff := a.clock().Add(-time.Duration(windowDays) * 24 * time.Hour)
	return a.journal.since(cutoff)
}
