package selah

import "time"

// An EmotionalState is one of the closed set of emotional tags the engine
// classifies text into. Declaration order is significant: the classifier
// breaks weight ties in this order.
type EmotionalState string

const (
	Joy      EmotionalState = "joy"
	Peace    EmotionalState = "peace"
	Struggle EmotionalState = "struggle"
	Growth   EmotionalState = "growth"
	Worship  EmotionalState = "worship"
)

// AllEmotionalStates lists every emotional state in declaration order.
var AllEmotionalStates = []EmotionalState{Joy, Peace, Struggle, Growth, Worship}

// A LifeCategory is a broad area of life used to re-weight recommendation
// relevance. It never affects classification.
type LifeCategory string

const (
	Relationships  LifeCategory = "relationships"
	CategoryGrowth LifeCategory = "growth" // named apart from the Growth state
	Challenges     LifeCategory = "challenges"
	Purpose        LifeCategory = "purpose"
	Spiritual      LifeCategory = "spiritual"
)

// AllLifeCategories lists every life category in declaration order.
var AllLifeCategories = []LifeCategory{Relationships, CategoryGrowth, Challenges, Purpose, Spiritual}

// A CuratedVerse is one entry of the static guidance table: verse text
// paired with its reference. Immutable and not user-editable.
type CuratedVerse struct {
	Text      string         // The verse's text.
	Reference VerseReference // Where the verse lives in the canon.
}

// A VerseRecommendation is a scored suggestion produced for one request.
// Recommendations are built fresh per call and never persisted by the
// engine.
type VerseRecommendation struct {
	Verse          CuratedVerse   // The recommended verse.
	RelevanceScore float64        // 0.0 to 1.0, higher is stronger
	Reason         string         // Why this verse was selected.
	Application    string         // A suggested way to act on it.
	Category       LifeCategory   // Set only by category-aware ranking; empty otherwise.
	Mood           EmotionalState // The mood the recommendation was built for.
}

// A LifeSituation is the complete result of analyzing one piece of text.
// It is immutable once created: the journal keeps the canonical copy and
// callers receive value copies.
type LifeSituation struct {
	ID               string           // Unique identifier for this analysis.
	Text             string           // Verbatim input text.
	DetectedEmotions []EmotionalState // Up to 3 candidates, highest weight first.
	DominantEmotion  EmotionalState   // First candidate, or Struggle when none exist.
	Confidence       float64          // 0.0 to 1.0
	Timestamp        time.Time        // Clock reading at analysis time.
	SuggestedVerses  []CuratedVerse   // Curated verses for the dominant emotion.
	GuidancePrompt   string           // One-sentence pastoral message.
}

// An EmotionCount pairs an emotional state with its occurrence count in a
// trend query.
type EmotionCount struct {
	State EmotionalState
	Count int
}

// A ThemeCount pairs a recurring free-text term with its occurrence count
// across journal entries.
type ThemeCount struct {
	Term  string
	Count int
}

// A TrendReport summarizes journal activity over a trailing day window.
type TrendReport struct {
	WindowDays       int            // Window the report covers.
	Entries          int            // Journal entries inside the window.
	Counts           []EmotionCount // Dominant emotions, most frequent first.
	MeanConfidence   float64        // Average confidence across the window.
	StdDevConfidence float64        // Sample standard deviation; 0 below two entries.
	TopThemes        []ThemeCount   // Recurring non-stopword terms, most frequent first.
}
