package selah

import (
	"math"
	"testing"
)

func newTestClassifier(signal SentimentSignal) *emotionClassifier {
	return &emotionClassifier{lexicon: emotionLexicon, signal: signal}
}

func TestClassifyCandidates(t *testing.T) {
	tests := []struct {
		text     string
		polarity float64
		expected []EmotionalState
		desc     string
	}{
		{"I am so anxious and overwhelmed about my deadline", 0,
			[]EmotionalState{Struggle, Peace, Joy}, "Anxious text dominated by struggle"},
		{"I'm so grateful and joyful today, thank you God", 0.6,
			[]EmotionalState{Joy, Worship, Peace}, "Grateful text dominated by joy"},
		{"", 0,
			[]EmotionalState{Peace, Joy, Struggle}, "Empty text degrades to the neutral boost"},
		{"I feel anxious but grateful, learning to rest", 0,
			[]EmotionalState{Peace, Joy, Struggle}, "Mixed text keeps declaration order for ties"},
		{"Praising God with a hallelujah this morning", 0.8,
			[]EmotionalState{Worship, Joy, Peace}, "Worship keywords outrank the positive boost"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := newTestClassifier(FixedSignal(tt.polarity))
			got := c.classify(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("Text: %q\nExpected %d candidates\nGot: %d (%v)",
					tt.text, len(tt.expected), len(got), got)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("Text: %q\nExpected candidate %d: %s\nGot: %s",
						tt.text, i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSentimentBlend(t *testing.T) {
	tests := []struct {
		polarity float64
		state    EmotionalState
		weight   float64
		desc     string
	}{
		{-0.8, Struggle, 0.4, "Strong negative boosts struggle by half its magnitude"},
		{-0.31, Struggle, 0.155, "Barely negative still lands on struggle"},
		{-0.3, Peace, 0.5, "Negative threshold itself stays neutral"},
		{0, Peace, 0.5, "Neutral polarity boosts peace"},
		{0.3, Peace, 0.5, "Positive threshold itself stays neutral"},
		{0.31, Joy, 0.5, "Barely positive boosts the bright states"},
		{math.NaN(), Peace, 0.5, "NaN polarity is coerced to neutral"},
		{math.Inf(1), Peace, 0.5, "Infinite polarity is coerced to neutral"},
	}

	// Keyword-free text isolates the sentiment branch.
	const text = "the meeting is at noon"

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := newTestClassifier(FixedSignal(tt.polarity))
			scored := c.score(text)
			if scored[0].State != tt.state {
				t.Errorf("Polarity %.2f: expected %s first, got %s", tt.polarity, tt.state, scored[0].State)
			}
			if math.Abs(scored[0].Weight-tt.weight) > 1e-9 {
				t.Errorf("Polarity %.2f: expected weight %.3f, got %.3f", tt.polarity, tt.weight, scored[0].Weight)
			}
		})
	}
}

func TestSubstringCounting(t *testing.T) {
	tests := []struct {
		text   string
		state  EmotionalState
		weight float64
		desc   string
	}{
		{"joy", Joy, 1, "Single keyword"},
		{"joyful", Joy, 2, "Overlapping phrases each count"},
		{"joy joy joy", Joy, 3, "Repeated keyword counts every occurrence"},
		{"JOYFUL", Joy, 2, "Matching is case-insensitive"},
		{"enjoying dinner", Joy, 1, "Substrings match inside unrelated words"},
		{"thank you god", Worship, 2, "Multi-word phrase overlaps its prefix phrase"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := newTestClassifier(FixedSignal(0))
			for _, sw := range c.score(tt.text) {
				if sw.State != tt.state {
					continue
				}
				if math.Abs(sw.Weight-tt.weight) > 1e-9 {
					t.Errorf("Text: %q\nExpected %s weight: %.1f\nGot: %.1f",
						tt.text, tt.state, tt.weight, sw.Weight)
				}
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		desc     string
	}{
		{"I am so anxious and overwhelmed about my deadline", 2.0 / 3.0, "Two exact keyword tokens"},
		{"anxious worried stressed overwhelmed afraid", 1.0, "Confidence clamps at 1.0"},
		{"I feel anxious, full stop", 0.0, "Punctuation breaks exact token matching"},
		{"We keep struggling", 1.0 / 3.0, "One exact keyword token"},
		{"", 0.0, "Empty text has no tokens"},
		{"thank you god", 0.0, "Multi-word phrases never match single tokens"},
		{"I feel anxious but grateful, learning to rest", 2.0 / 3.0, "Tokens of non-candidate states are ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := newTestClassifier(FixedSignal(0))
			candidates := c.classify(tt.text)
			got := c.confidence(candidates, tt.text)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Text: %q\nExpected confidence: %.2f\nGot: %.2f", tt.text, tt.expected, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi float64
		expected  float64
		desc      string
	}{
		{0.5, 0, 1, 0.5, "In range"},
		{-0.2, 0, 1, 0, "Below the floor"},
		{1.7, 0, 1, 1, "Above the ceiling"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := clamp(tt.x, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("clamp(%.1f, %.1f, %.1f): expected %.1f, got %.1f",
					tt.x, tt.lo, tt.hi, tt.expected, got)
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	c := newTestClassifier(FixedSignal(0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.classify("I am so anxious and overwhelmed about my deadline")
	}
}
