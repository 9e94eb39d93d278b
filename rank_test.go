package selah

import (
	"math"
	"testing"
)

func TestRankForMoodRelevance(t *testing.T) {
	for _, mood := range AllEmotionalStates {
		recs := rankForMood(mood)
		if len(recs) != len(guidanceVerses[mood]) {
			t.Fatalf("Mood %s: expected %d recommendations, got %d",
				mood, len(guidanceVerses[mood]), len(recs))
		}
		for i, rec := range recs {
			expected := 1.0 - relevanceDecay*float64(i)
			if math.Abs(rec.RelevanceScore-expected) > 1e-9 {
				t.Errorf("Mood %s: expected relevance %.2f at position %d, got %.2f",
					mood, expected, i, rec.RelevanceScore)
			}
			if rec.Mood != mood {
				t.Errorf("Mood %s: recommendation %d carries mood %s", mood, i, rec.Mood)
			}
			if rec.Category != "" {
				t.Errorf("Mood %s: recommendation %d carries category %q", mood, i, rec.Category)
			}
		}
	}
}

func TestRankForMoodContent(t *testing.T) {
	recs := rankForMood(Struggle)
	if len(recs) == 0 {
		t.Fatal("Expected recommendations for struggle")
	}

	first := recs[0]
	if got := first.Verse.Reference.String(); got != "Matthew 11:28" {
		t.Errorf("Expected the strongest struggle verse to be Matthew 11:28, got %s", got)
	}
	expectedReason := "This verse directly addresses feelings of being struggle"
	if first.Reason != expectedReason {
		t.Errorf("Expected reason %q, got %q", expectedReason, first.Reason)
	}
	if first.Application != moodApplications[Struggle][0] {
		t.Errorf("Expected the first struggle application, got %q", first.Application)
	}
}

func TestRankForMoodJoyLeadsWithRejoice(t *testing.T) {
	recs := rankForMood(Joy)
	if len(recs) == 0 {
		t.Fatal("Expected recommendations for joy")
	}
	if got := recs[0].Verse.Reference.String(); got != "Philippians 4:4" {
		t.Errorf("Expected Philippians 4:4 first for joy, got %s", got)
	}
}

func TestRankForUnknownMood(t *testing.T) {
	recs := rankForMood(EmotionalState("wistful"))
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations for an unknown mood, got %d", len(recs))
	}
}

func TestRankForCategoryWeighting(t *testing.T) {
	tests := []struct {
		category LifeCategory
		mood     EmotionalState
		weight   float64
		desc     string
	}{
		{Challenges, Struggle, 1.0, "Bespoke full weight"},
		{Relationships, Peace, 0.9, "Bespoke fractional weight"},
		{Relationships, Worship, 0.7, "Unlisted pair uses the default weight"},
		{Spiritual, Worship, 1.0, "Spiritual worship keeps full weight"},
		{Purpose, Struggle, 0.7, "Purpose has no struggle weight"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			recs := rankForCategory(tt.category, tt.mood)
			base := rankForMood(tt.mood)
			if len(recs) != len(base) {
				t.Fatalf("Expected %d recommendations, got %d", len(base), len(recs))
			}
			for i, rec := range recs {
				expected := base[i].RelevanceScore * tt.weight
				if math.Abs(rec.RelevanceScore-expected) > 1e-9 {
					t.Errorf("Position %d: expected relevance %.3f, got %.3f",
						i, expected, rec.RelevanceScore)
				}
				if rec.Category != tt.category {
					t.Errorf("Position %d: expected category %s, got %s", i, tt.category, rec.Category)
				}
				if rec.Mood != tt.mood {
					t.Errorf("Position %d: expected mood %s, got %s", i, tt.mood, rec.Mood)
				}
			}
		})
	}
}

func TestRankForCategoryReason(t *testing.T) {
	recs := rankForCategory(Challenges, Struggle)
	if len(recs) == 0 {
		t.Fatal("Expected recommendations for (challenges, struggle)")
	}
	expected := "This verse speaks to challenges situations when you're experiencing struggle"
	if recs[0].Reason != expected {
		t.Errorf("Expected reason %q, got %q", expected, recs[0].Reason)
	}
}

func TestRankForCategoryKeepsOrder(t *testing.T) {
	recs := rankForCategory(Spiritual, Worship)
	for i := 1; i < len(recs); i++ {
		if recs[i].RelevanceScore > recs[i-1].RelevanceScore {
			t.Errorf("Recommendations out of order at position %d: %.3f > %.3f",
				i, recs[i].RelevanceScore, recs[i-1].RelevanceScore)
		}
	}
}

func TestCategoryApplications(t *testing.T) {
	tests := []struct {
		category LifeCategory
		mood     EmotionalState
		expected string
		desc     string
	}{
		{Challenges, Struggle,
			"Read this verse again right before you face the hard thing today.", "Bespoke application"},
		{CategoryGrowth, Growth,
			"Pick one discipline this verse challenges and practice it this week.", "Growth category application"},
		{Relationships, Worship,
			"Apply this verse to your relationships situation.", "Fallback application"},
		{Purpose, Peace,
			"Apply this verse to your purpose situation.", "Purpose has no peace application"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			recs := rankForCategory(tt.category, tt.mood)
			if len(recs) == 0 {
				t.Fatalf("Expected recommendations for (%s, %s)", tt.category, tt.mood)
			}
			for i, rec := range recs {
				if rec.Application != tt.expected {
					t.Errorf("Position %d: expected application %q, got %q", i, tt.expected, rec.Application)
				}
			}
		})
	}
}

func TestApplicationAt(t *testing.T) {
	apps := []string{"first", "second"}
	tests := []struct {
		i        int
		expected string
		desc     string
	}{
		{0, "first", "In range"},
		{1, "second", "Last entry"},
		{5, "second", "Past the end reuses the final entry"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := applicationAt(apps, tt.i); got != tt.expected {
				t.Errorf("Position %d: expected %q, got %q", tt.i, tt.expected, got)
			}
		})
	}

	if got := applicationAt(nil, 0); got != "" {
		t.Errorf("Expected an empty application for an empty list, got %q", got)
	}
}

func TestCategoryWeightsWithinBounds(t *testing.T) {
	for category, weights := range categoryWeights {
		for mood, w := range weights {
			if w < 0 || w > 1 {
				t.Errorf("Weight for (%s, %s) is %.2f, outside [0, 1]", category, mood, w)
			}
		}
	}
	if defaultCategoryWeight < 0 || defaultCategoryWeight > 1 {
		t.Errorf("Default category weight %.2f is outside [0, 1]", defaultCategoryWeight)
	}
}

func TestCuratedTablesComplete(t *testing.T) {
	for _, state := range AllEmotionalStates {
		if len(guidanceVerses[state]) == 0 {
			t.Errorf("State %s has no curated verses", state)
		}
		if len(moodApplications[state]) == 0 {
			t.Errorf("State %s has no applications", state)
		}
		if guidancePrompts[state] == "" {
			t.Errorf("State %s has no guidance prompt", state)
		}
	}
}
