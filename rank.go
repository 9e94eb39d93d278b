package selah

import (
	"fmt"
	"math"
	"sort"
)

// relevanceDecay is how much relevance drops per editorial position in the
// curated table.
const relevanceDecay = 0.1

// rankForMood builds recommendations for a mood from the curated table.
// Relevance starts at 1.0 for the first editorial entry and decays by 0.1
// per position, floored at zero; no category is attached.
func rankForMood(mood EmotionalState) []VerseRecommendation {
	verses := guidanceVerses[mood]
	apps := moodApplications[mood]

	recs := make([]VerseRecommendation, 0, len(verses))
	for i, verse := range verses {
		recs = append(recs, VerseRecommendation{
			Verse:          verse,
			RelevanceScore: math.Max(0, 1.0-relevanceDecay*float64(i)),
			Reason:         fmt.Sprintf("This verse directly addresses feelings of being %s", mood),
			Application:    applicationAt(apps, i),
			Mood:           mood,
		})
	}
	return recs
}

// rankForCategory re-weights a mood's recommendations for a life category.
// Each relevance score is multiplied by the category table's weight for the
// (category, mood) pair (0.7 when unlisted), reasons and applications become
// category-qualified, and the list is re-sorted by adjusted relevance with
// ties keeping their editorial order.
func rankForCategory(category LifeCategory, mood EmotionalState) []VerseRecommendation {
	recs := rankForMood(mood)
	weight := categoryWeight(category, mood)

	for i := range recs {
		recs[i].RelevanceScore *= weight
		recs[i].Reason = fmt.Sprintf("This verse speaks to %s situations when you're experiencing %s", category, mood)
		recs[i].Application = categoryApplication(category, mood)
		recs[i].Category = category
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
	return recs
}

// applicationAt selects the editorial application for a verse position,
// reusing the final entry when positions run past the list.
func applicationAt(apps []string, i int) string {
	if len(apps) == 0 {
		return ""
	}
	if i >= len(apps) {
		i = len(apps) - 1
	}
	return apps[i]
}

// categoryWeight looks up the relevance weight for a (category, mood) pair.
func categoryWeight(category LifeCategory, mood EmotionalState) float64 {
	if w, ok := categoryWeights[category][mood]; ok {
		return w
	}
	return defaultCategoryWeight
}

// categoryApplication looks up the bespoke application for a (category,
// mood) pair, falling back to the generic category message.
func categoryApplication(category LifeCategory, mood EmotionalState) string {
	if app, ok := categoryApplications[category][mood]; ok {
		return app
	}
	return fmt.Sprintf("Apply this verse to your %s situation.", category)
}
