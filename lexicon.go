package selah

// emotionLexicon maps each emotional state to its lowercase trigger phrases.
// Pure data: a phrase may legitimately appear under more than one state, and
// classification tolerates the overlap. Multi-word phrases participate in
// the classifier's substring scan but never in the confidence scorer's
// exact-token pass, since a whitespace token cannot contain a space.
var emotionLexicon = map[EmotionalState][]string{
	Joy: {
		// Gratitude and delight
		"joy", "joyful", "happy", "happiness", "grateful", "gratitude",
		"thankful", "blessed", "delighted", "excited", "wonderful",
		"cheerful", "glad", "smiling", "laughing",
		// Celebration
		"celebrate", "celebrating", "rejoice", "rejoicing",
		"good news", "great news", "looking forward",
	},
	Peace: {
		// Calm and rest
		"peace", "peaceful", "calm", "still", "stillness", "quiet",
		"rest", "resting", "rested", "relaxed", "serene", "settled",
		"tranquil", "unhurried",
		// Contentment and trust
		"content", "contentment", "secure", "at ease", "trusting god",
		"in good hands",
	},
	Struggle: {
		// Anxiety and stress
		"anxious", "anxiety", "worried", "worry", "stressed", "stress",
		"overwhelmed", "afraid", "fear", "fearful", "scared", "panicking",
		"pressure",
		// Sorrow and weariness
		"sad", "sadness", "depressed", "discouraged", "hopeless", "lonely",
		"exhausted", "weary", "hurting", "broken", "grieving", "crying",
		"struggling", "suffering", "pain", "painful",
		// Conflict and defeat
		"angry", "frustrated", "can't handle", "falling apart",
		"giving up", "too much for me",
	},
	Growth: {
		// Learning and change
		"growing", "growth", "learning", "learned", "improving",
		"improve", "progress", "progressing", "developing", "stretching",
		"discipline", "habit", "habits", "goal", "goals",
		// Maturing
		"becoming", "maturing", "new season", "next step", "working on",
		"challenge myself",
	},
	Worship: {
		// Praise and adoration
		"worship", "worshiping", "praise", "praising", "glory", "glorify",
		"hallelujah", "amen", "holy", "awe", "magnify", "exalt", "adore",
		// Devotion
		"thank you god", "thank you lord", "thank you", "praying",
		"prayer", "presence of god", "drawing near",
	},
}
