package selah

// guidanceVerses is the curated offline verse table. Editorial order is
// significant: the ranker derives relevance from position, so the first
// entry under each state is the strongest match for that mood.
var guidanceVerses = map[EmotionalState][]CuratedVerse{
	Joy: {
		{Text: "Rejoice in the Lord always! Again I will say, rejoice!",
			Reference: ParseReference("Philippians 4:4")},
		{Text: "This is the day that the Lord has made. We will rejoice and be glad in it!",
			Reference: ParseReference("Psalms 118:24")},
		{Text: "The joy of the Lord is your strength.",
			Reference: ParseReference("Nehemiah 8:10")},
		{Text: "You will show me the path of life. In your presence is fullness of joy.",
			Reference: ParseReference("Psalms 16:11")},
		{Text: "I have spoken these things to you, that my joy may remain in you, and that your joy may be made full.",
			Reference: ParseReference("John 15:11")},
	},
	Peace: {
		{Text: "Peace I leave with you. My peace I give to you. Don't let your heart be troubled, neither let it be fearful.",
			Reference: ParseReference("John 14:27")},
		{Text: "You will keep whoever's mind is steadfast in perfect peace, because he trusts in you.",
			Reference: ParseReference("Isaiah 26:3")},
		{Text: "In nothing be anxious, but in everything, by prayer and petition with thanksgiving, let your requests be made known to God.",
			Reference: ParseReference("Philippians 4:6")},
		{Text: "The Lord will give strength to his people. The Lord will bless his people with peace.",
			Reference: ParseReference("Psalms 29:11")},
		{Text: "And let the peace of God rule in your hearts, to which also you were called in one body, and be thankful.",
			Reference: ParseReference("Colossians 3:15")},
	},
	Struggle: {
		{Text: "Come to me, all you who labor and are heavily burdened, and I will give you rest.",
			Reference: ParseReference("Matthew 11:28")},
		{Text: "God is our refuge and strength, a very present help in trouble.",
			Reference: ParseReference("Psalms 46:1")},
		{Text: "Casting all your worries on him, because he cares for you.",
			Reference: ParseReference("1 Peter 5:7")},
		{Text: "The Lord is near to those who have a broken heart, and saves those who have a crushed spirit.",
			Reference: ParseReference("Psalms 34:18")},
		{Text: "I can do all things through Christ who strengthens me.",
			Reference: ParseReference("Philippians 4:13")},
	},
	Growth: {
		{Text: "For I know the thoughts that I think toward you, says the Lord, thoughts of peace and not of evil, to give you hope and a future.",
			Reference: ParseReference("Jeremiah 29:11")},
		{Text: "Being confident of this very thing, that he who began a good work in you will complete it until the day of Jesus Christ.",
			Reference: ParseReference("Philippians 1:6")},
		{Text: "Trust in the Lord with all your heart, and don't lean on your own understanding.",
			Reference: ParseReference("Proverbs 3:5")},
		{Text: "Count it all joy, my brothers, when you fall into various temptations, knowing that the testing of your faith produces endurance.",
			Reference: ParseReference("James 1:2")},
		{Text: "But grow in the grace and knowledge of our Lord and Savior Jesus Christ.",
			Reference: ParseReference("2 Peter 3:18")},
	},
	Worship: {
		{Text: "Great is the Lord, and greatly to be praised! His greatness is unsearchable.",
			Reference: ParseReference("Psalms 145:3")},
		{Text: "Oh come, let's worship and bow down. Let's kneel before the Lord, our Maker.",
			Reference: ParseReference("Psalms 95:6")},
		{Text: "Give thanks to the Lord, for he is good, for his loving kindness endures forever.",
			Reference: ParseReference("Psalms 107:1")},
		{Text: "Let everything that has breath praise the Lord. Praise the Lord!",
			Reference: ParseReference("Psalms 150:6")},
		{Text: "Serve the Lord with gladness. Come before his presence with singing.",
			Reference: ParseReference("Psalms 100:2")},
	},
}

// moodApplications holds the editorial application suggestions for each
// state, consumed by verse position. When verses outnumber applications the
// final entry is reused.
var moodApplications = map[EmotionalState][]string{
	Joy: {
		"Share your joy with someone who could use encouragement today.",
		"Write down three things you are grateful for right now.",
		"Let this gladness overflow into worship before the day ends.",
		"Tell someone the story behind today's good news.",
		"Savor this moment and thank God for it out loud.",
	},
	Peace: {
		"Sit quietly with this verse for five unhurried minutes.",
		"Breathe slowly and hand God the thing you were about to pick back up.",
		"Return to this verse the next time the day grows loud.",
		"Name the worry you are setting down, then leave it set down.",
		"End tonight by reading this verse once more.",
	},
	Struggle: {
		"Read this verse slowly twice, and let yourself exhale.",
		"Tell one trusted person what you are carrying this week.",
		"Write the verse where you will see it during the hardest hour.",
		"Pray this verse back to God in your own words.",
		"Let someone help you with one concrete thing today.",
	},
	Growth: {
		"Name the next faithful step this verse points to, and take it.",
		"Pick one habit to practice this week and tie it to this verse.",
		"Look back a month and write down one way you have grown.",
		"Ask someone further along to check in on your progress.",
		"Thank God for the slowness of growth; none of it is wasted.",
	},
	Worship: {
		"Read this verse aloud as a prayer of praise.",
		"Begin your next quiet time with this verse.",
		"Turn the verse into a sentence of thanks and carry it all day.",
		"Sing or listen to a song that echoes this verse.",
		"Kneel, literally, and pray this verse before bed.",
	},
}

// guidancePrompts is the fixed one-sentence pastoral message per state,
// selected purely by dominant emotion.
var guidancePrompts = map[EmotionalState]string{
	Joy:      "Celebrate what God is doing, and let your gratitude spill over to the people around you.",
	Peace:    "Rest in the stillness you have been given, and return to it whenever the day grows loud.",
	Struggle: "You are not carrying this alone; bring the weight honestly to God and let others help you hold it.",
	Growth:   "Keep taking the next faithful step; growth is slow, but none of it is wasted.",
	Worship:  "Stay in this posture of praise a little longer, and let it reframe everything else on your mind.",
}

// defaultCategoryWeight applies to (category, mood) pairs without a bespoke
// weight below.
const defaultCategoryWeight = 0.7

// categoryWeights re-weights mood relevance for a life category. Every
// value must stay within [0, 1]; ranking relies on that as a table
// invariant rather than clamping, and the table test pins it.
var categoryWeights = map[LifeCategory]map[EmotionalState]float64{
	Relationships: {
		Joy:      0.8,
		Peace:    0.9,
		Struggle: 0.9,
		Growth:   0.8,
	},
	CategoryGrowth: {
		Peace:    0.8,
		Struggle: 0.8,
		Growth:   1.0,
	},
	Challenges: {
		Peace:    0.9,
		Struggle: 1.0,
		Growth:   0.9,
	},
	Purpose: {
		Joy:     0.8,
		Growth:  1.0,
		Worship: 0.8,
	},
	Spiritual: {
		Joy:     0.9,
		Peace:   0.9,
		Worship: 1.0,
	},
}

// categoryApplications holds bespoke applications for (category, mood)
// combinations that deserve one. Everything else falls back to the generic
// category message.
var categoryApplications = map[LifeCategory]map[EmotionalState]string{
	Relationships: {
		Joy:      "Celebrate this relationship by speaking the encouragement out loud.",
		Peace:    "Let this verse set the tone before you answer them.",
		Struggle: "Bring this verse into the hard conversation you have been avoiding.",
	},
	CategoryGrowth: {
		Growth: "Pick one discipline this verse challenges and practice it this week.",
	},
	Challenges: {
		Struggle: "Read this verse again right before you face the hard thing today.",
		Growth:   "Write down one way this trial is shaping you, and thank God for it.",
	},
	Purpose: {
		Growth:  "Ask where this verse points your next step, and take it this week.",
		Worship: "Offer today's work as worship while you hold this verse.",
	},
	Spiritual: {
		Peace:   "Open your quiet time by sitting with this verse.",
		Worship: "Build this verse into your prayers this week.",
	},
}
