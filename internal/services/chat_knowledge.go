package services

type KnowledgeEntry struct {
	Pattern string
	Answer  string
}

const ChatWelcomeMessage = "Hi there! I'm Luna's AI assistant. How can I help you with your period tracking or health questions today? You can ask me about Luna's features, how to track your period, or any other health-related questions."

const ChatFallbackMessage = "I'm having trouble connecting. Please check your internet connection and try again."

const chatSystemPrompt = `You are Luna's AI assistant for a period tracking app. Luna helps users track their menstrual cycle, predict their next period, monitor their mood, and provides health insights and home remedies.

Features of Luna include:
- Period tracking and prediction
- Mood tracking
- Calendar view with period and fertile window
- Home remedies for period symptoms
- Health insights and analysis
- Wellness challenges

Be helpful, friendly, and informative. If asked about specific medical advice, remind users to consult healthcare professionals.`

const chatMaxTokens = 500

// KnowledgeTable is matched in declaration order, first exactly and then by
// substring in either direction.
var KnowledgeTable = []KnowledgeEntry{
	{
		Pattern: "what is luna",
		Answer:  "Luna is a personal period tracking app that helps you track your menstrual cycle, predict your next period, monitor your mood, and understand your body better.",
	},
	{
		Pattern: "what does luna do",
		Answer:  "Luna helps you track your menstrual cycle, predict your next period, monitor your fertile window, track your mood, and provides health insights and home remedies for period symptoms.",
	},
	{
		Pattern: "how does luna work",
		Answer:  "Luna works by tracking your period dates and cycle length. You can input your last period date and average cycle length, and Luna will calculate your next period, fertile window, and provide personalized insights.",
	},
	{
		Pattern: "what features does luna have",
		Answer:  "Luna offers several features including: period tracking, mood tracking, home remedies for period symptoms, health insights and analysis, wellness challenges, and educational resources about menstrual health.",
	},
	{
		Pattern: "can luna predict my period",
		Answer:  "Yes! Luna can predict your next period based on your previous cycle data. Just enter your last period date and average cycle length on the home page.",
	},
	{
		Pattern: "how do i track my mood",
		Answer:  "You can track your mood by clicking on the 'Mood Tracker' tab. There, you can select your energy level, physical comfort, and emotional state, and Luna will provide personalized recommendations.",
	},
	{
		Pattern: "is my data private",
		Answer:  "Yes, Luna takes privacy seriously. Your health information remains secure and confidential. We believe your data is yours and design our app with privacy as a priority.",
	},
	{
		Pattern: "how do i calculate my next period",
		Answer:  "To calculate your next period, go to the Home tab, enter your last period start date and your average cycle length, then click the 'Calculate Next Period' button.",
	},
	{
		Pattern: "what are the home remedies",
		Answer:  "Luna provides several home remedies for period symptoms including heat therapy, light exercise, herbal teas, dietary changes, stress reduction techniques, and essential oils. You can find detailed information in the 'Home Remedies' tab.",
	},
	{
		Pattern: "how do challenges work",
		Answer:  "The Wellness Challenges feature offers daily health challenges that you can complete to earn points. These challenges are designed to improve your overall health and wellbeing during your cycle.",
	},
	{
		Pattern: "help",
		Answer:  "I can help you with information about Luna's features, how to track your period, mood tracking, home remedies, and more. What would you like to know about?",
	},
}

// KeywordTable is consulted after KnowledgeTable misses.
var KeywordTable = []KnowledgeEntry{
	{
		Pattern: "period",
		Answer:  "Luna helps you track your menstrual cycle and predict your next period. You can enter your last period date and cycle length on the Home tab.",
	},
	{
		Pattern: "track",
		Answer:  "Luna offers tracking for your period, mood, and symptoms. You can access these features from the main navigation menu.",
	},
	{
		Pattern: "calendar",
		Answer:  "Luna provides a calendar view where you can see your period days and fertile window. You can find this on the Home tab.",
	},
	{
		Pattern: "mood",
		Answer:  "The Mood Tracker feature allows you to record your energy level, physical comfort, and emotional state. Luna will provide personalized recommendations based on your inputs.",
	},
	{
		Pattern: "remedy",
		Answer:  "Luna offers various home remedies for period symptoms including heat therapy, exercise, herbal teas, and more. Check the Home Remedies tab for details.",
	},
	{
		Pattern: "privacy",
		Answer:  "Luna takes your privacy seriously. Your health information remains secure and confidential.",
	},
	{
		Pattern: "challenge",
		Answer:  "Luna's Wellness Challenges feature offers daily health tasks to improve your wellbeing and earn points.",
	},
	{
		Pattern: "fertile",
		Answer:  "Luna can calculate your fertile window based on your cycle data to help with family planning.",
	},
}
