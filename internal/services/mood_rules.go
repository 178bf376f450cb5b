package services

import (
	"errors"
	"strings"
)

var ErrIncompleteSelection = errors.New("incomplete mood selection")

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

type ComfortLevel string

const (
	ComfortGood ComfortLevel = "good"
	ComfortMild ComfortLevel = "mild"
	ComfortPain ComfortLevel = "pain"
)

type EmotionState string

const (
	EmotionHappy     EmotionState = "happy"
	EmotionAnxious   EmotionState = "anxious"
	EmotionIrritated EmotionState = "irritated"
	EmotionSad       EmotionState = "sad"
	EmotionNeutral   EmotionState = "neutral"
)

const FoodOrderLink = "https://zomato.onelink.me/xqzv/4bxbaocq"

type MoodSelection struct {
	Energy  EnergyLevel  `json:"energy"`
	Comfort ComfortLevel `json:"comfort"`
	Emotion EmotionState `json:"emotion"`
}

type MoodVerdict struct {
	Key            string `json:"key"`
	Title          string `json:"title"`
	Emoji          string `json:"emoji"`
	Recommendation string `json:"recommendation"`
	FoodSuggestion string `json:"food_suggestion"`
	MusicLink      string `json:"music_link"`
	FoodOrderLink  string `json:"food_order_link"`
}

type moodRule struct {
	matches func(MoodSelection) bool
	verdict MoodVerdict
}

// moodRules is evaluated top to bottom; the first match wins.
var moodRules = []moodRule{
	{
		matches: func(s MoodSelection) bool {
			return s.Emotion == EmotionHappy && s.Energy == EnergyHigh && s.Comfort == ComfortGood
		},
		verdict: MoodVerdict{
			Key:            "great",
			Title:          "You're Feeling Great!",
			Emoji:          "😊",
			Recommendation: "Enjoy this positive energy! It's a good day to be productive and social.",
			FoodSuggestion: "Treat yourself to something nutritious and delicious, like a colorful Buddha bowl or fresh fruit smoothie.",
			MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DX1g0iEXLFycr",
		},
	},
	{
		matches: func(s MoodSelection) bool { return s.Comfort == ComfortPain },
		verdict: MoodVerdict{
			Key:            "discomfort",
			Title:          "You're Experiencing Discomfort",
			Emoji:          "😣",
			Recommendation: "Take it easy today. Try a warm bath, gentle stretching, or a heating pad for relief.",
			FoodSuggestion: "Anti-inflammatory foods like turmeric tea, ginger, dark chocolate, and berries can help reduce inflammation and pain.",
			MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DWZqd5JICZI0u",
		},
	},
	{
		matches: func(s MoodSelection) bool { return s.Energy == EnergyLow },
		verdict: MoodVerdict{
			Key:            "low_energy",
			Title:          "You're Feeling Low Energy",
			Emoji:          "😴",
			Recommendation: "Listen to your body and rest if needed. Light exercise like walking can also help boost energy.",
			FoodSuggestion: "Focus on iron-rich foods like spinach, lentils, and lean proteins to combat fatigue.",
			MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY",
		},
	},
	{
		matches: func(s MoodSelection) bool { return s.Emotion == EmotionAnxious },
		verdict: MoodVerdict{
			Key:            "anxious",
			Title:          "You're Feeling Anxious",
			Emoji:          "😰",
			Recommendation: "Practice deep breathing or meditation. Remember this feeling is temporary and connected to your cycle.",
			FoodSuggestion: "Magnesium-rich foods like dark chocolate, nuts, and avocados can help reduce anxiety.",
			MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DWWQRwui0ExPn",
		},
	},
	{
		matches: func(s MoodSelection) bool { return s.Emotion == EmotionIrritated },
		verdict: MoodVerdict{
			Key:            "irritated",
			Title:          "You're Feeling Irritated",
			Emoji:          "😠",
			Recommendation: "Take some time for yourself. Self-care activities like reading or taking a walk can help reset your mood.",
			FoodSuggestion: "Complex carbs like whole grains can boost serotonin levels and improve mood.",
			MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DX3YSRoSdA634",
		},
	},
}

var mixedMoodVerdict = MoodVerdict{
	Key:            "mixed",
	Title:          "Your Mood is Mixed",
	Emoji:          "😐",
	Recommendation: "Self-care is important. Listen to your body and give yourself what you need today.",
	FoodSuggestion: "Focus on balanced meals with protein, complex carbs, and healthy fats to stabilize your mood.",
	MusicLink:      "https://open.spotify.com/playlist/37i9dQZF1DX6VdMW310YC7",
}

// NormalizeMoodSelection trims and lowercases every field.
func NormalizeMoodSelection(selection MoodSelection) MoodSelection {
	return MoodSelection{
		Energy:  EnergyLevel(strings.ToLower(strings.TrimSpace(string(selection.Energy)))),
		Comfort: ComfortLevel(strings.ToLower(strings.TrimSpace(string(selection.Comfort)))),
		Emotion: EmotionState(strings.ToLower(strings.TrimSpace(string(selection.Emotion)))),
	}
}

// EvaluateMood never rejects unknown values; they simply match no rule and
// resolve to the mixed verdict.
func EvaluateMood(selection MoodSelection) (MoodVerdict, error) {
	if selection.Energy == "" || selection.Comfort == "" || selection.Emotion == "" {
		return MoodVerdict{}, ErrIncompleteSelection
	}

	verdict := mixedMoodVerdict
	for _, rule := range moodRules {
		if rule.matches(selection) {
			verdict = rule.verdict
			break
		}
	}
	verdict.FoodOrderLink = FoodOrderLink
	return verdict, nil
}
