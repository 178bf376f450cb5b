package services

import "slices"

type Remedy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

var remedyCatalog = []Remedy{
	{
		Title:       "Heat Therapy",
		Description: "Apply a heating pad to your lower abdomen to relieve cramps. The heat helps relax the muscles and increase blood flow, reducing pain.",
		Tip:         "Try a warm bath with Epsom salts for full-body relief.",
	},
	{
		Title:       "Exercise",
		Description: "Light exercises like yoga, walking, or swimming can help reduce period pain. Exercise releases endorphins, which are natural pain relievers.",
		Tip:         "Try gentle yoga poses like Child's Pose or Cat-Cow Stretch.",
	},
	{
		Title:       "Herbal Tea",
		Description: "Chamomile, ginger, or peppermint tea can help with menstrual discomfort. These herbs have anti-inflammatory and calming properties.",
		Tip:         "Add a teaspoon of honey for extra soothing benefits.",
	},
	{
		Title:       "Dietary Changes",
		Description: "Reduce salt, sugar, caffeine, and alcohol. Increase foods rich in omega-3 fatty acids, calcium, and magnesium to help reduce inflammation.",
		Tip:         "Dark chocolate (70%+ cocoa) can help boost mood and reduce cravings.",
	},
	{
		Title:       "Stress Reduction",
		Description: "Practice deep breathing, meditation, or mindfulness to reduce stress, which can worsen period symptoms. Try to get adequate sleep.",
		Tip:         "Try the 4-7-8 breathing technique: inhale for 4 seconds, hold for 7, exhale for 8.",
	},
	{
		Title:       "Essential Oils",
		Description: "Lavender, clary sage, and marjoram essential oils can help reduce period pain when used in massage or aromatherapy.",
		Tip:         "Mix a few drops with a carrier oil and massage onto your lower abdomen.",
	},
}

func Remedies() []Remedy {
	return slices.Clone(remedyCatalog)
}
