package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidSurvey = errors.New("invalid health survey")

var validate = validator.New()

const (
	insightBase           = "Based on your data: "
	insightHighPain       = "Your pain level is quite high. Consider consulting with a healthcare provider. "
	insightCrampsHeadache = "For cramps and headaches, try magnesium-rich foods, gentle yoga, and staying hydrated. "
	insightIrregular      = "Tracking your cycle regularly can help identify patterns in irregular periods. "

	DefaultInsight = "Continue tracking for at least 3 months to establish your personal patterns. This will help you better predict and prepare for your periods."
)

type SymptomSurvey struct {
	Age                 int      `json:"age" validate:"gte=8,lte=60"`
	Regularity          string   `json:"regularity" validate:"required,oneof=regular irregular veryIrregular"`
	PrimarySymptom      string   `json:"primary_symptom" validate:"required,oneof=cramps headache mood fatigue none"`
	SymptomDurationDays int      `json:"symptom_duration_days" validate:"gte=0,lte=14"`
	PainLevel           int      `json:"pain_level" validate:"gte=1,lte=10"`
	SelectedSymptoms    []string `json:"selected_symptoms" validate:"dive,oneof=cramps headache bloating fatigue mood acne"`
}

type SymptomCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BaselineSymptomDistribution is shown until a user reports symptoms.
var BaselineSymptomDistribution = []SymptomCount{
	{Label: "Cramps", Count: 25},
	{Label: "Headache", Count: 15},
	{Label: "Bloating", Count: 20},
	{Label: "Fatigue", Count: 18},
	{Label: "Mood Swings", Count: 12},
	{Label: "Acne", Count: 10},
}

// ValidateSurvey lowercases the selected symptoms, drops duplicates keeping
// the first occurrence, and checks every field range.
func ValidateSurvey(survey SymptomSurvey) (SymptomSurvey, error) {
	normalized := survey
	normalized.Regularity = strings.TrimSpace(survey.Regularity)
	normalized.PrimarySymptom = strings.ToLower(strings.TrimSpace(survey.PrimarySymptom))
	normalized.SelectedSymptoms = make([]string, 0, len(survey.SelectedSymptoms))
	for _, symptom := range survey.SelectedSymptoms {
		value := strings.ToLower(strings.TrimSpace(symptom))
		if !slices.Contains(normalized.SelectedSymptoms, value) {
			normalized.SelectedSymptoms = append(normalized.SelectedSymptoms, value)
		}
	}

	if err := validate.Struct(normalized); err != nil {
		return SymptomSurvey{}, fmt.Errorf("%w: %v", ErrInvalidSurvey, err)
	}
	return normalized, nil
}

// AnalyzeSurvey appends every clause whose condition holds. When none does,
// the default insight follows the base sentence.
func AnalyzeSurvey(survey SymptomSurvey) string {
	var insight strings.Builder
	insight.WriteString(insightBase)

	fired := false
	if survey.PainLevel > 7 {
		insight.WriteString(insightHighPain)
		fired = true
	}
	if slices.Contains(survey.SelectedSymptoms, "cramps") && slices.Contains(survey.SelectedSymptoms, "headache") {
		insight.WriteString(insightCrampsHeadache)
		fired = true
	}
	if survey.Regularity == "irregular" {
		insight.WriteString(insightIrregular)
		fired = true
	}
	if !fired {
		insight.WriteString(DefaultInsight)
	}
	return insight.String()
}

// SymptomDistribution counts occurrences in first-seen order with the first
// letter of each label upper-cased.
func SymptomDistribution(symptoms []string) []SymptomCount {
	counts := make([]SymptomCount, 0, len(symptoms))
	for _, symptom := range symptoms {
		label := capitalizeFirst(symptom)
		index := slices.IndexFunc(counts, func(existing SymptomCount) bool { return existing.Label == label })
		if index >= 0 {
			counts[index].Count++
			continue
		}
		counts = append(counts, SymptomCount{Label: label, Count: 1})
	}
	return counts
}

func capitalizeFirst(value string) string {
	first, size := utf8.DecodeRuneInString(value)
	if size == 0 {
		return value
	}
	return string(unicode.ToUpper(first)) + value[size:]
}
