package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validSurvey() SymptomSurvey {
	return SymptomSurvey{
		Age:                 27,
		Regularity:          "regular",
		PrimarySymptom:      "cramps",
		SymptomDurationDays: 3,
		PainLevel:           4,
		SelectedSymptoms:    []string{"cramps"},
	}
}

func TestSymptomDistributionCapitalizesLabels(t *testing.T) {
	got := SymptomDistribution([]string{"cramps", "headache"})
	expected := []SymptomCount{{Label: "Cramps", Count: 1}, {Label: "Headache", Count: 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}
}

func TestSymptomDistributionCountsRepeatsInFirstSeenOrder(t *testing.T) {
	got := SymptomDistribution([]string{"fatigue", "acne", "fatigue"})
	expected := []SymptomCount{{Label: "Fatigue", Count: 2}, {Label: "Acne", Count: 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}
	if len(SymptomDistribution(nil)) != 0 {
		t.Fatalf("expected empty distribution for no symptoms")
	}
}

func TestAnalyzeSurveyAppendsEveryMatchingClause(t *testing.T) {
	survey := validSurvey()
	survey.PainLevel = 9
	survey.Regularity = "irregular"
	survey.SelectedSymptoms = []string{"headache", "cramps"}

	insight := AnalyzeSurvey(survey)
	expected := insightBase + insightHighPain + insightCrampsHeadache + insightIrregular
	if insight != expected {
		t.Fatalf("expected %q, got %q", expected, insight)
	}
}

func TestAnalyzeSurveyFallsBackToDefaultInsight(t *testing.T) {
	survey := validSurvey()
	survey.PainLevel = 7
	survey.Regularity = "veryIrregular"

	insight := AnalyzeSurvey(survey)
	if insight != insightBase+DefaultInsight {
		t.Fatalf("expected default insight, got %q", insight)
	}
	if strings.Contains(insight, insightHighPain) {
		t.Fatalf("pain level 7 must not trigger the high pain clause")
	}
}

func TestValidateSurveyNormalizesSymptoms(t *testing.T) {
	survey := validSurvey()
	survey.SelectedSymptoms = []string{" Cramps", "cramps", "MOOD"}

	normalized, err := ValidateSurvey(survey)
	if err != nil {
		t.Fatalf("ValidateSurvey() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(normalized.SelectedSymptoms, []string{"cramps", "mood"}) {
		t.Fatalf("unexpected symptoms: %#v", normalized.SelectedSymptoms)
	}
}

func TestValidateSurveyRejectsOutOfRangeValues(t *testing.T) {
	mutations := map[string]func(*SymptomSurvey){
		"age too low":       func(s *SymptomSurvey) { s.Age = 5 },
		"age too high":      func(s *SymptomSurvey) { s.Age = 61 },
		"pain zero":         func(s *SymptomSurvey) { s.PainLevel = 0 },
		"pain eleven":       func(s *SymptomSurvey) { s.PainLevel = 11 },
		"duration":          func(s *SymptomSurvey) { s.SymptomDurationDays = 15 },
		"regularity":        func(s *SymptomSurvey) { s.Regularity = "sometimes" },
		"primary symptom":   func(s *SymptomSurvey) { s.PrimarySymptom = "nausea" },
		"selected symptoms": func(s *SymptomSurvey) { s.SelectedSymptoms = []string{"cramps", "nausea"} },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			survey := validSurvey()
			mutate(&survey)
			if _, err := ValidateSurvey(survey); !errors.Is(err, ErrInvalidSurvey) {
				t.Fatalf("expected ErrInvalidSurvey, got %v", err)
			}
		})
	}
}
