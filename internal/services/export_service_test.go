package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

func TestParseExportRange(t *testing.T) {
	from, to, err := ParseExportRange("2025-01-01", "2025-01-31", time.UTC)
	if err != nil {
		t.Fatalf("ParseExportRange() unexpected error: %v", err)
	}
	if from == nil || to == nil || from.Format(exportDateLayout) != "2025-01-01" || to.Format(exportDateLayout) != "2025-01-31" {
		t.Fatalf("unexpected range: %v %v", from, to)
	}

	if from, to, err := ParseExportRange("", " ", time.UTC); err != nil || from != nil || to != nil {
		t.Fatalf("expected open range, got %v %v %v", from, to, err)
	}

	testCases := []struct {
		from, to string
		expected error
	}{
		{"2025-13-01", "", ErrExportFromDateInvalid},
		{"", "yesterday", ErrExportToDateInvalid},
		{"2025-02-01", "2025-01-01", ErrExportRangeInvalid},
	}
	for _, testCase := range testCases {
		if _, _, err := ParseExportRange(testCase.from, testCase.to, time.UTC); !errors.Is(err, testCase.expected) {
			t.Fatalf("expected %v for %q..%q, got %v", testCase.expected, testCase.from, testCase.to, err)
		}
	}
}

func TestExportServiceIncludesWholeLastDay(t *testing.T) {
	moods := &stubMoodRepo{entries: []models.MoodEntry{
		{UserID: 1, Energy: "low", Comfort: "pain", Emotion: "sad", MoodTitle: "You're Experiencing Discomfort", CreatedAt: time.Date(2025, time.January, 5, 9, 15, 0, 0, time.UTC)},
		{UserID: 1, Energy: "high", Comfort: "good", Emotion: "happy", MoodTitle: "You're Feeling Great!", CreatedAt: time.Date(2025, time.January, 31, 22, 0, 0, 0, time.UTC)},
		{UserID: 1, Energy: "high", Comfort: "good", Emotion: "happy", MoodTitle: "You're Feeling Great!", CreatedAt: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 2, Energy: "low", Comfort: "mild", Emotion: "sad", MoodTitle: "You're Feeling Low Energy", CreatedAt: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}}
	service := NewExportService(moods)
	from, to, err := ParseExportRange("2025-01-01", "2025-01-31", time.UTC)
	if err != nil {
		t.Fatalf("ParseExportRange() unexpected error: %v", err)
	}

	entries, err := service.BuildEntries(1, from, to, time.UTC)
	if err != nil {
		t.Fatalf("BuildEntries() unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].Columns(); got[0] != "2025-01-05" || got[1] != "09:15" || got[5] != "You're Experiencing Discomfort" {
		t.Fatalf("unexpected first row: %v", got)
	}
	if len(entries[0].Columns()) != len(ExportCSVHeaders) {
		t.Fatalf("expected row width to match headers")
	}

	summary, err := service.BuildSummary(1, from, to, time.UTC)
	if err != nil {
		t.Fatalf("BuildSummary() unexpected error: %v", err)
	}
	if summary.TotalEntries != 2 || !summary.HasData || summary.DateFrom != "2025-01-05" || summary.DateTo != "2025-01-31" {
		t.Fatalf("unexpected summary: %#v", summary)
	}

	empty, err := service.BuildSummary(3, nil, nil, time.UTC)
	if err != nil || empty.HasData || empty.TotalEntries != 0 {
		t.Fatalf("expected empty summary, got %#v (%v)", empty, err)
	}
}
