package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestSameCalendarDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.April, 3, 0, 0, 1, 0, time.UTC)
	noon := time.Date(2025, time.April, 3, 12, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.April, 3, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, time.April, 4, 0, 0, 0, 0, time.UTC)

	if !SameCalendarDay(morning, morning) {
		t.Fatalf("expected reflexive equality")
	}
	if !SameCalendarDay(morning, noon) || !SameCalendarDay(noon, morning) {
		t.Fatalf("expected symmetric equality")
	}
	if !SameCalendarDay(noon, night) || !SameCalendarDay(morning, night) {
		t.Fatalf("expected transitive equality")
	}
	if SameCalendarDay(night, nextDay) {
		t.Fatalf("did not expect %s and %s to share a day", night, nextDay)
	}
}

func TestCalendarDateArithmeticCrossesMonthAndYear(t *testing.T) {
	date := NewCalendarDate(2024, time.December, 30)
	if got := date.AddDays(3).String(); got != "2025-01-02" {
		t.Fatalf("expected 2025-01-02, got %s", got)
	}
	if got := NewCalendarDate(2024, time.February, 28).AddDays(1).String(); got != "2024-02-29" {
		t.Fatalf("expected leap day, got %s", got)
	}
	if got := NewCalendarDate(2025, time.January, 32).String(); got != "2025-02-01" {
		t.Fatalf("expected normalized 2025-02-01, got %s", got)
	}
	if diff := NewCalendarDate(2025, time.March, 1).DaysSince(NewCalendarDate(2025, time.February, 1)); diff != 28 {
		t.Fatalf("expected 28 days, got %d", diff)
	}
}

func TestCalendarDateDaysSinceSpansCenturies(t *testing.T) {
	if diff := NewCalendarDate(2026, time.October, 18).DaysSince(NewCalendarDate(1700, time.January, 29)); diff != 119331 {
		t.Fatalf("expected 119331 days, got %d", diff)
	}
	if diff := NewCalendarDate(1700, time.January, 29).DaysSince(NewCalendarDate(2026, time.October, 18)); diff != -119331 {
		t.Fatalf("expected -119331 days, got %d", diff)
	}
}

func TestParseCalendarDateRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "2025-13-01", "01/02/2025", "2025-02-30"} {
		if _, err := ParseCalendarDate(raw); !errors.Is(err, ErrInvalidCycleInput) {
			t.Fatalf("expected ErrInvalidCycleInput for %q, got %v", raw, err)
		}
	}
}

func TestCalendarDateJSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(struct {
		Start CalendarDate `json:"start"`
		Empty CalendarDate `json:"empty"`
	}{Start: NewCalendarDate(2025, time.July, 4)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"start":"2025-07-04","empty":null}` {
		t.Fatalf("unexpected JSON: %s", payload)
	}

	var decoded struct {
		Start CalendarDate `json:"start"`
	}
	if err := json.Unmarshal([]byte(`{"start":"2025-07-04"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Start != NewCalendarDate(2025, time.July, 4) {
		t.Fatalf("unexpected decoded date: %#v", decoded.Start)
	}
}

func TestDaySetMarshalsSortedDates(t *testing.T) {
	set := NewDaySet(NewCalendarDate(2025, time.May, 3), NewCalendarDate(2025, time.May, 1), NewCalendarDate(2025, time.May, 2))
	payload, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `["2025-05-01","2025-05-02","2025-05-03"]` {
		t.Fatalf("unexpected JSON: %s", payload)
	}
}
