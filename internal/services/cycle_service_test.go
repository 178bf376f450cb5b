package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

func TestCycleServiceRecalculateStoresProfile(t *testing.T) {
	users := newStubUserRepo(models.User{ID: 1, CycleLength: 28, PeriodLength: 5})
	service := NewCycleService(users, nil)
	today := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	overview, err := service.Recalculate(1, CycleInput{LastPeriodStart: "2025-03-01", CycleLength: 30, PeriodDuration: 4}, today)
	if err != nil {
		t.Fatalf("Recalculate() unexpected error: %v", err)
	}
	if overview.Prediction.NextPeriodStart.String() != "2025-03-31" {
		t.Fatalf("expected next period 2025-03-31, got %s", overview.Prediction.NextPeriodStart)
	}

	stored := users.users[1]
	if stored.CycleLength != 30 || stored.PeriodLength != 4 {
		t.Fatalf("expected stored 30/4, got %d/%d", stored.CycleLength, stored.PeriodLength)
	}
	if stored.LastPeriodStart == nil || stored.LastPeriodStart.Format("2006-01-02") != "2025-03-01" {
		t.Fatalf("unexpected stored last period start: %v", stored.LastPeriodStart)
	}

	reloaded, err := service.Overview(1, today)
	if err != nil {
		t.Fatalf("Overview() unexpected error: %v", err)
	}
	if reloaded.Prediction.NextPeriodStart != overview.Prediction.NextPeriodStart {
		t.Fatalf("expected overview to match recalculation, got %s", reloaded.Prediction.NextPeriodStart)
	}
}

func TestCycleServiceRecalculateSwallowsWriteFailure(t *testing.T) {
	users := newStubUserRepo(models.User{ID: 1})
	users.updateErr = errStubWrite
	service := NewCycleService(users, nil)

	overview, err := service.Recalculate(1, CycleInput{LastPeriodStart: "2025-03-01", CycleLength: 28}, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected prediction despite write failure, got %v", err)
	}
	if users.cycleWrites != 1 {
		t.Fatalf("expected one write attempt, got %d", users.cycleWrites)
	}
	if overview.Profile.PeriodDurationDays != DefaultPeriodDurationDays {
		t.Fatalf("expected default period duration, got %d", overview.Profile.PeriodDurationDays)
	}
}

func TestCycleServiceRejectsInvalidInput(t *testing.T) {
	users := newStubUserRepo(models.User{ID: 1})
	service := NewCycleService(users, nil)
	today := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	testCases := []CycleInput{
		{LastPeriodStart: "", CycleLength: 28},
		{LastPeriodStart: "not-a-date", CycleLength: 28},
		{LastPeriodStart: "2025-03-01", CycleLength: 19},
		{LastPeriodStart: "2025-03-01", CycleLength: 46},
		{LastPeriodStart: "2025-03-01", CycleLength: 28, PeriodDuration: 11},
		{LastPeriodStart: "1700-01-01", CycleLength: 28},
		{LastPeriodStart: "2101-01-01", CycleLength: 28},
	}
	for _, input := range testCases {
		if _, err := service.Recalculate(1, input, today); !errors.Is(err, ErrInvalidCycleInput) {
			t.Fatalf("expected ErrInvalidCycleInput for %#v, got %v", input, err)
		}
	}
	if users.cycleWrites != 0 {
		t.Fatalf("expected no writes for invalid input, got %d", users.cycleWrites)
	}
}

func TestCycleServiceCalendarWithoutProfileIsUnmarked(t *testing.T) {
	service := NewCycleService(newStubUserRepo(models.User{ID: 1}), nil)
	today := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	if _, err := service.Overview(1, today); !errors.Is(err, ErrCycleProfileIncomplete) {
		t.Fatalf("expected ErrCycleProfileIncomplete, got %v", err)
	}

	month, err := service.Calendar(1, 2025, time.March, today)
	if err != nil {
		t.Fatalf("Calendar() unexpected error: %v", err)
	}
	for _, cell := range month.Cells {
		if cell.Class != DayClassNone {
			t.Fatalf("expected unmarked calendar, got %#v", cell)
		}
	}
}
