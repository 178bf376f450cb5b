package services

import (
	"errors"
	"time"
)

var ErrInvalidCycleInput = errors.New("invalid cycle input")

const (
	DefaultPeriodDurationDays = 5

	fertileWindowStartOffset = 16
	fertileWindowEndOffset   = 12
)

type CycleProfile struct {
	LastPeriodStart    CalendarDate `json:"last_period_start"`
	CycleLengthDays    int          `json:"cycle_length"`
	PeriodDurationDays int          `json:"period_duration"`
}

type PredictionResult struct {
	NextPeriodStart    CalendarDate `json:"next_period_start"`
	FertileWindowStart CalendarDate `json:"fertile_window_start"`
	FertileWindowEnd   CalendarDate `json:"fertile_window_end"`
	DaysUntilNext      int          `json:"days_until_next"`
	PeriodDayMarkers   DaySet       `json:"period_days"`
	FertileDayMarkers  DaySet       `json:"fertile_days"`
}

// PredictCycle projects the next period from the last one. DaysUntilNext is
// measured from referenceToday to midnight of the next period start in the
// reference's location and rounded up, so it is zero or negative once the
// period is due.
func PredictCycle(profile CycleProfile, referenceToday time.Time) (PredictionResult, error) {
	if profile.LastPeriodStart.IsZero() || profile.CycleLengthDays <= 0 || profile.PeriodDurationDays < 0 {
		return PredictionResult{}, ErrInvalidCycleInput
	}
	periodDuration := profile.PeriodDurationDays
	if periodDuration == 0 {
		periodDuration = DefaultPeriodDurationDays
	}

	next := profile.LastPeriodStart.AddDays(profile.CycleLengthDays)
	fertileStart := next.AddDays(-fertileWindowStartOffset)
	fertileEnd := next.AddDays(-fertileWindowEndOffset)

	untilNext := next.Time(referenceToday.Location()).Unix() - referenceToday.Unix()
	daysUntil := int(ceilDays(untilNext, referenceToday.Nanosecond()))

	return PredictionResult{
		NextPeriodStart:    next,
		FertileWindowStart: fertileStart,
		FertileWindowEnd:   fertileEnd,
		DaysUntilNext:      daysUntil,
		PeriodDayMarkers:   DayRun(profile.LastPeriodStart, periodDuration).Union(DayRun(next, periodDuration)),
		FertileDayMarkers:  DayRun(fertileStart, fertileEnd.DaysSince(fertileStart)+1),
	}, nil
}

// ceilDays rounds seconds minus a sub-second fraction up to whole days.
func ceilDays(seconds int64, nanos int) int64 {
	if nanos > 0 {
		return floorDiv(seconds-1, secondsPerDay) + 1
	}
	return -floorDiv(-seconds, secondsPerDay)
}

func floorDiv(value int64, divisor int64) int64 {
	quotient := value / divisor
	if value%divisor != 0 && (value < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}
