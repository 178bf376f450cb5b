package services

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

type DayClass string

const (
	DayClassNone    DayClass = "none"
	DayClassPeriod  DayClass = "period"
	DayClassFertile DayClass = "fertile"
)

// MonthGridCell is one square of a Sunday-first month grid. Day is zero for
// the padding cells before the first of the month.
type MonthGridCell struct {
	Day   int      `json:"day"`
	Class DayClass `json:"class"`
}

type CalendarMonth struct {
	Year         int             `json:"year"`
	Month        time.Month      `json:"month"`
	FirstWeekday int             `json:"first_weekday"`
	DaysInMonth  int             `json:"days_in_month"`
	Cells        []MonthGridCell `json:"cells"`
}

// RenderMonth yields the padding cells followed by one cell per day. month is
// 1-based. The sequence can be ranged over any number of times.
func RenderMonth(year int, month time.Month, periods DaySet, fertile DaySet) iter.Seq[MonthGridCell] {
	return func(yield func(MonthGridCell) bool) {
		for range FirstWeekdayOf(year, month) {
			if !yield(MonthGridCell{Class: DayClassNone}) {
				return
			}
		}
		for day := 1; day <= DaysInMonth(year, month); day++ {
			date := CalendarDate{Year: year, Month: month, Day: day}
			if !yield(MonthGridCell{Day: day, Class: classifyDay(date, periods, fertile)}) {
				return
			}
		}
	}
}

func MonthGrid(year int, month time.Month, periods DaySet, fertile DaySet) []MonthGridCell {
	return slices.Collect(RenderMonth(year, month, periods, fertile))
}

func BuildCalendarMonth(year int, month time.Month, prediction PredictionResult) CalendarMonth {
	return CalendarMonth{
		Year:         year,
		Month:        month,
		FirstWeekday: FirstWeekdayOf(year, month),
		DaysInMonth:  DaysInMonth(year, month),
		Cells:        MonthGrid(year, month, prediction.PeriodDayMarkers, prediction.FertileDayMarkers),
	}
}

// ParseCalendarMonth reads "YYYY-MM"; an empty value selects the month of fallback.
func ParseCalendarMonth(raw string, fallback CalendarDate) (int, time.Month, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fallback.Year, fallback.Month, nil
	}
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q", ErrInvalidCycleInput, raw)
	}
	return parsed.Year(), parsed.Month(), nil
}

func classifyDay(date CalendarDate, periods DaySet, fertile DaySet) DayClass {
	switch {
	case periods.Contains(date):
		return DayClassPeriod
	case fertile.Contains(date):
		return DayClassFertile
	default:
		return DayClassNone
	}
}
