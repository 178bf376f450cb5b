package services

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

const (
	calendarDateLayout = "2006-01-02"
	secondsPerDay      = 24 * 60 * 60
)

// CalendarDate is a day on the proleptic Gregorian calendar with no time of
// day and no location. Months are 1-based.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate normalizes overflowing components the way time.Date does,
// so 2025-01-32 becomes 2025-02-01.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func CalendarDateOf(value time.Time) CalendarDate {
	year, month, day := value.Date()
	return CalendarDate{Year: year, Month: month, Day: day}
}

func ParseCalendarDate(raw string) (CalendarDate, error) {
	parsed, err := time.Parse(calendarDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: date %q", ErrInvalidCycleInput, raw)
	}
	return CalendarDateOf(parsed), nil
}

func SameCalendarDay(left time.Time, right time.Time) bool {
	return CalendarDateOf(left) == CalendarDateOf(right)
}

func (date CalendarDate) IsZero() bool {
	return date == CalendarDate{}
}

// Time returns midnight of the date in location (UTC when nil).
func (date CalendarDate) Time(location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, location)
}

func (date CalendarDate) AddDays(days int) CalendarDate {
	return NewCalendarDate(date.Year, date.Month, date.Day+days)
}

// DaysSince returns the signed number of whole days from other to date.
func (date CalendarDate) DaysSince(other CalendarDate) int {
	return int((date.Time(time.UTC).Unix() - other.Time(time.UTC).Unix()) / secondsPerDay)
}

func (date CalendarDate) Before(other CalendarDate) bool {
	return date.Compare(other) < 0
}

func (date CalendarDate) After(other CalendarDate) bool {
	return date.Compare(other) > 0
}

func (date CalendarDate) Compare(other CalendarDate) int {
	return date.Time(time.UTC).Compare(other.Time(time.UTC))
}

func (date CalendarDate) Weekday() time.Weekday {
	return date.Time(time.UTC).Weekday()
}

func (date CalendarDate) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Time(time.UTC).Format(calendarDateLayout)
}

func (date CalendarDate) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(date.String())
}

func (date *CalendarDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*date = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(*raw)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOf returns the weekday of the first day of the month, Sunday = 0.
func FirstWeekdayOf(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

type DaySet map[CalendarDate]struct{}

func NewDaySet(dates ...CalendarDate) DaySet {
	set := make(DaySet, len(dates))
	for _, date := range dates {
		set.Add(date)
	}
	return set
}

// DayRun returns length consecutive days starting at start.
func DayRun(start CalendarDate, length int) DaySet {
	set := make(DaySet, max(length, 0))
	for offset := range max(length, 0) {
		set.Add(start.AddDays(offset))
	}
	return set
}

func (set DaySet) Add(date CalendarDate) {
	set[date] = struct{}{}
}

func (set DaySet) Contains(date CalendarDate) bool {
	_, ok := set[date]
	return ok
}

func (set DaySet) Len() int {
	return len(set)
}

func (set DaySet) Union(other DaySet) DaySet {
	merged := make(DaySet, len(set)+len(other))
	maps.Copy(merged, set)
	maps.Copy(merged, other)
	return merged
}

func (set DaySet) Sorted() []CalendarDate {
	return slices.SortedFunc(maps.Keys(set), CalendarDate.Compare)
}

func (set DaySet) MarshalJSON() ([]byte, error) {
	sorted := set.Sorted()
	values := make([]string, 0, len(sorted))
	for _, date := range sorted {
		values = append(values, date.String())
	}
	return json.Marshal(values)
}
