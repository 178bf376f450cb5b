package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

const exportDateLayout = "2006-01-02"

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Energy",
	"Comfort",
	"Emotion",
	"Mood",
}

type ExportMoodReader interface {
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error)
}

type ExportService struct {
	moods ExportMoodReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

type ExportMoodEntry struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Energy  string `json:"energy"`
	Comfort string `json:"comfort"`
	Emotion string `json:"emotion"`
	Mood    string `json:"mood"`
}

func NewExportService(moods ExportMoodReader) *ExportService {
	return &ExportService{moods: moods}
}

// ParseExportRange parses optional inclusive YYYY-MM-DD bounds in location.
func ParseExportRange(rawFrom string, rawTo string, location *time.Location) (*time.Time, *time.Time, error) {
	from, err := parseExportBound(rawFrom, location, ErrExportFromDateInvalid)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseExportBound(rawTo, location, ErrExportToDateInvalid)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

func parseExportBound(raw string, location *time.Location, invalid error) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(exportDateLayout, raw, location)
	if err != nil {
		return nil, invalid
	}
	return &parsed, nil
}

func (service *ExportService) loadEntries(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	var exclusiveTo *time.Time
	if to != nil {
		next := to.AddDate(0, 0, 1)
		exclusiveTo = &next
	}
	return service.moods.ListByUserRange(userID, from, exclusiveTo)
}

func (service *ExportService) BuildSummary(userID uint, from *time.Time, to *time.Time, location *time.Location) (ExportSummary, error) {
	entries, err := service.loadEntries(userID, from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	first, last := entries[0].CreatedAt, entries[0].CreatedAt
	for _, entry := range entries[1:] {
		if entry.CreatedAt.Before(first) {
			first = entry.CreatedAt
		}
		if entry.CreatedAt.After(last) {
			last = entry.CreatedAt
		}
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     first.In(location).Format(exportDateLayout),
		DateTo:       last.In(location).Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildEntries(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]ExportMoodEntry, error) {
	entries, err := service.loadEntries(userID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]ExportMoodEntry, 0, len(entries))
	for _, entry := range entries {
		local := entry.CreatedAt.In(location)
		result = append(result, ExportMoodEntry{
			Date:    local.Format(exportDateLayout),
			Time:    local.Format("15:04"),
			Energy:  entry.Energy,
			Comfort: entry.Comfort,
			Emotion: entry.Emotion,
			Mood:    entry.MoodTitle,
		})
	}
	return result, nil
}

func (entry ExportMoodEntry) Columns() []string {
	return []string{entry.Date, entry.Time, entry.Energy, entry.Comfort, entry.Emotion, entry.Mood}
}

// ExportFilename names a download as luna-<kind>-<date>.<ext>.
func ExportFilename(kind string, extension string, now time.Time) string {
	return "luna-" + kind + "-" + now.Format(exportDateLayout) + "." + strings.TrimPrefix(extension, ".")
}
