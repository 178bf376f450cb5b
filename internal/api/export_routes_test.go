package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestExportRoutesRespectInclusiveRange(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "export@example.com")
	doJSON(t, app, http.MethodPost, "/api/mood", map[string]string{
		"energy":  "high",
		"comfort": "pain",
		"emotion": "happy",
	}, cookie)

	inside := doJSON(t, app, http.MethodGet, "/api/export/summary?from=2025-03-01&to=2025-03-10", nil, cookie)
	var summary struct {
		TotalEntries int    `json:"total_entries"`
		DateFrom     string `json:"date_from"`
	}
	decodeBody(t, inside, &summary)
	if summary.TotalEntries != 1 || summary.DateFrom != "2025-03-10" {
		t.Fatalf("expected one entry on 2025-03-10, got %+v", summary)
	}

	outside := doJSON(t, app, http.MethodGet, "/api/export/summary?to=2025-03-09", nil, cookie)
	var empty struct {
		TotalEntries int  `json:"total_entries"`
		HasData      bool `json:"has_data"`
	}
	decodeBody(t, outside, &empty)
	if empty.TotalEntries != 0 || empty.HasData {
		t.Fatalf("expected empty summary before the entry, got %+v", empty)
	}

	reversed := doJSON(t, app, http.MethodGet, "/api/export/summary?from=2025-03-10&to=2025-03-01", nil, cookie)
	if reversed.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for reversed range, got %d", reversed.StatusCode)
	}
}

func TestExportCSVWritesHeaderAndRows(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "export-csv@example.com")
	doJSON(t, app, http.MethodPost, "/api/mood", map[string]string{
		"energy":  "high",
		"comfort": "pain",
		"emotion": "happy",
	}, cookie)

	response := doJSON(t, app, http.MethodGet, "/api/export/csv", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "luna-moods-2025-03-10.csv") {
		t.Fatalf("expected attachment filename, got %q", disposition)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read csv body: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", string(body))
	}
	if lines[0] != "Date,Time,Energy,Comfort,Emotion,Mood" {
		t.Fatalf("unexpected csv header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2025-03-10,09:30,high,pain,happy,") {
		t.Fatalf("unexpected csv row %q", lines[1])
	}
}
