package itinerary

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var parseStart = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

const twoDayJSON = `{
  "days": [
    {"day": 1, "date": "2026-09-01", "activities": [
      {"start_time": "09:00", "end_time": "11:00", "description": "Louvre visit", "place": "Louvre Museum"},
      {"start_time": "12:00", "end_time": "13:30", "description": "Lunch near the river"}
    ]},
    {"day": 2, "date": "2026-09-02", "activities": [
      {"start_time": "10:00", "end_time": "12:00", "description": "Walk Montmartre"}
    ]}
  ]
}`

func TestParsePlan(t *testing.T) {
	it, err := parsePlan(twoDayJSON, "Paris", parseStart, 2)
	if err != nil {
		t.Fatalf("parsePlan: %v", err)
	}
	if it.Destination != "Paris" {
		t.Errorf("destination = %q", it.Destination)
	}
	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
	if got := len(it.Days[0].Activities); got != 2 {
		t.Errorf("day 1 has %d activities, want 2", got)
	}
	if it.Days[0].Activities[0].Place != "Louvre Museum" {
		t.Errorf("place = %q", it.Days[0].Activities[0].Place)
	}
	if !it.Days[1].Date.Equal(parseStart.AddDate(0, 0, 1)) {
		t.Errorf("day 2 date = %v", it.Days[1].Date)
	}
}

func TestParsePlan_StripsFences(t *testing.T) {
	fenced := "```json\n" + twoDayJSON + "\n```"
	it, err := parsePlan(fenced, "Paris", parseStart, 2)
	if err != nil {
		t.Fatalf("parsePlan: %v", err)
	}
	if len(it.Days) != 2 {
		t.Errorf("got %d days, want 2", len(it.Days))
	}
}

func TestParsePlan_PadsMissingDays(t *testing.T) {
	// Model answered only day 1 of a 3-day trip.
	raw := `{"days": [{"day": 1, "activities": [{"start_time": "09:00", "end_time": "10:00", "description": "Arrive and check in"}]}]}`
	it, err := parsePlan(raw, "Oslo", parseStart, 3)
	if err != nil {
		t.Fatalf("parsePlan: %v", err)
	}
	if len(it.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(it.Days))
	}
	for i, dp := range it.Days {
		if dp.Day != i+1 {
			t.Errorf("days[%d].Day = %d", i, dp.Day)
		}
		if len(dp.Activities) == 0 {
			t.Errorf("day %d has no activities", dp.Day)
		}
	}
	if !strings.Contains(it.Days[2].Activities[0].Description, "Free time") {
		t.Errorf("padded day description = %q", it.Days[2].Activities[0].Description)
	}
}

func TestParsePlan_IgnoresOutOfRangeDays(t *testing.T) {
	raw := `{"days": [
	  {"day": 1, "activities": [{"start_time": "09:00", "end_time": "10:00", "description": "Museum morning"}]},
	  {"day": 5, "activities": [{"start_time": "09:00", "end_time": "10:00", "description": "Should be dropped"}]}
	]}`
	it, err := parsePlan(raw, "Rome", parseStart, 2)
	if err != nil {
		t.Fatalf("parsePlan: %v", err)
	}
	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
}

func TestParsePlan_MalformedResponse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "Sorry, I cannot plan that trip."},
		{"empty days", `{"days": []}`},
		{"no activities", `{"days": [{"day": 1, "activities": []}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePlan(tc.raw, "Paris", parseStart, 2)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Raw != tc.raw {
				t.Errorf("Raw = %q, want original text", pe.Raw)
			}
		})
	}
}
