package datemath_test

import (
	"testing"
	"time"

	"smart-task-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Africa/Lagos")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		phrase   string
		want     time.Time
		dateOnly bool
		wantOK   bool
	}{
		{name: "Tomorrow at 3pm", phrase: "tomorrow at 3pm", want: startOfNow.AddDate(0, 0, 1).Add(15 * time.Hour), wantOK: true},
		{name: "Tomorrow 10:30am", phrase: "Tomorrow 10:30am", want: startOfNow.AddDate(0, 0, 1).Add(10*time.Hour + 30*time.Minute), wantOK: true},
		{name: "Dotted meridiem", phrase: "tomorrow at 9 a.m.", want: startOfNow.AddDate(0, 0, 1).Add(9 * time.Hour), wantOK: true},
		{name: "Twenty four hour clock", phrase: "tomorrow 17:45", want: startOfNow.AddDate(0, 0, 1).Add(17*time.Hour + 45*time.Minute), wantOK: true},
		{name: "Clock later today", phrase: "5pm", want: startOfNow.Add(17 * time.Hour), wantOK: true},
		{name: "Clock already passed rolls to tomorrow", phrase: "9am", want: startOfNow.AddDate(0, 0, 1).Add(9 * time.Hour), wantOK: true},
		{name: "Noon rolls to tomorrow", phrase: "noon", want: startOfNow.AddDate(0, 0, 1).Add(12 * time.Hour), wantOK: true},
		{name: "12am is midnight", phrase: "tomorrow 12am", want: startOfNow.AddDate(0, 0, 1), wantOK: true},
		{name: "Tonight", phrase: "tonight", want: startOfNow.Add(20 * time.Hour), wantOK: true},
		{name: "Tomorrow morning", phrase: "tomorrow morning", want: startOfNow.AddDate(0, 0, 1).Add(9 * time.Hour), wantOK: true},
		{name: "Today date only", phrase: "today", want: startOfNow, dateOnly: true, wantOK: true},
		{name: "Day after tomorrow", phrase: "day after tomorrow", want: startOfNow.AddDate(0, 0, 2), dateOnly: true, wantOK: true},
		{name: "Next Monday (from Wed)", phrase: "next monday 10am", want: startOfNow.AddDate(0, 0, 5).Add(10 * time.Hour), wantOK: true},
		{name: "Bare weekday is strictly future", phrase: "on wednesday", want: startOfNow.AddDate(0, 0, 7), dateOnly: true, wantOK: true},
		{name: "Weekday abbreviation", phrase: "fri 2pm", want: startOfNow.AddDate(0, 0, 2).Add(14 * time.Hour), wantOK: true},
		{name: "Next week", phrase: "next week", want: startOfNow.AddDate(0, 0, 7), dateOnly: true, wantOK: true},
		{name: "In 3 days", phrase: "in 3 days", want: startOfNow.AddDate(0, 0, 3), dateOnly: true, wantOK: true},
		{name: "In 2 weeks at 8am", phrase: "in 2 weeks at 8am", want: startOfNow.AddDate(0, 0, 14).Add(8 * time.Hour), wantOK: true},
		{name: "In 1 month", phrase: "in 1 month", want: startOfNow.AddDate(0, 1, 0), dateOnly: true, wantOK: true},
		{name: "In 2 hours", phrase: "in 2 hours", want: now.Add(2 * time.Hour), wantOK: true},
		{name: "In 45 minutes", phrase: "in 45 minutes", want: now.Add(45 * time.Minute), wantOK: true},
		{name: "Month day", phrase: "May 10 at 2pm", want: time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Day of month", phrase: "10th of June", want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), dateOnly: true, wantOK: true},
		{name: "Past month day rolls to next year", phrase: "jan 5", want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), dateOnly: true, wantOK: true},
		{name: "Explicit year", phrase: "march 3 2026 9:15", want: time.Date(2026, 3, 3, 9, 15, 0, 0, time.UTC), wantOK: true},
		{name: "ISO date and time", phrase: "2024-05-20 14:00", want: time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC), wantOK: true},
		{name: "RFC3339", phrase: "2024-05-20T14:00:00Z", want: time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Invalid day of month", phrase: "april 31", wantOK: false},
		{name: "Invalid 12h hour", phrase: "13pm", wantOK: false},
		{name: "Unknown words", phrase: "some random day", wantOK: false},
		{name: "Invalid weekday", phrase: "next funday", wantOK: false},
		{name: "Empty", phrase: "   ", wantOK: false},
		{name: "Hour offset past a year", phrase: "in 3000000 hours", wantOK: false},
		{name: "Minute offset overflowing", phrase: "in 9999999999999 minutes", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Resolve(tt.phrase, now)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v (got %v)", tt.phrase, ok, tt.wantOK, got.AbsoluteTime)
			}
			if !ok {
				return
			}
			if !got.AbsoluteTime.Equal(tt.want) {
				t.Errorf("Resolve(%q) got = %v, want %v", tt.phrase, got.AbsoluteTime, tt.want)
			}
			if got.DateOnly != tt.dateOnly {
				t.Errorf("Resolve(%q) DateOnly = %v, want %v", tt.phrase, got.DateOnly, tt.dateOnly)
			}
		})
	}
}

func TestResolveUsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Africa/Lagos")
	loc := parser.Location()
	// 23:30 UTC is already the next day in Lagos (UTC+1).
	now := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	got, ok := parser.Resolve("today", now)
	if !ok {
		t.Fatal("expected today to resolve")
	}
	want := time.Date(2024, 5, 2, 0, 0, 0, 0, loc)
	if !got.AbsoluteTime.Equal(want) {
		t.Errorf("got = %v, want %v", got.AbsoluteTime, want)
	}
}

func TestIsDatePhrase(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := map[string]bool{
		"tomorrow":      true,
		"on friday":     true,
		"next week":     true,
		"may 10":        true,
		"in 3 days":     true,
		"tomorrow 5pm":  false,
		"sun":           false,
		"report":        false,
		"the":           false,
		"":              false,
		"with the team": false,
	}

	for phrase, want := range tests {
		if got := parser.IsDatePhrase(phrase, now); got != want {
			t.Errorf("IsDatePhrase(%q) = %v, want %v", phrase, got, want)
		}
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 13, 14, 0, 0, time.UTC)

	start := parser.StartOfDay(base)
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", start, want)
	}

	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	if got := parser.EndOfDay(start); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
