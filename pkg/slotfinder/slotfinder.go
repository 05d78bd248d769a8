// Package slotfinder finds the earliest gap in a list of busy intervals.
package slotfinder

import (
	"slices"
	"time"
)

// Interval is a half-open busy range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether i and other share any instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Window is the range of the day a slot may occupy.
type Window struct {
	Start time.Time
	End   time.Time
}

// WorkingWindow returns [startHour:00, endHour:00) on the day of date, in date's location.
func WorkingWindow(date time.Time, startHour, endHour int) Window {
	y, m, d := date.Date()
	loc := date.Location()
	return Window{
		Start: time.Date(y, m, d, startHour, 0, 0, 0, loc),
		End:   time.Date(y, m, d, endHour, 0, 0, 0, loc),
	}
}

// FirstFit returns the earliest start within w where duration fits between
// busy intervals. busy must be ordered by Start.
func FirstFit(busy []Interval, w Window, duration time.Duration) (time.Time, bool) {
	if duration <= 0 || !w.End.After(w.Start) {
		return time.Time{}, false
	}

	cursor := w.Start
	for _, b := range busy {
		if !b.End.After(cursor) {
			continue
		}
		if b.Start.Sub(cursor) >= duration {
			break
		}
		cursor = b.End
		if !cursor.Before(w.End) {
			return time.Time{}, false
		}
	}

	if w.End.Sub(cursor) >= duration {
		return cursor, true
	}
	return time.Time{}, false
}

// SortByStart orders busy intervals by start time in place.
func SortByStart(busy []Interval) {
	slices.SortFunc(busy, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
}
