package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Africa/Lagos"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	// IsAllDay is set for events that carry a date but no time of day.
	IsAllDay bool
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are expanded and results are ordered by start time.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time // zero means unbounded
	Query      string    // free text search, matched by the API against summary and description
	MaxResults int64
}
