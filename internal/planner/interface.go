package planner

import (
	"context"

	"smart-task-planner/internal/model"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/llmprovider"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// Schedule parses free text, picks a slot and commits a calendar event.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// Parse runs the local extractor and, when needed, the remote parser
	// without touching the calendar.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Upcoming lists the next events on the calendar.
	Upcoming(ctx context.Context, sc model.Scope, input UpcomingInput) (UpcomingOutput, error)
}

// Calendar is the subset of pkg/gcalendar the planner needs.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarSource resolves the calendar a request should act on.
type CalendarSource interface {
	CalendarFor(ctx context.Context, sc model.Scope) (Calendar, error)
}

// Oracle is the remote LLM used when local extraction is not enough.
type Oracle interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
