package usecase

import (
	"context"
	"fmt"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
)

// Upcoming lists the next events starting from now.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, input planner.UpcomingInput) (planner.UpcomingOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.UpcomingLimit
	}
	if limit > maxUpcomingLimit {
		limit = maxUpcomingLimit
	}

	cal, err := uc.calendars.CalendarFor(ctx, sc)
	if err != nil {
		return planner.UpcomingOutput{}, err
	}

	events, err := cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    uc.now(),
		MaxResults: int64(limit),
	})
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.Upcoming: list events failed: %v", err)
		return planner.UpcomingOutput{}, fmt.Errorf("%w: list events: %v", planner.ErrCalendarUnavailable, err)
	}

	out := make([]planner.ScheduledEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toScheduledEvent(ev, uc.loc))
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return planner.UpcomingOutput{Events: out}, nil
}
