package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/slotfinder"
)

// checkConflict fails when a timed event overlaps [start, end).
func (uc *implUseCase) checkConflict(ctx context.Context, cal planner.Calendar, start, end time.Time) error {
	events, err := cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return fmt.Errorf("%w: list events: %v", planner.ErrCalendarUnavailable, err)
	}

	slot := slotfinder.Interval{Start: start, End: end}
	for _, ev := range events {
		if ev.IsAllDay {
			continue
		}
		if slot.Overlaps(slotfinder.Interval{Start: ev.StartTime, End: ev.EndTime}) {
			return &planner.ConflictError{
				Existing: ev.Summary,
				Start:    ev.StartTime.In(uc.loc),
				End:      ev.EndTime.In(uc.loc),
			}
		}
	}
	return nil
}

// checkDuplicate fails when an event with the same normalised title starts
// within DuplicateWindow from now.
func (uc *implUseCase) checkDuplicate(ctx context.Context, cal planner.Calendar, title string, now time.Time) error {
	events, err := cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    now,
		TimeMax:    now.Add(uc.cfg.DuplicateWindow),
		Query:      title,
		MaxResults: duplicateSearchLimit,
	})
	if err != nil {
		return fmt.Errorf("%w: search events: %v", planner.ErrCalendarUnavailable, err)
	}

	want := normalizeTitle(title)
	for _, ev := range events {
		if normalizeTitle(ev.Summary) == want {
			return &planner.DuplicateError{
				Title:  ev.Summary,
				Start:  ev.StartTime.In(uc.loc),
				Window: uc.cfg.DuplicateWindow,
			}
		}
	}
	return nil
}
