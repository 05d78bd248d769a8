package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/slotfinder"
)

// slotGranularity rounds "now" up so suggested starts land on the quarter hour.
const slotGranularity = 15 * time.Minute

// findFreeSlot returns the earliest free start of the given length. A task
// pinned to a day only searches that day; otherwise the search starts today
// and moves forward up to SlotSearchDays.
func (uc *implUseCase) findFreeSlot(ctx context.Context, cal planner.Calendar, task planner.ParsedTask, now time.Time) (time.Time, error) {
	first, days := uc.dateMath.StartOfDay(now), uc.cfg.SlotSearchDays
	if task.DateOnly {
		first, days = uc.dateMath.StartOfDay(task.Start), 1
	}
	earliest := now.Truncate(slotGranularity)
	if earliest.Before(now) {
		earliest = earliest.Add(slotGranularity)
	}

	for i := 0; i < days; i++ {
		window := slotfinder.WorkingWindow(first.AddDate(0, 0, i), uc.cfg.WorkdayStartHour, uc.cfg.WorkdayEndHour)
		if !window.End.After(earliest) {
			continue
		}

		busy, err := uc.busyIntervals(ctx, cal, window)
		if err != nil {
			return time.Time{}, err
		}
		if window.Start.Before(earliest) {
			busy = append(busy, slotfinder.Interval{Start: window.Start, End: earliest})
		}
		slotfinder.SortByStart(busy)

		if start, ok := slotfinder.FirstFit(busy, window, task.Duration); ok {
			uc.l.Debugf(ctx, "planner.usecase.findFreeSlot: found %s after %d day(s)", start.Format(time.RFC3339), i)
			return start, nil
		}
	}

	return time.Time{}, planner.ErrNoFreeSlot
}

// busyIntervals lists timed events inside the window. All-day events do not
// block slots.
func (uc *implUseCase) busyIntervals(ctx context.Context, cal planner.Calendar, window slotfinder.Window) ([]slotfinder.Interval, error) {
	events, err := cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    window.Start,
		TimeMax:    window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", planner.ErrCalendarUnavailable, err)
	}

	busy := make([]slotfinder.Interval, 0, len(events))
	for _, ev := range events {
		if ev.IsAllDay {
			continue
		}
		busy = append(busy, slotfinder.Interval{Start: ev.StartTime, End: ev.EndTime})
	}
	return busy, nil
}
