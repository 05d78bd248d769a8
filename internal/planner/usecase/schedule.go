package usecase

import (
	"context"
	"fmt"
	"strconv"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
)

// Schedule parses free text, resolves a start time, runs the conflict and
// duplicate checks and commits the event.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input planner.ScheduleInput) (out planner.ScheduleOutput, err error) {
	defer func() {
		if err != nil {
			scheduleFailures.WithLabelValues(string(planner.KindOf(err))).Inc()
		}
	}()

	text, err := uc.validateText(input.Text)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "planner.usecase.Schedule: session=%s input_length=%d", sc.SessionID, len(text))

	now := uc.now()
	result := uc.parseTask(ctx, text, input.History, now)
	if err := result.AsError(); err != nil {
		return planner.ScheduleOutput{}, err
	}
	task := result.Task

	cal, err := uc.calendars.CalendarFor(ctx, sc)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	start, searched := task.Start, false
	switch {
	case task.HasStart():
		if start.Before(now) {
			return planner.ScheduleOutput{}, planner.ErrStartInPast
		}
	case task.DateOnly && task.Start.Before(uc.dateMath.StartOfDay(now)):
		return planner.ScheduleOutput{}, planner.ErrStartInPast
	default:
		start, err = uc.findFreeSlot(ctx, cal, task, now)
		if err != nil {
			return planner.ScheduleOutput{}, err
		}
		searched = true
	}
	start = start.In(uc.loc)
	end := start.Add(task.Duration)

	if err := uc.checkConflict(ctx, cal, start, end); err != nil {
		return planner.ScheduleOutput{}, err
	}
	if !input.ConfirmDuplicate {
		if err := uc.checkDuplicate(ctx, cal, task.Title, now); err != nil {
			return planner.ScheduleOutput{}, err
		}
	}

	event, err := cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.cfg.CalendarID,
		Summary:    task.Title,
		StartTime:  start,
		EndTime:    end,
		Timezone:   uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.Schedule: create event %q failed: %v", task.Title, err)
		return planner.ScheduleOutput{}, fmt.Errorf("%w: create event: %v", planner.ErrCalendarUnavailable, err)
	}

	scheduledTotal.WithLabelValues(string(task.Source), strconv.FormatBool(searched)).Inc()
	uc.l.Infof(ctx, "planner.usecase.Schedule: created event id=%s title=%q start=%s", event.ID, task.Title, start)

	scheduled := toScheduledEvent(*event, uc.loc)
	if scheduled.Start.IsZero() {
		scheduled.Start, scheduled.End = start, end
	}
	if scheduled.Title == "" {
		scheduled.Title = task.Title
	}

	task.Start, task.DateOnly = start, false
	return planner.ScheduleOutput{
		Event:        scheduled,
		Task:         task,
		Message:      successMessage(task.Title, start),
		SlotSearched: searched,
	}, nil
}
