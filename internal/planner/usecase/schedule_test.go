package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
)

var scope = model.Scope{SessionID: "sess-1", Authenticated: true}

func TestSchedule_LocalExplicitTime(t *testing.T) {
	oracle := &fakeOracle{}
	f := newFixture(baseNow, oracle)

	out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Study AI for 2 hours tomorrow at 5pm"})
	require.NoError(t, err)

	require.Len(t, f.cal.created, 1)
	created := f.cal.created[0]
	assert.Equal(t, "Study AI", created.Summary)
	assert.True(t, created.StartTime.Equal(at(2, 17, 0)))
	assert.True(t, created.EndTime.Equal(at(2, 19, 0)))
	assert.Equal(t, "primary", created.CalendarID)
	assert.Equal(t, "UTC", created.Timezone)

	assert.Equal(t, "Scheduled 'Study AI' on Thursday, May 02 at 05:00 PM", out.Message)
	assert.False(t, out.SlotSearched)
	assert.Equal(t, planner.SourceLocal, out.Task.Source)
	assert.Equal(t, "evt-1", out.Event.ID)
	assert.Zero(t, oracle.calls, "complete local parse must not call the oracle")
}

func TestSchedule_FreeSlot(t *testing.T) {
	allDay := gcalendar.Event{Summary: "Holiday", StartTime: at(1, 0, 0), EndTime: at(2, 0, 0), IsAllDay: true}

	tests := []struct {
		name   string
		now    time.Time
		text   string
		events []gcalendar.Event
		want   time.Time
	}{
		{
			name:   "after busy block today",
			now:    baseNow,
			text:   "Read for 45 mins",
			events: []gcalendar.Event{timedEvent("Standup", at(1, 10, 0), at(1, 11, 30)), allDay},
			want:   at(1, 11, 30),
		},
		{
			name: "rounds now up to the quarter hour",
			now:  at(1, 10, 7),
			text: "Read for 30 mins",
			want: at(1, 10, 15),
		},
		{
			name: "rolls to next day when today is full",
			now:  at(1, 19, 30),
			text: "Read for 45 mins",
			want: at(2, 8, 0),
		},
		{
			name: "date only searches that day",
			now:  baseNow,
			text: "Dentist on Friday",
			want: at(3, 8, 0),
		},
		{
			name:   "date only skips busy morning",
			now:    baseNow,
			text:   "Dentist on Friday",
			events: []gcalendar.Event{timedEvent("Errands", at(3, 7, 0), at(3, 9, 45))},
			want:   at(3, 9, 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.now, nil, tt.events...)

			out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: tt.text})
			require.NoError(t, err)
			assert.True(t, out.SlotSearched)
			assert.True(t, out.Event.Start.Equal(tt.want), "got %v, want %v", out.Event.Start, tt.want)
			require.Len(t, f.cal.created, 1)
			assert.Equal(t, out.Task.Duration, f.cal.created[0].EndTime.Sub(f.cal.created[0].StartTime))
		})
	}
}

func TestSchedule_NoFreeSlot(t *testing.T) {
	f := newFixture(baseNow, nil, timedEvent("Offsite", at(3, 8, 0), at(3, 20, 0)))

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Dentist on Friday"})
	assert.ErrorIs(t, err, planner.ErrNoFreeSlot)
	assert.Empty(t, f.cal.created)
}

func TestSchedule_Conflict(t *testing.T) {
	f := newFixture(baseNow, nil, timedEvent("Meeting", at(1, 17, 30), at(1, 18, 30)))

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
	require.ErrorIs(t, err, planner.ErrConflict)

	var conflict *planner.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Meeting", conflict.Existing)
	assert.Empty(t, f.cal.created)
}

func TestSchedule_AdjacentEventIsNotAConflict(t *testing.T) {
	f := newFixture(baseNow, nil, timedEvent("Meeting", at(1, 17, 0), at(1, 18, 0)))

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
	require.NoError(t, err)
	assert.Len(t, f.cal.created, 1)
}

func TestSchedule_Duplicate(t *testing.T) {
	existing := timedEvent("gym", at(4, 7, 0), at(4, 8, 0))

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(baseNow, nil, existing)

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		require.ErrorIs(t, err, planner.ErrDuplicate)

		var dup *planner.DuplicateError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "gym", dup.Title)
		assert.Equal(t, 7*24*time.Hour, dup.Window)
		assert.Empty(t, f.cal.created)
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(baseNow, nil, existing)

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm", ConfirmDuplicate: true})
		require.NoError(t, err)
		assert.Len(t, f.cal.created, 1)
	})

	t.Run("similar title is not a duplicate", func(t *testing.T) {
		f := newFixture(baseNow, nil, timedEvent("Gym with Anna", at(4, 7, 0), at(4, 8, 0)))

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		require.NoError(t, err)
	})

	t.Run("outside the window", func(t *testing.T) {
		f := newFixture(baseNow, nil, timedEvent("Gym", at(20, 7, 0), at(20, 8, 0)))

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		require.NoError(t, err)
	})
}

func TestSchedule_Oracle(t *testing.T) {
	oracle := &fakeOracle{content: "```json\n{\"status\":\"complete\",\"title\":\"Write report\",\"duration_minutes\":90,\"start_time\":\"2024-05-02 14:00\",\"question\":null}\n```"}
	f := newFixture(baseNow, oracle)

	out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, planner.SourceOracle, out.Task.Source)
	assert.Equal(t, "Write report", out.Event.Title)
	assert.True(t, out.Event.Start.Equal(at(2, 14, 0)))
	assert.True(t, out.Event.End.Equal(at(2, 15, 30)))

	req := oracle.lastReq
	require.NotNil(t, req)
	assert.True(t, req.JSONMode)
	assert.InDelta(t, 0.2, req.Temperature, 1e-6)
	assert.NotEmpty(t, req.SystemInstruction)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Write the quarterly report")
	assert.Contains(t, req.Messages[0].Content, "Wednesday, 2024-05-01 10:00")
}

func TestSchedule_OracleWithoutStartSearchesSlot(t *testing.T) {
	oracle := &fakeOracle{content: `{"status":"complete","title":"Write report","duration_minutes":60,"start_time":""}`}
	f := newFixture(baseNow, oracle)

	out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
	require.NoError(t, err)
	assert.True(t, out.SlotSearched)
	assert.True(t, out.Event.Start.Equal(at(1, 10, 0)))
}

func TestSchedule_OracleHistoryIsTrimmed(t *testing.T) {
	oracle := &fakeOracle{content: `{"status":"clarification","question":"How long?"}`}
	f := newFixture(baseNow, oracle)

	history := []model.ConversationTurn{
		{UserInput: "turn-one"}, {UserInput: "turn-two"}, {UserInput: "turn-three"},
	}
	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report", History: history})
	require.Error(t, err)

	content := oracle.lastReq.Messages[0].Content
	assert.NotContains(t, content, "turn-one")
	assert.Contains(t, content, "turn-two")
	assert.Contains(t, content, "turn-three")
}

func TestSchedule_OracleClarification(t *testing.T) {
	f := newFixture(baseNow, &fakeOracle{content: `{"status":"clarification","question":"How long should the report take?"}`})

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
	require.ErrorIs(t, err, planner.ErrNeedsClarification)

	var clarification *planner.ClarificationError
	require.True(t, errors.As(err, &clarification))
	assert.Equal(t, "How long should the report take?", clarification.Question)
	assert.Zero(t, f.source.calls, "calendar must not be touched before parsing succeeds")
}

func TestSchedule_OracleFailures(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		err        error
		wantErr    error
		wantReason string
	}{
		{name: "network", err: errors.New("dial tcp: timeout"), wantErr: planner.ErrOracleUnavailable, wantReason: "could not be reached"},
		{name: "not json", content: "Sure! Here is your task.", wantErr: planner.ErrUnparsable, wantReason: "not valid JSON"},
		{name: "wrong type", content: `{"status":"complete","title":"X","duration_minutes":"ninety"}`, wantErr: planner.ErrUnparsable, wantReason: "wrong types"},
		{name: "missing status", content: `{"title":"X","duration_minutes":30}`, wantErr: planner.ErrUnparsable, wantReason: "missing required fields"},
		{name: "no title", content: `{"status":"complete","duration_minutes":30}`, wantErr: planner.ErrUnparsable, wantReason: "task title"},
		{name: "zero duration", content: `{"status":"complete","title":"X","duration_minutes":0}`, wantErr: planner.ErrUnparsable, wantReason: "not positive"},
		{name: "duration past a day", content: `{"status":"complete","title":"X","duration_minutes":1441}`, wantErr: planner.ErrUnparsable, wantReason: "longer than 24h0m0s"},
		{name: "overflowing duration", content: `{"status":"complete","title":"X","duration_minutes":400000000}`, wantErr: planner.ErrUnparsable, wantReason: "longer than"},
		{name: "unreadable start", content: `{"status":"complete","title":"X","duration_minutes":30,"start_time":"someday soon"}`, wantErr: planner.ErrTimeUnresolved, wantReason: "someday soon"},
		{name: "clarification without question", content: `{"status":"clarification"}`, wantErr: planner.ErrUnparsable, wantReason: "more details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(baseNow, &fakeOracle{content: tt.content, err: tt.err})

			_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
			require.ErrorIs(t, err, tt.wantErr)

			var parseErr *planner.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Contains(t, parseErr.Reason, tt.wantReason)
			assert.Empty(t, f.cal.created)
		})
	}
}

func TestSchedule_OracleStartInPast(t *testing.T) {
	f := newFixture(baseNow, &fakeOracle{content: `{"status":"complete","title":"Report","duration_minutes":30,"start_time":"2024-04-30 09:00"}`})

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
	assert.ErrorIs(t, err, planner.ErrStartInPast)
}

func TestSchedule_WithoutOracle(t *testing.T) {
	t.Run("fallback keeps whole text", func(t *testing.T) {
		f := newFixture(baseNow, nil)

		out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Write the quarterly report"})
		require.NoError(t, err)
		assert.Equal(t, "Write the quarterly report", out.Task.Title)
		assert.Equal(t, time.Hour, out.Task.Duration)
		assert.True(t, out.SlotSearched)
	})

	t.Run("oversized duration falls back to the default", func(t *testing.T) {
		f := newFixture(baseNow, nil)

		out, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Study at 5pm for 3000000 hours"})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, out.Task.Duration)
		require.Len(t, f.cal.created, 1)
		assert.True(t, out.Event.End.After(out.Event.Start), "end %v must follow start %v", out.Event.End, out.Event.Start)
	})

	t.Run("unresolved time fails", func(t *testing.T) {
		f := newFixture(baseNow, nil)

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Shop for groceries for 30 minutes with Anna"})
		assert.ErrorIs(t, err, planner.ErrTimeUnresolved)
	})
}

func TestSchedule_Validation(t *testing.T) {
	f := newFixture(baseNow, nil)

	_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "   "})
	assert.ErrorIs(t, err, planner.ErrEmptyInput)

	_, err = f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: strings.Repeat("a", 101)})
	assert.ErrorIs(t, err, planner.ErrInputTooLong)

	assert.Zero(t, f.source.calls)
}

func TestSchedule_CalendarErrors(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		f := newFixture(baseNow, nil)
		f.source.err = planner.ErrNotAuthenticated

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		assert.ErrorIs(t, err, planner.ErrNotAuthenticated)
	})

	t.Run("list fails", func(t *testing.T) {
		f := newFixture(baseNow, nil)
		f.cal.listErr = errors.New("googleapi: Error 503")

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		assert.ErrorIs(t, err, planner.ErrCalendarUnavailable)
	})

	t.Run("create fails", func(t *testing.T) {
		f := newFixture(baseNow, nil)
		f.cal.createErr = errors.New("googleapi: Error 500")

		_, err := f.uc.Schedule(context.Background(), scope, planner.ScheduleInput{Text: "Gym at 6pm"})
		assert.ErrorIs(t, err, planner.ErrCalendarUnavailable)
		assert.Equal(t, planner.KindCalendar, planner.KindOf(err))
	})
}
