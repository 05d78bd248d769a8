package usecase_test

import (
	"context"
	"strings"
	"time"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/internal/planner/usecase"
	"smart-task-planner/pkg/datemath"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/llmprovider"
	"smart-task-planner/pkg/taskparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeCalendar filters its events the way the Calendar API does: by overlap
// with [TimeMin, TimeMax) and by case-insensitive substring for Query.
type fakeCalendar struct {
	events    []gcalendar.Event
	listErr   error
	createErr error

	lists   []gcalendar.ListEventsRequest
	created []gcalendar.CreateEventRequest
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.lists = append(f.lists, req)
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []gcalendar.Event
	for _, ev := range f.events {
		if !ev.EndTime.After(req.TimeMin) {
			continue
		}
		if !req.TimeMax.IsZero() && !ev.StartTime.Before(req.TimeMax) {
			continue
		}
		if req.Query != "" && !strings.Contains(strings.ToLower(ev.Summary), strings.ToLower(req.Query)) {
			continue
		}
		out = append(out, ev)
		if req.MaxResults > 0 && int64(len(out)) == req.MaxResults {
			break
		}
	}
	return out, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

type fakeSource struct {
	cal   *fakeCalendar
	err   error
	calls int
}

func (f *fakeSource) CalendarFor(ctx context.Context, sc model.Scope) (planner.Calendar, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cal, nil
}

type fakeOracle struct {
	content string
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (f *fakeOracle) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: f.content, ProviderName: "fake", ModelName: "fake-model"}, nil
}

// Wednesday, May 1 2024.
var baseNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
}

func timedEvent(title string, start, end time.Time) gcalendar.Event {
	return gcalendar.Event{ID: title, Summary: title, StartTime: start, EndTime: end}
}

type fixture struct {
	uc     planner.UseCase
	cal    *fakeCalendar
	source *fakeSource
	oracle *fakeOracle
}

// newFixture builds a use case at now. A nil oracle disables the remote parser.
func newFixture(now time.Time, oracle *fakeOracle, events ...gcalendar.Event) fixture {
	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	cal := &fakeCalendar{events: events}
	source := &fakeSource{cal: cal}

	var o planner.Oracle
	if oracle != nil {
		o = oracle
	}

	uc := usecase.New(&mockLogger{}, source, o, taskparse.NewExtractor(resolver, time.Hour), resolver, usecase.Config{
		CalendarID:       "primary",
		MaxInputLength:   100,
		WorkdayStartHour: 8,
		WorkdayEndHour:   20,
		SlotSearchDays:   7,
		DuplicateWindow:  7 * 24 * time.Hour,
		HistoryContext:   2,
		UpcomingLimit:    5,
		Now:              func() time.Time { return now },
	})

	return fixture{uc: uc, cal: cal, source: source, oracle: oracle}
}
