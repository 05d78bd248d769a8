package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
)

func TestUpcoming(t *testing.T) {
	events := []gcalendar.Event{
		timedEvent("Earlier", at(1, 7, 0), at(1, 8, 0)),
		timedEvent("One", at(1, 11, 0), at(1, 12, 0)),
		timedEvent("Two", at(2, 9, 0), at(2, 10, 0)),
		{Summary: "Holiday", StartTime: at(3, 0, 0), EndTime: at(4, 0, 0), IsAllDay: true},
	}

	t.Run("default limit", func(t *testing.T) {
		f := newFixture(baseNow, nil, events...)

		out, err := f.uc.Upcoming(context.Background(), scope, planner.UpcomingInput{})
		require.NoError(t, err)

		require.Len(t, out.Events, 3)
		assert.Equal(t, "One", out.Events[0].Title)
		assert.True(t, out.Events[2].AllDay)
		require.Len(t, f.cal.lists, 1)
		assert.Equal(t, int64(5), f.cal.lists[0].MaxResults)
		assert.True(t, f.cal.lists[0].TimeMin.Equal(baseNow))
	})

	t.Run("explicit limit", func(t *testing.T) {
		f := newFixture(baseNow, nil, events...)

		out, err := f.uc.Upcoming(context.Background(), scope, planner.UpcomingInput{Limit: 1})
		require.NoError(t, err)
		require.Len(t, out.Events, 1)
	})

	t.Run("limit is capped", func(t *testing.T) {
		f := newFixture(baseNow, nil)

		_, err := f.uc.Upcoming(context.Background(), scope, planner.UpcomingInput{Limit: 1000})
		require.NoError(t, err)
		assert.Equal(t, int64(50), f.cal.lists[0].MaxResults)
	})

	t.Run("calendar error", func(t *testing.T) {
		f := newFixture(baseNow, nil)
		f.cal.listErr = errors.New("boom")

		_, err := f.uc.Upcoming(context.Background(), scope, planner.UpcomingInput{})
		assert.ErrorIs(t, err, planner.ErrCalendarUnavailable)
	})

	t.Run("not authenticated", func(t *testing.T) {
		f := newFixture(baseNow, nil)
		f.source.err = planner.ErrNotAuthenticated

		_, err := f.uc.Upcoming(context.Background(), scope, planner.UpcomingInput{})
		assert.ErrorIs(t, err, planner.ErrNotAuthenticated)
	})
}
