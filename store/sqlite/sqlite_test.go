package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/planner"
	"github.com/warp/vacation-planner/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHolidayRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddHoliday(ctx, store.Holiday{
		ID:   "hol-1",
		Date: calendar.MustParseDate("2025-12-25"),
		Name: "Christmas Day",
	}))
	require.NoError(t, s.AddHoliday(ctx, store.Holiday{
		ID:   "hol-2",
		Date: calendar.MustParseDate("2025-01-01"),
		Name: "New Year's Day",
	}))

	holidays, err := s.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 2)

	// Ordered by date
	assert.Equal(t, "New Year's Day", holidays[0].Name)
	assert.Equal(t, "Christmas Day", holidays[1].Name)
	assert.True(t, holidays[1].Date.Equal(calendar.MustParseDate("2025-12-25")))
}

func TestAddHoliday_DuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := store.Holiday{ID: "hol-1", Date: calendar.MustParseDate("2025-07-04")}
	require.NoError(t, s.AddHoliday(ctx, h))
	assert.ErrorIs(t, s.AddHoliday(ctx, h), store.ErrDuplicateID)
}

func TestDeleteHoliday(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddHoliday(ctx, store.Holiday{
		ID: "hol-1", Date: calendar.MustParseDate("2025-07-04"),
	}))
	require.NoError(t, s.DeleteHoliday(ctx, "hol-1"))

	assert.ErrorIs(t, s.DeleteHoliday(ctx, "hol-1"), store.ErrNotFound)

	holidays, err := s.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestVacationRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddVacation(ctx, store.Vacation{
		ID: "vac-2",
		Vacation: planner.Vacation{
			Name:  "Summer",
			Start: calendar.MustParseDate("2025-07-07"),
			End:   calendar.MustParseDate("2025-07-18"),
		},
	}))
	require.NoError(t, s.AddVacation(ctx, store.Vacation{
		ID: "vac-1",
		Vacation: planner.Vacation{
			Name:  "Spring",
			Start: calendar.MustParseDate("2025-04-14"),
			End:   calendar.MustParseDate("2025-04-18"),
		},
	}))

	vacations, err := s.ListVacations(ctx)
	require.NoError(t, err)
	require.Len(t, vacations, 2)

	// Ordered by start date
	assert.Equal(t, "Spring", vacations[0].Name)
	assert.Equal(t, "Summer", vacations[1].Name)
	assert.True(t, vacations[1].End.Equal(calendar.MustParseDate("2025-07-18")))
}

func TestAddVacation_RejectsReversedRange(t *testing.T) {
	s := newTestStore(t)

	err := s.AddVacation(context.Background(), store.Vacation{
		ID: "vac-bad",
		Vacation: planner.Vacation{
			Start: calendar.MustParseDate("2025-07-18"),
			End:   calendar.MustParseDate("2025-07-07"),
		},
	})
	assert.ErrorIs(t, err, planner.ErrInvalidDateRange)
}

func TestSettings_UpsertAndPrecision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetSettings(ctx)
	assert.ErrorIs(t, err, store.ErrNoSettings)

	require.NoError(t, s.PutSettings(ctx, store.Settings{
		Bank:       decimal.NewFromFloat(37.5),
		WeeklyRate: decimal.NewFromFloat(4.62),
	}))

	// Upsert overwrites the single row.
	require.NoError(t, s.PutSettings(ctx, store.Settings{
		Bank:       decimal.NewFromFloat(40.25),
		WeeklyRate: decimal.NewFromFloat(4.62),
	}))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, got.Bank.Equal(decimal.NewFromFloat(40.25)), "bank = %s", got.Bank)
	assert.True(t, got.WeeklyRate.Equal(decimal.NewFromFloat(4.62)), "rate = %s", got.WeeklyRate)
}
