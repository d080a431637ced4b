/*
Package store defines persistence for the planner's inputs.

PURPOSE:
  The HTTP service keeps three kinds of input between requests:
  - the holiday calendar
  - the vacation schedule
  - planner settings (banked PTO, weekly accrual rate)

  Simulation results are never persisted; a run is cheap and deterministic,
  so the service recomputes on demand.

IMPLEMENTATIONS:
  store.Memory:  In-memory, for tests and development
  sqlite.Store:  SQLite-backed, for the server

SEE ALSO:
  - memory.go: In-memory implementation
  - sqlite/sqlite.go: SQLite implementation
  - api/handlers.go: The only consumer
*/
package store

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/planner"
)

var (
	// ErrNotFound is returned when a holiday or vacation id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNoSettings is returned before settings have been saved.
	ErrNoSettings = errors.New("planner settings not configured")

	// ErrDuplicateID is returned when inserting an id that already exists.
	ErrDuplicateID = errors.New("duplicate id")
)

// Holiday is a stored holiday calendar entry.
type Holiday struct {
	ID   string
	Date calendar.Date
	Name string
}

// Vacation is a stored schedule entry.
type Vacation struct {
	ID string
	planner.Vacation
}

// Settings holds the persisted planner parameters.
type Settings struct {
	Bank       decimal.Decimal
	WeeklyRate decimal.Decimal
}

// Store is the persistence interface the API handler depends on.
type Store interface {
	ListHolidays(ctx context.Context) ([]Holiday, error)
	AddHoliday(ctx context.Context, h Holiday) error
	DeleteHoliday(ctx context.Context, id string) error

	ListVacations(ctx context.Context) ([]Vacation, error)
	AddVacation(ctx context.Context, v Vacation) error
	DeleteVacation(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (Settings, error)
	PutSettings(ctx context.Context, s Settings) error

	Close() error
}

// HolidaySet builds the simulator's holiday set from stored entries.
func HolidaySet(holidays []Holiday) calendar.HolidaySet {
	dates := make([]calendar.Date, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return calendar.NewHolidaySet(dates...)
}

// Vacations strips storage ids for the simulator.
func Vacations(stored []Vacation) []planner.Vacation {
	out := make([]planner.Vacation, 0, len(stored))
	for _, v := range stored {
		out = append(out, v.Vacation)
	}
	return out
}

func sortByDate(hs []Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}

func sortByStart(vs []Vacation) {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.Name < b.Name
	})
}
