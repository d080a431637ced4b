/*
Package sqlite provides a SQLite-backed implementation of store.Store.

PURPOSE:
  Persists the planner's inputs (holiday calendar, vacation schedule, and
  planner settings) between server runs. Only inputs are stored; simulation
  results are recomputed on demand.

KEY TABLES:
  holidays:   One row per paid non-workday
  vacations:  One row per planned vacation (inclusive date range)
  settings:   Single row with banked PTO and weekly accrual rate

  Balances are stored as TEXT (decimal string) to avoid floating-point
  round-trips through REAL columns.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time.

USAGE:
  st, err := sqlite.New("./data/planner.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool with versioned migrations.

SEE ALSO:
  - store/store.go: Interface definition
  - store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ store.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Holiday calendar
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_date
		ON holidays(date);

	-- Vacation schedule
	CREATE TABLE IF NOT EXISTS vacations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_vacations_start
		ON vacations(start_date, end_date);

	-- Planner settings (single row)
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		bank TEXT NOT NULL,
		weekly_rate TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) ListHolidays(ctx context.Context) ([]store.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, name FROM holidays ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []store.Holiday
	for rows.Next() {
		var h store.Holiday
		var dateStr string
		if err := rows.Scan(&h.ID, &dateStr, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		d, err := calendar.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt holiday date %q: %w", dateStr, err)
		}
		h.Date = d
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (s *Store) AddHoliday(ctx context.Context, h store.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (id, date, name, created_at) VALUES (?, ?, ?, ?)`,
		h.ID, h.Date.String(), h.Name, now())
	if err != nil {
		if isUniqueConstraintError(err) {
			return store.ErrDuplicateID
		}
		return fmt.Errorf("failed to add holiday: %w", err)
	}
	return nil
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return requireAffected(res)
}

// =============================================================================
// VACATIONS
// =============================================================================

func (s *Store) ListVacations(ctx context.Context) ([]store.Vacation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, start_date, end_date FROM vacations
		 ORDER BY start_date, end_date, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []store.Vacation
	for rows.Next() {
		var v store.Vacation
		var startStr, endStr string
		if err := rows.Scan(&v.ID, &v.Name, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		start, err := calendar.ParseDate(startStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt vacation start %q: %w", startStr, err)
		}
		end, err := calendar.ParseDate(endStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt vacation end %q: %w", endStr, err)
		}
		v.Start, v.End = start, end
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}

func (s *Store) AddVacation(ctx context.Context, v store.Vacation) error {
	// Reject malformed ranges before they reach the table.
	if err := v.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO vacations (id, name, start_date, end_date, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.Name, v.Start.String(), v.End.String(), now())
	if err != nil {
		if isUniqueConstraintError(err) {
			return store.ErrDuplicateID
		}
		return fmt.Errorf("failed to add vacation: %w", err)
	}
	return nil
}

func (s *Store) DeleteVacation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM vacations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}
	return requireAffected(res)
}

// =============================================================================
// SETTINGS
// =============================================================================

func (s *Store) GetSettings(ctx context.Context) (store.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bankStr, rateStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT bank, weekly_rate FROM settings WHERE id = 1`).Scan(&bankStr, &rateStr)
	if err == sql.ErrNoRows {
		return store.Settings{}, store.ErrNoSettings
	}
	if err != nil {
		return store.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	bank, err := decimal.NewFromString(bankStr)
	if err != nil {
		return store.Settings{}, fmt.Errorf("corrupt bank value %q: %w", bankStr, err)
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return store.Settings{}, fmt.Errorf("corrupt rate value %q: %w", rateStr, err)
	}
	return store.Settings{Bank: bank, WeeklyRate: rate}, nil
}

func (s *Store) PutSettings(ctx context.Context, st store.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, bank, weekly_rate, updated_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET bank = excluded.bank,
		 weekly_rate = excluded.weekly_rate, updated_at = excluded.updated_at`,
		st.Bank.String(), st.WeeklyRate.String(), now())
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
