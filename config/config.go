/*
Package config loads and validates the planner's input files.

PURPOSE:
  Two YAML files feed the simulator:
  - the config file: weekly accrual rate, banked PTO, and the holiday list
  - the schedule file: the planned vacations

  This package is the validation boundary the simulator relies on. Anything
  it hands to planner.Simulate is well-formed: parseable dates, Start <= End,
  non-negative rate and bank.

FILE FORMATS:
  config.yaml:
    pto_hours_per_week: 4.62
    pto_bank: 37.5
    holidays:
      - 2025-01-01
      - 2025-12-25

  schedule.yaml:
    vacations:
      - name: Ski trip
        start: 2025-01-13
        end: 2025-01-17

OVERRIDES:
  Rate and bank are optional in the file because the CLI can override them.
  Resolve() merges file values with overrides and fails when neither side
  supplies a value.

SEE ALSO:
  - planner/errors.go: Vacation validation
  - cmd/vacation: Applies CLI overrides via Resolve
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/planner"
)

var (
	// ErrMissingAccrualRate is returned when neither the config file nor an
	// override supplies the weekly accrual rate.
	ErrMissingAccrualRate = errors.New("missing weekly accrual rate")

	// ErrMissingBank is returned when neither the config file nor an
	// override supplies the banked PTO value.
	ErrMissingBank = errors.New("missing banked PTO value")

	// ErrNegativeValue is returned for a negative rate or bank.
	ErrNegativeValue = errors.New("rate and bank must not be negative")
)

// =============================================================================
// CONFIG FILE
// =============================================================================

// Config holds the validated contents of the config file. Rate and bank stay
// optional here; Resolve turns them into concrete values.
type Config struct {
	WeeklyRate *decimal.Decimal
	Bank       *decimal.Decimal
	Holidays   calendar.HolidaySet
}

// configFile is the raw YAML shape.
type configFile struct {
	PTOHoursPerWeek *float64 `yaml:"pto_hours_per_week"`
	PTOBank         *float64 `yaml:"pto_bank"`
	Holidays        []string `yaml:"holidays"`
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var raw configFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{}
	if raw.PTOHoursPerWeek != nil {
		rate := decimal.NewFromFloat(*raw.PTOHoursPerWeek)
		if rate.IsNegative() {
			return nil, fmt.Errorf("pto_hours_per_week: %w", ErrNegativeValue)
		}
		cfg.WeeklyRate = &rate
	}
	if raw.PTOBank != nil {
		bank := decimal.NewFromFloat(*raw.PTOBank)
		if bank.IsNegative() {
			return nil, fmt.Errorf("pto_bank: %w", ErrNegativeValue)
		}
		cfg.Bank = &bank
	}

	dates := make([]calendar.Date, 0, len(raw.Holidays))
	for _, s := range raw.Holidays {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("holiday entry: %w", err)
		}
		dates = append(dates, d)
	}
	cfg.Holidays = calendar.NewHolidaySet(dates...)

	return cfg, nil
}

// Overrides carries command-line values that win over the config file.
type Overrides struct {
	WeeklyRate *float64
	Bank       *float64
}

// Resolve merges overrides with file values. Overrides win; a value missing
// from both sides is an error.
func (c *Config) Resolve(o Overrides) (bank, rate decimal.Decimal, err error) {
	switch {
	case o.WeeklyRate != nil:
		rate = decimal.NewFromFloat(*o.WeeklyRate)
	case c.WeeklyRate != nil:
		rate = *c.WeeklyRate
	default:
		return decimal.Zero, decimal.Zero, ErrMissingAccrualRate
	}

	switch {
	case o.Bank != nil:
		bank = decimal.NewFromFloat(*o.Bank)
	case c.Bank != nil:
		bank = *c.Bank
	default:
		return decimal.Zero, decimal.Zero, ErrMissingBank
	}

	if rate.IsNegative() || bank.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrNegativeValue
	}
	return bank, rate, nil
}

// =============================================================================
// SCHEDULE FILE
// =============================================================================

// Schedule is the validated vacation list.
type Schedule struct {
	Vacations []planner.Vacation
}

type scheduleFile struct {
	Vacations []vacationEntry `yaml:"vacations"`
}

type vacationEntry struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadSchedule reads and validates a schedule file.
func LoadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule %s: %w", path, err)
	}
	return parseSchedule(data)
}

func parseSchedule(data []byte) (*Schedule, error) {
	var raw scheduleFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}

	vacations := make([]planner.Vacation, 0, len(raw.Vacations))
	for i, entry := range raw.Vacations {
		start, err := calendar.ParseDate(entry.Start)
		if err != nil {
			return nil, fmt.Errorf("vacation %d (%s): start: %w", i, entry.Name, err)
		}
		end, err := calendar.ParseDate(entry.End)
		if err != nil {
			return nil, fmt.Errorf("vacation %d (%s): end: %w", i, entry.Name, err)
		}
		vacations = append(vacations, planner.Vacation{Name: entry.Name, Start: start, End: end})
	}

	if err := planner.ValidateVacations(vacations); err != nil {
		return nil, fmt.Errorf("schedule validation failed: %w", err)
	}

	return &Schedule{Vacations: vacations}, nil
}
