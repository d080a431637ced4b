/*
Package planner implements the PTO accrual and affordability simulator.

PURPOSE:
  Given a starting PTO bank, a weekly accrual rate, a holiday calendar, and a
  list of planned vacations, the simulator walks forward through the calendar
  and answers, for each vacation in chronological order: how many hours does
  it consume, is the balance sufficient on the day it starts, and what does
  the balance look like afterward.

KEY CONCEPTS IN THIS FILE (types.go):
  - Vacation: An inclusive [Start, End] date range with an optional label
  - VacationOutcome: The per-vacation verdict (cost, affordability, balances)
  - AccrualEvent: One weekly accrual credit, recorded for trace output
  - Result: Ordered outcomes plus the final balance

DESIGN PRINCIPLES:
  1. Pure core: Simulate is a total function of its inputs; no I/O, no clock
  2. Precision: decimal.Decimal balances avoid floating-point drift, while
     per-vacation consumption stays in whole hours (days x 8)
  3. Immutability: inputs are never mutated; outcomes never change once built

SEE ALSO:
  - simulator.go: The simulation loop
  - accrual.go: Weekly accrual schedule helpers
  - calendar/holiday.go: The chargeable-workday rule
*/
package planner

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/vacation-planner/calendar"
)

// HoursPerDay is the fixed workday length. One chargeable vacation day
// always consumes exactly this many PTO hours; it is not configurable.
const HoursPerDay = 8

// =============================================================================
// VACATION - Planned time off, inclusive of both endpoints
// =============================================================================

type Vacation struct {
	Start calendar.Date
	End   calendar.Date // inclusive, End >= Start
	Name  string        // optional label
}

// Label returns the vacation name, or a placeholder when unnamed.
func (v Vacation) Label() string {
	if v.Name == "" {
		return "Unnamed"
	}
	return v.Name
}

// Validate rejects reversed date ranges and zero dates. The simulator itself
// assumes well-formed input; boundaries (config, api) call this first.
func (v Vacation) Validate() error {
	if v.Start.IsZero() || v.End.IsZero() {
		return ErrMissingDate
	}
	if v.End.Before(v.Start) {
		return &InvalidDateRangeError{Vacation: v}
	}
	return nil
}

// SortVacations orders vacations by (Start, End, Name) ascending. The Name
// tie-break makes ordering deterministic for duplicate date ranges.
func SortVacations(vacations []Vacation) {
	sort.SliceStable(vacations, func(i, j int) bool {
		a, b := vacations[i], vacations[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.Name < b.Name
	})
}

// FutureVacations returns the vacations still relevant as of today: those
// whose End is strictly after today. Completed vacations carry no cost.
// The input slice is not modified.
func FutureVacations(vacations []Vacation, today calendar.Date) []Vacation {
	future := make([]Vacation, 0, len(vacations))
	for _, v := range vacations {
		if v.End.After(today) {
			future = append(future, v)
		}
	}
	SortVacations(future)
	return future
}

// =============================================================================
// OUTCOMES
// =============================================================================

// VacationOutcome is the simulator's verdict for one vacation.
type VacationOutcome struct {
	Vacation Vacation

	ChargeableDays  int
	ChargeableHours int

	// Affordable is true when the balance at vacation start covered the
	// chargeable hours. An unaffordable vacation deducts nothing.
	Affordable bool

	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// AccrualEvent records one weekly accrual credit, for verbose trace output.
type AccrualEvent struct {
	On      calendar.Date
	Amount  decimal.Decimal
	Balance decimal.Decimal // running balance after the credit
	Reason  string          // "weekly accrual" or "accrual during <name>"
}

// Result is the full output of one simulation run.
type Result struct {
	Outcomes     []VacationOutcome
	Accruals     []AccrualEvent
	FinalBalance decimal.Decimal
}
