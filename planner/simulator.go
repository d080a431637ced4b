/*
simulator.go - The accrual-and-affordability simulation loop

PURPOSE:
  Walks the calendar forward from today through every future vacation,
  posting one weekly accrual per elapsed Sunday and charging each vacation
  against the running balance the day it starts.

THE LOOP, PER VACATION (chronological order):
  1. Step the accrual cursor one week at a time while it is strictly before
     the vacation start, crediting weeklyRate at each step. A boundary that
     would land on or inside the vacation is handled by step 3 instead.
  2. Charge the vacation: if balance >= chargeable hours, deduct and mark
     affordable; otherwise leave the balance untouched and mark unaffordable.
     The decision is greedy and final - a failed vacation never blocks or
     rolls back later ones.
  3. Credit weeklyRate for every Sunday inside [Start, End]. Accrual keeps
     posting while on vacation; holiday status of the Sunday is irrelevant.
  4. Re-sync the cursor to the first Sunday strictly after the vacation end.

  The pre-vacation stepper (1) and the in-vacation Sunday scan (3) are two
  deliberately separate passes. Unifying them into one day-by-day walk would
  change behavior for vacations spanning a boundary Sunday.

DETERMINISM:
  No clock, no I/O, no mutation of inputs. Identical inputs always produce
  identical results, so runs are idempotent and safe to repeat.

SEE ALSO:
  - types.go: Vacation, VacationOutcome, Result
  - accrual.go: ChargeableDays, SundaysIn
  - calendar/date.go: NextAccrualBoundary
*/
package planner

import (
	"github.com/shopspring/decimal"
	"github.com/warp/vacation-planner/calendar"
)

// simulationState is the loop's private running state. It is created per
// run, never shared, and discarded when Simulate returns.
type simulationState struct {
	balance decimal.Decimal
	cursor  calendar.Date // next unprocessed accrual boundary
}

// Simulate runs the accrual-and-affordability simulation.
//
// Vacations already over (End <= today) are excluded; the rest are processed
// in (Start, End, Name) order. An empty future schedule is not an error: the
// result has no outcomes and FinalBalance == bank.
//
// Inputs are never mutated. Malformed vacations (End before Start) must be
// rejected by the caller; see ValidateVacations.
func Simulate(
	today calendar.Date,
	bank decimal.Decimal,
	weeklyRate decimal.Decimal,
	holidays calendar.HolidaySet,
	vacations []Vacation,
) Result {
	future := FutureVacations(vacations, today)
	if len(future) == 0 {
		return Result{FinalBalance: bank}
	}

	state := simulationState{
		balance: bank,
		// First future boundary: the first Sunday strictly after today.
		cursor: calendar.NextAccrualBoundary(today),
	}

	result := Result{Outcomes: make([]VacationOutcome, 0, len(future))}

	for _, vacation := range future {
		// Weekly accrual for full weeks elapsed before the vacation starts.
		for state.cursor.Before(vacation.Start) {
			state.balance = state.balance.Add(weeklyRate)
			result.Accruals = append(result.Accruals, AccrualEvent{
				On:      state.cursor,
				Amount:  weeklyRate,
				Balance: state.balance,
				Reason:  "weekly accrual",
			})
			state.cursor = state.cursor.AddDays(7)
		}

		days := ChargeableDays(vacation, holidays)
		hours := ChargeableHours(days)
		cost := decimal.NewFromInt(int64(hours))

		before := state.balance
		affordable := state.balance.GreaterThanOrEqual(cost)
		if affordable {
			state.balance = state.balance.Sub(cost)
		}

		// Accrual continues to post on Sundays inside the vacation.
		for _, sunday := range SundaysIn(vacation.Start, vacation.End) {
			state.balance = state.balance.Add(weeklyRate)
			result.Accruals = append(result.Accruals, AccrualEvent{
				On:      sunday,
				Amount:  weeklyRate,
				Balance: state.balance,
				Reason:  "accrual during " + vacation.Label(),
			})
		}

		// Re-sync the weekly stepper for the gap before the next vacation.
		state.cursor = calendar.NextAccrualBoundary(vacation.End)

		result.Outcomes = append(result.Outcomes, VacationOutcome{
			Vacation:        vacation,
			ChargeableDays:  days,
			ChargeableHours: hours,
			Affordable:      affordable,
			BalanceBefore:   before,
			BalanceAfter:    state.balance,
		})
	}

	result.FinalBalance = state.balance
	return result
}
