/*
accrual.go - Vacation cost and weekly accrual helpers

PURPOSE:
  The two calendar computations the simulation loop leans on:
  - ChargeableDays: how many days of a vacation actually consume PTO
  - SundaysIn: accrual boundaries falling inside a date range

COST MODEL:
  Every calendar day in [Start, End] that is a weekday and not a holiday
  charges exactly HoursPerDay hours. Weekends and holidays are free.

ACCRUAL MODEL:
  Accrual posts once per calendar week, attributed to the week's final day
  (Sunday). Mid-vacation Sundays still accrue; whether a Sunday is also a
  holiday does not matter, because accrual is attributed to the week, not
  to the day being worked.

SEE ALSO:
  - simulator.go: Drives these per vacation
  - calendar/date.go: NextAccrualBoundary
*/
package planner

import (
	"time"

	"github.com/warp/vacation-planner/calendar"
)

// ChargeableDays counts the days of v that consume PTO: weekdays in
// [Start, End] inclusive that are not in the holiday set. The caller
// guarantees Start <= End; a reversed range yields zero.
func ChargeableDays(v Vacation, holidays calendar.HolidaySet) int {
	days := 0
	for d := v.Start; d.BeforeOrEqual(v.End); d = d.Next() {
		if calendar.IsChargeableWorkday(d, holidays) {
			days++
		}
	}
	return days
}

// ChargeableHours converts chargeable days to whole PTO hours.
func ChargeableHours(days int) int { return days * HoursPerDay }

// SundaysIn returns every Sunday in [from, to] inclusive, ascending.
// These are the accrual boundaries that post while a vacation is underway.
func SundaysIn(from, to calendar.Date) []calendar.Date {
	var sundays []calendar.Date
	for d := from; d.BeforeOrEqual(to); d = d.Next() {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d)
		}
	}
	return sundays
}
