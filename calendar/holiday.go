/*
holiday.go - Holiday calendar and the chargeable-workday rule

PURPOSE:
  Defines HolidaySet, the unordered set of paid non-workdays, and the single
  rule that decides whether a calendar day consumes PTO:

    chargeable = weekday AND not a holiday

KEY INVARIANT:
  A HolidaySet is immutable for the duration of a simulation run. The
  simulator never mutates it; callers build it once from config or storage.

SEE ALSO:
  - date.go: Date primitives and the accrual boundary stepper
  - planner/simulator.go: Consumes IsChargeableWorkday per vacation day
*/
package calendar

import "sort"

// HolidaySet holds paid non-workdays with O(1) membership.
type HolidaySet struct {
	days map[Date]struct{}
}

// NewHolidaySet builds a set from the given dates. Duplicates collapse.
func NewHolidaySet(dates ...Date) HolidaySet {
	days := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		days[d] = struct{}{}
	}
	return HolidaySet{days: days}
}

// Contains reports whether d is a holiday. Safe on the zero value.
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h.days[d]
	return ok
}

// Len returns the number of distinct holidays.
func (h HolidaySet) Len() int { return len(h.days) }

// Dates returns the holidays in ascending order.
func (h HolidaySet) Dates() []Date {
	out := make([]Date, 0, len(h.days))
	for d := range h.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsChargeableWorkday reports whether a day consumes PTO when taken off:
// false on Saturday/Sunday, false on a holiday, true otherwise.
func IsChargeableWorkday(d Date, holidays HolidaySet) bool {
	if d.IsWeekend() {
		return false
	}
	return !holidays.Contains(d)
}
