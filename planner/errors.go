package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors, used with errors.Is() at the input boundaries. The
// simulation loop itself never fails; these guard the data before it runs.
var (
	// ErrMissingDate is returned when a vacation lacks a start or end date.
	ErrMissingDate = errors.New("vacation is missing a start or end date")

	// ErrInvalidDateRange is returned when a vacation ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range: end before start")
)

// InvalidDateRangeError carries the offending vacation for error messages.
type InvalidDateRangeError struct {
	Vacation Vacation
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("vacation %q: end %s before start %s",
		e.Vacation.Label(), e.Vacation.End, e.Vacation.Start)
}

func (e *InvalidDateRangeError) Unwrap() error {
	return ErrInvalidDateRange
}

// ValidateVacations checks every vacation, so boundaries can reject a whole
// schedule with one call.
func ValidateVacations(vacations []Vacation) error {
	for _, v := range vacations {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
