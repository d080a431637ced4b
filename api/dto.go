/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model (decimal balances, calendar.Date) from the
  external API contract (floats, ISO date strings).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

UNITS:
  Balances and rates travel as fractional hours (floats); per-vacation
  consumption is whole hours at 8 hours per chargeable day. Downstream
  renderers rely on these units.

SEE ALSO:
  - handlers.go: Uses these types
  - planner/types.go: The domain model these mirror
*/
package api

import (
	"github.com/warp/vacation-planner/planner"
	"github.com/warp/vacation-planner/store"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// HolidayDTO represents a holiday calendar entry in API responses.
type HolidayDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// CreateHolidayRequest is the request to add a holiday.
type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// VacationDTO represents a stored vacation in API responses.
type VacationDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateVacationRequest is the request to add a vacation.
type CreateVacationRequest struct {
	Name  string `json:"name,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SettingsDTO carries the planner settings (fractional hours).
type SettingsDTO struct {
	Bank       float64 `json:"bank"`
	WeeklyRate float64 `json:"weekly_rate"`
}

// SimulateRequest runs a simulation. Every field is optional: values missing
// from the body fall back to stored settings, holidays, and vacations.
type SimulateRequest struct {
	Today      string                  `json:"today,omitempty"` // ISO date; defaults to the current day
	Bank       *float64                `json:"bank,omitempty"`
	WeeklyRate *float64                `json:"weekly_rate,omitempty"`
	Holidays   []string                `json:"holidays,omitempty"`
	Vacations  []CreateVacationRequest `json:"vacations,omitempty"`
}

// VacationOutcomeDTO is the per-vacation verdict.
type VacationOutcomeDTO struct {
	Name            string  `json:"name,omitempty"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	ChargeableDays  int     `json:"chargeable_days"`
	ChargeableHours int     `json:"chargeable_hours"`
	Affordable      bool    `json:"affordable"`
	BalanceBefore   float64 `json:"balance_before"`
	BalanceAfter    float64 `json:"balance_after"`
}

// AccrualEventDTO is one weekly accrual credit in the trace.
type AccrualEventDTO struct {
	On      string  `json:"on"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
	Reason  string  `json:"reason"`
}

// SimulateResponse is the full result of a simulation run.
type SimulateResponse struct {
	Outcomes     []VacationOutcomeDTO `json:"outcomes"`
	Accruals     []AccrualEventDTO    `json:"accruals"`
	FinalBalance float64              `json:"final_balance"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toHolidayDTO(h store.Holiday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Date: h.Date.String(), Name: h.Name}
}

func toVacationDTO(v store.Vacation) VacationDTO {
	return VacationDTO{ID: v.ID, Name: v.Name, Start: v.Start.String(), End: v.End.String()}
}

func toSimulateResponse(result planner.Result) SimulateResponse {
	resp := SimulateResponse{
		Outcomes: make([]VacationOutcomeDTO, len(result.Outcomes)),
		Accruals: make([]AccrualEventDTO, len(result.Accruals)),
	}
	for i, out := range result.Outcomes {
		before, _ := out.BalanceBefore.Float64()
		after, _ := out.BalanceAfter.Float64()
		resp.Outcomes[i] = VacationOutcomeDTO{
			Name:            out.Vacation.Name,
			Start:           out.Vacation.Start.String(),
			End:             out.Vacation.End.String(),
			ChargeableDays:  out.ChargeableDays,
			ChargeableHours: out.ChargeableHours,
			Affordable:      out.Affordable,
			BalanceBefore:   before,
			BalanceAfter:    after,
		}
	}
	for i, ev := range result.Accruals {
		amount, _ := ev.Amount.Float64()
		balance, _ := ev.Balance.Float64()
		resp.Accruals[i] = AccrualEventDTO{
			On:      ev.On.String(),
			Amount:  amount,
			Balance: balance,
			Reason:  ev.Reason,
		}
	}
	final, _ := result.FinalBalance.Float64()
	resp.FinalBalance = final
	return resp
}
