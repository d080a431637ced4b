/*
handlers.go - HTTP API handlers for the vacation planner

PURPOSE:
  Exposes the planner via REST. Handles HTTP request/response, JSON
  serialization, and delegates to the simulator and store.

ENDPOINTS:
  Holidays:
    GET    /api/holidays          List the holiday calendar
    POST   /api/holidays          Add a holiday
    DELETE /api/holidays/{id}     Remove a holiday

  Vacations:
    GET    /api/vacations         List the vacation schedule
    POST   /api/vacations         Add a vacation
    DELETE /api/vacations/{id}    Remove a vacation

  Settings:
    GET    /api/settings          Get banked PTO and weekly rate
    PUT    /api/settings          Save banked PTO and weekly rate

  Simulation:
    POST   /api/simulate          Run the affordability simulation

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (this is the boundary the pure core relies on)
  3. Call domain logic (planner.Simulate, store CRUD)
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record not found
  - 409: Duplicate id
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - planner/simulator.go: The simulation itself
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/planner"
	"github.com/warp/vacation-planner/store"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store store.Store

	// now is swappable so tests can pin "today".
	now func() calendar.Date
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(st store.Store) *Handler {
	return &Handler{Store: st, now: calendar.Today}
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the holiday calendar.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday adds a holiday to the calendar.
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	holiday := store.Holiday{
		ID:   fmt.Sprintf("hol-%d", time.Now().UnixNano()),
		Date: date,
		Name: req.Name,
	}
	if err := h.Store.AddHoliday(r.Context(), holiday); err != nil {
		writeStoreError(w, "Failed to add holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

// DeleteHoliday removes a holiday.
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// VACATION HANDLERS
// =============================================================================

// ListVacations returns the vacation schedule.
func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.Store.ListVacations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list vacations", err)
		return
	}

	dtos := make([]VacationDTO, len(vacations))
	for i, v := range vacations {
		dtos[i] = toVacationDTO(v)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateVacation adds a vacation to the schedule.
func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	vac, err := parseVacation(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid vacation", err)
		return
	}

	stored := store.Vacation{
		ID:       fmt.Sprintf("vac-%d", time.Now().UnixNano()),
		Vacation: vac,
	}
	if err := h.Store.AddVacation(r.Context(), stored); err != nil {
		writeStoreError(w, "Failed to add vacation", err)
		return
	}

	writeJSON(w, http.StatusCreated, toVacationDTO(stored))
}

// DeleteVacation removes a vacation.
func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteVacation(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete vacation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the stored planner settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if errors.Is(err, store.ErrNoSettings) {
		writeError(w, http.StatusNotFound, "Planner settings not configured", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	bank, _ := settings.Bank.Float64()
	rate, _ := settings.WeeklyRate.Float64()
	writeJSON(w, http.StatusOK, SettingsDTO{Bank: bank, WeeklyRate: rate})
}

// PutSettings saves the planner settings.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Bank < 0 || req.WeeklyRate < 0 {
		writeError(w, http.StatusBadRequest, "Bank and weekly rate must not be negative", nil)
		return
	}

	settings := store.Settings{
		Bank:       decimal.NewFromFloat(req.Bank),
		WeeklyRate: decimal.NewFromFloat(req.WeeklyRate),
	}
	if err := h.Store.PutSettings(r.Context(), settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

// =============================================================================
// SIMULATION HANDLER
// =============================================================================

// Simulate runs the affordability simulation. Body fields are optional;
// anything missing falls back to stored settings, holidays, and vacations.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	ctx := r.Context()

	today := h.now()
	if req.Today != "" {
		var err error
		if today, err = calendar.ParseDate(req.Today); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid today date", err)
			return
		}
	}

	bank, rate, err := h.resolveRates(r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bank and weekly rate are required (inline or via /api/settings)", err)
		return
	}

	holidays, err := h.resolveHolidays(ctx, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holidays", err)
		return
	}

	vacations, err := h.resolveVacations(ctx, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid vacations", err)
		return
	}

	result := planner.Simulate(today, bank, rate, holidays, vacations)
	writeJSON(w, http.StatusOK, toSimulateResponse(result))
}

func (h *Handler) resolveRates(r *http.Request, req SimulateRequest) (bank, rate decimal.Decimal, err error) {
	if req.Bank != nil && req.WeeklyRate != nil {
		return decimal.NewFromFloat(*req.Bank), decimal.NewFromFloat(*req.WeeklyRate), nil
	}

	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	bank = settings.Bank
	if req.Bank != nil {
		bank = decimal.NewFromFloat(*req.Bank)
	}
	rate = settings.WeeklyRate
	if req.WeeklyRate != nil {
		rate = decimal.NewFromFloat(*req.WeeklyRate)
	}
	return bank, rate, nil
}

func (h *Handler) resolveHolidays(ctx context.Context, req SimulateRequest) (calendar.HolidaySet, error) {
	if req.Holidays != nil {
		dates := make([]calendar.Date, 0, len(req.Holidays))
		for _, s := range req.Holidays {
			d, err := calendar.ParseDate(s)
			if err != nil {
				return calendar.HolidaySet{}, err
			}
			dates = append(dates, d)
		}
		return calendar.NewHolidaySet(dates...), nil
	}

	stored, err := h.Store.ListHolidays(ctx)
	if err != nil {
		return calendar.HolidaySet{}, err
	}
	return store.HolidaySet(stored), nil
}

func (h *Handler) resolveVacations(ctx context.Context, req SimulateRequest) ([]planner.Vacation, error) {
	if req.Vacations != nil {
		vacations := make([]planner.Vacation, 0, len(req.Vacations))
		for _, entry := range req.Vacations {
			vac, err := parseVacation(entry)
			if err != nil {
				return nil, err
			}
			vacations = append(vacations, vac)
		}
		return vacations, nil
	}

	stored, err := h.Store.ListVacations(ctx)
	if err != nil {
		return nil, err
	}
	return store.Vacations(stored), nil
}

// =============================================================================
// HELPERS
// =============================================================================

func parseVacation(req CreateVacationRequest) (planner.Vacation, error) {
	start, err := calendar.ParseDate(req.Start)
	if err != nil {
		return planner.Vacation{}, fmt.Errorf("start: %w", err)
	}
	end, err := calendar.ParseDate(req.End)
	if err != nil {
		return planner.Vacation{}, fmt.Errorf("end: %w", err)
	}
	vac := planner.Vacation{Name: req.Name, Start: start, End: end}
	if err := vac.Validate(); err != nil {
		return planner.Vacation{}, err
	}
	return vac, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeStoreError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, store.ErrDuplicateID):
		writeError(w, http.StatusConflict, message, err)
	case errors.Is(err, planner.ErrInvalidDateRange), errors.Is(err, planner.ErrMissingDate):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
