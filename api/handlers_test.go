package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/planner"
	"github.com/warp/vacation-planner/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	h := NewHandler(mem)
	// Pin the clock so filtering of past vacations is deterministic.
	h.now = func() calendar.Date { return calendar.MustParseDate("2024-01-01") }

	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv, mem
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// =============================================================================
// SIMULATION
// =============================================================================

func TestSimulate_InlineInputs(t *testing.T) {
	srv, _ := newTestServer(t)

	bank, rate := 40.0, 16.0
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/simulate", SimulateRequest{
		Today:      "2024-01-01",
		Bank:       &bank,
		WeeklyRate: &rate,
		Vacations: []CreateVacationRequest{
			{Name: "Ski trip", Start: "2024-01-15", End: "2024-01-19"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[SimulateResponse](t, resp)
	require.Len(t, result.Outcomes, 1)

	out := result.Outcomes[0]
	assert.Equal(t, "Ski trip", out.Name)
	assert.Equal(t, 5, out.ChargeableDays)
	assert.Equal(t, 40, out.ChargeableHours)
	assert.True(t, out.Affordable)
	// Sundays 01-07 and 01-14 accrue before the trip.
	assert.InDelta(t, 72, out.BalanceBefore, 1e-9)
	assert.InDelta(t, 32, out.BalanceAfter, 1e-9)
	assert.InDelta(t, 32, result.FinalBalance, 1e-9)
	assert.Len(t, result.Accruals, 2)
}

func TestSimulate_FallsBackToStoredInputs(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, mem.PutSettings(ctx, store.Settings{
		Bank:       decimal.NewFromInt(40),
		WeeklyRate: decimal.NewFromInt(16),
	}))
	require.NoError(t, mem.AddHoliday(ctx, store.Holiday{
		ID: "hol-1", Date: calendar.MustParseDate("2024-01-17"), Name: "Mid-week holiday",
	}))
	require.NoError(t, mem.AddVacation(ctx, store.Vacation{
		ID: "vac-1",
		Vacation: planner.Vacation{
			Name:  "Ski trip",
			Start: calendar.MustParseDate("2024-01-15"),
			End:   calendar.MustParseDate("2024-01-19"),
		},
	}))

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/simulate", SimulateRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[SimulateResponse](t, resp)
	require.Len(t, result.Outcomes, 1)
	// The stored Wednesday holiday trims a chargeable day.
	assert.Equal(t, 4, result.Outcomes[0].ChargeableDays)
	assert.Equal(t, 32, result.Outcomes[0].ChargeableHours)
}

func TestSimulate_NoSettingsAndNoInline_Fails(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/simulate", SimulateRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSimulate_RejectsReversedVacation(t *testing.T) {
	srv, _ := newTestServer(t)

	bank, rate := 40.0, 16.0
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/simulate", SimulateRequest{
		Bank:       &bank,
		WeeklyRate: &rate,
		Vacations: []CreateVacationRequest{
			{Start: "2024-01-19", End: "2024-01-15"},
		},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// HOLIDAY CRUD
// =============================================================================

func TestHolidayLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/holidays", CreateHolidayRequest{
		Date: "2024-12-25", Name: "Christmas Day",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[HolidayDTO](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-12-25", created.Date)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/holidays", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]HolidayDTO](t, resp)
	require.Len(t, list, 1)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/holidays/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestCreateHoliday_BadDate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/holidays", CreateHolidayRequest{Date: "christmas"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteHoliday_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/holidays/absent", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// VACATION CRUD
// =============================================================================

func TestVacationLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/vacations", CreateVacationRequest{
		Name: "Summer", Start: "2024-07-08", End: "2024-07-19",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[VacationDTO](t, resp)
	assert.NotEmpty(t, created.ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/vacations", nil)
	list := decode[[]VacationDTO](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Summer", list[0].Name)
}

func TestCreateVacation_RejectsReversedRange(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/vacations", CreateVacationRequest{
		Start: "2024-07-19", End: "2024-07-08",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestSettings_NotConfiguredThenSaved(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/settings", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/settings", SettingsDTO{Bank: 37.5, WeeklyRate: 4.62})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[SettingsDTO](t, resp)
	assert.InDelta(t, 37.5, got.Bank, 1e-9)
	assert.InDelta(t, 4.62, got.WeeklyRate, 1e-9)
}

func TestPutSettings_RejectsNegative(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/settings", SettingsDTO{Bank: -1, WeeklyRate: 4})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
