package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edamos/emrp/pkg/field"
	"github.com/edamos/emrp/pkg/scenario"
	"github.com/edamos/emrp/pkg/session"
)

func newTestServer() *Server {
	return New(scenario.Default(), 0, zap.NewNop())
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestResonanceDefaults(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodGet, "/api/resonance", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Results []struct {
			Environment string  `json:"environment"`
			MCI         float64 `json:"mci"`
			HS          float64 `json:"hs"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 5)
	assert.Equal(t, "Earth", resp.Results[0].Environment)
	assert.InDelta(t, 0.8, resp.Results[0].MCI, 1e-9)
	assert.InDelta(t, 0.746, resp.Results[0].HS, 1e-9)
	assert.Equal(t, "Custom Input", resp.Results[4].Environment)
}

func TestResonanceQueryOverrides(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodGet, "/api/resonance?frequency=15&emf=0&env_factor=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Results []struct {
			MCI float64 `json:"mci"`
			HS  float64 `json:"hs"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	custom := resp.Results[4]
	assert.Zero(t, custom.MCI)
	assert.InDelta(t, 0.1, custom.HS, 1e-9)
}

func TestResonanceRejectsOutOfRange(t *testing.T) {
	s := newTestServer()

	rr := do(t, s, http.MethodGet, "/api/resonance?frequency=99", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "frequency")

	rr = do(t, s, http.MethodGet, "/api/resonance?emf=abc", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSimulateAccumulates(t *testing.T) {
	s := newTestServer()

	for i := 0; i < 3; i++ {
		rr := do(t, s, http.MethodPost, "/api/simulate", map[string]any{"planet": field.PlanetEarth})
		require.Equal(t, http.StatusOK, rr.Code)

		var rec session.Record
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
		assert.Equal(t, field.PlanetEarth, rec.Planet)
		assert.InDelta(t, -36.1, rec.GEI, 1e-9)
	}

	rr := do(t, s, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Simulations []session.Record `json:"simulations"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Simulations, 3, "every run appends, no dedup")
	assert.NotEqual(t, resp.Simulations[0].ID, resp.Simulations[1].ID)
}

func TestSimulateCustomInputs(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodPost, "/api/simulate", map[string]any{
		"planet":               field.PlanetCustom,
		"magnetic_field":       100.0,
		"atmospheric_pressure": 50000.0,
		"solar_flux":           500.0,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var rec session.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.InDelta(t, 1.0, rec.MCR, 1e-9)
	assert.InDelta(t, 1.0, rec.BVI, 1e-9)
	assert.InDelta(t, 50.0, rec.GEI, 1e-9)
}

func TestSimulatePartialInputsUsePlanetDefaults(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodPost, "/api/simulate", map[string]any{
		"planet":     field.PlanetMars,
		"solar_flux": 100.0,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var rec session.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, field.Defaults(field.PlanetMars).MagneticField, rec.MagneticField)
	assert.InDelta(t, 90.0, rec.GEI, 1e-9)
}

func TestSimulateRejectsNegativeInputs(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodPost, "/api/simulate", map[string]any{
		"planet":         field.PlanetCustom,
		"magnetic_field": -5.0,
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "magnetic_field")
}

func TestRadarRequiresRun(t *testing.T) {
	s := newTestServer()

	rr := do(t, s, http.MethodGet, "/charts/radar", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	do(t, s, http.MethodPost, "/api/simulate", map[string]any{"planet": field.PlanetMars})

	rr = do(t, s, http.MethodGet, "/charts/radar", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "MCR")
}

func TestChartsRender(t *testing.T) {
	s := newTestServer()
	for _, path := range []string{"/charts/comparison", "/charts/lines"} {
		rr := do(t, s, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html", path)
	}
}

func TestExportEndpoints(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodPost, "/api/simulate", map[string]any{"planet": field.PlanetEarth})

	cases := []struct {
		path     string
		wantType string
	}{
		{"/export/resonance.csv", "text/csv"},
		{"/export/resonance.xlsx", "spreadsheetml"},
		{"/export/session.csv", "text/csv"},
		{"/export/session.xlsx", "spreadsheetml"},
		{"/export/report.pdf", "application/pdf"},
	}
	for _, tc := range cases {
		rr := do(t, s, http.MethodGet, tc.path, nil)
		require.Equal(t, http.StatusOK, rr.Code, tc.path)
		assert.Contains(t, rr.Header().Get("Content-Type"), tc.wantType, tc.path)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment", tc.path)
		assert.NotZero(t, rr.Body.Len(), tc.path)
	}
}

func TestSessionCSVHasAllRuns(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodPost, "/api/simulate", map[string]any{"planet": field.PlanetEarth})
	do(t, s, http.MethodPost, "/api/simulate", map[string]any{"planet": field.PlanetMars})

	rr := do(t, s, http.MethodGet, "/export/session.csv", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	require.Len(t, lines, 3, "header plus one line per run")
	assert.Contains(t, lines[1], field.PlanetEarth)
	assert.Contains(t, lines[2], field.PlanetMars)
}

func TestReportPDFRequiresRun(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodGet, "/export/report.pdf", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIndex(t *testing.T) {
	s := newTestServer()
	rr := do(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "EMRP Magneto-Habitability Simulator")
}
