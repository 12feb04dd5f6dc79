package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/edamos/emrp/pkg/chart"
	"github.com/edamos/emrp/pkg/export"
	"github.com/edamos/emrp/pkg/field"
	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// queryFloat reads a float query parameter, falling back to def when the
// parameter is absent or empty.
func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	return v, nil
}

// customEnv builds the custom environment from query parameters, using
// the scenario's values for anything omitted.
func (s *Server) customEnv(r *http.Request) (resonance.Environment, error) {
	def := s.scenario.Custom()

	freq, err := queryFloat(r, "frequency", def.Frequency)
	if err != nil {
		return resonance.Environment{}, err
	}
	emf, err := queryFloat(r, "emf", def.EMF)
	if err != nil {
		return resonance.Environment{}, err
	}
	envFactor, err := queryFloat(r, "env_factor", def.EnvFactor)
	if err != nil {
		return resonance.Environment{}, err
	}

	return resonance.Environment{
		Name:      resonance.CustomName,
		Frequency: freq,
		EMF:       emf,
		EnvFactor: envFactor,
	}, nil
}

// resonanceRows resolves, validates and scores the resonance table for a
// request. A nil slice with a written response means the request failed.
func (s *Server) resonanceRows(w http.ResponseWriter, r *http.Request) []resonance.Result {
	env, err := s.customEnv(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil
	}
	if report := validation.ValidateEnvironment(env); !report.Valid {
		writeJSON(w, http.StatusBadRequest, report)
		return nil
	}
	return resonance.Generate(env)
}

func (s *Server) handleResonance(w http.ResponseWriter, r *http.Request) {
	rows := s.resonanceRows(w, r)
	if rows == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": rows})
}

// simulateRequest is the POST /api/simulate body. Numeric fields are
// pointers so an omitted value can fall back to the planet's defaults.
type simulateRequest struct {
	Planet              string   `json:"planet"`
	MagneticField       *float64 `json:"magnetic_field"`
	AtmosphericPressure *float64 `json:"atmospheric_pressure"`
	SolarFlux           *float64 `json:"solar_flux"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("decoding request: %v", err)})
		return
	}

	planet := req.Planet
	if planet == "" {
		planet, _ = s.scenario.FieldRun()
	}

	in := field.Defaults(planet)
	if req.MagneticField != nil {
		in.MagneticField = *req.MagneticField
	}
	if req.AtmosphericPressure != nil {
		in.AtmosphericPressure = *req.AtmosphericPressure
	}
	if req.SolarFlux != nil {
		in.SolarFlux = *req.SolarFlux
	}

	if report := validation.ValidateInputs(in); !report.Valid {
		writeJSON(w, http.StatusBadRequest, report)
		return
	}

	rec := s.sessions.Run(planet, in)
	s.log.Info("simulation run",
		zap.String("planet", planet),
		zap.Int("session_runs", s.sessions.Len()))

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"simulations": s.sessions.Records()})
}

func (s *Server) handleComparisonChart(w http.ResponseWriter, r *http.Request) {
	rows := s.resonanceRows(w, r)
	if rows == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Comparison(rows).Render(w); err != nil {
		s.log.Error("rendering comparison chart", zap.Error(err))
	}
}

func (s *Server) handleLinesChart(w http.ResponseWriter, r *http.Request) {
	rows := s.resonanceRows(w, r)
	if rows == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.ScoreLines(rows).Render(w); err != nil {
		s.log.Error("rendering line chart", zap.Error(err))
	}
}

func (s *Server) handleRadarChart(w http.ResponseWriter, _ *http.Request) {
	rec, ok := s.sessions.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no simulations yet; POST /api/simulate first"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Radar(rec).Render(w); err != nil {
		s.log.Error("rendering radar chart", zap.Error(err))
	}
}

func attachment(w http.ResponseWriter, name, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

func (s *Server) handleResonanceCSV(w http.ResponseWriter, r *http.Request) {
	rows := s.resonanceRows(w, r)
	if rows == nil {
		return
	}
	attachment(w, "emrp_simulation_results.csv", "text/csv; charset=utf-8")
	if err := export.ResonanceCSV(w, rows); err != nil {
		s.log.Error("exporting resonance CSV", zap.Error(err))
	}
}

func (s *Server) handleResonanceXLSX(w http.ResponseWriter, r *http.Request) {
	rows := s.resonanceRows(w, r)
	if rows == nil {
		return
	}
	attachment(w, "emrp_simulation_results.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.ResonanceXLSX(w, rows); err != nil {
		s.log.Error("exporting resonance XLSX", zap.Error(err))
	}
}

func (s *Server) handleSessionCSV(w http.ResponseWriter, _ *http.Request) {
	attachment(w, "all_simulations.csv", "text/csv; charset=utf-8")
	if err := export.SessionCSV(w, s.sessions.Records()); err != nil {
		s.log.Error("exporting session CSV", zap.Error(err))
	}
}

func (s *Server) handleSessionXLSX(w http.ResponseWriter, _ *http.Request) {
	attachment(w, "all_simulations.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.SessionXLSX(w, s.sessions.Records()); err != nil {
		s.log.Error("exporting session XLSX", zap.Error(err))
	}
}

func (s *Server) handleReportPDF(w http.ResponseWriter, _ *http.Request) {
	rec, ok := s.sessions.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no simulations yet; POST /api/simulate first"})
		return
	}
	attachment(w, "simulation_report.pdf", "application/pdf")
	if err := export.ReportPDF(w, rec); err != nil {
		s.log.Error("exporting PDF report", zap.Error(err))
	}
}
