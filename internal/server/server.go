// Package server implements the local dashboard for the simulator: a
// JSON API over both pipelines, rendered charts, and CSV/XLSX/PDF export
// endpoints. One session log lives for the lifetime of the server
// process.
package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/edamos/emrp/pkg/scenario"
	"github.com/edamos/emrp/pkg/session"
)

// Server is the local dashboard server for interactive simulation.
type Server struct {
	scenario *scenario.Scenario
	port     int
	log      *zap.Logger
	sessions *session.Log
}

// New creates a server seeded with the given scenario. The scenario
// supplies defaults for every omitted input; the session log starts
// empty.
func New(sc *scenario.Scenario, port int, logger *zap.Logger) *Server {
	return &Server{
		scenario: sc,
		port:     port,
		log:      logger,
		sessions: session.NewLog(),
	}
}

// Handler returns the dashboard's routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/resonance", s.handleResonance)
	mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	mux.HandleFunc("GET /api/session", s.handleSession)

	mux.HandleFunc("GET /charts/comparison", s.handleComparisonChart)
	mux.HandleFunc("GET /charts/lines", s.handleLinesChart)
	mux.HandleFunc("GET /charts/radar", s.handleRadarChart)

	mux.HandleFunc("GET /export/resonance.csv", s.handleResonanceCSV)
	mux.HandleFunc("GET /export/resonance.xlsx", s.handleResonanceXLSX)
	mux.HandleFunc("GET /export/session.csv", s.handleSessionCSV)
	mux.HandleFunc("GET /export/session.xlsx", s.handleSessionXLSX)
	mux.HandleFunc("GET /export/report.pdf", s.handleReportPDF)

	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("EMRP dashboard starting",
		zap.String("url", fmt.Sprintf("http://localhost%s", addr)))

	return http.ListenAndServe(addr, s.Handler())
}
