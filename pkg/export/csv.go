// Package export writes simulation results as CSV, XLSX and PDF. It is
// presentation glue only: every writer takes fully computed rows and
// formats them, never recomputing anything.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/session"
)

var resonanceHeader = []string{"Environment", "Frequency", "EMF", "Env Factor", "MCI", "BVI", "HS"}

var sessionHeader = []string{
	"Planet",
	"Magnetic Field Strength (µT)",
	"Atmospheric Pressure (Pa)",
	"Solar Flux (W/m²)",
	"MCR",
	"BVI",
	"GEI",
}

// num formats a float without display rounding. Two-decimal formatting is
// a display concern; exports carry the full values.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ResonanceCSV writes the resonance comparison table as UTF-8 CSV with a
// header row.
func ResonanceCSV(w io.Writer, rows []resonance.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resonanceHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.Name, num(r.Frequency), num(r.EMF), num(r.EnvFactor), num(r.MCI), num(r.BVI), num(r.HS)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SessionCSV writes all accumulated simulation records as UTF-8 CSV with
// a header row, in run order.
func SessionCSV(w io.Writer, recs []session.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sessionHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range recs {
		rec := []string{r.Planet, num(r.MagneticField), num(r.AtmosphericPressure), num(r.SolarFlux), num(r.MCR), num(r.BVI), num(r.GEI)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.Planet, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
