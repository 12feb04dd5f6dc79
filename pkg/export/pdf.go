package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/edamos/emrp/pkg/session"
)

const reportTitle = "Planet Magnetic Rhythm Simulation Report"

// ReportPDF writes a single-page A4 report for one simulation run: the
// planet, the three labeled inputs, then the three derived metrics, in
// 12pt Helvetica.
func ReportPDF(w io.Writer, rec session.Record) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		reportTitle,
		"-----------------------------------------",
		fmt.Sprintf("Planet: %s", rec.Planet),
		fmt.Sprintf("Magnetic Field Strength (µT): %s", num(rec.MagneticField)),
		fmt.Sprintf("Atmospheric Pressure (Pa): %s", num(rec.AtmosphericPressure)),
		fmt.Sprintf("Solar Flux (W/m²): %s", num(rec.SolarFlux)),
		"",
		fmt.Sprintf("MCR: %s", num(rec.MCR)),
		fmt.Sprintf("BVI: %s", num(rec.BVI)),
		fmt.Sprintf("GEI: %s", num(rec.GEI)),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering PDF report: %w", err)
	}
	return nil
}
