package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/session"
)

func writeSheet(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ResonanceXLSX writes the resonance comparison table as an xlsx workbook
// with one "Results" sheet.
func ResonanceXLSX(w io.Writer, rows []resonance.Result) error {
	data := make([][]any, len(rows))
	for i, r := range rows {
		data[i] = []any{r.Name, r.Frequency, r.EMF, r.EnvFactor, r.MCI, r.BVI, r.HS}
	}
	return writeSheet(w, "Results", resonanceHeader, data)
}

// SessionXLSX writes all accumulated simulation records as an xlsx
// workbook with one "Simulations" sheet.
func SessionXLSX(w io.Writer, recs []session.Record) error {
	data := make([][]any, len(recs))
	for i, r := range recs {
		data[i] = []any{r.Planet, r.MagneticField, r.AtmosphericPressure, r.SolarFlux, r.MCR, r.BVI, r.GEI}
	}
	return writeSheet(w, "Simulations", sessionHeader, data)
}
