package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edamos/emrp/pkg/export"
	"github.com/edamos/emrp/pkg/field"
	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/scenario"
	"github.com/edamos/emrp/pkg/session"
	"github.com/edamos/emrp/pkg/validation"
)

// loadAndValidate loads the scenario and runs input validation.
func loadAndValidate(args []string) (*scenario.Scenario, *validation.Report, error) {
	sc, err := loadScenario(args)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	return sc, validation.ValidateScenario(sc), nil
}

func runValidate(args []string) error {
	_, report, err := loadAndValidate(args)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runScore(args []string, asJSON bool, csvPath, xlsxPath string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	env := sc.Custom()
	if report := validation.ValidateEnvironment(env); !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors")
	}

	rows := resonance.Generate(env)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return err
		}
	} else {
		printResultsTable(rows)
	}

	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error {
			return export.ResonanceCSV(w, rows)
		}); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(w io.Writer) error {
			return export.ResonanceXLSX(w, rows)
		}); err != nil {
			return err
		}
	}
	return nil
}

func runSimulate(args []string, planetFlag, csvPath, xlsxPath, pdfPath string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	planet, in := sc.FieldRun()
	if planetFlag != "" {
		planet = planetFlag
		if sc.FieldInputs == nil {
			in = field.Defaults(planet)
		}
	}

	report := validation.ValidateInputs(in)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("inputs have validation errors")
	}

	log := session.NewLog()
	rec := log.Run(planet, in)
	printRecord(rec)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}

	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error {
			return export.SessionCSV(w, log.Records())
		}); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(w io.Writer) error {
			return export.SessionXLSX(w, log.Records())
		}); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		if err := writeFile(pdfPath, func(w io.Writer) error {
			return export.ReportPDF(w, rec)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
