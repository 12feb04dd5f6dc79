package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/session"
	"github.com/edamos/emrp/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Field, e.Message)
			if e.ActualValue != nil {
				fmt.Printf("    -> got %v\n", e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Field, w.Message)
			if w.ActualValue != nil {
				fmt.Printf("    -> got %v\n", w.ActualValue)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Field, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResultsTable(rows []resonance.Result) {
	fmt.Println("Preset + Custom Simulation Results")
	fmt.Println("==================================")
	fmt.Println()

	fmt.Printf("%-14s %10s %6s %11s %6s %6s %6s\n",
		"Environment", "Freq (Hz)", "EMF", "Env Factor", "MCI", "BVI", "HS")
	fmt.Printf("%-14s %10s %6s %11s %6s %6s %6s\n",
		"--------------", "----------", "------", "-----------", "------", "------", "------")
	for _, r := range rows {
		fmt.Printf("%-14s %10.2f %6.2f %11.2f %6.2f %6.2f %6.2f\n",
			r.Name, r.Frequency, r.EMF, r.EnvFactor, r.MCI, r.BVI, r.HS)
	}
}

func printRecord(rec session.Record) {
	fmt.Printf("Planet: %s\n", rec.Planet)
	fmt.Printf("  Magnetic Field Strength (µT): %s\n", humanize.Commaf(rec.MagneticField))
	fmt.Printf("  Atmospheric Pressure (Pa):    %s\n", humanize.Commaf(rec.AtmosphericPressure))
	fmt.Printf("  Solar Flux (W/m²):            %s\n", humanize.Commaf(rec.SolarFlux))
	fmt.Println()
	fmt.Printf("  MCR: %.2f\n", rec.MCR)
	fmt.Printf("  BVI: %.2f\n", rec.BVI)
	fmt.Printf("  GEI: %.2f\n", rec.GEI)
}
