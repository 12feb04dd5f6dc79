package validation

import (
	"fmt"

	"github.com/edamos/emrp/pkg/field"
	"github.com/edamos/emrp/pkg/resonance"
	"github.com/edamos/emrp/pkg/scenario"
)

// Slider bounds for the resonance pipeline inputs.
const (
	FreqMin = 0.0
	FreqMax = 15.0
)

// ValidateEnvironment checks a custom environment against the resonance
// input bounds: frequency in [0,15], emf and env_factor in [0,1].
func ValidateEnvironment(env resonance.Environment) *Report {
	report := NewReport()

	if env.Frequency < FreqMin || env.Frequency > FreqMax {
		report.AddError(Result{
			Field:       "frequency",
			Message:     "resonance frequency outside the supported band",
			ActualValue: env.Frequency,
			Expected:    fmt.Sprintf("%.0f to %.0f Hz", FreqMin, FreqMax),
		})
	}
	if env.EMF < 0 || env.EMF > 1 {
		report.AddError(Result{
			Field:       "emf",
			Message:     "EMF noise level outside [0,1]",
			ActualValue: env.EMF,
			Expected:    "0.0 to 1.0",
		})
	}
	if env.EnvFactor < 0 || env.EnvFactor > 1 {
		report.AddError(Result{
			Field:       "env_factor",
			Message:     "environmental factor outside [0,1]",
			ActualValue: env.EnvFactor,
			Expected:    "0.0 to 1.0",
		})
	}

	return report
}

// ValidateInputs checks the field pipeline inputs. All three quantities
// must be non-negative. A solar flux above 1000 W/m² is legal but drives
// the GEI negative, so it is surfaced as a warning rather than blocked.
func ValidateInputs(in field.Inputs) *Report {
	report := NewReport()

	nonNegative := []struct {
		field string
		value float64
	}{
		{"magnetic_field", in.MagneticField},
		{"atmospheric_pressure", in.AtmosphericPressure},
		{"solar_flux", in.SolarFlux},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			report.AddError(Result{
				Field:       f.field,
				Message:     "value must be non-negative",
				ActualValue: f.value,
				Expected:    ">= 0",
			})
		}
	}

	if in.SolarFlux > 1000 {
		report.AddWarning(Result{
			Field:       "solar_flux",
			Message:     "solar flux above 1000 W/m² yields a negative GEI",
			ActualValue: in.SolarFlux,
		})
	}

	return report
}

// ValidateScenario validates both pipelines' inputs of a loaded scenario
// and merges the findings into one report.
func ValidateScenario(sc *scenario.Scenario) *Report {
	report := ValidateEnvironment(sc.Custom())
	_, in := sc.FieldRun()
	report.Merge(ValidateInputs(in))
	return report
}
