// Package field implements the field-based habitability pipeline: the
// Magnetic Coherence Ratio (MCR) from magnetic field strength, a
// pressure-weighted Biological Viability Index (BVI), and the solar-flux
// Global Energy Index (GEI).
//
// Unlike the resonance pipeline, none of these metrics is clamped: they
// are raw rounded arithmetic. BVI can exceed 1 under Earth-like pressure
// and GEI goes negative whenever solar flux exceeds 1000 W/m². That
// behavior is intentional and preserved; see the design notes.
package field

import "math"

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MCR scales magnetic field strength in µT to the Magnetic Coherence
// Ratio.
func MCR(magneticField float64) float64 {
	return round2(magneticField / 100)
}

// BVI combines the MCR with atmospheric pressure in Pa. This is unrelated
// to the resonance pipeline's BVI despite the shared acronym.
func BVI(mcr, pressure float64) float64 {
	return round2(mcr * pressure / 50000)
}

// GEI derives the Global Energy Index from solar flux in W/m². Unbounded
// in both directions.
func GEI(solarFlux float64) float64 {
	return round2(100 - solarFlux/10)
}

// Inputs are the raw physical parameters for one simulation run.
type Inputs struct {
	MagneticField       float64 `json:"magnetic_field" yaml:"magnetic_field"`
	AtmosphericPressure float64 `json:"atmospheric_pressure" yaml:"atmospheric_pressure"`
	SolarFlux           float64 `json:"solar_flux" yaml:"solar_flux"`
}

// Metrics are the three derived values for one simulation run.
type Metrics struct {
	MCR float64 `json:"mcr"`
	BVI float64 `json:"bvi"`
	GEI float64 `json:"gei"`
}

// Evaluate runs the three formulas in order over one input tuple.
func Evaluate(in Inputs) Metrics {
	mcr := MCR(in.MagneticField)
	return Metrics{
		MCR: mcr,
		BVI: BVI(mcr, in.AtmosphericPressure),
		GEI: GEI(in.SolarFlux),
	}
}
