package field

// Planet names accepted by Defaults. Anything else is treated as a custom
// planet with zeroed inputs.
const (
	PlanetEarth  = "Earth"
	PlanetMars   = "Mars"
	PlanetCustom = "Custom Planet"
)

var planetDefaults = map[string]Inputs{
	PlanetEarth: {MagneticField: 50.0, AtmosphericPressure: 101325, SolarFlux: 1361},
	PlanetMars:  {MagneticField: 5.0, AtmosphericPressure: 610, SolarFlux: 590},
}

// Planets returns the selectable planet names in display order.
func Planets() []string {
	return []string{PlanetEarth, PlanetMars, PlanetCustom}
}

// Defaults returns the default input tuple for a planet. Unknown names,
// including PlanetCustom, get all-zero inputs.
func Defaults(planet string) Inputs {
	return planetDefaults[planet]
}
