// Package scenario loads simulation scenarios from YAML project files.
// A scenario carries the custom environment for the resonance pipeline
// and the planet selection plus inputs for the field pipeline.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/edamos/emrp/pkg/field"
	"github.com/edamos/emrp/pkg/resonance"
)

// FileName is the scenario file looked up inside a project directory.
const FileName = "emrp.yaml"

// EnvironmentInput is the custom environment section of a scenario.
type EnvironmentInput struct {
	Frequency float64 `yaml:"frequency"`
	EMF       float64 `yaml:"emf"`
	EnvFactor float64 `yaml:"env_factor"`
}

// Scenario is one loaded scenario file. Omitted sections fall back to
// the interactive defaults: the reference-frequency custom environment
// and the selected planet's canonical inputs.
type Scenario struct {
	CustomEnvironment *EnvironmentInput `yaml:"custom_environment"`
	Planet            string            `yaml:"planet"`
	FieldInputs       *field.Inputs     `yaml:"field_inputs"`
}

// Default returns the scenario used when no project file is given: the
// default slider values and Earth.
func Default() *Scenario {
	return &Scenario{}
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	return &sc, nil
}

// LoadProject loads a scenario from a project directory. It looks for
// emrp.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, FileName))
}

// Custom resolves the custom environment for the resonance pipeline,
// applying the default slider values when the section is omitted.
func (s *Scenario) Custom() resonance.Environment {
	env := resonance.Environment{
		Name:      resonance.CustomName,
		Frequency: resonance.SchumannResonance,
		EMF:       0.2,
		EnvFactor: 0.9,
	}
	if s.CustomEnvironment != nil {
		env.Frequency = s.CustomEnvironment.Frequency
		env.EMF = s.CustomEnvironment.EMF
		env.EnvFactor = s.CustomEnvironment.EnvFactor
	}
	return env
}

// FieldRun resolves the planet and its inputs for the field pipeline.
// An omitted planet means Earth; omitted inputs mean the planet defaults.
func (s *Scenario) FieldRun() (string, field.Inputs) {
	planet := s.Planet
	if planet == "" {
		planet = field.PlanetEarth
	}
	if s.FieldInputs != nil {
		return planet, *s.FieldInputs
	}
	return planet, field.Defaults(planet)
}
