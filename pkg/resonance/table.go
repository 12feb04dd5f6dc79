package resonance

// Environment is one named input tuple for the resonance pipeline.
type Environment struct {
	Name      string  `json:"environment"`
	Frequency float64 `json:"frequency"`
	EMF       float64 `json:"emf"`
	EnvFactor float64 `json:"env_factor"`
}

// Result is an Environment with its derived scores.
type Result struct {
	Environment
	MCI float64 `json:"mci"`
	BVI float64 `json:"bvi"`
	HS  float64 `json:"hs"`
}

// CustomName is the row name given to the user-supplied environment.
const CustomName = "Custom Input"

var presets = []Environment{
	{Name: "Earth", Frequency: 7.83, EMF: 0.2, EnvFactor: 0.9},
	{Name: "Mars", Frequency: 2.1, EMF: 0.05, EnvFactor: 0.3},
	{Name: "EMRP Bubble", Frequency: 7.8, EMF: 0.01, EnvFactor: 1.0},
	{Name: "Urban Earth", Frequency: 6.9, EMF: 0.6, EnvFactor: 0.7},
}

// Presets returns the fixed comparison environments in display order.
func Presets() []Environment {
	out := make([]Environment, len(presets))
	copy(out, presets)
	return out
}

// Score derives the three indices for a single environment.
func Score(env Environment) Result {
	mci := MCI(env.Frequency, env.EMF)
	bvi := BVI(mci)
	return Result{
		Environment: env,
		MCI:         mci,
		BVI:         bvi,
		HS:          HS(mci, bvi, env.EnvFactor),
	}
}

// Generate scores the four presets plus the given custom environment and
// returns the five rows in display order. The custom row is always named
// CustomName regardless of the name passed in. Results are recomputed from
// scratch on every call; nothing is cached or mutated.
func Generate(custom Environment) []Result {
	custom.Name = CustomName
	rows := make([]Result, 0, len(presets)+1)
	for _, env := range presets {
		rows = append(rows, Score(env))
	}
	rows = append(rows, Score(custom))
	return rows
}
