package resonance

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -3.2, 0, 1, 0},
		{"above", 42, 0, 1, 1},
		{"inside", 0.37, 0, 1, 0.37},
		{"at lower bound", 0, 0, 1, 0},
		{"at upper bound", 1, 0, 1, 1},
		{"wider interval", 7.5, -10, 10, 7.5},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("%s: Clamp(%v, %v, %v) = %v, want %v", tc.name, tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestMCI(t *testing.T) {
	cases := []struct {
		name      string
		freq, emf float64
		want      float64
	}{
		{"reference frequency, no noise", 7.83, 0, 1.0},
		{"reference frequency, earth noise", 7.83, 0.2, 0.8},
		{"outside tolerance band", 15.0, 0, 0},
		{"far below band", 2.1, 0, 0},
		{"at band edge", 7.83 + 2.5, 0, 0},
		{"full noise zeroes any frequency", 7.83, 1.0, 0},
		{"full noise off-reference", 6.0, 1.0, 0},
		{"half tolerance", 7.83 + 1.25, 0, 0.5},
	}
	for _, tc := range cases {
		if got := MCI(tc.freq, tc.emf); math.Abs(got-tc.want) > tol {
			t.Errorf("%s: MCI(%v, %v) = %v, want %v", tc.name, tc.freq, tc.emf, got, tc.want)
		}
	}
}

func TestMCIRange(t *testing.T) {
	// MCI must stay in [0,1] across the whole slider surface.
	for freq := 0.0; freq <= 15.0; freq += 0.5 {
		for emf := 0.0; emf <= 1.0; emf += 0.1 {
			got := MCI(freq, emf)
			if got < 0 || got > 1 {
				t.Fatalf("MCI(%v, %v) = %v, outside [0,1]", freq, emf, got)
			}
		}
	}
}

func TestBVI(t *testing.T) {
	cases := []struct {
		mci, want float64
	}{
		{0, 0},
		{0.5, 0.25},
		{0.8, 0.64},
		{1, 1},
	}
	for _, tc := range cases {
		if got := BVI(tc.mci); math.Abs(got-tc.want) > tol {
			t.Errorf("BVI(%v) = %v, want %v", tc.mci, got, tc.want)
		}
	}
}

func TestHS(t *testing.T) {
	cases := []struct {
		name          string
		mci, bvi, env float64
		want          float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"all one", 1, 1, 1, 1},
		{"earth", 0.8, 0.64, 0.9, 0.746},
		{"env only", 0, 0, 1, 0.1},
	}
	for _, tc := range cases {
		if got := HS(tc.mci, tc.bvi, tc.env); math.Abs(got-tc.want) > tol {
			t.Errorf("%s: HS(%v, %v, %v) = %v, want %v", tc.name, tc.mci, tc.bvi, tc.env, got, tc.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	custom := Environment{Frequency: 7.83, EMF: 0.2, EnvFactor: 0.9}
	rows := Generate(custom)

	if len(rows) != 5 {
		t.Fatalf("Generate returned %d rows, want 5", len(rows))
	}

	wantNames := []string{"Earth", "Mars", "EMRP Bubble", "Urban Earth", CustomName}
	for i, name := range wantNames {
		if rows[i].Name != name {
			t.Errorf("row %d name = %q, want %q", i, rows[i].Name, name)
		}
	}

	// Earth preset has documented exact expectations.
	earth := rows[0]
	if math.Abs(earth.MCI-0.8) > tol {
		t.Errorf("Earth MCI = %v, want 0.8", earth.MCI)
	}
	if math.Abs(earth.BVI-0.64) > tol {
		t.Errorf("Earth BVI = %v, want 0.64", earth.BVI)
	}
	if math.Abs(earth.HS-0.746) > tol {
		t.Errorf("Earth HS = %v, want 0.746", earth.HS)
	}

	// Mars sits outside the tolerance band entirely.
	mars := rows[1]
	if mars.MCI != 0 || mars.BVI != 0 {
		t.Errorf("Mars MCI/BVI = %v/%v, want 0/0", mars.MCI, mars.BVI)
	}
	if math.Abs(mars.HS-0.03) > tol {
		t.Errorf("Mars HS = %v, want 0.03", mars.HS)
	}

	// Custom row matches Earth's inputs, so it scores identically.
	cust := rows[4]
	if math.Abs(cust.HS-earth.HS) > tol {
		t.Errorf("custom HS = %v, want %v", cust.HS, earth.HS)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	custom := Environment{Frequency: 6.2, EMF: 0.35, EnvFactor: 0.5}
	a := Generate(custom)
	b := Generate(custom)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between identical calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPresetsCopy(t *testing.T) {
	p := Presets()
	p[0].Frequency = 999
	if Presets()[0].Frequency == 999 {
		t.Error("Presets returned shared backing storage")
	}
}
