// Package resonance implements the resonance-based habitability pipeline:
// the Magnetic Coherence Index (MCI), the Biological Viability Index (BVI)
// derived from it, and the combined Habitability Score (HS).
package resonance

import "math"

const (
	// SchumannResonance is the reference frequency in Hz. An environment
	// resonating at exactly this frequency scores a perfect MCI before
	// EMF attenuation.
	SchumannResonance = 7.83

	// FreqTolerance is the half-width in Hz of the band around the
	// reference frequency. Outside it the coherence score is zero.
	FreqTolerance = 2.5
)

// Weights for the Habitability Score. They sum to 1.0, so HS stays in
// [0,1] whenever its inputs do.
const (
	mciWeight = 0.5
	bviWeight = 0.4
	envWeight = 0.1
)

// Clamp saturates v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

// MCI computes the Magnetic Coherence Index from a resonance frequency in
// Hz and an EMF noise level. Frequencies more than FreqTolerance away from
// the reference score zero; within the band the score falls off linearly
// and is then attenuated by (1 - emf). The result is clamped to [0,1].
//
// emf is expected in [0,1]; out-of-range values are not rejected here.
// Range enforcement lives with the input surface (sliders, validation).
func MCI(freq, emf float64) float64 {
	diff := math.Abs(freq - SchumannResonance)
	score := 0.0
	if diff <= FreqTolerance {
		score = 1 - diff/FreqTolerance
	}
	return Clamp(score*(1-emf), 0, 1)
}

// BVI computes the Biological Viability Index as the square of the MCI,
// clamped to [0,1]. This is unrelated to the field pipeline's BVI.
func BVI(mci float64) float64 {
	return Clamp(mci*mci, 0, 1)
}

// HS computes the Habitability Score as a weighted combination of MCI,
// BVI and the environmental factor. The clamp is input defense only: with
// all three inputs in [0,1] the weighted sum cannot leave the interval.
func HS(mci, bvi, envFactor float64) float64 {
	return Clamp(mciWeight*mci+bviWeight*bvi+envWeight*envFactor, 0, 1)
}
