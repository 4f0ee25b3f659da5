// Package malus implements the Malus-law polarization engine: forward
// transmission through ideal linear polarizers, chained multi-stage
// attenuation, theoretical-curve sampling, and the principal inverse.
//
// All operations are pure functions of their inputs and the engine's
// incident intensity. Validation happens before any computation; no
// operation returns NaN or a sentinel value in place of an error.
package malus

import (
	"fmt"
	"math"
)

// Engine owns the incident intensity of a simulation run. The zero value
// is unconfigured and every operation on it fails with ErrNotConfigured.
type Engine struct {
	incident   float64
	configured bool
}

// New creates an engine with the given incident intensity in W/m².
func New(incident float64) (Engine, error) {
	if !isFinite(incident) {
		return Engine{}, fmt.Errorf("%w: incident intensity must be finite, got %v", ErrInvalidInput, incident)
	}
	if incident < 0 {
		return Engine{}, fmt.Errorf("%w: incident intensity cannot be negative, got %g", ErrInvalidInput, incident)
	}
	return Engine{incident: incident, configured: true}, nil
}

// Incident returns the engine's incident intensity.
func (e Engine) Incident() float64 {
	return e.incident
}

// Transmit returns the intensity after a single polarizer at angleDeg
// relative to the incident polarization axis: I = I₀·cos²(θ).
// The result is in [0, I₀] for any finite angle.
func (e Engine) Transmit(angleDeg float64) (float64, error) {
	if !e.configured {
		return 0, fmt.Errorf("%w: incident intensity not set", ErrNotConfigured)
	}
	if !isFinite(angleDeg) {
		return 0, fmt.Errorf("%w: angle must be finite, got %v", ErrInvalidInput, angleDeg)
	}
	c := math.Cos(angleDeg * math.Pi / 180)
	return e.incident * c * c, nil
}

// Chain returns the per-stage intensities through a sequence of polarizers.
// anglesDeg holds one relative angle per consecutive pair; the result has
// len(anglesDeg)+1 elements with stage 0 equal to the incident intensity.
// Each stage attenuates by cos² of its own relative angle only, so the
// output is non-increasing. An empty angle list yields just the incident
// intensity.
func (e Engine) Chain(anglesDeg []float64) ([]float64, error) {
	if !e.configured {
		return nil, fmt.Errorf("%w: incident intensity not set", ErrNotConfigured)
	}
	for i, a := range anglesDeg {
		if !isFinite(a) {
			return nil, fmt.Errorf("%w: angle %d must be finite, got %v", ErrInvalidInput, i, a)
		}
	}

	stages := make([]float64, len(anglesDeg)+1)
	stages[0] = e.incident
	for i, a := range anglesDeg {
		c := math.Cos(a * math.Pi / 180)
		stages[i+1] = stages[i] * c * c
	}
	return stages, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
