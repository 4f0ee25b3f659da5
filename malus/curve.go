package malus

import (
	"fmt"
	"math"
)

// Sample is one point of a theoretical transmission curve.
type Sample struct {
	Angle     float64 // degrees
	Intensity float64 // W/m²
}

// Curve samples the Malus law at fixed angular resolution over
// [minDeg, maxDeg]. The endpoint is included when the step divides the
// range evenly, otherwise sampling stops just below it. Calling twice with
// identical parameters yields identical samples (angle = min + i·step).
func (e Engine) Curve(minDeg, maxDeg, stepDeg float64) ([]Sample, error) {
	if !e.configured {
		return nil, fmt.Errorf("%w: incident intensity not set", ErrNotConfigured)
	}
	if !isFinite(minDeg) || !isFinite(maxDeg) || !isFinite(stepDeg) {
		return nil, fmt.Errorf("%w: curve bounds and step must be finite", ErrInvalidInput)
	}
	if stepDeg <= 0 {
		return nil, fmt.Errorf("%w: curve step must be positive, got %g", ErrInvalidInput, stepDeg)
	}
	if maxDeg < minDeg {
		return nil, fmt.Errorf("%w: curve max %g below min %g", ErrInvalidInput, maxDeg, minDeg)
	}

	// Derive the sample count by rounding, then back off one step if the
	// rounded count overshoots maxDeg. This keeps an evenly dividing range
	// endpoint-inclusive (0-180 at 0.1 gives 1801 points) without
	// accumulating float error in a running sum.
	last := math.Round((maxDeg - minDeg) / stepDeg)
	if minDeg+last*stepDeg > maxDeg {
		last--
	}

	samples := make([]Sample, 0, int(last)+1)
	for i := 0.0; i <= last; i++ {
		angle := minDeg + i*stepDeg
		c := math.Cos(angle * math.Pi / 180)
		samples = append(samples, Sample{Angle: angle, Intensity: e.incident * c * c})
	}
	return samples, nil
}

// SampleTable returns a coarse transmission table over [0°, 180°] at the
// given step, for tabular display and export.
func (e Engine) SampleTable(stepDeg float64) ([]Sample, error) {
	return e.Curve(0, 180, stepDeg)
}
