package malus

import (
	"fmt"
	"math"
)

// AngleForIntensity returns the angle in degrees at which a polarizer
// transmits target out of incident, the unique principal solution in
// [0°, 90°] of target = incident·cos²(θ). target = 0 yields 90°,
// target = incident yields 0°.
//
// Validation order: non-finite input, negative target, target above
// incident (energy conservation), non-positive incident.
func AngleForIntensity(target, incident float64) (float64, error) {
	if !isFinite(target) || !isFinite(incident) {
		return 0, fmt.Errorf("%w: intensities must be finite", ErrInvalidInput)
	}
	if target < 0 {
		return 0, fmt.Errorf("%w: intensity cannot be negative, got %g", ErrInvalidInput, target)
	}
	if target > incident {
		return 0, fmt.Errorf("%w: target intensity %g exceeds incident intensity %g, violates energy conservation", ErrInvalidInput, target, incident)
	}
	if incident <= 0 {
		return 0, fmt.Errorf("%w: incident intensity must be positive, got %g", ErrInvalidInput, incident)
	}

	ratio := target / incident
	return math.Acos(math.Sqrt(ratio)) * 180 / math.Pi, nil
}
