package malus

import (
	"fmt"
	"math"
)

// Reference is a measured (angle, intensity) pair to validate against.
type Reference struct {
	Angle     float64 // degrees
	Intensity float64 // W/m²
}

// Validation compares a reference intensity with the computed one.
type Validation struct {
	Angle    float64
	Measured float64
	Computed float64
	AbsErr   float64
	PctErr   float64 // percent of measured, NaN-free: 0 when measured is 0
}

// ValidateReference computes the Malus prediction for each reference point
// and reports absolute and percent error against the measured value.
func (e Engine) ValidateReference(refs []Reference) ([]Validation, error) {
	if !e.configured {
		return nil, fmt.Errorf("%w: incident intensity not set", ErrNotConfigured)
	}

	results := make([]Validation, 0, len(refs))
	for i, ref := range refs {
		if !isFinite(ref.Angle) || !isFinite(ref.Intensity) {
			return nil, fmt.Errorf("%w: reference %d must be finite", ErrInvalidInput, i)
		}
		computed, err := e.Transmit(ref.Angle)
		if err != nil {
			return nil, err
		}
		absErr := math.Abs(computed - ref.Intensity)
		var pctErr float64
		if ref.Intensity != 0 {
			pctErr = absErr / math.Abs(ref.Intensity) * 100
		}
		results = append(results, Validation{
			Angle:    ref.Angle,
			Measured: ref.Intensity,
			Computed: computed,
			AbsErr:   absErr,
			PctErr:   pctErr,
		})
	}
	return results, nil
}
