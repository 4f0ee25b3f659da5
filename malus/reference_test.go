package malus

import (
	"errors"
	"math"
	"testing"
)

func TestValidateReferenceExact(t *testing.T) {
	e := mustEngine(t, 1.0)
	refs := []Reference{
		{Angle: 0, Intensity: 1.0},
		{Angle: 45, Intensity: 0.5},
		{Angle: 60, Intensity: 0.25},
	}

	results, err := e.ValidateReference(refs)
	if err != nil {
		t.Fatalf("ValidateReference failed: %v", err)
	}
	if len(results) != len(refs) {
		t.Fatalf("Expected %d results, got %d", len(refs), len(results))
	}

	for i, r := range results {
		if r.AbsErr > 1e-9 {
			t.Errorf("Result %d: expected ~0 abs error, got %g", i, r.AbsErr)
		}
		if r.PctErr > 1e-7 {
			t.Errorf("Result %d: expected ~0 pct error, got %g", i, r.PctErr)
		}
	}
}

func TestValidateReferenceError(t *testing.T) {
	e := mustEngine(t, 1.0)
	results, err := e.ValidateReference([]Reference{{Angle: 45, Intensity: 0.6}})
	if err != nil {
		t.Fatalf("ValidateReference failed: %v", err)
	}

	if math.Abs(results[0].AbsErr-0.1) > 1e-9 {
		t.Errorf("Expected abs error 0.1, got %g", results[0].AbsErr)
	}
	wantPct := 0.1 / 0.6 * 100
	if math.Abs(results[0].PctErr-wantPct) > 1e-6 {
		t.Errorf("Expected pct error %g, got %g", wantPct, results[0].PctErr)
	}
}

func TestValidateReferenceZeroMeasured(t *testing.T) {
	// Percent error against a zero measurement must not be NaN
	e := mustEngine(t, 1.0)
	results, err := e.ValidateReference([]Reference{{Angle: 90, Intensity: 0}})
	if err != nil {
		t.Fatalf("ValidateReference failed: %v", err)
	}
	if math.IsNaN(results[0].PctErr) {
		t.Error("Expected finite pct error for zero measurement")
	}
}

func TestValidateReferenceInvalid(t *testing.T) {
	e := mustEngine(t, 1.0)
	if _, err := e.ValidateReference([]Reference{{Angle: math.NaN(), Intensity: 1}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	var zero Engine
	if _, err := zero.ValidateReference(nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}
