package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSampleIndex(t *testing.T) {
	// First column maps to first value, last column to last value
	if got := sampleIndex(0, 50, 1801); got != 0 {
		t.Errorf("Expected index 0 for first column, got %d", got)
	}
	if got := sampleIndex(49, 50, 1801); got != 1800 {
		t.Errorf("Expected index 1800 for last column, got %d", got)
	}

	// Monotonic across columns
	prev := -1
	for col := 0; col < 50; col++ {
		idx := sampleIndex(col, 50, 1801)
		if idx < prev {
			t.Fatalf("sampleIndex not monotonic at col %d: %d < %d", col, idx, prev)
		}
		prev = idx
	}
}

func TestCurveCell(t *testing.T) {
	// Max value sits in the top row as a full block
	_, y, ch := curveCell(0, 1.0, 1.0, 10)
	if y != 0 {
		t.Errorf("Expected max value in row 0, got %d", y)
	}
	if ch != '█' {
		t.Errorf("Expected full block for max value, got %q", ch)
	}

	// Zero value sits in the bottom row as the lowest block
	_, y, ch = curveCell(0, 0.0, 1.0, 10)
	if y != 9 {
		t.Errorf("Expected zero value in row 9, got %d", y)
	}
	if ch != '▁' {
		t.Errorf("Expected lowest block for zero value, got %q", ch)
	}

	// Out-of-range values clamp instead of escaping the region
	_, y, _ = curveCell(0, 5.0, 1.0, 10)
	if y != 0 {
		t.Errorf("Expected clamped overshoot in row 0, got %d", y)
	}
}

func TestPlotDrawsAxes(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	defer screen.Fini()

	values := make([]float64, 181)
	for i := range values {
		values[i] = float64(i) / 180
	}

	r := NewRegion(screen)
	r.Plot(values, PlotOpts{
		XMin: 0, XMax: 180, YMax: 1.0,
		Line: tcell.StyleDefault,
		Axis: tcell.StyleDefault,
	})

	if runeAt(screen, plotLabelW, 10) != '└' {
		t.Errorf("Expected axis corner, got %q", runeAt(screen, plotLabelW, 10))
	}
	if runeAt(screen, plotLabelW, 0) != '│' {
		t.Errorf("Expected y axis, got %q", runeAt(screen, plotLabelW, 0))
	}
	if runeAt(screen, 20, 10) != '─' {
		t.Errorf("Expected x axis, got %q", runeAt(screen, 20, 10))
	}
}

func TestPlotTooSmallIsNoop(t *testing.T) {
	screen := newTestScreen(t, 5, 2)
	defer screen.Fini()

	// Must not panic
	NewRegion(screen).Plot([]float64{1, 2, 3}, PlotOpts{XMin: 0, XMax: 1})
}
