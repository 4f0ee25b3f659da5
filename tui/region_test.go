package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init failed: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRegionCellClipping(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()

	r := NewRegion(screen)
	if r.W != 20 || r.H != 10 {
		t.Fatalf("Expected 20x10 region, got %dx%d", r.W, r.H)
	}

	style := tcell.StyleDefault
	r.Cell(5, 5, 'A', style)
	if got := runeAt(screen, 5, 5); got != 'A' {
		t.Errorf("Expected 'A' at (5,5), got %q", got)
	}

	// Out of bounds writes are dropped, not wrapped
	r.Cell(-1, 0, 'X', style)
	r.Cell(25, 0, 'X', style)
	r.Cell(0, 30, 'X', style)
	for x := 0; x < 20; x++ {
		if got := runeAt(screen, x, 0); got == 'X' {
			t.Errorf("Expected no 'X' on row 0, found at x=%d", x)
		}
	}
}

func TestRegionSub(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()

	r := NewRegion(screen)
	sub := r.Sub(5, 2, 10, 4)

	sub.Cell(0, 0, 'S', tcell.StyleDefault)
	if got := runeAt(screen, 5, 2); got != 'S' {
		t.Errorf("Expected 'S' at absolute (5,2), got %q", got)
	}

	// Sub clips to parent
	big := r.Sub(15, 8, 100, 100)
	if big.W != 5 || big.H != 2 {
		t.Errorf("Expected clipped 5x2 sub, got %dx%d", big.W, big.H)
	}

	// Writes outside the sub are dropped
	sub.Cell(10, 0, 'Z', tcell.StyleDefault)
	if got := runeAt(screen, 15, 2); got == 'Z' {
		t.Error("Expected write outside sub width to be clipped")
	}
}

func TestRegionInset(t *testing.T) {
	screen := newTestScreen(t, 10, 10)
	defer screen.Fini()

	inner := NewRegion(screen).Inset(2)
	if inner.X != 2 || inner.Y != 2 || inner.W != 6 || inner.H != 6 {
		t.Errorf("Expected 6x6 inset at (2,2), got %dx%d at (%d,%d)", inner.W, inner.H, inner.X, inner.Y)
	}
}

func TestTextAlignment(t *testing.T) {
	screen := newTestScreen(t, 11, 3)
	defer screen.Fini()

	r := NewRegion(screen)
	style := tcell.StyleDefault

	r.Text(0, 0, "abc", style)
	if runeAt(screen, 0, 0) != 'a' || runeAt(screen, 2, 0) != 'c' {
		t.Error("Expected left-aligned text on row 0")
	}

	r.TextCenter(1, "abc", style)
	if runeAt(screen, 4, 1) != 'a' {
		t.Errorf("Expected centered text starting at x=4, got %q", runeAt(screen, 4, 1))
	}

	r.TextRight(2, "abc", style)
	if runeAt(screen, 10, 2) != 'c' {
		t.Errorf("Expected right-aligned text ending at x=10, got %q", runeAt(screen, 10, 2))
	}
}

func TestBoxCorners(t *testing.T) {
	screen := newTestScreen(t, 8, 4)
	defer screen.Fini()

	r := NewRegion(screen)
	r.Box(LineSingle, tcell.StyleDefault)

	if runeAt(screen, 0, 0) != '┌' {
		t.Errorf("Expected top-left corner, got %q", runeAt(screen, 0, 0))
	}
	if runeAt(screen, 7, 0) != '┐' {
		t.Errorf("Expected top-right corner, got %q", runeAt(screen, 7, 0))
	}
	if runeAt(screen, 0, 3) != '└' {
		t.Errorf("Expected bottom-left corner, got %q", runeAt(screen, 0, 3))
	}
	if runeAt(screen, 7, 3) != '┘' {
		t.Errorf("Expected bottom-right corner, got %q", runeAt(screen, 7, 3))
	}
}

func TestCardReturnsInner(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	defer screen.Fini()

	inner := NewRegion(screen).Card("TITLE", LineDouble, tcell.StyleDefault)
	if inner.W != 18 || inner.H != 4 {
		t.Errorf("Expected 18x4 inner region, got %dx%d", inner.W, inner.H)
	}
}
