// Package tui is a small widget layer over a tcell screen: clipped
// rectangular regions, text placement, borders, splits, bars, and an XY
// plot. It draws data handed to it and knows nothing about the physics
// that produced it.
package tui

import "github.com/gdamore/tcell/v2"

// Region represents a rectangular area of the screen. All coordinates
// are relative to the region's origin; drawing outside is clipped.
type Region struct {
	screen tcell.Screen
	X, Y   int // absolute origin on screen
	W, H   int
}

// NewRegion creates a region covering the whole screen.
func NewRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return Region{screen: screen, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent,
// clipped to parent bounds.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{screen: r.screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides.
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking.
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills the entire region with spaces in the given style.
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text draws a string starting at (x, y), clipped to the region.
func (r Region) Text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		if col >= r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col++
	}
}

// TextCenter draws a string centered horizontally on row y.
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-RuneLen(s))/2, y, s, style)
}

// TextRight draws a string right-aligned on row y.
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-RuneLen(s), y, s, style)
}
