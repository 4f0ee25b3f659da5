package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Progress draws horizontal progress bar (0.0-1.0)
func (r Region) Progress(x, y, w int, pct float64, style tcell.Style) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		if x+i >= r.W {
			break
		}
		var ch rune
		if i < filled {
			ch = progressFull
		} else if i == filled && remainder >= 0.5 {
			ch = progressHalf
		} else {
			ch = progressEmpty
		}
		r.Cell(x+i, y, ch, style)
	}
}

// Gauge draws a bracketed bar with a right-aligned percentage label:
// [████░░░░]  75.0%
func (r Region) Gauge(x, y, w int, value, max float64, style tcell.Style) {
	if w < 10 || y < 0 || y >= r.H {
		return
	}

	var pct float64
	if max > 0 {
		pct = value / max
	}
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}

	labelW := 7 // " 100.0%"
	barW := w - labelW - 2
	if barW < 1 {
		barW = 1
	}

	r.Cell(x, y, '[', style)
	r.Progress(x+1, y, barW, pct, style)
	r.Cell(x+1+barW, y, ']', style)
	r.Text(x+2+barW, y, PadLeft(fmt.Sprintf("%.1f%%", pct*100), labelW), style)
}
