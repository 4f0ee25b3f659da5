package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// plotBlocks gives 8-level vertical resolution within a cell
var plotBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// PlotOpts configures XY curve rendering
type PlotOpts struct {
	XMin, XMax float64 // x range represented by the values slice
	YMax       float64 // y axis top; <= 0 auto-scales to the data
	Line       tcell.Style
	Axis       tcell.Style
	HasMarker  bool
	MarkerX    float64
	MarkerY    float64
	Marker     tcell.Style
}

// Y label margin width inside the plot region
const plotLabelW = 6

// Plot draws values as a curve with a left y-axis and bottom x-axis.
// Each value is mapped to a column; vertical position uses eighth-block
// characters for sub-cell resolution.
func (r Region) Plot(values []float64, opts PlotOpts) {
	if r.W < plotLabelW+3 || r.H < 4 || len(values) == 0 {
		return
	}

	yMax := opts.YMax
	if yMax <= 0 {
		for _, v := range values {
			if v > yMax {
				yMax = v
			}
		}
		if yMax <= 0 {
			yMax = 1
		}
	}

	axisX := plotLabelW
	axisY := r.H - 2
	plotX := axisX + 1
	plotW := r.W - plotX
	plotH := axisY

	// Axes
	for y := 0; y < axisY; y++ {
		r.Cell(axisX, y, '│', opts.Axis)
	}
	r.Cell(axisX, axisY, '└', opts.Axis)
	for x := plotX; x < r.W; x++ {
		r.Cell(x, axisY, '─', opts.Axis)
	}

	// Y labels: top of range and zero
	r.Text(0, 0, PadLeft(fmt.Sprintf("%.2f", yMax), plotLabelW-1), opts.Axis)
	r.Text(0, plotH-1, PadLeft("0", plotLabelW-1), opts.Axis)

	// X labels: min, mid, max
	labels := r.Sub(plotX, r.H-1, plotW, 1)
	labels.Text(0, 0, fmt.Sprintf("%g°", opts.XMin), opts.Axis)
	labels.TextCenter(0, fmt.Sprintf("%g°", (opts.XMin+opts.XMax)/2), opts.Axis)
	labels.TextRight(0, fmt.Sprintf("%g°", opts.XMax), opts.Axis)

	// Curve
	for col := 0; col < plotW; col++ {
		v := values[sampleIndex(col, plotW, len(values))]
		x, y, ch := curveCell(col, v, yMax, plotH)
		r.Cell(plotX+x, y, ch, opts.Line)
	}

	// Marker on top of the curve
	if opts.HasMarker && opts.XMax > opts.XMin {
		frac := (opts.MarkerX - opts.XMin) / (opts.XMax - opts.XMin)
		if frac >= 0 && frac <= 1 {
			col := int(frac*float64(plotW-1) + 0.5)
			_, y, _ := curveCell(col, opts.MarkerY, yMax, plotH)
			r.Cell(plotX+col, y, '●', opts.Marker)
		}
	}
}

// sampleIndex maps a plot column to an index into the values slice.
func sampleIndex(col, plotW, n int) int {
	if plotW <= 1 || n <= 1 {
		return 0
	}
	idx := col * (n - 1) / (plotW - 1)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// curveCell returns the column offset, row, and block rune for a value.
func curveCell(col int, v, yMax float64, plotH int) (x, y int, ch rune) {
	norm := v / yMax
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}

	pos := norm * float64(plotH)
	fromBottom := int(pos)
	if fromBottom >= plotH {
		fromBottom = plotH - 1
	}
	frac := pos - float64(fromBottom)
	idx := int(frac * 8)
	if idx > 7 {
		idx = 7
	}
	return col, plotH - 1 - fromBottom, plotBlocks[idx]
}
