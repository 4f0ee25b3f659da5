package sim

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/polarsim/parameter"
	"github.com/lixenwraith/polarsim/tui"
)

// Screen styles
var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccent = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleFocus  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// render draws the full screen from the last recompute.
func (a *App) render() {
	a.screen.Clear()
	root := tui.NewRegion(a.screen)

	header, rest := tui.SplitVFixed(root, 1)
	content, footer := tui.SplitVFixed(rest, rest.H-1)

	header.Fill(styleHeader)
	header.Text(1, 0, "POLARSIM", styleHeader.Bold(true))
	header.TextCenter(0, "Malus's Law  I = I₀·cos²(θ)", styleHeader)
	header.TextRight(0, fmt.Sprintf("%dx%d ", root.W, root.H), styleHeader)

	footer.Fill(styleHeader)
	footer.Text(1, 0, "j/k focus  h/l adjust  2-4 polarizers  e export  m mute  r reset  q quit", styleHeader)
	if a.status != "" {
		footer.TextRight(0, a.status+" ", styleHeader.Foreground(tcell.ColorYellow))
	}

	if content.W >= 96 {
		left, right := tui.SplitHFixed(content, 44)
		a.renderLeftColumn(left)
		rows := tui.SplitV(right, 0.6, 0.4)
		a.renderCurve(rows[0])
		a.renderTable(rows[1])
	} else {
		rows := tui.SplitV(content, 0.55, 0.45)
		a.renderLeftColumn(rows[0])
		a.renderCurve(rows[1])
	}
}

func (a *App) renderLeftColumn(r tui.Region) {
	paramsH := a.rowCount() + 2
	stagesH := a.count + 2

	params, rest := tui.SplitVFixed(r, paramsH)
	stages, inverse := tui.SplitVFixed(rest, stagesH)

	a.renderParameters(params)
	a.renderStages(stages)
	a.renderInverse(inverse)
}

func (a *App) renderParameters(r tui.Region) {
	inner := r.Card("PARAMETERS", tui.LineDouble, styleBorder)

	y := 0
	a.paramRow(inner, y, rowIntensity, "I₀ incident",
		fmt.Sprintf("%5.1f W/m²", a.incident),
		ratio(a.incident, parameter.IntensityMin, parameter.IntensityMax))
	y++

	for i := 0; i < a.count-1; i++ {
		a.paramRow(inner, y, 1+i, fmt.Sprintf("θ pair %d-%d", i+1, i+2),
			fmt.Sprintf("%6.0f°    ", a.angles[i]),
			ratio(a.angles[i], parameter.AngleMin, parameter.AngleMax))
		y++
	}

	a.paramRow(inner, y, a.count, "polarizers",
		fmt.Sprintf("%6d     ", a.count),
		ratio(float64(a.count), parameter.PolarizerCountMin, parameter.PolarizerCountMax))
	y++

	a.paramRow(inner, y, a.count+1, "target I",
		fmt.Sprintf("%5.2f W/m²", a.target),
		ratio(a.target, 0, a.incident))
}

// paramRow draws one focusable row: marker, label, value, range bar.
func (a *App) paramRow(r tui.Region, y, row int, label, value string, pct float64) {
	style := styleText
	if row == a.focus {
		style = styleFocus
		r.Cell(0, y, '▸', styleFocus)
	}

	r.Text(2, y, tui.PadRight(label, 12), style)
	r.Text(14, y, value, style)

	barX := 26
	barW := r.W - barX - 1
	if barW >= 5 {
		r.Progress(barX, y, barW, pct, styleDim)
	}
}

func (a *App) renderStages(r tui.Region) {
	inner := r.Card("STAGE INTENSITIES", tui.LineDouble, styleBorder)

	for i, intensity := range a.stages {
		label := fmt.Sprintf("P%d", i+1)
		inner.Text(0, i, label, styleAccent)
		inner.Text(3, i, fmt.Sprintf("%6.3f", intensity), styleText)
		inner.Gauge(10, i, inner.W-11, intensity, a.incident, styleGood)
	}
}

func (a *App) renderInverse(r tui.Region) {
	inner := r.Card("INVERSE  θ = arccos(√(I/I₀))", tui.LineDouble, styleBorder)

	inner.Text(0, 0, fmt.Sprintf("target %5.2f W/m² of %5.2f", a.target, a.incident), styleText)
	if a.inverseErr != "" {
		inner.Text(0, 1, tui.Truncate("⚠ "+a.inverseErr, inner.W), styleWarn)
		return
	}
	inner.Text(0, 1, fmt.Sprintf("angle  %6.2f°", a.inverse), styleGood.Bold(true))

	if len(a.stages) > 0 {
		final := a.stages[len(a.stages)-1]
		pct := 0.0
		if a.incident > 0 {
			pct = final / a.incident * 100
		}
		inner.Text(0, 3, fmt.Sprintf("chain output %6.3f W/m² (%5.1f%%)", final, pct), styleDim)
	}
}

func (a *App) renderCurve(r tui.Region) {
	inner := r.Card("THEORETICAL CURVE  0°-180°", tui.LineDouble, styleBorder)

	values := make([]float64, len(a.curve))
	for i, s := range a.curve {
		values[i] = s.Intensity
	}

	opts := tui.PlotOpts{
		XMin:   parameter.CurveMin,
		XMax:   parameter.CurveMax,
		YMax:   a.incident,
		Line:   styleAccent,
		Axis:   styleDim,
		Marker: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
	// Mark the first pair's operating point on the curve
	if len(a.stages) > 1 {
		opts.HasMarker = true
		opts.MarkerX = a.angles[0]
		opts.MarkerY = a.stages[1]
	}
	inner.Plot(values, opts)
}

func (a *App) renderTable(r tui.Region) {
	inner := r.Card("REFERENCE TABLE", tui.LineDouble, styleBorder)

	inner.Text(0, 0, tui.PadLeft("angle", 7), styleDim.Bold(true))
	inner.Text(8, 0, tui.PadLeft("I (W/m²)", 10), styleDim.Bold(true))
	inner.Text(19, 0, tui.PadLeft("T (%)", 7), styleDim.Bold(true))

	for i, s := range a.table {
		y := i + 1
		if y >= inner.H {
			break
		}
		pct := 0.0
		if a.incident > 0 {
			pct = s.Intensity / a.incident * 100
		}
		inner.Text(0, y, tui.PadLeft(fmt.Sprintf("%.0f°", s.Angle), 7), styleText)
		inner.Text(8, y, tui.PadLeft(fmt.Sprintf("%.4f", s.Intensity), 10), styleText)
		inner.Text(19, y, tui.PadLeft(fmt.Sprintf("%.1f", pct), 7), styleText)
	}
}

// ratio normalizes v within [min, max] for the range bars.
func ratio(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return (v - min) / (max - min)
}
