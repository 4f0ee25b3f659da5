package sim

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/polarsim/parameter"
)

// handleKey processes one key event and reports whether to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	a.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyDown:
		a.moveFocus(1)
		return false
	case tcell.KeyUp:
		a.moveFocus(-1)
		return false
	case tcell.KeyLeft:
		a.adjust(-1)
		return false
	case tcell.KeyRight:
		a.adjust(1)
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'j':
		a.moveFocus(1)
	case 'k':
		a.moveFocus(-1)
	case 'h':
		a.adjust(-1)
	case 'l':
		a.adjust(1)
	case '2', '3', '4':
		a.setCount(int(ev.Rune() - '0'))
	case 'r':
		a.reset()
		a.status = "reset to defaults"
	case 'e':
		a.doExport()
	case 'm':
		if a.player.ToggleMute() {
			a.status = "audio muted"
		} else {
			a.status = "audio on"
		}
	}
	return false
}

// moveFocus shifts the focused row, wrapping at both ends.
func (a *App) moveFocus(delta int) {
	n := a.rowCount()
	a.focus = (a.focus + delta + n) % n
}

// adjust changes the focused parameter by its UI step, clamped to its
// range, then cues the new transmitted fraction.
func (a *App) adjust(direction int) {
	d := float64(direction)

	switch {
	case a.focus == rowIntensity:
		a.incident = clampStep(a.incident+d*parameter.IntensityStep,
			parameter.IntensityMin, parameter.IntensityMax)
		// Keep the target inside [0, I0] UI-side; the engine revalidates
		if a.target > a.incident {
			a.target = a.incident
		}
	case a.focus < a.count:
		i := a.focus - 1
		a.angles[i] = clampStep(a.angles[i]+d*parameter.AngleStep,
			parameter.AngleMin, parameter.AngleMax)
	case a.focus == a.count:
		a.setCount(a.count + direction)
		a.focus = a.count // selector row index moves with the count
		return
	default:
		step := a.incident * parameter.TargetStepFraction
		a.target = clampStep(a.target+d*step, 0, a.incident)
	}

	a.recompute()
	a.player.Cue(a.transmittedFraction())
}

// setCount switches the number of polarizers, keeping focus valid.
func (a *App) setCount(n int) {
	if n < parameter.PolarizerCountMin {
		n = parameter.PolarizerCountMin
	}
	if n > parameter.PolarizerCountMax {
		n = parameter.PolarizerCountMax
	}
	a.count = n
	if a.focus >= a.rowCount() {
		a.focus = a.rowCount() - 1
	}
	a.recompute()
	a.player.Cue(a.transmittedFraction())
}
