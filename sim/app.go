// Package sim runs the interactive polarization simulator: a reactive
// loop that rebuilds the engine and recomputes the chain, curve, inverse,
// and reference table from scratch on every parameter change, then
// redraws the whole screen. No caching; every interaction is an
// independent computation.
package sim

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/polarsim/audio"
	"github.com/lixenwraith/polarsim/config"
	"github.com/lixenwraith/polarsim/export"
	"github.com/lixenwraith/polarsim/logger"
	"github.com/lixenwraith/polarsim/malus"
	"github.com/lixenwraith/polarsim/parameter"
)

// Focusable parameter rows, top to bottom. Angle rows sit between
// rowIntensity and rowCount; indices shift with the polarizer count.
const (
	rowIntensity = 0
	// rows 1..count-1: relative angles
	// row count: polarizer count
	// row count+1: inverse target
)

// App holds the simulator state between interactions.
type App struct {
	screen tcell.Screen
	player *audio.Player
	cfg    *config.Config

	// Inputs
	incident float64
	count    int
	angles   [parameter.PolarizerCountMax - 1]float64
	target   float64

	focus  int
	status string

	// Outputs of the last recompute
	stages     []float64
	curve      []malus.Sample
	table      []malus.Sample
	inverse    float64
	inverseErr string
}

// New creates an app seeded from config.
func New(screen tcell.Screen, player *audio.Player, cfg *config.Config) *App {
	a := &App{
		screen: screen,
		player: player,
		cfg:    cfg,
	}
	a.reset()
	return a
}

// reset restores the configured startup state.
func (a *App) reset() {
	sim := a.cfg.Simulation

	a.incident = clampStep(sim.IncidentIntensity, parameter.IntensityMin, parameter.IntensityMax)
	a.count = sim.PolarizerCount
	if a.count < parameter.PolarizerCountMin {
		a.count = parameter.PolarizerCountMin
	}
	if a.count > parameter.PolarizerCountMax {
		a.count = parameter.PolarizerCountMax
	}

	copy(a.angles[:], parameter.AngleDefaults[:])
	for i := 0; i < len(sim.Angles) && i < len(a.angles); i++ {
		a.angles[i] = clampStep(sim.Angles[i], parameter.AngleMin, parameter.AngleMax)
	}

	a.target = a.incident / 2
	a.focus = rowIntensity
	a.status = ""
}

// Run drives the event loop until quit. Every event triggers a full
// recompute and redraw.
func (a *App) Run() {
	for {
		a.recompute()
		a.render()
		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		case nil:
			return
		}
	}
}

// recompute rebuilds the engine and derives every output from scratch.
func (a *App) recompute() {
	engine, err := malus.New(a.incident)
	if err != nil {
		// UI clamping should make this unreachable; fail loudly in the log
		logger.Log.Error("engine construction failed", zap.Error(err))
		a.status = err.Error()
		return
	}

	a.stages, err = engine.Chain(a.activeAngles())
	if err != nil {
		logger.Log.Error("chain failed", zap.Error(err))
		a.status = err.Error()
		return
	}

	a.curve, err = engine.Curve(parameter.CurveMin, parameter.CurveMax, parameter.CurveStep)
	if err != nil {
		logger.Log.Error("curve failed", zap.Error(err))
		a.status = err.Error()
		return
	}

	a.table, err = engine.SampleTable(parameter.TableStep)
	if err != nil {
		logger.Log.Error("sample table failed", zap.Error(err))
		a.status = err.Error()
		return
	}

	// The inverse validates authoritatively even though the target slider
	// is clamped to [0, I0]; an InvalidInput here becomes an inline
	// warning, not a crash.
	a.inverse, err = malus.AngleForIntensity(a.target, a.incident)
	switch {
	case err == nil:
		a.inverseErr = ""
	case errors.Is(err, malus.ErrInvalidInput):
		a.inverseErr = err.Error()
	default:
		logger.Log.Error("inverse failed", zap.Error(err))
		a.inverseErr = err.Error()
	}
}

// activeAngles returns the relative angles for the current chain length.
func (a *App) activeAngles() []float64 {
	return a.angles[:a.count-1]
}

// transmittedFraction is the final stage relative to incident, for the
// audio cue.
func (a *App) transmittedFraction() float64 {
	if a.incident <= 0 || len(a.stages) == 0 {
		return 0
	}
	return a.stages[len(a.stages)-1] / a.incident
}

// rowCount is the number of focusable rows for the current chain.
func (a *App) rowCount() int {
	return a.count + 2 // intensity + (count-1) angles + count selector + target
}

func (a *App) doExport() {
	res := export.Results{
		Incident:     a.incident,
		Angles:       a.activeAngles(),
		Stages:       a.stages,
		Curve:        a.curve,
		Table:        a.table,
		Target:       a.target,
		InverseAngle: a.inverse,
		InverseOK:    a.inverseErr == "",
	}

	path := a.cfg.Export.Path
	if err := export.WriteXLSX(path, res); err != nil {
		logger.Log.Error("export failed", zap.String("path", path), zap.Error(err))
		a.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	logger.Log.Info("results exported", zap.String("path", path))
	a.status = "exported " + path
}

func clampStep(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
