// Package parameter holds the UI-enforced bounds, steps, and defaults of
// the simulator. The engine itself accepts any finite input; these ranges
// are a convenience layer for interactive controls, the engine revalidates
// authoritatively.
package parameter

// Incident intensity slider (W/m²)
const (
	IntensityMin     = 0.1
	IntensityMax     = 10.0
	IntensityStep    = 0.1
	IntensityDefault = 1.0
)

// Polarizer count selector
const (
	PolarizerCountMin     = 2
	PolarizerCountMax     = 4
	PolarizerCountDefault = 2
)

// Per-pair relative angle sliders (degrees)
const (
	AngleMin  = 0.0
	AngleMax  = 180.0
	AngleStep = 5.0
)

// Default relative angles for each polarizer pair. First pair starts at
// 45° (half transmission), later pairs at 90° (extinction) so adding a
// polarizer visibly changes the chain.
var AngleDefaults = [PolarizerCountMax - 1]float64{45, 90, 90}
