package parameter

// Theoretical curve sweep (degrees)
const (
	CurveMin  = 0.0
	CurveMax  = 180.0
	CurveStep = 0.1
)

// Reference table resolution for display and export (degrees)
const TableStep = 15.0

// Inverse target control. The target slider moves in fractions of the
// incident intensity and is clamped UI-side to [0, I0]; the engine still
// rejects out-of-range values as the authoritative check.
const TargetStepFraction = 0.05
