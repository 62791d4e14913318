package route

import "errors"

// Sentinel errors returned by the route search.
var (
	// ErrNilOracle indicates that a nil heightmap oracle was passed to Find.
	ErrNilOracle = errors.New("route: heightmap oracle is nil")

	// ErrNonPositiveScale indicates the quantization scale is zero or negative.
	// Rejected before any search work begins.
	ErrNonPositiveScale = errors.New("route: scale must be positive")

	// ErrNonPositiveFactor indicates the elevation penalty factor is zero or
	// negative, which would make the penalty divisor meaningless.
	ErrNonPositiveFactor = errors.New("route: elevation factor must be positive")

	// ErrNoRoute indicates the frontier emptied before the goal was popped.
	// On the unbounded 8-connected lattice this cannot happen with a sane
	// oracle; treat it as a diagnostic condition, never as an empty path.
	ErrNoRoute = errors.New("route: frontier exhausted before reaching goal")

	// ErrExpansionLimit indicates the expansion budget (WithMaxExpansions)
	// ran out before the goal was popped — the Exhausted-equivalent outcome
	// for callers that need bounded latency.
	ErrExpansionLimit = errors.New("route: expansion limit reached before goal")
)
