// Package route defines configuration options for the terrain-aware A* search.
package route

import (
	"github.com/katalvlaran/terrapath/grid"
	"github.com/katalvlaran/terrapath/terrain"
)

// Options configures the behavior of Find.
//
// Scale            – quantization/cost scale; cells span Scale world units.
//
//	Must be > 0. Default 1.
//
// ElevationFactor  – divisor factor of the climb penalty (Δh)²/(factor·scale).
//
//	Must be > 0. Default terrain.DefaultElevationFactor (0.05).
//
// Conn             – lateral connectivity of the lattice. Default grid.Conn8.
// MaxExpansions    – cap on closed cells before giving up with
//
//	ErrExpansionLimit. 0 (default) means unbounded.
//
// SurfaceElevation – if true, each output point's Y is set from the oracle so
//
//	the polyline drapes over the terrain instead of lying in
//	the Y=0 plane.
type Options struct {
	Scale            float64
	ElevationFactor  float64
	Conn             grid.Connectivity
	MaxExpansions    int
	SurfaceElevation bool
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithScale sets the quantization and cost scale. Validation happens in
// Find: a non-positive scale yields ErrNonPositiveScale before any search
// work begins.
func WithScale(scale float64) Option {
	return func(o *Options) {
		o.Scale = scale
	}
}

// WithElevationFactor overrides the climb penalty factor. Smaller values
// punish climbing harder, producing longer and flatter routes.
// Must pass a positive value; zero or negative panic with ErrNonPositiveFactor.
func WithElevationFactor(factor float64) Option {
	return func(o *Options) {
		if factor <= 0 {
			panic(ErrNonPositiveFactor.Error())
		}
		o.ElevationFactor = factor
	}
}

// WithConnectivity selects Conn4 or Conn8 lateral expansion.
// Default (if not set) is grid.Conn8.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithMaxExpansions bounds how many cells the search may close before it
// gives up with ErrExpansionLimit. Use it to impose bounded latency on
// pathological inputs; 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithSurfaceElevation drapes the returned polyline onto the terrain: each
// point's Y is probed from the oracle instead of being left at 0. Oracle
// failures during draping propagate like any other oracle failure.
func WithSurfaceElevation() Option {
	return func(o *Options) {
		o.SurfaceElevation = true
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Scale:            1 (one world unit per cell).
//   - ElevationFactor:  terrain.DefaultElevationFactor.
//   - Conn:             grid.Conn8 (diagonals allowed).
//   - MaxExpansions:    0 (no budget).
//   - SurfaceElevation: false (polyline stays in the Y=0 plane).
func DefaultOptions() Options {
	return Options{
		Scale:            1,
		ElevationFactor:  terrain.DefaultElevationFactor,
		Conn:             grid.Conn8,
		MaxExpansions:    0,
		SurfaceElevation: false,
	}
}
