package terrain

import (
	"github.com/katalvlaran/terrapath/grid"
)

// DefaultElevationFactor is the divisor factor in the elevation penalty
// (Δh)² / (factor × scale). Smaller factors punish climbing harder.
const DefaultElevationFactor = 0.05

// Oracle is an opaque heightmap: given a horizontal world position it
// returns the surface elevation there. Implementations must be deterministic
// and side-effect-free from the search's perspective, and safe for
// concurrent reads if concurrent searches share them. A returned error
// aborts the search that triggered the probe.
type Oracle interface {
	Elevation(x, z float64) (float64, error)
}

// HeightFunc adapts a plain elevation function into an Oracle that never fails.
type HeightFunc func(x, z float64) float64

// Elevation implements Oracle.
func (fn HeightFunc) Elevation(x, z float64) (float64, error) {
	return fn(x, z), nil
}

// CostModel binds one heightmap to one quantization scale and one elevation
// factor. Quantization and costing must share a scale within a search;
// building them into a single value makes mixing scales impossible.
//
// The zero value is not usable; construct with NewCostModel or fill all
// three fields. Scale must be positive and ElevationFactor must be positive;
// the route engine validates both before any probe.
type CostModel struct {
	Oracle          Oracle
	Scale           float64
	ElevationFactor float64
}

// NewCostModel returns a CostModel over o at the given scale with the
// default elevation factor.
func NewCostModel(o Oracle, scale float64) CostModel {
	return CostModel{
		Oracle:          o,
		Scale:           scale,
		ElevationFactor: DefaultElevationFactor,
	}
}

// HeightAt probes the oracle at the cell's world-space horizontal position.
// One oracle call.
func (m CostModel) HeightAt(c grid.Cell) (float64, error) {
	p := grid.ToWorld(c, m.Scale)

	return m.Oracle.Elevation(p.X, p.Z)
}

// EdgeCost returns the cost of moving between two lateral neighbor cells:
// the world-space lateral Euclidean distance plus (Δh)²/(factor × scale),
// where Δh is the elevation difference between the endpoints. The result is
// ≥ 0 and symmetric under endpoint swap (Δh enters only squared).
// Two oracle calls; any oracle failure is returned unmodified.
func (m CostModel) EdgeCost(prev, next grid.Cell) (float64, error) {
	hPrev, err := m.HeightAt(prev)
	if err != nil {
		return 0, err
	}
	hNext, err := m.HeightAt(next)
	if err != nil {
		return 0, err
	}

	dh := hNext - hPrev

	return grid.LateralDistance(prev, next, m.Scale) + dh*dh/(m.ElevationFactor*m.Scale), nil
}

// Heuristic returns the optimistic estimate of the cost between two cells:
// their lateral world-space distance, ignoring elevation entirely. Every
// real path pays at least this much laterally plus a non-negative climb
// penalty, so the estimate never exceeds the true minimal cost.
// No oracle calls.
func (m CostModel) Heuristic(a, b grid.Cell) float64 {
	return grid.LateralDistance(a, b, m.Scale)
}
