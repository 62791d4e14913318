// Package route_test contains unit tests for the terrain-aware A* search.
// These tests validate input rejection, the flat and ridge scenarios with
// hand-computed costs, optimality against a brute-force Dijkstra on a
// bounded grid, determinism, the degenerate single-point path, oracle
// failure propagation, and the expansion budget.
package route_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/terrapath/grid"
	"github.com/katalvlaran/terrapath/route"
	"github.com/katalvlaran/terrapath/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flat is an everywhere-zero heightmap.
var flat = terrain.HeightFunc(func(x, z float64) float64 { return 0 })

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFind_NilOracle(t *testing.T) {
	_, _, err := route.Find(nil, grid.Point{}, grid.Point{X: 1})
	assert.ErrorIs(t, err, route.ErrNilOracle)
}

func TestFind_NonPositiveScale(t *testing.T) {
	for _, scale := range []float64{0, -0.5} {
		_, _, err := route.Find(flat, grid.Point{}, grid.Point{X: 1}, route.WithScale(scale))
		assert.ErrorIs(t, err, route.ErrNonPositiveScale, "scale %v must be rejected", scale)
	}
}

func TestWithElevationFactor_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { route.WithElevationFactor(0) })
	assert.Panics(t, func() { route.WithElevationFactor(-1) })
}

// ------------------------------------------------------------------------
// 2. Scenario A: flat terrain — cost is pure lateral distance.
// ------------------------------------------------------------------------

// TestFind_FlatStraightLine checks the canonical flat scenario: scale 0.125,
// start (0,0,0), goal (0.5,0,0). With no elevation anywhere the elevation
// penalty is 0 throughout, so the optimal route is the straight lattice line
// and its cost is exactly the lateral distance 0.5.
func TestFind_FlatStraightLine(t *testing.T) {
	path, cost, err := route.Find(
		flat,
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 0.5, Z: 0},
		route.WithScale(0.125),
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cost, 1e-12)
	require.Len(t, path, 5, "cells 0..4 along x, start and goal inclusive")
	assert.Equal(t, grid.Point{X: 0, Y: 0, Z: 0}, path[0])
	assert.Equal(t, grid.Point{X: 0.5, Y: 0, Z: 0}, path[4])
}

// ------------------------------------------------------------------------
// 3. Scenario B: a single ridge across the direct line.
// ------------------------------------------------------------------------

// ridgeOracle returns height for world z in [0.2, 0.3] and |x| ≤ halfWidth,
// 0 elsewhere. At scale 0.125 the elevated cells are exactly the row z=2
// within the x extent.
func ridgeOracle(height, halfWidth float64) terrain.Oracle {
	return terrain.HeightFunc(func(x, z float64) float64 {
		if z >= 0.2 && z <= 0.3 && math.Abs(x) <= halfWidth {
			return height
		}

		return 0
	})
}

// TestFind_RidgeDetour: a tall (H=1) but narrow (|x| ≤ 0.2, i.e. cells
// x ∈ {-1,0,1} at z=2) ridge. Climbing would cost 2·1²/(0.05·0.125) = 320 on
// top of the lateral 0.5; slipping around the ridge end costs four diagonal
// steps, 4·0.125·√2 ≈ 0.707. The route must detour and never touch the ridge.
func TestFind_RidgeDetour(t *testing.T) {
	oracle := ridgeOracle(1.0, 0.2)

	path, cost, err := route.Find(
		oracle,
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 0, Z: 0.5},
		route.WithScale(0.125),
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5*math.Sqrt2, cost, 1e-9, "four diagonal steps around the ridge end")
	for _, p := range path {
		h, _ := oracle.Elevation(p.X, p.Z)
		assert.Zero(t, h, "detour must not step onto the ridge at %v", p)
	}
}

// TestFind_RidgeCross: a long (|x| ≤ 10) but low (H=0.05) ridge. Going
// around now costs ≥ 20 laterally, while climbing costs only
// 2·0.05²/(0.05·0.125) = 0.8 on top of the lateral 0.5. The route must cross
// straight over: total cost 1.3.
func TestFind_RidgeCross(t *testing.T) {
	oracle := ridgeOracle(0.05, 10)

	path, cost, err := route.Find(
		oracle,
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 0, Z: 0.5},
		route.WithScale(0.125),
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.3, cost, 1e-9, "lateral 0.5 + climb 0.4 + descent 0.4")

	crest := 0.0
	for _, p := range path {
		h, _ := oracle.Elevation(p.X, p.Z)
		crest = math.Max(crest, h)
	}
	assert.InDelta(t, 0.05, crest, 1e-12, "the route must actually cross the ridge")
}

// ------------------------------------------------------------------------
// 4. Optimality and admissibility against brute-force Dijkstra.
// ------------------------------------------------------------------------

// walled returns a bumpy heightmap inside the cell box [lo,hi]² (at scale 1)
// and a high plateau outside. Stepping over the wall costs ≥ 49²/0.05,
// so the unbounded search never profits from leaving the box and a bounded
// Dijkstra over the same box computes the same optimum.
func walled(lo, hi float64) terrain.HeightFunc {
	return func(x, z float64) float64 {
		if x < lo || x > hi || z < lo || z > hi {
			return 50
		}

		return 0.4 * math.Sin(1.3*x) * math.Cos(0.9*z)
	}
}

// bruteDijkstra computes exact minimal costs from start to every cell of the
// 8-connected box [lo,hi]² using an O(V²) Dijkstra — no heap, no heuristic.
func bruteDijkstra(t *testing.T, m terrain.CostModel, start grid.Cell, lo, hi int) map[grid.Cell]float64 {
	t.Helper()

	dist := map[grid.Cell]float64{start: 0}
	done := make(map[grid.Cell]bool)
	inBox := func(c grid.Cell) bool {
		return c.X >= lo && c.X <= hi && c.Z >= lo && c.Z <= hi
	}

	for {
		// Pick the unfinished discovered cell with minimal distance.
		var u grid.Cell
		best := math.Inf(1)
		for c, d := range dist {
			if !done[c] && d < best {
				u, best = c, d
			}
		}
		if math.IsInf(best, 1) {
			return dist
		}
		done[u] = true

		for _, n := range u.Neighbors(grid.Conn8) {
			if !inBox(n) || done[n] {
				continue
			}
			w, err := m.EdgeCost(u, n)
			require.NoError(t, err)
			if d, seen := dist[n]; !seen || best+w < d {
				dist[n] = best + w
			}
		}
	}
}

// TestFind_OptimalAgainstBruteForce verifies the returned cost equals the
// brute-force minimum over all 8-connected paths, and that the returned
// polyline's own edge costs sum to that cost.
func TestFind_OptimalAgainstBruteForce(t *testing.T) {
	oracle := walled(-1.5, 7.5)
	m := terrain.NewCostModel(oracle, 1)
	startCell := grid.Cell{X: 0, Z: 0}
	goalCell := grid.Cell{X: 5, Z: 5}

	path, cost, err := route.Find(
		oracle,
		grid.Point{X: 0.5, Z: 0.5},
		grid.Point{X: 5.5, Z: 5.5},
	)
	require.NoError(t, err)

	dist := bruteDijkstra(t, m, startCell, -1, 7)
	want, ok := dist[goalCell]
	require.True(t, ok, "brute force must reach the goal")
	assert.InDelta(t, want, cost, 1e-9, "A* cost must match brute-force Dijkstra")

	// The polyline must re-cost to the reported total.
	sum := 0.0
	for i := 1; i < len(path); i++ {
		w, err := m.EdgeCost(grid.ToGrid(path[i-1], 1), grid.ToGrid(path[i], 1))
		require.NoError(t, err)
		sum += w
	}
	assert.InDelta(t, cost, sum, 1e-9)
}

// TestHeuristicAdmissible_AgainstBruteForce verifies heuristic(start, c) ≤
// the true minimal cost to every reachable cell of the bounded box.
func TestHeuristicAdmissible_AgainstBruteForce(t *testing.T) {
	oracle := walled(-1.5, 7.5)
	m := terrain.NewCostModel(oracle, 1)
	startCell := grid.Cell{X: 0, Z: 0}

	for c, d := range bruteDijkstra(t, m, startCell, -1, 7) {
		assert.LessOrEqual(t, m.Heuristic(startCell, c), d+1e-9, "heuristic overestimates cost to %v", c)
	}
}

// ------------------------------------------------------------------------
// 5. Degenerate path, determinism, draping.
// ------------------------------------------------------------------------

// TestFind_DegenerateSinglePoint: start and goal quantize to the same cell.
// The result is a one-point path at that cell's world coordinates with cost
// 0 — a success, not a failure.
func TestFind_DegenerateSinglePoint(t *testing.T) {
	path, cost, err := route.Find(
		flat,
		grid.Point{X: 0.01, Z: 0.02},
		grid.Point{X: 0.03, Z: 0.01},
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0, Z: 0}}, path)
	assert.Zero(t, cost)
}

// TestFind_Deterministic runs the same search twice over fractal terrain and
// expects identical polylines and costs.
func TestFind_Deterministic(t *testing.T) {
	oracle := terrain.Fractal{
		Seed:        99,
		Octaves:     4,
		Frequency:   0.3,
		Amplitude:   0.2,
		Persistence: 0.5,
		Lacunarity:  2,
	}
	start := grid.Point{X: -1, Z: -1}
	goal := grid.Point{X: 4, Z: 3}

	p1, c1, err := route.Find(oracle, start, goal, route.WithScale(0.25))
	require.NoError(t, err)
	p2, c2, err := route.Find(oracle, start, goal, route.WithScale(0.25))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}

// TestFind_SurfaceElevation verifies WithSurfaceElevation sets each point's
// Y from the oracle instead of leaving the polyline in the Y=0 plane.
func TestFind_SurfaceElevation(t *testing.T) {
	plateau := terrain.HeightFunc(func(x, z float64) float64 { return 2.5 })

	path, _, err := route.Find(
		plateau,
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 3, Z: 0},
		route.WithSurfaceElevation(),
	)
	require.NoError(t, err)
	for _, p := range path {
		assert.Equal(t, 2.5, p.Y, "draped point %v must carry the surface elevation", p)
	}
}

// ------------------------------------------------------------------------
// 6. Failure semantics: oracle failures and the expansion budget.
// ------------------------------------------------------------------------

// failingOracle fails every probe with a fixed error.
type failingOracle struct {
	err error
}

func (f failingOracle) Elevation(x, z float64) (float64, error) {
	return 0, f.err
}

// TestFind_OracleFailurePropagates: an oracle that fails on every call must
// abort the search with that failure — never a partial or empty path.
func TestFind_OracleFailurePropagates(t *testing.T) {
	probeErr := errors.New("scripted heightmap raised")

	path, _, err := route.Find(
		failingOracle{err: probeErr},
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 5, Z: 0},
	)
	assert.ErrorIs(t, err, probeErr)
	assert.Nil(t, path)
}

// TestFind_ExpansionLimit: a tight budget on a distant goal yields
// ErrExpansionLimit, the Exhausted-equivalent outcome for bounded latency.
func TestFind_ExpansionLimit(t *testing.T) {
	path, _, err := route.Find(
		flat,
		grid.Point{X: 0, Z: 0},
		grid.Point{X: 100, Z: 0},
		route.WithMaxExpansions(5),
	)
	assert.ErrorIs(t, err, route.ErrExpansionLimit)
	assert.Nil(t, path)
}

// TestFind_ExpansionLimitAllowsDegenerate: a budget of 1 still resolves the
// start==goal case, because the goal check precedes the budget check.
func TestFind_ExpansionLimitAllowsDegenerate(t *testing.T) {
	path, cost, err := route.Find(
		flat,
		grid.Point{X: 0.2, Z: 0.2},
		grid.Point{X: 0.3, Z: 0.3},
		route.WithMaxExpansions(1),
	)
	require.NoError(t, err)
	assert.Len(t, path, 1)
	assert.Zero(t, cost)
}

// ------------------------------------------------------------------------
// 7. Connectivity.
// ------------------------------------------------------------------------

// TestFind_Conn4NoDiagonals verifies Conn4 routes take the Manhattan route:
// on flat ground the cost from (0,0) to (3,3) is 6 axis steps, not 3·√2.
func TestFind_Conn4NoDiagonals(t *testing.T) {
	_, cost, err := route.Find(
		flat,
		grid.Point{X: 0.5, Z: 0.5},
		grid.Point{X: 3.5, Z: 3.5},
		route.WithConnectivity(grid.Conn4),
	)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, cost, 1e-9)

	_, cost, err = route.Find(
		flat,
		grid.Point{X: 0.5, Z: 0.5},
		grid.Point{X: 3.5, Z: 3.5},
	)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Sqrt2, cost, 1e-9, "Conn8 takes the true diagonal")
}
