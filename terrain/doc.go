// Package terrain supplies the elevation side of the route search: the
// heightmap Oracle abstraction, the edge-cost / heuristic model, and a
// bundled deterministic fractal noise heightmap for examples and benchmarks.
//
// What:
//
//   - Oracle: a single-method interface, Elevation(x, z) → (height, error).
//     The search never knows how elevation is computed; scripted terrain,
//     sampled meshes and procedural noise all plug in identically.
//   - HeightFunc: adapter turning a plain func(x, z) float64 into an Oracle
//     that never fails.
//   - CostModel: binds one Oracle to one scale and one elevation factor, and
//     exposes HeightAt, EdgeCost and Heuristic. One model per search keeps
//     quantization and costing on the same scale by construction.
//   - Fractal: seeded, hash-based fractal value noise (octaves, frequency,
//     amplitude, persistence, lacunarity) — a realistic heightmap with no
//     external assets and no shared state.
//
// Why this cost shape:
//
//   - EdgeCost = lateral distance + (Δh)² / (factor × scale). The squared
//     elevation term makes steep direct climbs super-linearly expensive, so
//     minimal-cost routes wind around ridges the way graded roads do.
//   - Heuristic = lateral distance only. The true cost of any edge is at
//     least its lateral term, and the elevation term is never negative, so
//     the heuristic never overestimates: A* on this model stays optimal.
//
// Symmetry: swapping the endpoints of EdgeCost changes the sign of Δh but
// not its square, so EdgeCost(a, b) == EdgeCost(b, a).
//
// Errors: oracle failures are returned as-is from HeightAt and EdgeCost;
// interpreting or retrying them is the caller's business, not this package's.
//
// Complexity: EdgeCost and HeightAt cost one or two oracle probes; expect
// O(edges) probes over a whole search. Heuristic is pure arithmetic, O(1).
package terrain
