// Package grid defines the integer lattice that the route search walks on,
// together with the world↔grid mapping and neighbor connectivity.
//
// What:
//
//   - Cell: a comparable (X, Y, Z) integer triple; Y is always 0 for the
//     2.5D search (elevation is sampled on demand, never stored in identity).
//   - Point: a world-space (X, Y, Z) float64 triple.
//   - ToGrid / ToWorld: floor-based quantization at a positive scale and its
//     inverse, `world = grid × scale`.
//   - Connectivity: Conn4 (orthogonal) or Conn8 (orthogonal + diagonal)
//     lateral neighbor offsets in the X/Z plane.
//
// Why:
//
//   - Continuous coordinates make terrible map keys: two floats that “should”
//     be the same vertex rarely compare equal. Quantizing start and goal onto
//     integer cells gives the search exact, hashable vertex identity.
//   - Floor (not truncation) keeps negative coordinates on the same lattice
//     as positive ones: ToGrid(Point{X: -0.1}, 1) is cell -1, not cell 0.
//
// Contract:
//
//   - ToGrid(ToWorld(c, s), s) == c for every integer cell c and positive
//     scale s, modulo floating rounding exactly at cell boundaries. That
//     boundary case is a documented property of floor on floats, not a bug
//     this package attempts to fix.
//
// Complexity: every operation here is O(1) (Neighbors allocates one small
// slice of 4 or 8 cells).
package grid
