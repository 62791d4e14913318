package grid

import (
	"fmt"
	"math"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are (dx, dz) lateral offsets, clockwise from north.
// They are package-level so Offsets never allocates.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the precomputed (dx, dz) neighbor offsets for conn.
// Callers must not mutate the returned slice.
// Complexity: O(1).
func (conn Connectivity) Offsets() [][2]int {
	if conn == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Cell is a vertex of the search lattice. Y is always 0 in cells produced by
// ToGrid; it is kept in the identity so a cell maps back to a full 3D world
// point without a separate type. Two cells are equal iff all three integer
// components match exactly, which is what makes Cell a safe map key.
type Cell struct {
	X, Y, Z int
}

// String formats the cell as "(x,y,z)" for error messages and debugging.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Neighbors returns the lateral neighbors of c under conn, in clockwise
// order starting north. The vertical component is carried over unchanged.
// Complexity: O(1), one allocation of 4 or 8 cells.
func (c Cell) Neighbors(conn Connectivity) []Cell {
	offsets := conn.Offsets()
	out := make([]Cell, len(offsets))
	for i, d := range offsets {
		out[i] = Cell{X: c.X + d[0], Y: c.Y, Z: c.Z + d[1]}
	}

	return out
}

// Point is a world-space position. Y is elevation.
type Point struct {
	X, Y, Z float64
}

// ToGrid quantizes a world point onto the lattice at the given scale.
// The horizontal components use math.Floor so that negative coordinates
// quantize consistently; the vertical component is forced to 0 because the
// search is 2.5D (elevation is derived from the heightmap, not from the
// point's own Y).
// Requires scale > 0; callers validate before searching.
// Complexity: O(1).
func ToGrid(p Point, scale float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / scale)),
		Y: 0,
		Z: int(math.Floor(p.Z / scale)),
	}
}

// ToWorld maps a cell back to world space: componentwise cell × scale.
// It is the inverse of ToGrid up to the round-trip contract in doc.go and
// is used only to emit the final polyline, never re-fed into the search.
// Complexity: O(1).
func ToWorld(c Cell, scale float64) Point {
	return Point{
		X: float64(c.X) * scale,
		Y: float64(c.Y) * scale,
		Z: float64(c.Z) * scale,
	}
}

// LateralDistance returns the Euclidean distance between the horizontal
// (X/Z) projections of two cells, in world units at the given scale.
// Diagonal neighbors are naturally ≈ √2·scale apart; nothing flattens them.
// Complexity: O(1).
func LateralDistance(a, b Cell, scale float64) float64 {
	dx := float64(b.X-a.X) * scale
	dz := float64(b.Z-a.Z) * scale

	return math.Hypot(dx, dz)
}
