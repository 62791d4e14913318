// Package terrapath finds terrain-aware routes across continuously-defined
// heightmaps — snap two world points onto an integer lattice, search with
// an elevation-penalizing A*, and get back a world-space polyline ready
// for road or trail geometry.
//
// 🚀 What is terrapath?
//
//	A small, focused library that brings together:
//		• Grid quantization: floor-based world↔cell mapping at any positive scale
//		• A cost model that penalizes climbing quadratically, so routes wind
//		  around ridges the way real roads do
//		• An admissible lateral-distance heuristic (A* stays optimal)
//		• A lazy-decrease-key frontier: no exotic heap, just skip stale entries
//		• Pluggable heightmaps: any Elevation(x, z) oracle, including the
//		  bundled deterministic fractal noise
//
// ✨ Why choose terrapath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – per-call state, safe for concurrent searches
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap terrain oracles, tune the elevation penalty
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/    — Cell & Point types, quantization, 4/8-way connectivity
//	terrain/ — heightmap Oracle, CostModel (edge cost + heuristic), Fractal noise
//	route/   — the A* engine: options, search loop, path reconstruction
//
// Quick ASCII example:
//
//	    S · · · ·          S = start, G = goal, ▲ = ridge
//	    · · ▲ · ·          the route bends around ▲ when climbing
//	    · · ▲ · ·          costs more than the lateral detour
//	    · · · · G
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/terrapath
package terrapath
