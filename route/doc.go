// Package route implements the terrain-aware A* search: given a heightmap
// oracle, a scale and two world points, it returns a minimal-cost polyline
// between them or an explicit "no route" outcome.
//
// What:
//
//   - Find: quantizes the endpoints, runs A* over the (unbounded) lateral
//     lattice with the terrain cost model, and reconstructs the resulting
//     path as world-space points, start to goal inclusive.
//   - Options: scale, connectivity (Conn8 by default), elevation penalty
//     factor, an expansion budget for bounded latency, and optional draping
//     of the output polyline onto the terrain surface.
//
// How the search works:
//
//   - Frontier: a container/heap min-heap ordered by g + h with "lazy
//     decrease-key" — improvements re-push the cell, stale duplicates are
//     skipped on pop via the closed set. True decrease-key would add
//     bookkeeping with no observable behavioral difference.
//   - Discovery: a cell is discovered iff it has entries in the predecessor
//     and cost maps; the start's predecessor is a tagged chain-start marker,
//     distinct from "unvisited" and never a magic cell value.
//   - Termination: popping the goal yields the optimal path (the heuristic
//     is admissible); an empty frontier yields ErrNoRoute; exceeding the
//     expansion budget yields ErrExpansionLimit.
//
// Failure semantics: a failed search is always an error, never an empty or
// partial path — a single-point path means start and goal quantized to the
// same cell, which is a success. Oracle failures abort the search and
// propagate wrapped with the offending edge.
//
// Concurrency: all state is owned by one Find call; concurrent calls are
// independent provided the shared oracle tolerates concurrent reads. There
// is no internal timeout or cancellation; WithMaxExpansions is the bounded-
// latency hook and its exhaustion is a diagnostic outcome, not a silent one.
//
// Complexity:
//
//   - Time:  O(E log V) over the explored region — each improvement pushes
//     one heap entry, each pop costs O(log N).
//   - Space: O(V + E) worst case for the maps and the lazily-grown heap.
//   - Oracle probes: two per evaluated edge (both endpoints).
//
// Errors (sentinel):
//
//   - ErrNilOracle         if the heightmap oracle is nil.
//   - ErrNonPositiveScale  if the scale is ≤ 0.
//   - ErrNonPositiveFactor if the elevation factor is ≤ 0.
//   - ErrNoRoute           if the frontier empties before the goal is popped.
//   - ErrExpansionLimit    if the expansion budget runs out first.
//
// Example usage:
//
//	path, cost, err := route.Find(
//	    oracle,
//	    grid.Point{X: 0, Z: 0},
//	    grid.Point{X: 0.5, Z: 0},
//	    route.WithScale(0.125),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d points, total cost %.3f\n", len(path), cost)
package route
