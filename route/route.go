// Package route implements the terrain-aware A* search over the lateral
// grid lattice.
//
// The search processes cells in order of g + h using a min-heap priority
// queue with lazy decrease-key: improving a cell's cost re-pushes it, and
// stale duplicates are skipped on pop via the closed set.
//
// Complexity:
//
//   - Time:  O(E log V) over the explored region.
//   - Space: O(V + E) for the discovery maps and the heap.
//
// Notes on implementation choices:
//
//   - The lattice is unbounded and fully connected, so exhaustion of the
//     frontier signals something pathological; it is reported as ErrNoRoute,
//     never as an empty path.
//   - The start cell's predecessor is a tagged chain-start marker, so
//     "discovered" (map entry present) and "start of chain" are distinct
//     states without reserving a magic cell value.
package route

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/terrapath/grid"
	"github.com/katalvlaran/terrapath/terrain"
)

// Find computes a minimal-cost route between two world points over the
// heightmap o. It accepts functional options to customize behavior (scale,
// connectivity, elevation factor, expansion budget, surface draping).
//
// Returns:
//
//   - path: world-space points from start to goal inclusive. A single-point
//     path means start and goal quantized to the same cell — a success,
//     never to be confused with "no route".
//   - cost: total edge cost of the returned path (0 for a single-point path).
//   - err:  validation error, oracle failure (wrapped), ErrNoRoute, or
//     ErrExpansionLimit. On error the path is nil.
//
// Preconditions and validation (in order):
//  1. o must be non-nil (ErrNilOracle).
//  2. Scale must be positive (ErrNonPositiveScale).
//  3. ElevationFactor must be positive (ErrNonPositiveFactor; the option
//     constructor already panics, this guards hand-built Options paths).
//
// The search itself is optimal: the heuristic (pure lateral distance) never
// overestimates the true cost, so the first time the goal is popped its cost
// is minimal over all lattice paths.
//
// Complexity:
//
//   - Time:  O(E log V) over the explored region.
//   - Space: O(V + E); all of it released on return.
func Find(o terrain.Oracle, start, goal grid.Point, opts ...Option) ([]grid.Point, float64, error) {
	// 1) Build Options from defaults and functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the oracle is present.
	if o == nil {
		return nil, 0, ErrNilOracle
	}

	// 3) Validate the scale before touching any coordinate.
	if cfg.Scale <= 0 {
		return nil, 0, fmt.Errorf("%w: got %v", ErrNonPositiveScale, cfg.Scale)
	}

	// 4) Validate the elevation factor (hand-built Options bypass the option
	//    constructor's panic).
	if cfg.ElevationFactor <= 0 {
		return nil, 0, fmt.Errorf("%w: got %v", ErrNonPositiveFactor, cfg.ElevationFactor)
	}

	// 5) Bind oracle, scale and factor into one cost model so every probe of
	//    this search shares the same scale.
	model := terrain.CostModel{
		Oracle:          o,
		Scale:           cfg.Scale,
		ElevationFactor: cfg.ElevationFactor,
	}

	// 6) Quantize the endpoints onto the lattice. From here on the search
	//    works in exact integer identity.
	r := &runner{
		model:     model,
		conn:      cfg.Conn,
		budget:    cfg.MaxExpansions,
		start:     grid.ToGrid(start, cfg.Scale),
		goal:      grid.ToGrid(goal, cfg.Scale),
		cameFrom:  make(map[grid.Cell]parentLink),
		costSoFar: make(map[grid.Cell]float64),
		closed:    make(map[grid.Cell]bool),
	}

	// 7) Seed the frontier and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, 0, err
	}

	// 8) Walk the predecessor chain into a forward-ordered polyline.
	points, err := r.worldPath(cfg.SurfaceElevation)
	if err != nil {
		return nil, 0, err
	}

	// 9) The goal's accumulated cost is the total cost of the path.
	return points, r.costSoFar[r.goal], nil
}

// parentLink is one entry of the predecessor map. chainStart tags the start
// cell's "no predecessor" state; an absent map entry means "unvisited".
type parentLink struct {
	cell       grid.Cell
	chainStart bool
}

// runner holds the mutable state for a single Find execution.
type runner struct {
	model     terrain.CostModel        // Cost & heuristic model; read-only here.
	conn      grid.Connectivity        // Lateral neighbor connectivity.
	budget    int                      // Max cells to close; 0 = unbounded.
	start     grid.Cell                // Quantized start.
	goal      grid.Cell                // Quantized goal.
	cameFrom  map[grid.Cell]parentLink // Cell → predecessor along best known path.
	costSoFar map[grid.Cell]float64    // Cell → best known cumulative cost.
	closed    map[grid.Cell]bool       // Cells whose cost is finalized.
	pq        cellPQ                   // Min-heap frontier, lazy decrease-key.
	expanded  int                      // Cells closed so far (budget counter).
}

// init seeds the frontier with the start cell at priority 0 and records its
// chain-start predecessor and zero cost.
func (r *runner) init() {
	r.cameFrom[r.start] = parentLink{chainStart: true}
	r.costSoFar[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: r.start, priority: 0})
}

// process is the core A* loop. It repeatedly pops the lowest-priority cell,
// finalizes it, and relaxes its lateral neighbors, until the goal is popped
// (success), the frontier empties (ErrNoRoute), or the expansion budget runs
// out (ErrExpansionLimit).
func (r *runner) process() error {
	var current grid.Cell
	for r.pq.Len() > 0 {
		// 1) Pop the cell with the smallest g + h.
		current = heap.Pop(&r.pq).(*cellItem).cell

		// 2) Skip stale heap entries for already-finalized cells.
		if r.closed[current] {
			continue
		}

		// 3) Finalize. Its costSoFar is now the true minimal cost.
		r.closed[current] = true
		r.expanded++

		// 4) Goal popped ⇒ the admissible heuristic guarantees optimality.
		if current == r.goal {
			return nil
		}

		// 5) Enforce the expansion budget after the goal check, so a budget
		//    of 1 still solves the degenerate start==goal case.
		if r.budget > 0 && r.expanded >= r.budget {
			return fmt.Errorf("%w: closed %d cells", ErrExpansionLimit, r.expanded)
		}

		// 6) Relax every lateral neighbor of the finalized cell.
		if err := r.relax(current); err != nil {
			return err
		}
	}

	// Unreachable goal. On this unbounded lattice that means the oracle (or
	// the configuration) is pathological; still a distinct, explicit outcome.
	return ErrNoRoute
}

// relax evaluates each lateral neighbor n of cell u: if the route through u
// improves n's best known cost, the maps are updated and n is (re-)pushed
// with priority tentative + heuristic(n, goal).
//
// Assumes costSoFar[u] is finalized before the call.
func (r *runner) relax(u grid.Cell) error {
	gU := r.costSoFar[u]

	var (
		cost      float64
		tentative float64
		err       error
	)
	for _, n := range u.Neighbors(r.conn) {
		// Closed cells are finalized; no route through u can improve them.
		if r.closed[n] {
			continue
		}

		// Probe the terrain for the step cost. Oracle failures abort the
		// whole search immediately, wrapped with the offending edge.
		cost, err = r.model.EdgeCost(u, n)
		if err != nil {
			return fmt.Errorf("route: edge cost %v→%v: %w", u, n, err)
		}

		tentative = gU + cost

		// A cell is discovered iff it has a costSoFar entry. Undiscovered or
		// strictly improved ⇒ record and (re-)push; stale duplicates left in
		// the heap are skipped on pop.
		if best, seen := r.costSoFar[n]; seen && tentative >= best {
			continue
		}
		r.costSoFar[n] = tentative
		r.cameFrom[n] = parentLink{cell: u}
		heap.Push(&r.pq, &cellItem{cell: n, priority: tentative + r.model.Heuristic(n, r.goal)})
	}

	return nil
}

// worldPath reconstructs the cell path goal→start from the predecessor map,
// reverses it in place, and maps it through grid.ToWorld. When drape is true
// each point's Y is probed from the oracle instead of staying 0.
func (r *runner) worldPath(drape bool) ([]grid.Point, error) {
	// 1) Collect cells backward until the chain-start marker.
	cells := []grid.Cell{r.goal}
	for link := r.cameFrom[r.goal]; !link.chainStart; link = r.cameFrom[link.cell] {
		cells = append(cells, link.cell)
	}

	// 2) Reverse in place to forward (start→goal) order.
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	// 3) Map to world coordinates; optionally drape onto the surface.
	points := make([]grid.Point, len(cells))
	for i, c := range cells {
		p := grid.ToWorld(c, r.model.Scale)
		if drape {
			h, err := r.model.HeightAt(c)
			if err != nil {
				return nil, fmt.Errorf("route: draping %v: %w", c, err)
			}
			p.Y = h
		}
		points[i] = p
	}

	return points, nil
}

// cellItem represents a frontier entry: a cell and its g + h priority.
type cellItem struct {
	cell     grid.Cell
	priority float64
}

// cellPQ is a min-heap (priority queue) of *cellItem, ordered by priority
// ascending. We use the “lazy-decrease-key” approach: when a shorter route
// to an existing cell is found, a new *cellItem is pushed. The outdated
// entry remains but is ignored when popped (checked via closed[cell]).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → popped first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
