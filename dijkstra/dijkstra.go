// Package dijkstra: the single-pair shortest-path computation.
//
// The implementation is the classic priority-queue relaxation with a
// "lazy" decrease-key strategy: instead of an indexed heap, every
// improvement pushes a fresh entry and stale duplicates are skipped on
// pop via the visited set. Positional edge weights are non-negative by
// construction, so the first time the goal is popped its distance is
// final and the loop exits early.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// ShortestPath computes the minimum-weight route from start to goal in g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must exist in g (ErrNodeNotFound, wrapped with the handle).
//  3. goal must exist in g (ErrNodeNotFound, wrapped with the handle).
//
// A trivial query (start == goal) returns a single-node path of weight 0
// without running the algorithm. An unreachable goal returns a PathResult
// with Found == false and a nil error: disconnection is graph topology,
// not a fault.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, goal core.NodeID, opts ...Option) (PathResult, error) {
	// 1) Build options from defaults plus overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return PathResult{}, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	if !g.HasNode(goal) {
		return PathResult{}, fmt.Errorf("%w: goal %v", ErrNodeNotFound, goal)
	}

	// 3) Trivial query: the path is the start node itself.
	if start == goal {
		return PathResult{Nodes: []core.NodeID{start}, Weight: 0, Found: true}, nil
	}

	// 4) Initialize runner state and execute the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		goal:    goal,
		dist:    make(map[core.NodeID]float64),
		prev:    make(map[core.NodeID]core.NodeID),
		visited: make(map[core.NodeID]bool),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g           *core.Graph // input graph; read-only during the run
	options     Options
	start, goal core.NodeID
	dist        map[core.NodeID]float64     // best-known distance from start
	prev        map[core.NodeID]core.NodeID // predecessor on the best path
	visited     map[core.NodeID]bool        // finalized nodes
	pq          nodePQ                      // lazy min-heap of (node, dist)
}

// init sets all distances to +Inf except the start at 0 and seeds the heap.
func (r *runner) init() {
	for _, n := range r.g.Nodes() {
		r.dist[n.ID] = math.Inf(1)
	}
	r.dist[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.start, dist: 0})
}

// process pops the closest unfinalized node, relaxes its incident edges,
// and exits the moment the goal is finalized. Draining the heap without
// reaching the goal means the goal sits in another component.
func (r *runner) process() (PathResult, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u, d := item.id, item.dist

		// Stale duplicate from an earlier relaxation improvement.
		if r.visited[u] {
			continue
		}

		// Everything still queued is at least this far away; beyond the
		// cap there is nothing left worth finalizing.
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true

		// The popped distance is final (non-negative weights).
		if u == r.goal {
			return PathResult{Nodes: r.reconstruct(), Weight: d, Found: true}, nil
		}

		if err := r.relax(u); err != nil {
			return PathResult{}, err
		}
	}

	// Heap drained (or cap hit) before the goal was finalized.
	return PathResult{Weight: math.Inf(1), Found: false}, nil
}

// relax attempts to improve the distance of every neighbor of u,
// pushing a fresh heap entry on each improvement.
func (r *runner) relax(u core.NodeID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	du := r.dist[u]
	for _, nb := range neighbors {
		newDist := du + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, to keep duplicate pushes bounded.
		if newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		heap.Push(&r.pq, nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// reconstruct follows predecessor links from goal back to start and
// reverses the result.
func (r *runner) reconstruct() []core.NodeID {
	path := []core.NodeID{r.goal}
	for cur := r.goal; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one heap entry: a node and its tentative distance at the
// time it was pushed.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, with the
// node handle as a deterministic tie-break for equal distances.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
