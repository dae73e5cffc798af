// Package core: Graph method implementations.
//
// This file provides the mutation and query operations on the Graph
// type defined in types.go. Adjacency is stored as a nested map
// adjacency[a][b] = weight, mirrored in both directions for undirected
// traversal, giving constant-time existence checks and edge insertion.
// All query methods that return sequences sort them for deterministic
// iteration.

package core

import "sort"

// AddNode spawns a new node at the given position and returns its
// fresh, unique handle. The node starts Unmarked. AddNode never fails.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(pos Point) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(g.nextID)
	g.nextID++

	g.nodes[id] = &Node{ID: id, Pos: pos}
	g.adjacency[id] = make(map[NodeID]float64)

	return id
}

// HasNode reports whether a node with the given handle exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Position returns the world position of the node.
// Returns ErrUnknownNode if the handle is absent. Complexity: O(1).
func (g *Graph) Position(id NodeID) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Point{}, ErrUnknownNode
	}

	return n.Pos, nil
}

// AddEdge connects a and b with an undirected edge whose weight is the
// Euclidean distance between their positions at this moment.
//
// Returns ErrSelfLoop if a == b and ErrUnknownNode if either endpoint
// is absent. Re-adding an existing edge (in either argument order) is
// a silent no-op: the store stays with exactly one edge per pair.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b NodeID) error {
	// 1) Self-loops are rejected before anything else.
	if a == b {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist; handles are never implied.
	na, ok := g.nodes[a]
	if !ok {
		return ErrUnknownNode
	}
	nb, ok := g.nodes[b]
	if !ok {
		return ErrUnknownNode
	}

	// 3) Duplicate edges are idempotent no-ops, not errors.
	if _, dup := g.adjacency[a][b]; dup {
		return nil
	}

	// 4) Weight is fixed at creation time from current positions.
	w := na.Pos.Distance(nb.Pos)
	g.adjacency[a][b] = w
	g.adjacency[b][a] = w
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge between a and b exists. Symmetric in
// its arguments. Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Neighbors returns all edges incident to the node as (neighbor, weight)
// pairs, sorted by neighbor handle ascending for reproducible iteration.
// Returns ErrUnknownNode if the handle is absent.
// Complexity: O(d log d) where d is the node degree.
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrUnknownNode
	}

	out := make([]Neighbor, 0, len(g.adjacency[id]))
	for v, w := range g.adjacency[id] {
		out = append(out, Neighbor{ID: v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the number of edges incident to the node.
// Returns ErrUnknownNode if the handle is absent. Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrUnknownNode
	}

	return len(g.adjacency[id]), nil
}

// SetMarking assigns a single role to the node, enforcing the singleton
// invariants inside the store so that no caller has to:
//
//   - Selected moves the single selection: the previous holder loses
//     its Selected bit (keeping Start/Goal if it had them).
//   - Start demotes the previous Start holder (it keeps Selected if it
//     had it) and, if this node currently holds Goal, strips Goal from
//     it first; a node never holds Start and Goal at once.
//   - Goal behaves symmetrically.
//   - Unmarked clears every role from this node and releases any cached
//     role it held.
//
// Returns ErrBadMarking if m is not exactly one of the four role
// values, ErrUnknownNode if the handle is absent. Complexity: O(1).
func (g *Graph) SetMarking(id NodeID, m Marking) error {
	switch m {
	case Unmarked, Selected, Start, Goal:
	default:
		return ErrBadMarking
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrUnknownNode
	}

	switch m {
	case Unmarked:
		n.Mark = Unmarked
		if g.hasSelected && g.selected == id {
			g.hasSelected = false
		}
		if g.hasStart && g.start == id {
			g.hasStart = false
		}
		if g.hasGoal && g.goal == id {
			g.hasGoal = false
		}

	case Selected:
		if g.hasSelected && g.selected != id {
			g.nodes[g.selected].Mark &^= Selected
		}
		n.Mark |= Selected
		g.selected, g.hasSelected = id, true

	case Start:
		// Start and Goal never coexist on one node: the newer role wins
		// and the older one becomes vacant until reassigned.
		if g.hasGoal && g.goal == id {
			n.Mark &^= Goal
			g.hasGoal = false
		}
		if g.hasStart && g.start != id {
			g.nodes[g.start].Mark &^= Start
		}
		n.Mark |= Start
		g.start, g.hasStart = id, true

	case Goal:
		if g.hasStart && g.start == id {
			n.Mark &^= Start
			g.hasStart = false
		}
		if g.hasGoal && g.goal != id {
			g.nodes[g.goal].Mark &^= Goal
		}
		n.Mark |= Goal
		g.goal, g.hasGoal = id, true
	}

	return nil
}

// MarkingOf returns the node's current marking.
// Returns ErrUnknownNode if the handle is absent. Complexity: O(1).
func (g *Graph) MarkingOf(id NodeID) (Marking, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Unmarked, ErrUnknownNode
	}

	return n.Mark, nil
}

// CurrentSelected returns the handle currently holding Selected, if any.
// Complexity: O(1).
func (g *Graph) CurrentSelected() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.selected, g.hasSelected
}

// CurrentStart returns the handle currently holding Start, if any.
// Complexity: O(1).
func (g *Graph) CurrentStart() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.hasStart
}

// CurrentGoal returns the handle currently holding Goal, if any.
// Complexity: O(1).
func (g *Graph) CurrentGoal() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal, g.hasGoal
}

// Nodes returns a snapshot of all nodes (position and marking included),
// sorted by handle ascending. The slice and its elements are copies and
// safe for the caller to retain. Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns a snapshot of all edges with normalized endpoints
// (A < B), sorted by (A, B) ascending. Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for a, row := range g.adjacency {
		for b, w := range row {
			if a < b { // each undirected edge reported once
				out = append(out, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// NodeCount returns the total number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
