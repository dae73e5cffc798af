// Package session: intent handlers and read-back surface.
//
// Each intent runs to completion before the next is accepted; the
// session adds no locking of its own beyond what the store provides,
// because intents arrive one at a time from a single input loop.

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// ClickEmptySpace spawns a node at the given world position and returns
// its handle. Selection and the pending connection are untouched.
func (s *Session) ClickEmptySpace(x, y float64) core.NodeID {
	return s.graph.AddNode(core.Point{X: x, Y: y})
}

// ClickNode advances the two-click connection gesture:
//
//   - armed with a different node → connect the pair and disarm
//     (a duplicate connection is the store's silent no-op);
//   - otherwise → arm n as the pending source and select it.
//
// Returns ErrUnknownNode (wrapped) if n was never issued by the store.
func (s *Session) ClickNode(n core.NodeID) error {
	if !s.graph.HasNode(n) {
		return fmt.Errorf("session: click node %v: %w", n, core.ErrUnknownNode)
	}

	if s.hasPending && s.pendingSource != n {
		src := s.pendingSource
		s.hasPending = false
		if err := s.graph.AddEdge(src, n); err != nil {
			return fmt.Errorf("session: connect %v-%v: %w", src, n, err)
		}

		return nil
	}

	s.pendingSource, s.hasPending = n, true

	return s.graph.SetMarking(n, core.Selected)
}

// PressStartKey marks the selected node as Start. Without a selection
// this is a no-op: there is nothing to mark.
func (s *Session) PressStartKey() error {
	sel, ok := s.graph.CurrentSelected()
	if !ok {
		return nil
	}

	return s.graph.SetMarking(sel, core.Start)
}

// PressGoalKey marks the selected node as Goal. Without a selection
// this is a no-op.
func (s *Session) PressGoalKey() error {
	sel, ok := s.graph.CurrentSelected()
	if !ok {
		return nil
	}

	return s.graph.SetMarking(sel, core.Goal)
}

// PressComputeKey runs the path engine for the current start → goal
// pair and stores the result (including a "no path" outcome) as the
// last path. A missing start or goal makes this a no-op: the guard
// lives here, not in the engine.
func (s *Session) PressComputeKey() error {
	start, okS := s.graph.CurrentStart()
	goal, okG := s.graph.CurrentGoal()
	if !okS || !okG {
		return nil
	}

	res, err := dijkstra.ShortestPath(s.graph, start, goal)
	if err != nil {
		return fmt.Errorf("session: compute %v→%v: %w", start, goal, err)
	}
	s.lastPath, s.hasPath = res, true

	return nil
}

// Selected returns the handle of the currently selected node, if any.
func (s *Session) Selected() (core.NodeID, bool) { return s.graph.CurrentSelected() }

// Start returns the handle currently holding the Start role, if any.
func (s *Session) Start() (core.NodeID, bool) { return s.graph.CurrentStart() }

// Goal returns the handle currently holding the Goal role, if any.
func (s *Session) Goal() (core.NodeID, bool) { return s.graph.CurrentGoal() }

// PendingConnection returns the armed source of the two-click gesture,
// if any.
func (s *Session) PendingConnection() (core.NodeID, bool) {
	return s.pendingSource, s.hasPending
}

// LastPath returns the most recently computed path result, if any
// computation has run. The result is a snapshot: graph edits after the
// computation do not update it until the next PressComputeKey.
func (s *Session) LastPath() (dijkstra.PathResult, bool) {
	return s.lastPath, s.hasPath
}

// Nodes returns the store's node snapshot for rendering.
func (s *Session) Nodes() []core.Node { return s.graph.Nodes() }

// Edges returns the store's edge snapshot for rendering.
func (s *Session) Edges() []core.Edge { return s.graph.Edges() }

// NodeAt resolves a world position to the node whose center lies within
// the hit radius. The nearest qualifying node wins; exact ties go to
// the lower handle, keeping hit-testing deterministic.
func (s *Session) NodeAt(x, y float64) (core.NodeID, bool) {
	click := core.Point{X: x, Y: y}

	var best core.NodeID
	bestDist := s.hitRadius
	found := false
	for _, n := range s.graph.Nodes() { // sorted ascending: ties keep the lower handle
		if d := n.Pos.Distance(click); d < bestDist {
			best, bestDist, found = n.ID, d, true
		}
	}

	return best, found
}

// HighlightedEdges returns the consecutive node pairs of the last
// computed path, endpoints normalized (lower handle first), for the
// rendering layer to highlight. Empty when no path is stored or the
// last computation found none.
func (s *Session) HighlightedEdges() [][2]core.NodeID {
	if !s.hasPath || !s.lastPath.Found {
		return nil
	}

	out := make([][2]core.NodeID, 0, len(s.lastPath.Nodes)-1)
	for i := 1; i < len(s.lastPath.Nodes); i++ {
		a, b := s.lastPath.Nodes[i-1], s.lastPath.Nodes[i]
		if b < a {
			a, b = b, a
		}
		out = append(out, [2]core.NodeID{a, b})
	}

	return out
}

// FormatPath renders a node sequence as "A -> B -> C" using the
// spreadsheet-style handle labels.
func FormatPath(path []core.NodeID) string {
	labels := make([]string, len(path))
	for i, id := range path {
		labels[i] = id.String()
	}

	return strings.Join(labels, " -> ")
}
