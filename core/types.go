// Package core defines the central Graph, Node, and Edge types for an
// interactive, user-editable weighted graph, and provides thread-safe
// primitives for building, querying, and marking it.
//
// Nodes carry a 2D position and a Marking (selection plus the singleton
// Start/Goal roles). Edges are undirected, deduplicated, and weighted by
// the Euclidean distance between their endpoints at creation time; the
// weight never changes afterwards.
//
// All core APIs share one sync.RWMutex internally, so a rendering layer
// can read node and edge state while an input layer mutates the graph.
//
// This file declares NodeID, Point, Marking, Node, Edge, Neighbor,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrUnknownNode - referenced node handle does not exist in the store.
//	ErrSelfLoop    - edge endpoints are the same node.
//	ErrBadMarking  - SetMarking called with a compound or unknown role.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a non-existent node.
	// Handles originate from AddNode, so hitting this is a caller-contract
	// violation rather than a normal topology outcome.
	ErrUnknownNode = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop edges are not allowed")

	// ErrBadMarking indicates SetMarking received something other than a
	// single role (Unmarked, Selected, Start, or Goal).
	ErrBadMarking = errors.New("core: marking must be a single role")
)

// NodeID is an opaque, stable handle for a node. Handles are issued by
// AddNode from a monotonic counter and are never reused, so other
// components may hold them freely across graph edits.
type NodeID uint64

// String renders the handle as a spreadsheet-style label: A..Z for the
// first 26 handles, then N26, N27, and so on.
func (id NodeID) String() string {
	if id < 26 {
		return string(rune('A' + id))
	}

	return fmt.Sprintf("N%d", uint64(id))
}

// Point is a position in 2D world coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Marking is the role state of a node, stored as a bitmask.
//
// Selected combines freely with Start or Goal, but Start and Goal are
// mutually exclusive on a single node. Unmarked is the zero value.
// Each of Selected, Start, and Goal is held by at most one node at a
// time; SetMarking enforces that inside the store.
type Marking uint8

const (
	// Unmarked is the default role state of a freshly spawned node.
	Unmarked Marking = 0

	// Selected marks the node as the current single selection.
	Selected Marking = 1 << 0

	// Start marks the node as the path-computation source.
	Start Marking = 1 << 1

	// Goal marks the node as the path-computation target.
	Goal Marking = 1 << 2
)

// Has reports whether m includes the given role bit(s).
func (m Marking) Has(role Marking) bool { return m&role != 0 }

// String renders the marking for logs and test failures,
// e.g. "Start|Selected" or "Unmarked".
func (m Marking) String() string {
	if m == Unmarked {
		return "Unmarked"
	}
	out := ""
	if m.Has(Start) {
		out = "Start"
	}
	if m.Has(Goal) {
		if out != "" {
			out += "|"
		}
		out += "Goal"
	}
	if m.Has(Selected) {
		if out != "" {
			out += "|"
		}
		out += "Selected"
	}

	return out
}

// Node is a spawned graph node: stable handle, world position, and its
// current marking. Position is fixed at spawn time.
type Node struct {
	ID   NodeID
	Pos  Point
	Mark Marking
}

// Edge is an undirected connection between two distinct nodes.
// Endpoints are normalized so that A < B; Weight is the Euclidean
// distance between the endpoint positions when the edge was created
// and is immutable afterwards.
type Edge struct {
	A, B   NodeID
	Weight float64
}

// Neighbor is one element of a node's adjacency view: the node on the
// other side of an incident edge and that edge's weight.
type Neighbor struct {
	ID     NodeID
	Weight float64
}

// Graph is the in-memory store for nodes and undirected weighted edges.
//
// It owns all node and edge data; collaborators hold NodeID handles
// only. Singleton roles (selected/start/goal) are cached so that
// CurrentStart and friends are O(1) instead of a node scan.
type Graph struct {
	mu sync.RWMutex

	nextID uint64 // monotonic handle source, never reused

	nodes     map[NodeID]*Node
	adjacency map[NodeID]map[NodeID]float64 // both directions mirrored
	edgeCount int

	// Cached singleton-role holders.
	selected, start, goal          NodeID
	hasSelected, hasStart, hasGoal bool
}

// NewGraph creates an empty Graph. Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID]map[NodeID]float64),
	}
}
