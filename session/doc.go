// Package session implements the interaction state machine that sits
// between an input/rendering layer and the graph core: it translates
// discrete user intents into store mutations and path computations.
//
// Overview:
//
//	The surrounding UI layer is expected to translate raw pointer and
//	keyboard events into five intents and deliver them one at a time:
//
//	  ClickEmptySpace(x, y) — spawn a node at a world position.
//	  ClickNode(n)          — select-and-arm, or complete a two-click
//	                          connection gesture.
//	  PressStartKey()       — mark the selected node as Start.
//	  PressGoalKey()        — mark the selected node as Goal.
//	  PressComputeKey()     — run the path engine for start → goal.
//
//	Between intents the UI reads state back: Nodes and Edges for
//	drawing, Selected/Start/Goal for coloring, LastPath and
//	HighlightedEdges for the route overlay, NodeAt for hit-testing.
//
// The two-click connection gesture:
//
//	Clicking node A arms it (A becomes both the selection and the
//	pending connection source). Clicking a different node B then adds
//	the edge A—B and disarms. Clicking A again while armed simply
//	re-arms it. Duplicate connections stay silent no-ops, mirroring the
//	store's idempotent AddEdge.
//
// Role bookkeeping:
//
//	Selection, Start, and Goal live in the store's marking state; the
//	session holds no shadow copies that could drift. Only the pending
//	connection source and the last computed path are session-local.
//
// Guards vs. errors:
//
//	Pressing Start/Goal with nothing selected, or Compute without both
//	endpoints set, is a deliberate no-op (there is nothing to do), not
//	an error. Errors surface only for contract violations such as
//	clicking a handle the store never issued.
//
// The session is a persistent loop with no terminal state; intents are
// handled to completion one at a time on the caller's goroutine.
package session
