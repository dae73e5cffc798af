// Package waypath is an interactive shortest-path engine: a mutable,
// user-editable weighted graph plus on-demand Dijkstra routing.
//
// 🚀 What is waypath?
//
//	A small, dependency-light core for point-and-click route editors:
//		• Graph store: spawn nodes at 2D positions, connect them with
//		  distance-weighted undirected edges, mutate safely under locks
//		• Marking roles: single-selection plus singleton Start/Goal,
//		  enforced by the store itself
//		• Path engine: Dijkstra with a lazy min-heap, early goal exit,
//		  and a first-class "no path" result
//		• Session: the click/keypress state machine that drives both
//
// ✨ Why choose waypath?
//
//   - Handle-based node identity – stable across edits, no pointers
//   - Deterministic iteration – sorted neighbors, reproducible paths
//   - Pure Go – no cgo, no hidden deps
//   - Render-agnostic – your UI layer reads state back, waypath never
//     draws
//
// Everything is organized under three subpackages:
//
//	core/     — Graph, Node, Edge, Marking and thread-safe primitives
//	dijkstra/ — single-pair shortest path over a core.Graph
//	session/  — intent-driven editor session (click, connect, compute)
//
// Quick ASCII example:
//
//	    A(0,0)───3───B(3,0)
//	                  │
//	                  4
//	                  │
//	                 C(3,4)
//
//	the shortest A→C route is A→B→C with total weight 7.
//
// Dive into the per-package docs and Example tests for full usage.
//
//	go get github.com/katalvlaran/waypath
package waypath
