// Package dijkstra implements single-pair Dijkstra shortest paths over
// a core.Graph with non-negative, distance-derived edge weights.
//
// Overview:
//
//   - ShortestPath computes the minimum-weight route between one start
//     and one goal node, stopping the moment the goal is finalized
//     (Dijkstra's cut property makes the popped distance final, since
//     positional weights are never negative).
//   - An unreachable goal is a legitimate outcome, not an error: the
//     returned PathResult reports Found == false.
//   - start == goal short-circuits to a single-node path of weight 0
//     without running the algorithm.
//
// Key features:
//
//   - Lazy decrease-key: the min-heap tolerates duplicate entries and
//     skips stale ones on pop, trading a small constant factor for a
//     plain container/heap queue.
//   - Deterministic tie-break: equal-distance heap entries order by
//     NodeID ascending, so equal-weight alternatives reproduce across
//     runs. This never affects the reported path weight.
//   - WithMaxDistance caps exploration for large graphs; a goal beyond
//     the cap reports "no path".
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once (V pops that do work).
//   - Each relaxation improvement pushes one heap entry (up to E).
//   - Space: O(V + E) for the distance/predecessor maps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     a nil *core.Graph was supplied.
//   - ErrNodeNotFound: start or goal is absent from the graph. This is
//     a caller-contract violation, distinct from the non-error
//     "no path" result.
//   - ErrBadMaxDistance: surfaced via panic from WithMaxDistance when
//     given a negative or NaN cap.
//
// Thread safety:
//
//   - ShortestPath takes read-only snapshots through the store's own
//     locks; do not mutate the graph concurrently with a computation
//     if you need a consistent topology for the whole run.
package dijkstra
