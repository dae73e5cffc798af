// Package dijkstra defines the result type, configuration options, and
// sentinel errors for the single-pair shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates the start or goal handle is absent from
	// the graph. This is a caller-contract violation and is reported as
	// an error rather than silently returning "no path".
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative
	// or NaN cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// PathResult is the outcome of one shortest-path computation.
//
// When Found is true, Nodes is the ordered route from start to goal
// inclusive and Weight is the sum of its edge weights. When Found is
// false the goal is unreachable: Nodes is nil and Weight is +Inf.
type PathResult struct {
	Nodes  []core.NodeID
	Weight float64
	Found  bool
}

// String renders the route for logs and debugging,
// e.g. "A -> B -> C", or "no path" when the goal was unreachable.
func (r PathResult) String() string {
	if !r.Found {
		return "no path"
	}
	labels := make([]string, len(r.Nodes))
	for i, id := range r.Nodes {
		labels[i] = id.String()
	}

	return strings.Join(labels, " -> ")
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance: nodes whose tentative distance exceeds this cap are not
// finalized; default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance caps exploration: nodes farther than max from the
// start are never finalized, so a goal beyond the cap yields the
// "no path" result. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no overrides are given:
// MaxDistance = +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
