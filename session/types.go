// Package session: options and the Session type definition.
package session

import (
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// DefaultHitRadius is the node hit-test radius in world units, matching
// the visual node radius of the reference editor.
const DefaultHitRadius = 20.0

// Option configures a Session at construction time.
type Option func(*Session)

// WithGraph attaches an existing store instead of creating a fresh one,
// for callers that pre-build or share the graph. Nil graphs are ignored.
func WithGraph(g *core.Graph) Option {
	return func(s *Session) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithHitRadius overrides the node hit-test radius used by NodeAt.
// Panics on a non-positive radius.
func WithHitRadius(r float64) Option {
	return func(s *Session) {
		if r <= 0 {
			panic("session: hit radius must be positive")
		}
		s.hitRadius = r
	}
}

// Session is the interaction state machine for one editing session.
//
// It owns (or adopts) a core.Graph and drives it through user intents.
// Selection and the Start/Goal roles are stored as node markings in the
// graph itself; the session keeps only the pending connection source of
// the two-click gesture and the most recent path result.
type Session struct {
	graph     *core.Graph
	hitRadius float64

	pendingSource core.NodeID
	hasPending    bool

	lastPath dijkstra.PathResult
	hasPath  bool
}

// NewSession creates a session over a fresh empty graph, unless
// WithGraph supplies one. Initial state: nothing selected, nothing
// armed, no start, no goal, no computed path.
func NewSession(opts ...Option) *Session {
	s := &Session{
		graph:     core.NewGraph(),
		hitRadius: DefaultHitRadius,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph exposes the underlying store for direct reads by collaborators.
func (s *Session) Graph() *core.Graph { return s.graph }
