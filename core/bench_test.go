package core_test

import (
	"testing"

	"github.com/katalvlaran/waypath/core"
)

// buildStar creates a hub node connected to n spokes.
func buildStar(n int) (*core.Graph, core.NodeID) {
	g := core.NewGraph()
	hub := g.AddNode(core.Point{X: 0, Y: 0})
	for i := 0; i < n; i++ {
		s := g.AddNode(core.Point{X: float64(i + 1), Y: 0})
		_ = g.AddEdge(hub, s)
	}

	return g, hub
}

func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddNode(core.Point{X: float64(i), Y: float64(i)})
	}
}

func BenchmarkAddEdge_Duplicate(b *testing.B) {
	g := core.NewGraph()
	u := g.AddNode(core.Point{X: 0, Y: 0})
	v := g.AddNode(core.Point{X: 1, Y: 0})
	_ = g.AddEdge(u, v)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(u, v) // exercises the dedup fast path
	}
}

func BenchmarkNeighbors_Star100(b *testing.B) {
	g, hub := buildStar(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Neighbors(hub); err != nil {
			b.Fatal(err)
		}
	}
}
