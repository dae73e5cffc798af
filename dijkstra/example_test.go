// Package dijkstra_test provides examples demonstrating the shortest-path
// engine. Each example is runnable via "go test -run Example", showing
// both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// ExampleShortestPath demonstrates routing across a right triangle whose
// hypotenuse edge is missing: the only route goes around the legs.
func ExampleShortestPath() {
	// 1) Spawn three nodes forming a 3-4-5 right triangle.
	g := core.NewGraph()
	a := g.AddNode(core.Point{X: 0, Y: 0})
	b := g.AddNode(core.Point{X: 3, Y: 0})
	c := g.AddNode(core.Point{X: 3, Y: 4})

	// 2) Connect only the legs: A—B (weight 3) and B—C (weight 4).
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)

	// 3) Route from A to C. With no direct hypotenuse edge, the path
	//    must pass through B for a total weight of 7.
	res, err := dijkstra.ShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s (weight %.0f)\n", res, res.Weight)
	// Output: A -> B -> C (weight 7)
}

// ExampleShortestPath_noPath demonstrates that an unreachable goal is a
// result, not an error.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	a := g.AddNode(core.Point{X: 0, Y: 0})
	b := g.AddNode(core.Point{X: 100, Y: 100}) // isolated island

	res, err := dijkstra.ShortestPath(g, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v result=%s\n", res.Found, res)
	// Output: found=false result=no path
}

// ExampleShortestPath_trivial demonstrates the start == goal
// short-circuit: a single-node path of weight 0.
func ExampleShortestPath_trivial() {
	g := core.NewGraph()
	s := g.AddNode(core.Point{X: 2, Y: 2})

	res, _ := dijkstra.ShortestPath(g, s, s)
	fmt.Printf("%s (weight %.0f)\n", res, res.Weight)
	// Output: A (weight 0)
}
