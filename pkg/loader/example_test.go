package loader_test

import (
	"fmt"

	"github.com/otengkwame/graph/pkg/graph"
	"github.com/otengkwame/graph/pkg/loader"
)

func ExamplePath() {
	g, _ := loader.Path(4, loader.WithDirected())

	head, _ := g.Vertex("0")
	tail, _ := g.Vertex("3")

	fmt.Println(g.VertexCount(), "vertices,", g.EdgeCount(), "edges")
	fmt.Println("head reaches tail:", head.HasPathTo(tail))
	fmt.Println("tail reaches head:", tail.HasPathTo(head))
	// Output:
	// 4 vertices, 3 edges
	// head reaches tail: true
	// tail reaches head: false
}

func ExampleCycle() {
	g, _ := loader.Cycle(3, loader.WithDirected())

	first, _ := g.Vertex("0")
	last, _ := g.Vertex("2")

	fmt.Println("wraps around:", last.HasPathTo(first))
	// Output:
	// wraps around: true
}

func ExampleStar() {
	g, _ := loader.Star(5)

	hub, _ := graph.FirstVertex(g.Vertices(), graph.OrderDegree, true)

	fmt.Println("hub:", hub.ID(), "with degree", hub.Degree())
	// Output:
	// hub: 0 with degree 4
}

func ExampleComplete() {
	g, _ := loader.Complete(3)

	fmt.Println(g.EdgeCount(), "edges")
	for _, v := range g.Vertices() {
		fmt.Println(v.ID(), "has degree", v.Degree())
	}
	// Output:
	// 3 edges
	// 0 has degree 2
	// 1 has degree 2
	// 2 has degree 2
}

func ExampleSparse() {
	g, _ := loader.Sparse(20, 0.25, loader.WithSeed(7))

	fmt.Println(g.VertexCount(), "vertices")
	fmt.Println("consistent:", g.Validate() == nil)
	// Output:
	// 20 vertices
	// consistent: true
}
