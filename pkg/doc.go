// Package pkg provides the graph workbench libraries.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [graph] - The mutable graph core (vertices, edges, ordering, search)
//  2. [loader] - Standard topology generators (complete, path, cycle, star, sparse)
//  3. [observe] - Hook registry for mutation and search instrumentation
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build a topology and query it:
//
//	import (
//	    "github.com/otengkwame/graph/pkg/graph"
//	    "github.com/otengkwame/graph/pkg/loader"
//	)
//
//	// 1. Generate a directed ring
//	g, _ := loader.Cycle(5, loader.WithDirected())
//
//	// 2. Order its vertices
//	busiest, _ := g.FirstVertex(graph.OrderDegree, true)
//
//	// 3. Walk it
//	origin, _ := g.Vertex("0")
//	reachable := origin.VerticesPathTo()
//
// # Main Packages
//
// [graph] - Vertices, directed and undirected edges, and the graph
// container with referential integrity across mutation. Includes the
// ordering criteria (fifo, id, degree, indegree, outdegree, random),
// degree and flow accounting, and breadth first search.
//
// [loader] - Deterministic topology generators built on the graph
// package, with options for direction, seeding, and random edge flows.
//
// [observe] - Hook interfaces with no-op defaults for observing graph
// mutations and traversals without coupling the core to a logging
// backend.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/graph/...    # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/otengkwame/graph/pkg/graph
// [loader]: https://pkg.go.dev/github.com/otengkwame/graph/pkg/loader
// [observe]: https://pkg.go.dev/github.com/otengkwame/graph/pkg/observe
// [buildinfo]: https://pkg.go.dev/github.com/otengkwame/graph/pkg/buildinfo
package pkg
