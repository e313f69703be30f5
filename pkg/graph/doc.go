// Package graph provides a mutable directed and undirected graph with
// multigraph support, criterion-based vertex ordering, and reachability
// queries.
//
// # Overview
//
// A [Graph] owns a set of vertices and the edges between them. Vertices
// are addressed by a caller-chosen string ID that is unique within their
// graph; edges carry a generated ID and exist in two flavors, the
// [DirectedEdge] from a source to a target and the symmetric
// [UndirectedEdge]. Parallel edges and self-loops are allowed.
//
// Every object knows its owners: an edge points at its two endpoint
// vertices and its graph, and a vertex points at its incident edges and
// its graph. Mutations keep these references consistent in both
// directions, so destroying a vertex also destroys its incident edges,
// and destroying an edge detaches it from both endpoints.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.CreateVertex], and
// connect them with [Vertex.CreateEdgeTo] for directed edges or
// [Vertex.CreateEdge] for undirected ones:
//
//	g := graph.New(nil)
//	a, _ := g.CreateVertex("a")
//	b, _ := g.CreateVertex("b")
//	e, _ := a.CreateEdgeTo(b)
//
// Query structure with [Vertex.Degree], [Vertex.Successors],
// [Vertex.Edges] and related methods. Remove objects with
// [Vertex.Destroy] and the Destroy method of the edge types. Use
// [Graph.Validate] to verify referential integrity after a long mutation
// sequence.
//
// # Identity
//
// All containment and removal checks compare pointers, never values.
// Two distinct vertices with the same ID in different graphs are
// unrelated objects, and an edge belongs to exactly the two *Vertex
// values it was created with. Consequently the types in this package
// must not be copied; share them as pointers and they behave, copy them
// and the copies are not part of any graph.
//
// # Ordering
//
// [FirstVertex] and [OrderVertices] select and arrange vertices by an
// [Order] criterion: encounter order, ID, one of the degree measures, or
// uniform randomness, each ascending or descending. Sorting is stable,
// so vertices that compare equal keep their encounter order. The
// [Graph.FirstVertex] and [Graph.OrderVertices] conveniences apply the
// same criteria to a graph's full vertex set.
//
// # Search
//
// [BreadthFirst] walks outward from an origin vertex and backs the
// reachability helpers [Vertex.HasPathTo], [Vertex.HasPathFrom],
// [Vertex.VerticesPathTo] and [Vertex.VerticesPathFrom]. Directed edges
// are followed source to target unless the search is [Reversed];
// undirected edges are followed both ways.
//
// # Metadata
//
// Both graphs and vertices carry arbitrary metadata via [Metadata] maps,
// used by the CLI to tag generated fixtures with their generator name
// and seed. Metadata maps are never nil after creation - empty maps are
// automatically initialized.
//
// # Errors
//
// Failures wrap one of four kind sentinels - [ErrInvalidArgument],
// [ErrNotFound], [ErrUnsupported] and [ErrPrecondition] - plus a
// condition sentinel naming the specific failure, such as
// [ErrCrossGraph] or [ErrVertexHasEdges]. Test against either level with
// [errors.Is]. Operations validate before they mutate: a failed call
// leaves every graph unchanged.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must
// synchronize access if multiple goroutines read or modify the same
// graph. Distinct graphs are independent and can be used in parallel.
//
// # Related Packages
//
// The [loader] package generates complete, path, cycle, star and sparse
// random graphs on top of this package. The [observe] package lets
// callers hook graph mutations and searches for logging or metrics.
//
// [loader]: github.com/otengkwame/graph/pkg/loader
// [observe]: github.com/otengkwame/graph/pkg/observe
package graph
