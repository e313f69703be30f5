package graph

import (
	"fmt"
	"slices"
)

// Vertex is a node of a graph. It owns its adjacency list and answers
// degree, flow, and connectivity queries over it.
//
// Vertices are created through [Graph.CreateVertex] and friends and hold a
// back-reference to their owning graph. All state is unexported and the
// API works exclusively with pointers, so copying a Vertex value is
// meaningless: identity, not value equality, is the basis for every
// containment check and comparison.
type Vertex struct {
	id      string
	graph   *Graph
	edges   []Edge // insertion order; a self-loop appears twice
	meta    Metadata
	balance int64
	hasBal  bool
}

// ID returns the vertex identifier, unique within its owning graph and
// immutable after construction.
func (v *Vertex) ID() string { return v.id }

// Graph returns the owning graph, or nil after the vertex was destroyed.
func (v *Vertex) Graph() *Graph { return v.graph }

// Meta returns the vertex metadata map. The returned map is never nil and
// can be safely modified.
func (v *Vertex) Meta() Metadata { return v.meta }

// String returns the vertex ID.
func (v *Vertex) String() string { return v.id }

// Balance returns the optional balance annotation and whether it is set.
// Balance is independent of edge flow and exists for external flow
// bookkeeping such as supply/demand assignments.
func (v *Vertex) Balance() (int64, bool) { return v.balance, v.hasBal }

// SetBalance sets the balance annotation.
func (v *Vertex) SetBalance(balance int64) {
	v.balance = balance
	v.hasBal = true
}

// ClearBalance removes the balance annotation.
func (v *Vertex) ClearBalance() {
	v.balance = 0
	v.hasBal = false
}

// CreateEdgeTo constructs a directed edge from this vertex to target,
// registers it on both adjacency lists and with the owning graph, and
// returns it. Both vertices must belong to the same graph; otherwise
// ErrCrossGraph (or ErrDetachedVertex for a destroyed endpoint) is
// returned before any state changes.
func (v *Vertex) CreateEdgeTo(target *Vertex) (*DirectedEdge, error) {
	if err := v.checkEndpoint(target); err != nil {
		return nil, err
	}
	e := newDirectedEdge(v.graph, v, target)
	v.edges = append(v.edges, e)
	target.edges = append(target.edges, e)
	v.graph.addEdge(e)
	return e, nil
}

// CreateEdge constructs an undirected edge between this vertex and other,
// registers it on both adjacency lists and with the owning graph, and
// returns it. The same-graph precondition of [Vertex.CreateEdgeTo]
// applies.
func (v *Vertex) CreateEdge(other *Vertex) (*UndirectedEdge, error) {
	if err := v.checkEndpoint(other); err != nil {
		return nil, err
	}
	e := newUndirectedEdge(v.graph, v, other)
	v.edges = append(v.edges, e)
	other.edges = append(other.edges, e)
	v.graph.addEdge(e)
	return e, nil
}

// checkEndpoint verifies that an edge between v and other would stay
// within one live graph.
func (v *Vertex) checkEndpoint(other *Vertex) error {
	if v.graph == nil {
		return fmt.Errorf("%w: %q", ErrDetachedVertex, v.id)
	}
	if other == nil || other.graph == nil {
		return fmt.Errorf("%w: target of edge from %q", ErrDetachedVertex, v.id)
	}
	if other.graph != v.graph {
		return fmt.Errorf("%w: %q and %q", ErrCrossGraph, v.id, other.id)
	}
	return nil
}

// removeEdge drops one occurrence of e from the adjacency list, comparing
// by identity. Only the edge destruction path calls this; a missing
// occurrence means the back-reference invariant is broken.
func (v *Vertex) removeEdge(e Edge) error {
	for i, have := range v.edges {
		if have == e {
			v.edges = slices.Delete(v.edges, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %s not incident to %q", ErrEdgeNotFound, e, v.id)
}

// Edges returns a copy of the adjacency list in insertion order.
// A self-loop appears twice, once per endpoint role.
func (v *Vertex) Edges() []Edge { return slices.Clone(v.edges) }

// EdgesOut returns the incident edges that can be traversed away from
// this vertex. Undirected edges always qualify; a directed loop appears
// twice.
func (v *Vertex) EdgesOut() []Edge {
	var out []Edge
	for _, e := range v.edges {
		if e.HasSource(v) {
			out = append(out, e)
		}
	}
	return out
}

// EdgesIn returns the incident edges that can be traversed towards this
// vertex. Undirected edges always qualify; a directed loop appears twice.
func (v *Vertex) EdgesIn() []Edge {
	var in []Edge
	for _, e := range v.edges {
		if e.HasTarget(v) {
			in = append(in, e)
		}
	}
	return in
}

// EdgesTo returns every incident edge leading from this vertex to other.
// Parallel edges are all included.
func (v *Vertex) EdgesTo(other *Vertex) []Edge {
	var out []Edge
	for _, e := range v.edges {
		if e.Connects(v, other) {
			out = append(out, e)
		}
	}
	return out
}

// EdgesFrom returns every incident edge leading from other to this
// vertex. Parallel edges are all included.
func (v *Vertex) EdgesFrom(other *Vertex) []Edge {
	var in []Edge
	for _, e := range v.edges {
		if e.Connects(other, v) {
			in = append(in, e)
		}
	}
	return in
}

// HasEdgeTo reports whether a direct edge leads from this vertex to
// other. Undirected edges count in both directions.
func (v *Vertex) HasEdgeTo(other *Vertex) bool {
	for _, e := range v.edges {
		if e.Connects(v, other) {
			return true
		}
	}
	return false
}

// HasEdgeFrom reports whether a direct edge leads from other to this
// vertex. Undirected edges count in both directions.
func (v *Vertex) HasEdgeFrom(other *Vertex) bool {
	for _, e := range v.edges {
		if e.Connects(other, v) {
			return true
		}
	}
	return false
}

// Adjacent returns the neighboring vertices in either direction, keyed by
// vertex ID so parallel edges collapse to one entry. A vertex with a loop
// is adjacent to itself.
func (v *Vertex) Adjacent() map[string]*Vertex {
	adj := make(map[string]*Vertex)
	for _, e := range v.edges {
		other, err := e.TargetFor(v)
		if err != nil {
			other, _ = e.SourceFor(v)
		}
		adj[other.ID()] = other
	}
	return adj
}

// Successors returns the vertices this vertex has an edge to, keyed by
// vertex ID. Undirected edges contribute their opposite endpoint.
func (v *Vertex) Successors() map[string]*Vertex {
	succ := make(map[string]*Vertex)
	for _, e := range v.edges {
		if !e.HasSource(v) {
			continue
		}
		if other, err := e.TargetFor(v); err == nil {
			succ[other.ID()] = other
		}
	}
	return succ
}

// Predecessors returns the vertices that have an edge to this vertex,
// keyed by vertex ID. Undirected edges contribute their opposite
// endpoint.
func (v *Vertex) Predecessors() map[string]*Vertex {
	pred := make(map[string]*Vertex)
	for _, e := range v.edges {
		if !e.HasTarget(v) {
			continue
		}
		if other, err := e.SourceFor(v); err == nil {
			pred[other.ID()] = other
		}
	}
	return pred
}

// Degree returns the number of incident edge-endpoint occurrences.
// A self-loop counts twice.
func (v *Vertex) Degree() int { return len(v.edges) }

// DegreeIn returns the number of adjacency occurrences where this vertex
// acts as the target. Undirected edges count; a directed loop counts
// twice because it occupies both endpoint roles.
func (v *Vertex) DegreeIn() int {
	n := 0
	for _, e := range v.edges {
		if e.HasTarget(v) {
			n++
		}
	}
	return n
}

// DegreeOut returns the number of adjacency occurrences where this vertex
// acts as the source. Undirected edges count; a directed loop counts
// twice.
func (v *Vertex) DegreeOut() int {
	n := 0
	for _, e := range v.edges {
		if e.HasSource(v) {
			n++
		}
	}
	return n
}

// IsIsolated reports whether the vertex has no incident edges.
func (v *Vertex) IsIsolated() bool { return len(v.edges) == 0 }

// IsLeaf reports whether the vertex has degree exactly 1.
func (v *Vertex) IsLeaf() bool { return v.Degree() == 1 }

// IsSource reports whether no edge can be traversed towards this vertex
// (indegree 0).
func (v *Vertex) IsSource() bool { return v.DegreeIn() == 0 }

// IsSink reports whether no edge can be traversed away from this vertex
// (outdegree 0).
func (v *Vertex) IsSink() bool { return v.DegreeOut() == 0 }

// HasLoop reports whether any incident edge starts and ends here.
func (v *Vertex) HasLoop() bool {
	for _, e := range v.edges {
		if e.IsLoop() {
			return true
		}
	}
	return false
}

// Flow returns the net flow of the vertex, the sum of inflow minus the
// sum of outflow over its directed edges. A loop carries the same amount
// in and out and nets zero. If any incident edge is undirected the local
// topology has no defined flow and ErrUndirectedFlow is returned.
func (v *Vertex) Flow() (int64, error) {
	var flow int64
	for _, e := range v.edges {
		de, ok := e.(*DirectedEdge)
		if !ok {
			return 0, fmt.Errorf("%w: %s is incident to %q", ErrUndirectedFlow, e, v.id)
		}
		if de.IsLoop() {
			continue
		}
		if de.HasSource(v) {
			flow -= de.Flow()
		} else {
			flow += de.Flow()
		}
	}
	return flow, nil
}

// HasPathTo reports whether a path following edge directions leads from
// this vertex to target. The check runs a fresh breadth-first walk.
func (v *Vertex) HasPathTo(target *Vertex) bool {
	return NewBreadthFirst(v).HasVertex(target)
}

// HasPathFrom reports whether a path following edge directions leads from
// source to this vertex.
func (v *Vertex) HasPathFrom(source *Vertex) bool {
	return source.HasPathTo(v)
}

// VerticesPathTo returns every vertex reachable from this vertex, keyed
// by vertex ID. The vertex itself is always included.
func (v *Vertex) VerticesPathTo() map[string]*Vertex {
	return NewBreadthFirst(v).VertexMap()
}

// VerticesPathFrom returns every vertex that can reach this vertex, keyed
// by vertex ID. The vertex itself is always included.
func (v *Vertex) VerticesPathFrom() map[string]*Vertex {
	return NewBreadthFirst(v, Reversed()).VertexMap()
}

// Destroy removes the vertex and everything attached to it: every
// incident edge is destroyed first (detaching it from the opposite
// endpoint and the graph), then the graph drops the vertex itself. The
// vertex is detached afterwards and unusable; destroying it again returns
// ErrVertexNotFound.
func (v *Vertex) Destroy() error {
	if v.graph == nil {
		return fmt.Errorf("%w: %q was already destroyed", ErrVertexNotFound, v.id)
	}
	for len(v.edges) > 0 {
		if err := v.edges[0].Destroy(); err != nil {
			return err
		}
	}
	if err := v.graph.removeVertex(v); err != nil {
		return err
	}
	v.graph = nil
	return nil
}
