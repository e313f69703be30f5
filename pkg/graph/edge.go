package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Edge is a connection between two vertices of a single graph.
// Edges are created through [Vertex.CreateEdgeTo] and [Vertex.CreateEdge]
// and destroyed through [Edge.Destroy]; direct adjacency manipulation is
// not possible. Every edge carries a generated identifier that is unique
// for the lifetime of the process.
//
// Containment is by reference identity: two edges with the same endpoints
// are still distinct, and parallel edges between the same vertices are
// allowed.
type Edge interface {
	// ID returns the edge's generated unique identifier.
	ID() string

	// Graph returns the owning graph, or nil after the edge was destroyed.
	Graph() *Graph

	// Directed reports whether the edge distinguishes a start and an end
	// endpoint.
	Directed() bool

	// Ends returns both endpoints. For a directed edge the first vertex is
	// the start and the second the end; for an undirected edge the order
	// is the construction order and carries no meaning.
	Ends() (*Vertex, *Vertex)

	// HasSource reports whether v can act as the source endpoint of this
	// edge. Undirected edges test plain membership.
	HasSource(v *Vertex) bool

	// HasTarget reports whether v can act as the target endpoint of this
	// edge. Undirected edges test plain membership.
	HasTarget(v *Vertex) bool

	// Connects reports whether the edge leads from one vertex to the
	// other: for directed edges from must be the start and to the end, for
	// undirected edges either assignment matches.
	Connects(from, to *Vertex) bool

	// TargetFor returns the endpoint reached when traversing the edge away
	// from source. Returns ErrInvalidEndpoint if source cannot act as the
	// source of this edge.
	TargetFor(source *Vertex) (*Vertex, error)

	// SourceFor returns the endpoint the edge is traversed from in order
	// to arrive at target. Returns ErrInvalidEndpoint if target cannot act
	// as the target of this edge.
	SourceFor(target *Vertex) (*Vertex, error)

	// IsLoop reports whether both endpoints are the same vertex.
	IsLoop() bool

	// Destroy removes the edge from both endpoints' adjacency lists and
	// from the graph's edge collection. This is the only way to delete an
	// edge. Destroying an edge twice returns ErrEdgeNotFound.
	Destroy() error

	// String returns a short textual form such as "a -> b" or "a -- b".
	String() string
}

// edgeCore holds the state shared by both edge kinds. The endpoint fields
// are back-references; the edge does not own its vertices.
type edgeCore struct {
	id    string
	graph *Graph
	a     *Vertex
	b     *Vertex
}

func newEdgeCore(g *Graph, a, b *Vertex) edgeCore {
	return edgeCore{id: uuid.NewString(), graph: g, a: a, b: b}
}

// ID returns the edge's generated unique identifier.
func (e *edgeCore) ID() string { return e.id }

// Graph returns the owning graph, or nil after destruction.
func (e *edgeCore) Graph() *Graph { return e.graph }

// Ends returns both endpoints in construction order.
func (e *edgeCore) Ends() (*Vertex, *Vertex) { return e.a, e.b }

// IsLoop reports whether both endpoints are the same vertex.
func (e *edgeCore) IsLoop() bool { return e.a == e.b }

// DirectedEdge is an edge with a distinguished start and end. It carries
// an optional flow value used by [Vertex.Flow].
type DirectedEdge struct {
	edgeCore
	flow int64
}

// newDirectedEdge constructs a directed edge without registering it
// anywhere. Registration happens in Vertex.CreateEdgeTo.
func newDirectedEdge(g *Graph, from, to *Vertex) *DirectedEdge {
	return &DirectedEdge{edgeCore: newEdgeCore(g, from, to)}
}

// Start returns the vertex the edge points away from.
func (e *DirectedEdge) Start() *Vertex { return e.a }

// End returns the vertex the edge points at.
func (e *DirectedEdge) End() *Vertex { return e.b }

// Directed reports true.
func (e *DirectedEdge) Directed() bool { return true }

// Flow returns the flow value carried by the edge. The default is 0.
func (e *DirectedEdge) Flow() int64 { return e.flow }

// SetFlow updates the flow value carried by the edge.
func (e *DirectedEdge) SetFlow(flow int64) { e.flow = flow }

// HasSource reports whether v is the start of the edge.
// The comparison is by identity, never by ID value.
func (e *DirectedEdge) HasSource(v *Vertex) bool { return e.a == v }

// HasTarget reports whether v is the end of the edge.
func (e *DirectedEdge) HasTarget(v *Vertex) bool { return e.b == v }

// Connects reports whether the edge leads from from to to.
func (e *DirectedEdge) Connects(from, to *Vertex) bool { return e.a == from && e.b == to }

// TargetFor returns the end of the edge when source is its start, and
// ErrInvalidEndpoint otherwise.
func (e *DirectedEdge) TargetFor(source *Vertex) (*Vertex, error) {
	if source != e.a {
		return nil, fmt.Errorf("%w: %q is not the start of %s", ErrInvalidEndpoint, source.ID(), e)
	}
	return e.b, nil
}

// SourceFor returns the start of the edge when target is its end, and
// ErrInvalidEndpoint otherwise.
func (e *DirectedEdge) SourceFor(target *Vertex) (*Vertex, error) {
	if target != e.b {
		return nil, fmt.Errorf("%w: %q is not the end of %s", ErrInvalidEndpoint, target.ID(), e)
	}
	return e.a, nil
}

// Destroy removes the edge from both endpoints and from the graph.
func (e *DirectedEdge) Destroy() error { return destroyEdge(e, &e.edgeCore) }

// String returns "start -> end" using the endpoint IDs.
func (e *DirectedEdge) String() string { return fmt.Sprintf("%s -> %s", e.a.ID(), e.b.ID()) }

// UndirectedEdge is an edge whose endpoints play no distinct roles.
type UndirectedEdge struct {
	edgeCore
}

// newUndirectedEdge constructs an undirected edge without registering it
// anywhere. Registration happens in Vertex.CreateEdge.
func newUndirectedEdge(g *Graph, a, b *Vertex) *UndirectedEdge {
	return &UndirectedEdge{edgeCore: newEdgeCore(g, a, b)}
}

// Directed reports false.
func (e *UndirectedEdge) Directed() bool { return false }

// HasSource reports whether v is one of the endpoints.
func (e *UndirectedEdge) HasSource(v *Vertex) bool { return e.a == v || e.b == v }

// HasTarget reports whether v is one of the endpoints.
func (e *UndirectedEdge) HasTarget(v *Vertex) bool { return e.a == v || e.b == v }

// Connects reports whether the edge connects from and to in either
// assignment.
func (e *UndirectedEdge) Connects(from, to *Vertex) bool {
	return (e.a == from && e.b == to) || (e.a == to && e.b == from)
}

// TargetFor returns the endpoint opposite to source.
func (e *UndirectedEdge) TargetFor(source *Vertex) (*Vertex, error) {
	return e.opposite(source)
}

// SourceFor returns the endpoint opposite to target.
func (e *UndirectedEdge) SourceFor(target *Vertex) (*Vertex, error) {
	return e.opposite(target)
}

func (e *UndirectedEdge) opposite(v *Vertex) (*Vertex, error) {
	switch v {
	case e.a:
		return e.b, nil
	case e.b:
		return e.a, nil
	}
	return nil, fmt.Errorf("%w: %q is not an endpoint of %s", ErrInvalidEndpoint, v.ID(), e)
}

// Destroy removes the edge from both endpoints and from the graph.
func (e *UndirectedEdge) Destroy() error { return destroyEdge(e, &e.edgeCore) }

// String returns "a -- b" using the endpoint IDs.
func (e *UndirectedEdge) String() string { return fmt.Sprintf("%s -- %s", e.a.ID(), e.b.ID()) }

// destroyEdge detaches e from both endpoints' adjacency lists, then from
// the graph's edge collection. A loop is registered once per endpoint
// role, so the two removal calls drop both occurrences. Any missing entry
// means the back-reference invariant is broken and surfaces as
// ErrEdgeNotFound before further state is touched.
func destroyEdge(e Edge, core *edgeCore) error {
	if core.graph == nil {
		return fmt.Errorf("%w: %s was already destroyed", ErrEdgeNotFound, e)
	}
	if err := core.a.removeEdge(e); err != nil {
		return err
	}
	if err := core.b.removeEdge(e); err != nil {
		return err
	}
	if err := core.graph.removeEdge(e); err != nil {
		return err
	}
	core.graph = nil
	return nil
}
