package graph

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/otengkwame/graph/pkg/observe"
)

// Metadata stores arbitrary key-value pairs attached to vertices or to the
// graph itself. It is commonly used to carry labels, weights computed by
// callers, or generator parameters. Metadata maps are never nil - they are
// automatically initialized to empty maps when needed.
type Metadata map[string]any

// Graph owns the canonical vertex and edge collections and mediates every
// cross-entity operation: edge creation stays within one graph, vertex
// destruction cascades through the incident edges. It is the sole
// authority for vertex ID uniqueness.
//
// Both collections preserve insertion order, which is what the FIFO
// ordering criterion and [Graph.Vertices] snapshots are based on.
//
// The zero value is not usable - use [New] to create a Graph. A Graph and
// its vertices and edges are not safe for concurrent use: adjacency
// mutations are multi-step and a single logical owner must drive them.
// Read-only queries can run in parallel on a graph nobody mutates.
type Graph struct {
	id       string
	byID     map[string]*Vertex
	vertices []*Vertex // insertion order
	edges    []Edge    // insertion order
	meta     Metadata
	nextID   int
}

// New creates an empty graph with optional graph-level metadata.
// The metadata parameter can be nil, in which case an empty map is
// created. Every graph carries a generated identifier used in
// observability events.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		id:   uuid.NewString(),
		byID: make(map[string]*Vertex),
		meta: meta,
	}
}

// ID returns the graph's generated unique identifier.
func (g *Graph) ID() string { return g.id }

// Meta returns the graph-level metadata map.
// The returned map is never nil and can be safely modified.
func (g *Graph) Meta() Metadata { return g.meta }

// CreateVertex adds a new vertex with the given ID and returns it.
// Returns ErrEmptyID for an empty ID or ErrDuplicateID if the ID is
// already taken. The vertex's metadata map is initialized empty.
func (g *Graph) CreateVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, exists := g.byID[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	v := &Vertex{id: id, graph: g, meta: Metadata{}}
	g.byID[id] = v
	g.vertices = append(g.vertices, v)
	observe.Mutation().OnVertexCreated(g.id, id)
	return v, nil
}

// CreateVertexAuto adds a new vertex with a generated decimal ID and
// returns it. Generated IDs count up from 0 across the life of the
// graph and skip IDs that are already taken, so mixing generated and
// explicit IDs is safe.
func (g *Graph) CreateVertexAuto() (*Vertex, error) {
	var id string
	for {
		id = strconv.Itoa(g.nextID)
		g.nextID++
		if _, taken := g.byID[id]; !taken {
			break
		}
	}
	return g.CreateVertex(id)
}

// CreateVertices adds n vertices through [Graph.CreateVertexAuto] and
// returns them in creation order. Returns ErrNegativeCount for n < 0.
func (g *Graph) CreateVertices(n int) ([]*Vertex, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	created := make([]*Vertex, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.CreateVertexAuto()
		if err != nil {
			return nil, err
		}
		created = append(created, v)
	}
	return created, nil
}

// Vertex returns the vertex with the given ID.
// Returns ErrVertexNotFound if no such vertex exists.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return v, nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Vertices returns a snapshot of all vertices in insertion order.
// The returned slice is a copy, but it contains pointers to the actual
// vertices, so mutating them affects the graph.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.vertices) }

// Edges returns a snapshot of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.byID) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// FirstVertex returns the extremal vertex of the whole graph under the
// given criterion, as [FirstVertex] does for a plain collection.
func (g *Graph) FirstVertex(by Order, desc bool) (*Vertex, error) {
	return FirstVertex(g.vertices, by, desc)
}

// OrderVertices returns all vertices of the graph arranged by the given
// criterion, as [OrderVertices] does for a plain collection.
func (g *Graph) OrderVertices(by Order, desc bool) ([]*Vertex, error) {
	return OrderVertices(g.vertices, by, desc)
}

// addEdge registers a freshly constructed edge. The edge creation path
// has already verified the endpoints, so registration cannot fail.
func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	from, to := e.Ends()
	observe.Mutation().OnEdgeCreated(g.id, e.ID(), e.Directed(), from.ID(), to.ID())
}

// removeEdge drops e from the edge collection by identity. Only the edge
// destruction path calls this, after both endpoints detached the edge.
func (g *Graph) removeEdge(e Edge) error {
	i := slices.Index(g.edges, e)
	if i < 0 {
		return fmt.Errorf("%w: %s not in graph", ErrEdgeNotFound, e)
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	observe.Mutation().OnEdgeDestroyed(g.id, e.ID())
	return nil
}

// removeVertex drops a vertex whose edges are already destroyed. Only
// [Vertex.Destroy] calls this. Returns ErrVertexNotFound if the vertex is
// not part of this graph and ErrVertexHasEdges if incident edges remain.
func (g *Graph) removeVertex(v *Vertex) error {
	if g.byID[v.id] != v {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, v.id)
	}
	if len(v.edges) > 0 {
		return fmt.Errorf("%w: %q has %d", ErrVertexHasEdges, v.id, len(v.edges))
	}
	delete(g.byID, v.id)
	if i := slices.Index(g.vertices, v); i >= 0 {
		g.vertices = slices.Delete(g.vertices, i, i+1)
	}
	observe.Mutation().OnVertexDestroyed(g.id, v.id)
	return nil
}

// Validate checks the bidirectional back-reference invariant and returns
// nil if the graph is consistent. It verifies that every edge's endpoints
// live in this graph and list the edge the correct number of times (twice
// for a loop), and that every adjacency entry is backed by the graph's
// edge collection.
//
// Mutation through the public API maintains these invariants; Validate
// exists to catch corruption early in tests and long-lived processes.
// It runs in O(V + E*d) time where d is the largest vertex degree.
func (g *Graph) Validate() error {
	if len(g.byID) != len(g.vertices) {
		return fmt.Errorf("%w: %d indexed vertices but %d ordered", ErrCorruptGraph, len(g.byID), len(g.vertices))
	}
	for _, v := range g.vertices {
		if v.graph != g {
			return fmt.Errorf("%w: %q does not point back to this graph", ErrCorruptGraph, v.id)
		}
		if g.byID[v.id] != v {
			return fmt.Errorf("%w: %q not indexed by ID", ErrCorruptGraph, v.id)
		}
		for _, e := range v.edges {
			if !slices.Contains(g.edges, e) {
				return fmt.Errorf("%w: %s listed by %q but not owned by the graph", ErrCorruptGraph, e, v.id)
			}
			if !e.HasSource(v) && !e.HasTarget(v) {
				return fmt.Errorf("%w: %s listed by non-endpoint %q", ErrCorruptGraph, e, v.id)
			}
		}
	}
	for _, e := range g.edges {
		a, b := e.Ends()
		if a.graph != g || b.graph != g {
			return fmt.Errorf("%w: %s has a foreign endpoint", ErrCorruptGraph, e)
		}
		if e.IsLoop() {
			if n := occurrences(a.edges, e); n != 2 {
				return fmt.Errorf("%w: loop %s listed %d times by %q, want 2", ErrCorruptGraph, e, n, a.id)
			}
			continue
		}
		for _, end := range []*Vertex{a, b} {
			if n := occurrences(end.edges, e); n != 1 {
				return fmt.Errorf("%w: %s listed %d times by %q, want 1", ErrCorruptGraph, e, n, end.id)
			}
		}
	}
	return nil
}

// occurrences counts identity matches of e in edges.
func occurrences(edges []Edge, e Edge) int {
	n := 0
	for _, have := range edges {
		if have == e {
			n++
		}
	}
	return n
}
