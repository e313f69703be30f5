package graph

import (
	"errors"
	"testing"
)

func TestNewVertexIsInert(t *testing.T) {
	g := New(nil)
	v, err := g.CreateVertex("a")
	if err != nil {
		t.Fatalf("CreateVertex: %v", err)
	}

	if got := v.Degree(); got != 0 {
		t.Errorf("Degree() = %d, want 0", got)
	}
	if !v.IsIsolated() {
		t.Error("IsIsolated() = false, want true")
	}
	flow, err := v.Flow()
	if err != nil {
		t.Fatalf("Flow: %v", err)
	}
	if flow != 0 {
		t.Errorf("Flow() = %d, want 0", flow)
	}
	if _, ok := v.Balance(); ok {
		t.Error("new vertex should have no balance")
	}
}

func TestBalance(t *testing.T) {
	g := New(nil)
	v, _ := g.CreateVertex("a")

	v.SetBalance(12)
	if got, ok := v.Balance(); !ok || got != 12 {
		t.Errorf("Balance() = %d, %v, want 12, true", got, ok)
	}

	v.SetBalance(-3)
	if got, _ := v.Balance(); got != -3 {
		t.Errorf("Balance() = %d, want -3", got)
	}

	v.ClearBalance()
	if _, ok := v.Balance(); ok {
		t.Error("Balance() should be absent after ClearBalance")
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		name      string
		build     func(t *testing.T, g *Graph) *Vertex
		degree    int
		degreeIn  int
		degreeOut int
		isolated  bool
		leaf      bool
		source    bool
		sink      bool
		loop      bool
	}{
		{
			name: "Isolated",
			build: func(t *testing.T, g *Graph) *Vertex {
				v, _ := g.CreateVertex("a")
				return v
			},
			isolated: true,
			source:   true,
			sink:     true,
		},
		{
			name: "ChainHead",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				b, _ := g.CreateVertex("b")
				c, _ := g.CreateVertex("c")
				mustEdgeTo(t, a, b)
				mustEdgeTo(t, b, c)
				return a
			},
			degree:    1,
			degreeOut: 1,
			leaf:      true,
			source:    true,
		},
		{
			name: "ChainInterior",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				b, _ := g.CreateVertex("b")
				c, _ := g.CreateVertex("c")
				mustEdgeTo(t, a, b)
				mustEdgeTo(t, b, c)
				return b
			},
			degree:    2,
			degreeIn:  1,
			degreeOut: 1,
		},
		{
			name: "ChainTail",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				b, _ := g.CreateVertex("b")
				c, _ := g.CreateVertex("c")
				mustEdgeTo(t, a, b)
				mustEdgeTo(t, b, c)
				return c
			},
			degree:   1,
			degreeIn: 1,
			leaf:     true,
			sink:     true,
		},
		{
			name: "DirectedLoop",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				mustEdgeTo(t, a, a)
				return a
			},
			degree:    2,
			degreeIn:  2,
			degreeOut: 2,
			loop:      true,
		},
		{
			name: "UndirectedEndpoint",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				b, _ := g.CreateVertex("b")
				if _, err := a.CreateEdge(b); err != nil {
					t.Fatalf("CreateEdge: %v", err)
				}
				return a
			},
			degree:    1,
			degreeIn:  1,
			degreeOut: 1,
			leaf:      true,
		},
		{
			name: "ParallelOut",
			build: func(t *testing.T, g *Graph) *Vertex {
				a, _ := g.CreateVertex("a")
				b, _ := g.CreateVertex("b")
				mustEdgeTo(t, a, b)
				mustEdgeTo(t, a, b)
				return a
			},
			degree:    2,
			degreeOut: 2,
			source:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.build(t, New(nil))

			if got := v.Degree(); got != tt.degree {
				t.Errorf("Degree() = %d, want %d", got, tt.degree)
			}
			if got := v.DegreeIn(); got != tt.degreeIn {
				t.Errorf("DegreeIn() = %d, want %d", got, tt.degreeIn)
			}
			if got := v.DegreeOut(); got != tt.degreeOut {
				t.Errorf("DegreeOut() = %d, want %d", got, tt.degreeOut)
			}
			if got := v.IsIsolated(); got != tt.isolated {
				t.Errorf("IsIsolated() = %v, want %v", got, tt.isolated)
			}
			if got := v.IsLeaf(); got != tt.leaf {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.leaf)
			}
			if got := v.IsSource(); got != tt.source {
				t.Errorf("IsSource() = %v, want %v", got, tt.source)
			}
			if got := v.IsSink(); got != tt.sink {
				t.Errorf("IsSink() = %v, want %v", got, tt.sink)
			}
			if got := v.HasLoop(); got != tt.loop {
				t.Errorf("HasLoop() = %v, want %v", got, tt.loop)
			}
		})
	}
}

func TestDirectedEdgeMembership(t *testing.T) {
	g := New(nil)
	u, _ := g.CreateVertex("u")
	v, _ := g.CreateVertex("v")
	mustEdgeTo(t, u, v)

	if got := u.DegreeOut(); got != 1 {
		t.Errorf("u.DegreeOut() = %d, want 1", got)
	}
	if got := v.DegreeIn(); got != 1 {
		t.Errorf("v.DegreeIn() = %d, want 1", got)
	}
	if !u.HasEdgeTo(v) {
		t.Error("u.HasEdgeTo(v) = false, want true")
	}
	if !v.HasEdgeFrom(u) {
		t.Error("v.HasEdgeFrom(u) = false, want true")
	}
	if v.HasEdgeTo(u) {
		t.Error("v.HasEdgeTo(u) = true, want false for a directed edge")
	}
	if u.HasEdgeFrom(v) {
		t.Error("u.HasEdgeFrom(v) = true, want false for a directed edge")
	}
}

func TestUndirectedEdgeMembership(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	if _, err := a.CreateEdge(b); err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	for _, pair := range [][2]*Vertex{{a, b}, {b, a}} {
		if !pair[0].HasEdgeTo(pair[1]) {
			t.Errorf("%s.HasEdgeTo(%s) = false, want true", pair[0], pair[1])
		}
		if !pair[0].HasEdgeFrom(pair[1]) {
			t.Errorf("%s.HasEdgeFrom(%s) = false, want true", pair[0], pair[1])
		}
	}
}

func TestAdjacencyProjections(t *testing.T) {
	// Fixture: a->b twice (parallel), b->a, a--c, and a loop a->a.
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	c, _ := g.CreateVertex("c")
	ab1 := mustEdgeTo(t, a, b)
	ab2 := mustEdgeTo(t, a, b)
	ba := mustEdgeTo(t, b, a)
	ac, err := a.CreateEdge(c)
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}
	loop := mustEdgeTo(t, a, a)

	// The loop occupies both endpoint roles, so it appears twice.
	if got := len(a.Edges()); got != 6 {
		t.Errorf("len(a.Edges()) = %d, want 6", got)
	}
	if got := len(a.EdgesOut()); got != 5 {
		t.Errorf("len(a.EdgesOut()) = %d, want 5", got)
	}
	if got := len(a.EdgesIn()); got != 4 {
		t.Errorf("len(a.EdgesIn()) = %d, want 4", got)
	}

	to := a.EdgesTo(b)
	if len(to) != 2 || to[0] != Edge(ab1) || to[1] != Edge(ab2) {
		t.Errorf("a.EdgesTo(b) = %v, want both parallel edges", to)
	}
	from := a.EdgesFrom(b)
	if len(from) != 1 || from[0] != Edge(ba) {
		t.Errorf("a.EdgesFrom(b) = %v, want [b -> a]", from)
	}

	adj := a.Adjacent()
	if len(adj) != 3 || adj["a"] != a || adj["b"] != b || adj["c"] != c {
		t.Errorf("a.Adjacent() = %v, want a, b and c", adj)
	}
	succ := a.Successors()
	if len(succ) != 3 || succ["a"] != a || succ["b"] != b || succ["c"] != c {
		t.Errorf("a.Successors() = %v, want a, b and c", succ)
	}
	pred := b.Predecessors()
	if len(pred) != 1 || pred["a"] != a {
		t.Errorf("b.Predecessors() = %v, want only a", pred)
	}

	// Undirected edges project in both directions, and the loop connects
	// a to itself once per role.
	toC := a.EdgesTo(c)
	if len(toC) != 1 || toC[0] != Edge(ac) {
		t.Errorf("a.EdgesTo(c) = %v, want the undirected edge", toC)
	}
	toSelf := a.EdgesTo(a)
	if len(toSelf) != 2 || toSelf[0] != Edge(loop) || toSelf[1] != Edge(loop) {
		t.Errorf("a.EdgesTo(a) = %v, want the loop twice", toSelf)
	}
}

func TestEdgesSnapshotIsACopy(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	mustEdgeTo(t, a, b)

	es := a.Edges()
	es[0] = nil
	if got := len(a.EdgesTo(b)); got != 1 {
		t.Error("mutating the Edges() snapshot changed the adjacency list")
	}
}

func TestFlow(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	c, _ := g.CreateVertex("c")
	ab := mustEdgeTo(t, a, b)
	bc := mustEdgeTo(t, b, c)
	ab.SetFlow(7)
	bc.SetFlow(7)

	tests := []struct {
		vertex *Vertex
		want   int64
	}{
		{a, -7}, // pure outflow
		{b, 0},  // inflow equals outflow
		{c, 7},  // pure inflow
	}
	for _, tt := range tests {
		got, err := tt.vertex.Flow()
		if err != nil {
			t.Fatalf("%s.Flow(): %v", tt.vertex, err)
		}
		if got != tt.want {
			t.Errorf("%s.Flow() = %d, want %d", tt.vertex, got, tt.want)
		}
	}
}

func TestFlowLoopNetsZero(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	loop := mustEdgeTo(t, a, a)
	loop.SetFlow(5)
	ba := mustEdgeTo(t, b, a)
	ba.SetFlow(2)

	got, err := a.Flow()
	if err != nil {
		t.Fatalf("Flow: %v", err)
	}
	if got != 2 {
		t.Errorf("Flow() = %d, want 2: the loop carries equal amounts in and out", got)
	}
}

func TestFlowUndirectedUnsupported(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	if _, err := a.CreateEdge(b); err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	_, err := a.Flow()
	if !errors.Is(err, ErrUndirectedFlow) {
		t.Fatalf("Flow error = %v, want ErrUndirectedFlow", err)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("ErrUndirectedFlow should wrap ErrUnsupported")
	}
}

func TestCrossGraphEdge(t *testing.T) {
	g1 := New(nil)
	g2 := New(nil)
	a, _ := g1.CreateVertex("a")
	b, _ := g2.CreateVertex("b")

	if _, err := a.CreateEdgeTo(b); !errors.Is(err, ErrCrossGraph) {
		t.Fatalf("CreateEdgeTo error = %v, want ErrCrossGraph", err)
	}
	if _, err := a.CreateEdge(b); !errors.Is(err, ErrCrossGraph) {
		t.Fatalf("CreateEdge error = %v, want ErrCrossGraph", err)
	}
	if _, err := a.CreateEdgeTo(b); !errors.Is(err, ErrInvalidArgument) {
		t.Error("ErrCrossGraph should wrap ErrInvalidArgument")
	}

	// A failed creation must not leave partial state behind.
	if a.Degree() != 0 || b.Degree() != 0 {
		t.Errorf("degrees = %d/%d after failed creation, want 0/0", a.Degree(), b.Degree())
	}
	if g1.EdgeCount() != 0 || g2.EdgeCount() != 0 {
		t.Errorf("edge counts = %d/%d after failed creation, want 0/0", g1.EdgeCount(), g2.EdgeCount())
	}
}

func TestVertexDestroy(t *testing.T) {
	g := New(nil)
	hub, _ := g.CreateVertex("hub")
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	c, _ := g.CreateVertex("c")
	mustEdgeTo(t, a, hub)
	mustEdgeTo(t, hub, b)
	if _, err := hub.CreateEdge(c); err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	if err := hub.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	if g.HasVertex("hub") {
		t.Error("HasVertex(hub) = true after Destroy")
	}
	if _, err := g.Vertex("hub"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("Vertex(hub) error = %v, want ErrVertexNotFound", err)
	}
	if hub.Graph() != nil {
		t.Error("Graph() should be nil after Destroy")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d after Destroy, want 0", g.EdgeCount())
	}
	for _, n := range []*Vertex{a, b, c} {
		if !n.IsIsolated() {
			t.Errorf("%s should be isolated after the hub was destroyed", n)
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate after Destroy: %v", err)
	}
}

func TestVertexDestroyTwice(t *testing.T) {
	g := New(nil)
	v, _ := g.CreateVertex("a")

	if err := v.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := v.Destroy(); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("second Destroy error = %v, want ErrVertexNotFound", err)
	}
}

func TestEdgeCreationAfterDestroy(t *testing.T) {
	g := New(nil)
	a, _ := g.CreateVertex("a")
	b, _ := g.CreateVertex("b")
	if err := a.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	if _, err := a.CreateEdgeTo(b); !errors.Is(err, ErrDetachedVertex) {
		t.Errorf("CreateEdgeTo from destroyed vertex error = %v, want ErrDetachedVertex", err)
	}
	if _, err := b.CreateEdgeTo(a); !errors.Is(err, ErrDetachedVertex) {
		t.Errorf("CreateEdgeTo to destroyed vertex error = %v, want ErrDetachedVertex", err)
	}
	if b.Degree() != 0 {
		t.Errorf("b.Degree() = %d after failed creation, want 0", b.Degree())
	}
}
