package graph

import (
	"maps"
	"slices"

	"github.com/otengkwame/graph/pkg/observe"
)

// BreadthFirst walks a graph outward from an origin vertex, layer by
// layer. Directed edges are followed from source to target unless the
// search is [Reversed]; undirected edges are followed both ways. Within
// a layer, neighbors are visited in ID order, so the walk is
// deterministic. The walk runs once, on first use, and its result is
// reused by every later query.
//
// The zero value is not usable - use [NewBreadthFirst]. A search holds a
// snapshot of its first run; mutate the graph and it goes stale.
type BreadthFirst struct {
	origin   *Vertex
	reversed bool
	done     bool
	order    []*Vertex
	visited  map[string]*Vertex
}

// SearchOption adjusts how a search walks the graph.
type SearchOption func(*BreadthFirst)

// Reversed makes the search follow directed edges from target to source,
// so it reaches the vertices that can reach the origin. Undirected edges
// are unaffected.
func Reversed() SearchOption {
	return func(b *BreadthFirst) { b.reversed = true }
}

// NewBreadthFirst prepares a search from the given origin. The walk
// itself is deferred until the first query.
func NewBreadthFirst(origin *Vertex, opts ...SearchOption) *BreadthFirst {
	b := &BreadthFirst{origin: origin}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HasVertex reports whether the search reaches target. The check is by
// pointer identity, so a vertex with the same ID in another graph does
// not match.
func (b *BreadthFirst) HasVertex(target *Vertex) bool {
	if target == nil {
		return false
	}
	b.run()
	return b.visited[target.id] == target
}

// Vertices returns the reached vertices in visit order, origin first.
// The returned slice is the caller's to keep.
func (b *BreadthFirst) Vertices() []*Vertex {
	b.run()
	return slices.Clone(b.order)
}

// VertexMap returns the reached vertices keyed by ID, origin included.
// The returned map is the caller's to keep.
func (b *BreadthFirst) VertexMap() map[string]*Vertex {
	b.run()
	return maps.Clone(b.visited)
}

// Count returns the number of reached vertices, origin included.
func (b *BreadthFirst) Count() int {
	b.run()
	return len(b.visited)
}

// run performs the walk exactly once. An origin that is nil or detached
// from its graph yields an empty result.
func (b *BreadthFirst) run() {
	if b.done {
		return
	}
	b.done = true
	b.visited = make(map[string]*Vertex)
	if b.origin == nil || b.origin.graph == nil {
		return
	}
	graphID := b.origin.graph.id
	observe.Search().OnSearchStart(graphID, b.origin.id, b.reversed)
	b.visited[b.origin.id] = b.origin
	queue := []*Vertex{b.origin}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		b.order = append(b.order, v)
		next := v.Successors()
		if b.reversed {
			next = v.Predecessors()
		}
		for _, id := range slices.Sorted(maps.Keys(next)) {
			if _, seen := b.visited[id]; seen {
				continue
			}
			b.visited[id] = next[id]
			queue = append(queue, next[id])
		}
	}
	observe.Search().OnSearchDone(graphID, b.origin.id, len(b.visited))
}
