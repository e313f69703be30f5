// Package observe provides hook interfaces for instrumenting graph
// mutations and searches without coupling the core package to any
// logging or metrics backend.
//
// All hooks default to no-op implementations. Callers that want
// visibility register their own implementation once at startup:
//
//	observe.SetMutationHooks(myHooks)
//	defer observe.Reset()
//
// Hook implementations must be fast and must not call back into the
// graph that triggered them.
package observe

import "sync"

// MutationHooks receives callbacks when vertices and edges are created
// or destroyed. Graph, vertex and edge arguments are IDs, not pointers,
// so implementations cannot accidentally retain or mutate graph state.
type MutationHooks interface {
	// OnVertexCreated is called after a vertex joins a graph.
	OnVertexCreated(graph, vertex string)
	// OnVertexDestroyed is called after a vertex leaves its graph.
	OnVertexDestroyed(graph, vertex string)
	// OnEdgeCreated is called after an edge joins a graph.
	OnEdgeCreated(graph, edge string, directed bool, from, to string)
	// OnEdgeDestroyed is called after an edge leaves its graph.
	OnEdgeDestroyed(graph, edge string)
}

// SearchHooks receives callbacks around graph traversals.
type SearchHooks interface {
	// OnSearchStart is called before a traversal begins walking.
	OnSearchStart(graph, origin string, reversed bool)
	// OnSearchDone is called after a traversal has finished, with the
	// number of vertices it reached.
	OnSearchDone(graph, origin string, visited int)
}

// NoopMutationHooks is a MutationHooks implementation that does nothing.
// It is the default registered implementation.
type NoopMutationHooks struct{}

func (NoopMutationHooks) OnVertexCreated(string, string)                     {}
func (NoopMutationHooks) OnVertexDestroyed(string, string)                   {}
func (NoopMutationHooks) OnEdgeCreated(string, string, bool, string, string) {}
func (NoopMutationHooks) OnEdgeDestroyed(string, string)                     {}

// NoopSearchHooks is a SearchHooks implementation that does nothing.
// It is the default registered implementation.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(string, string, bool) {}
func (NoopSearchHooks) OnSearchDone(string, string, int)   {}

var (
	mutationHooks MutationHooks = NoopMutationHooks{}
	searchHooks   SearchHooks   = NoopSearchHooks{}
	hooksMu       sync.RWMutex
)

// SetMutationHooks registers custom mutation hooks.
// This should be called once at application startup, before any graph is
// built. Passing nil is ignored.
func SetMutationHooks(h MutationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mutationHooks = h
	}
}

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup, before any search
// runs. Passing nil is ignored.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Mutation returns the registered mutation hooks, never nil.
func Mutation() MutationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mutationHooks
}

// Search returns the registered search hooks, never nil.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	mutationHooks = NoopMutationHooks{}
	searchHooks = NoopSearchHooks{}
}
