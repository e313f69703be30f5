package graph

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure in this package wraps exactly one of these
// sentinels, so callers can classify an error with [errors.Is] without
// matching the precise condition.
var (
	// ErrInvalidArgument classifies failures caused by bad caller input,
	// such as cross-graph edge endpoints or an unknown ordering criterion.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound classifies lookups that matched nothing, including
	// selection from an empty vertex collection.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported classifies operations that are undefined for the
	// queried topology or value domain.
	ErrUnsupported = errors.New("unsupported")

	// ErrPrecondition classifies contract violations detected before a
	// mutation, such as removing a vertex that still has incident edges.
	ErrPrecondition = errors.New("precondition violated")
)

// Conditions wrapping [ErrInvalidArgument].
var (
	// ErrEmptyID is returned by [Graph.CreateVertex] when the vertex ID is
	// empty. All vertices must have non-empty identifiers.
	ErrEmptyID = fmt.Errorf("%w: vertex ID must not be empty", ErrInvalidArgument)

	// ErrDuplicateID is returned by [Graph.CreateVertex] when a vertex with
	// the same ID already exists in the graph. Vertex IDs must be unique.
	ErrDuplicateID = fmt.Errorf("%w: duplicate vertex ID", ErrInvalidArgument)

	// ErrNegativeCount is returned by [Graph.CreateVertices] when the
	// requested vertex count is negative.
	ErrNegativeCount = fmt.Errorf("%w: vertex count must not be negative", ErrInvalidArgument)

	// ErrCrossGraph is returned by [Vertex.CreateEdge] and
	// [Vertex.CreateEdgeTo] when the two endpoints belong to different
	// graphs. An edge can only connect vertices of a single graph, and the
	// check happens before any adjacency list is touched.
	ErrCrossGraph = fmt.Errorf("%w: endpoints belong to different graphs", ErrInvalidArgument)

	// ErrDetachedVertex is returned by edge creation when an endpoint has
	// been destroyed and no longer belongs to any graph.
	ErrDetachedVertex = fmt.Errorf("%w: vertex is detached from its graph", ErrInvalidArgument)

	// ErrInvalidEndpoint is returned by [Edge.TargetFor] and
	// [Edge.SourceFor] when the given vertex cannot play the required
	// endpoint role on that edge.
	ErrInvalidEndpoint = fmt.Errorf("%w: vertex is not a valid endpoint for this edge", ErrInvalidArgument)

	// ErrUnknownOrder is returned by [FirstVertex] and [OrderVertices] when
	// the criterion is not one of the defined [Order] constants.
	ErrUnknownOrder = fmt.Errorf("%w: unknown ordering criterion", ErrInvalidArgument)
)

// Conditions wrapping [ErrNotFound].
var (
	// ErrVertexNotFound is returned by [Graph.Vertex] when no vertex with
	// the given ID exists, and by vertex removal when the vertex is not
	// part of the graph (for example after a second destroy).
	ErrVertexNotFound = fmt.Errorf("%w: unknown vertex", ErrNotFound)

	// ErrEdgeNotFound is returned by the edge destruction path when an edge
	// is missing from an adjacency list or from the graph's edge
	// collection. This indicates a broken back-reference invariant.
	ErrEdgeNotFound = fmt.Errorf("%w: edge not present", ErrNotFound)

	// ErrEmptySet is returned by [FirstVertex] when the input collection is
	// empty. No criterion can select a vertex from nothing.
	ErrEmptySet = fmt.Errorf("%w: empty vertex collection", ErrNotFound)
)

// Conditions wrapping [ErrUnsupported].
var (
	// ErrUndirectedFlow is returned by [Vertex.Flow] when an undirected
	// edge is incident to the vertex. Net flow is defined only for purely
	// directed local topology.
	ErrUndirectedFlow = fmt.Errorf("%w: flow requires purely directed edges", ErrUnsupported)

	// ErrNonNumericID is returned by [OrderVertices] for descending ID
	// ordering when an identifier does not parse as an integer. The
	// descending key is the negated numeric ID, which is undefined for
	// other identifiers. Ascending ID ordering and [FirstVertex] accept
	// arbitrary identifiers.
	ErrNonNumericID = fmt.Errorf("%w: descending ID order requires numeric identifiers", ErrUnsupported)
)

// Conditions wrapping [ErrPrecondition].
var (
	// ErrVertexHasEdges is returned by vertex removal when incident edges
	// still exist. [Vertex.Destroy] destroys all incident edges first; any
	// other path into removal is a contract violation.
	ErrVertexHasEdges = fmt.Errorf("%w: vertex still has incident edges", ErrPrecondition)

	// ErrCorruptGraph is returned by [Graph.Validate] when the
	// bidirectional back-reference invariant does not hold, for example
	// when an adjacency list mentions an edge the graph does not own.
	ErrCorruptGraph = fmt.Errorf("%w: graph invariants violated", ErrPrecondition)
)
