package loader

import (
	"fmt"

	"github.com/otengkwame/graph/pkg/graph"
)

// Conditions wrapping [graph.ErrInvalidArgument]. Callers can match the
// specific condition or the kind, whichever suits them.
var (
	// ErrTooFewVertices is returned when the requested vertex count is
	// below the minimum for the shape, such as a cycle on two vertices.
	ErrTooFewVertices = fmt.Errorf("%w: too few vertices for shape", graph.ErrInvalidArgument)

	// ErrInvalidProbability is returned by [Sparse] when the edge
	// probability lies outside the closed interval [0, 1].
	ErrInvalidProbability = fmt.Errorf("%w: edge probability outside [0, 1]", graph.ErrInvalidArgument)
)
