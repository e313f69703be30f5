package loader

import (
	"fmt"
	"math/rand"

	"github.com/otengkwame/graph/pkg/graph"
)

// Metadata keys every generator stamps onto the graphs it builds.
const (
	// MetaShape holds the generator name, such as "cycle".
	MetaShape = "shape"

	// MetaDirected holds whether the generator created directed edges.
	MetaDirected = "directed"

	// MetaSeed holds the seed the random source was initialized with.
	MetaSeed = "seed"

	// MetaProbability holds the edge probability of [Sparse] graphs.
	MetaProbability = "probability"
)

// Minimum vertex counts per shape. A path needs both of its endpoints,
// a star needs a hub plus one spoke, and a cycle below three vertices
// would degenerate into a loop or a parallel pair.
const (
	minCompleteVertices = 1
	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minSparseVertices   = 1
)

// Option adjusts how a generator builds its graph.
type Option func(*config)

// WithDirected connects vertices with directed edges instead of the
// default undirected ones. Each shape documents its edge orientation.
func WithDirected() Option { return func(c *config) { c.directed = true } }

// WithFlows assigns every directed edge a random flow in [1, max].
// Undirected edges carry no flow, so the option only matters together
// with [WithDirected]. Values of max below one leave all flows at zero.
func WithFlows(max int64) Option { return func(c *config) { c.flowMax = max } }

// WithSeed pins the random source so repeated calls produce identical
// graphs. The seed fixes the edge sample of [Sparse] as well as any
// flow values drawn for [WithFlows].
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

type config struct {
	directed bool
	seed     int64
	seeded   bool
	flowMax  int64
	rng      *rand.Rand
}

// newConfig applies opts on top of the defaults: undirected edges, no
// flows, and a fresh seed drawn per call.
func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Int63()
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))
	return cfg
}

// Complete returns a graph on n vertices with an edge between every
// pair of distinct vertices, n*(n-1)/2 in total. Directed graphs
// receive both directions of each pair, doubling that.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts)
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%w: complete needs at least %d, got %d", ErrTooFewVertices, minCompleteVertices, n)
	}
	g, vertices, err := build("complete", n, cfg)
	if err != nil {
		return nil, err
	}
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if err := connect(vertices[i], vertices[j], cfg); err != nil {
				return nil, err
			}
			if !cfg.directed {
				continue
			}
			if err := connect(vertices[j], vertices[i], cfg); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Path returns a graph whose n vertices form one open chain with n-1
// edges. Directed chains run from vertex "0" to the highest index.
func Path(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts)
	if n < minPathVertices {
		return nil, fmt.Errorf("%w: path needs at least %d, got %d", ErrTooFewVertices, minPathVertices, n)
	}
	g, vertices, err := build("path", n, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(vertices)-1; i++ {
		if err := connect(vertices[i], vertices[i+1], cfg); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Cycle returns a graph whose n vertices form one closed ring with n
// edges. Directed rings run in index order, the last vertex connecting
// back to "0".
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts)
	if n < minCycleVertices {
		return nil, fmt.Errorf("%w: cycle needs at least %d, got %d", ErrTooFewVertices, minCycleVertices, n)
	}
	g, vertices, err := build("cycle", n, cfg)
	if err != nil {
		return nil, err
	}
	for i := range vertices {
		if err := connect(vertices[i], vertices[(i+1)%n], cfg); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Star returns a graph where hub vertex "0" is connected to each of
// the other n-1 vertices. Directed stars point from the hub outward,
// making the hub the only source and every spoke a sink.
func Star(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts)
	if n < minStarVertices {
		return nil, fmt.Errorf("%w: star needs at least %d, got %d", ErrTooFewVertices, minStarVertices, n)
	}
	g, vertices, err := build("star", n, cfg)
	if err != nil {
		return nil, err
	}
	hub := vertices[0]
	for _, spoke := range vertices[1:] {
		if err := connect(hub, spoke, cfg); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Sparse returns a random graph on n vertices where every candidate
// edge is included independently with probability p. Directed graphs
// consider all ordered pairs of distinct vertices, undirected graphs
// each unordered pair once; loops are never generated. Use [WithSeed]
// to make the sample reproducible.
func Sparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts)
	if n < minSparseVertices {
		return nil, fmt.Errorf("%w: sparse needs at least %d, got %d", ErrTooFewVertices, minSparseVertices, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	g, vertices, err := build("sparse", n, cfg)
	if err != nil {
		return nil, err
	}
	g.Meta()[MetaProbability] = p
	for i := range vertices {
		for j := range vertices {
			if i == j || (!cfg.directed && j < i) {
				continue
			}
			if cfg.rng.Float64() >= p {
				continue
			}
			if err := connect(vertices[i], vertices[j], cfg); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// build creates the empty graph with its provenance metadata and the n
// vertices every shape starts from, named "0" through "n-1".
func build(shape string, n int, cfg config) (*graph.Graph, []*graph.Vertex, error) {
	g := graph.New(graph.Metadata{
		MetaShape:    shape,
		MetaDirected: cfg.directed,
		MetaSeed:     cfg.seed,
	})
	vertices, err := g.CreateVertices(n)
	if err != nil {
		return nil, nil, err
	}
	return g, vertices, nil
}

// connect creates one edge between the two vertices, honoring the
// configured direction and drawing a flow when flows are enabled.
func connect(from, to *graph.Vertex, cfg config) error {
	if !cfg.directed {
		_, err := from.CreateEdge(to)
		return err
	}
	edge, err := from.CreateEdgeTo(to)
	if err != nil {
		return err
	}
	if cfg.flowMax > 0 {
		edge.SetFlow(1 + cfg.rng.Int63n(cfg.flowMax))
	}
	return nil
}
