// Package loader builds graphs with well-known shapes.
//
// # Overview
//
// Assembling a graph by hand takes a screen of vertex and edge calls
// before the interesting part starts. The generators in this package
// produce the standard topologies in one call:
//
//   - [Complete] connects every pair of distinct vertices
//   - [Path] chains the vertices into a single open walk
//   - [Cycle] closes that chain back onto its first vertex
//   - [Star] connects a hub vertex to every other vertex
//   - [Sparse] samples each candidate edge with a fixed probability
//
// Vertices are created through the batch constructor of the [graph]
// package, so every generated graph names them "0" through "n-1" in
// creation order.
//
// # Options
//
// Generators share one option set. Edges are undirected by default;
// [WithDirected] orients every edge instead, following the direction
// convention each shape documents. [WithFlows] assigns each directed
// edge a random flow so such graphs exercise flow arithmetic out of
// the box. [WithSeed] pins the random source, which fixes both the
// edge sample of [Sparse] and any flow values. Calls without a seed
// draw a fresh one, so two unseeded runs of [Sparse] usually differ.
//
// # Determinism
//
// For a fixed seed the output is reproducible: vertices are created in
// index order and candidate edges are visited in a fixed nested order,
// so identical arguments always yield an identical graph. Every
// generator records its provenance (shape name, direction, seed) in the
// graph metadata under the Meta* keys.
//
// # Errors
//
// Validation failures wrap the error kinds of the [graph] package, so
// callers can classify them with [errors.Is] the same way they classify
// graph errors:
//
//	_, err := loader.Cycle(2)
//	errors.Is(err, loader.ErrTooFewVertices)   // true
//	errors.Is(err, graph.ErrInvalidArgument)   // true
//
// [graph]: github.com/otengkwame/graph/pkg/graph
package loader
