// Package workflow defines the in-memory graph model the composer assembles.
//
// A Workflow is a set of Nodes connected by Edges between named ports. Nodes
// are opaque: their numerical content (field estimation, registration,
// unwarping) lives outside this repository, and only their port contracts and
// construction-time parameters are represented. Connect validates that both
// ports exist and that each input port receives at most one edge, so a
// composed workflow is structurally sound before it is ever handed to an
// executor.
//
// Workflows are built once and never mutated afterwards; every composition
// call produces a fresh graph, so concurrent compositions need no
// coordination.
package workflow
