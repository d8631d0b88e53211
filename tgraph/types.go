// Package tgraph defines the temporal-graph types: integer-indexed
// nodes, availability-constrained edges, and per-node attributes.
//
// This file declares Node, NodeAttrs, Edge, the Edge constructors, and
// the sentinel errors raised during graph construction.
//
// Errors:
//
//	ErrBadNodeCount  - negative node count.
//	ErrEndpointRange - edge endpoint outside [0, nodeCount).
//	ErrIDRange       - identifier mapped to an index outside [0, nodeCount).
//	ErrAttrRange     - attribute keyed by an index outside [0, nodeCount).
package tgraph

import (
	"errors"

	"github.com/katalvlaran/ontime/formula"
)

// Sentinel errors for temporal-graph construction.
var (
	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("tgraph: node count must be non-negative")

	// ErrEndpointRange indicates an edge endpoint outside [0, nodeCount).
	ErrEndpointRange = errors.New("tgraph: edge endpoint out of range")

	// ErrIDRange indicates a string identifier mapped outside [0, nodeCount).
	ErrIDRange = errors.New("tgraph: identifier index out of range")

	// ErrAttrRange indicates node attributes keyed outside [0, nodeCount).
	ErrAttrRange = errors.New("tgraph: attribute index out of range")
)

// Node is an integer node index in [0, NodeCount).
type Node = int

// NodeAttrs carries the per-node attributes consumed from the external
// graph description. Owner selects which player controls the choice of
// outgoing edge at the node; it defaults to false (player two) when the
// description sets no owner.
type NodeAttrs struct {
	// Owner is true when player one controls the node.
	Owner bool

	// Label is an optional human-readable name.
	Label string
}

// Edge is a directed edge whose availability depends on the time step.
// Multiple edges between the same pair of nodes are permitted.
//
// Edges are built once via NewEdge or NewAlwaysEdge and never mutated.
type Edge struct {
	// Source is the origin node index.
	Source Node

	// Target is the destination node index.
	Target Node

	constraint formula.Formula
	avail      formula.Predicate
}

// NewEdge builds an edge available whenever constraint holds at the
// current time. If the constraint cannot be compiled (quantified, or
// more than one free variable) the edge is permanently unavailable, so
// one malformed constraint never invalidates the whole input.
func NewEdge(source, target Node, constraint formula.Formula) Edge {
	avail, err := formula.Compile(constraint)
	if err != nil {
		avail = func(int) bool { return false }
	}

	return Edge{Source: source, Target: target, constraint: constraint, avail: avail}
}

// NewAlwaysEdge builds an edge available at every time step.
func NewAlwaysEdge(source, target Node) Edge {
	return Edge{
		Source:     source,
		Target:     target,
		constraint: formula.True{},
		avail:      func(int) bool { return true },
	}
}

// AvailableAt reports whether the edge can be taken at time t.
// A zero-value Edge is never available.
func (e Edge) AvailableAt(t int) bool {
	return e.avail != nil && e.avail(t)
}

// Constraint returns the availability formula the edge was built from,
// for diagnostics and reporting. May be nil for a zero-value Edge.
func (e Edge) Constraint() formula.Formula {
	return e.constraint
}
