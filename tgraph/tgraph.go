// Package tgraph temporal-graph construction and time-indexed
// adjacency queries.
package tgraph

import (
	"fmt"
	"iter"
)

// TemporalGraph is an immutable directed multigraph over nodes
// 0..nodeCount whose edges carry compiled availability predicates.
//
// Adjacency is grouped by source node in input insertion order. The
// graph also keeps the bidirectional mapping between external string
// identifiers and node indices; the mapping is used by surrounding I/O
// to build target sets and report results, never by the solver itself.
type TemporalGraph struct {
	nodeCount int

	// adj maps a source node to its outgoing edges, insertion-ordered.
	adj map[Node][]Edge

	indexOf map[string]Node
	idOf    map[Node]string
	attrs   map[Node]NodeAttrs
}

// New assembles a TemporalGraph from the parsed node count, identifier
// map, attribute map, and edge list. ids and attrs may be nil.
//
// Returns ErrBadNodeCount for a negative count, ErrEndpointRange when
// any edge endpoint lies outside [0, nodeCount), and ErrIDRange or
// ErrAttrRange when an identifier or attribute key maps outside that
// interval. Range violations fail fast: they are input or programming
// errors, not recoverable conditions.
// Complexity: O(nodes + edges)
func New(nodeCount int, ids map[string]Node, attrs map[Node]NodeAttrs, edges []Edge) (*TemporalGraph, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, nodeCount)
	}
	for id, n := range ids {
		if n < 0 || n >= nodeCount {
			return nil, fmt.Errorf("%w: %q -> %d (node count %d)", ErrIDRange, id, n, nodeCount)
		}
	}
	for n := range attrs {
		if n < 0 || n >= nodeCount {
			return nil, fmt.Errorf("%w: %d (node count %d)", ErrAttrRange, n, nodeCount)
		}
	}

	g := &TemporalGraph{
		nodeCount: nodeCount,
		adj:       make(map[Node][]Edge, nodeCount),
		indexOf:   make(map[string]Node, len(ids)),
		idOf:      make(map[Node]string, len(ids)),
		attrs:     make(map[Node]NodeAttrs, len(attrs)),
	}
	for id, n := range ids {
		g.indexOf[id] = n
		g.idOf[n] = id
	}
	for n, a := range attrs {
		g.attrs[n] = a
	}
	for _, e := range edges {
		if e.Source < 0 || e.Source >= nodeCount || e.Target < 0 || e.Target >= nodeCount {
			return nil, fmt.Errorf("%w: %d -> %d (node count %d)", ErrEndpointRange, e.Source, e.Target, nodeCount)
		}
		g.adj[e.Source] = append(g.adj[e.Source], e)
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *TemporalGraph) NodeCount() int {
	return g.nodeCount
}

// Nodes iterates over all node indices in ascending order.
func (g *TemporalGraph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n := 0; n < g.nodeCount; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// EdgesFrom returns a copy of the outgoing edges of n, in insertion
// order.
func (g *TemporalGraph) EdgesFrom(n Node) []Edge {
	out := g.adj[n]
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp
}

// EdgesFromAt iterates, lazily and restartably, over the outgoing edges
// of n that are available at time t, in insertion order.
func (g *TemporalGraph) EdgesFromAt(n Node, t int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.adj[n] {
			if !e.AvailableAt(t) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// SuccessorsAt iterates over the target indices of the edges available
// from n at time t. Parallel edges can yield the same target more than
// once; callers must test membership, not count occurrences.
func (g *TemporalGraph) SuccessorsAt(n Node, t int) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, e := range g.adj[n] {
			if !e.AvailableAt(t) {
				continue
			}
			if !yield(e.Target) {
				return
			}
		}
	}
}

// Attrs returns the attributes of n. Nodes without recorded attributes
// get the zero value, whose Owner is false (player two).
func (g *TemporalGraph) Attrs(n Node) NodeAttrs {
	return g.attrs[n]
}

// NodeOwnership returns one Owner flag per node, index-ordered,
// defaulting to false where no attributes were recorded.
// Complexity: O(nodes)
func (g *TemporalGraph) NodeOwnership() []bool {
	owners := make([]bool, g.nodeCount)
	for n, a := range g.attrs {
		owners[n] = a.Owner
	}

	return owners
}
