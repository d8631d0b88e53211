// Package tgraph provides the temporal graph: a directed multigraph
// over integer-indexed nodes whose edges are available only at the time
// steps satisfying their compiled constraint.
//
// What
//
//   - Nodes are contiguous indices 0..NodeCount, each optionally
//     carrying NodeAttrs (Owner flag, Label); Owner defaults to false.
//   - Edges pair endpoints with a formula.Predicate; parallel edges and
//     self-loops are ordinary edges. A constraint that fails to compile
//     leaves its edge permanently unavailable rather than aborting
//     construction.
//   - New validates every endpoint against the node count and fails
//     fast on violations.
//   - EdgesFromAt / SuccessorsAt expose lazy, restartable iteration
//     over the edges available at a given time.
//   - IndexOf / IDOf / VectorFromIDs / IDsFromVector translate between
//     external string identifiers and index-ordered boolean vectors;
//     unknown identifiers are silently dropped.
//
// Why
//
//	The game solver sweeps every node once per time step and asks only
//	two questions: which edges are available now, and who owns the
//	node. The adjacency map keyed by source answers the first in O(out
//	degree); NodeOwnership answers the second once per solve.
//
// Concurrency
//
//	A TemporalGraph is immutable after New returns and therefore safe
//	for concurrent readers without locking.
//
// Complexity (V = nodes, E = edges)
//
//   - New: O(V + E)
//   - EdgesFromAt/SuccessorsAt: O(out-degree) per full iteration, one
//     predicate evaluation per edge
//
// Usage
//
//	edges := []tgraph.Edge{
//	    tgraph.NewAlwaysEdge(0, 0),
//	    tgraph.NewEdge(0, 1, formula.Ge{
//	        L: formula.Var{Name: "x"},
//	        R: formula.Const{Value: 5},
//	    }),
//	}
//	ids := map[string]tgraph.Node{"s0": 0, "s1": 1}
//	g, err := tgraph.New(2, ids, nil, edges)
//	if err != nil {
//	    // ErrBadNodeCount, ErrEndpointRange, ErrIDRange, or ErrAttrRange
//	}
//	for succ := range g.SuccessorsAt(0, 5) {
//	    _ = succ // 0 (self-loop) and 1 (x >= 5 holds)
//	}
package tgraph
