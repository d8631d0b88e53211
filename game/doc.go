// Package game solves two-player punctual reachability games on
// temporal graphs: which nodes let a chosen player force reaching a
// target set at exactly time k?
//
// What
//
//   - ReachableAt(g, k, player, target) computes the winning region at
//     time 0 by backward induction from the target region at time k.
//   - Existential attractor at player-owned nodes (one available edge
//     into the region suffices), universal attractor elsewhere (every
//     available edge must lead into the region, and at least one edge
//     must be available — zero moves is a loss, never a vacuous win).
//   - Functional options: WithContext for cancellation between steps,
//     WithWorkers to parallelize the per-step node sweep, WithOnStep to
//     observe intermediate regions.
//
// Why
//
//	Punctual reachability ("arrive at exactly time k") composes with
//	temporal edge availability: waiting on a self-loop until a
//	constrained edge opens is itself a strategy, and backward induction
//	captures it with two O(V) buffers instead of k+1 region vectors.
//
// Determinism
//
//	The solver is a pure function of (graph, k, player, target) — no
//	randomness, no iteration-order dependence — so exact golden-output
//	tests are reliable. WithWorkers does not change results: each step
//	reads only the frozen previous region and workers write disjoint
//	ranges.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(k·(V + per-step predicate evaluations)), at most one
//     evaluation per edge per step
//   - Memory: O(V) for the two double-buffered region vectors
//
// Usage
//
//	// target = {s1}, solve for player false over horizon 6
//	target := g.VectorFromIDs(map[string]struct{}{"s1": {}})
//	wins, err := game.ReachableAt(g, 6, false, target)
//	if err != nil {
//	    // ErrGraphNil, ErrNegativeHorizon, ErrTargetLength,
//	    // ErrOptionViolation, or a context error
//	}
//	fmt.Println(g.IDsFromVector(wins))
package game
