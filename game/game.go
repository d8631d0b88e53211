// Package game computes winning regions of punctual reachability games
// on temporal graphs by backward induction.
package game

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ontime/tgraph"
)

// ReachableAt computes the set of nodes from which player can force
// reaching the target set at exactly time k, starting at time 0.
//
// target is the winning region at time k, index-ordered, one entry per
// node. The result is a fresh vector of the same length; target itself
// is never mutated. k == 0 returns a copy of target verbatim.
//
// At each step i from k-1 down to 0, for every node n:
//   - owner(n) == player: n wins iff some edge available at time i
//     leads into the region at i+1 (the controlling player picks the
//     move);
//   - owner(n) != player: n wins iff at least one edge is available at
//     time i and every available edge leads into the region at i+1
//     (zero available moves is a loss, never a vacuous win).
//
// Returns ErrGraphNil, ErrNegativeHorizon, ErrTargetLength, or
// ErrOptionViolation for invalid input, and the context's error when
// cancelled via WithContext.
// Complexity: O(k·(V + predicate evaluations)), O(V) memory for the two
// double-buffered region vectors.
func ReachableAt(g *tgraph.TemporalGraph, k int, player bool, target []bool, opts ...Option) ([]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHorizon, k)
	}
	if len(target) != g.NodeCount() {
		return nil, fmt.Errorf("%w: got %d, node count %d", ErrTargetLength, len(target), g.NodeCount())
	}

	owner := g.NodeOwnership()

	// wins holds W_{i+1}; next receives W_i. Buffers swap each step, so
	// a sweep never reads the vector it is writing.
	wins := make([]bool, len(target))
	copy(wins, target)
	next := make([]bool, len(target))

	for i := k - 1; i >= 0; i-- {
		// cancellation check (once per step)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if o.Workers > 1 {
			sweepParallel(g, owner, player, i, wins, next, o.Workers)
		} else {
			sweep(g, owner, player, i, wins, next, 0, len(wins))
		}
		wins, next = next, wins
		o.OnStep(i, wins)
	}

	return wins, nil
}

// sweep computes next[lo:hi] from the frozen region wins at time t.
func sweep(g *tgraph.TemporalGraph, owner []bool, player bool, t int, wins, next []bool, lo, hi int) {
	for n := lo; n < hi; n++ {
		if owner[n] == player {
			next[n] = someSuccessorWins(g, n, t, wins)
		} else {
			next[n] = everySuccessorWins(g, n, t, wins)
		}
	}
}

// sweepParallel splits the node range into contiguous chunks, one per
// worker. Workers write disjoint segments of next and only read wins.
func sweepParallel(g *tgraph.TemporalGraph, owner []bool, player bool, t int, wins, next []bool, workers int) {
	total := len(wins)
	if workers > total {
		workers = total
	}
	if workers < 2 {
		sweep(g, owner, player, t, wins, next, 0, total)
		return
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			sweep(g, owner, player, t, wins, next, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// someSuccessorWins is the existential one-step attractor test.
func someSuccessorWins(g *tgraph.TemporalGraph, n tgraph.Node, t int, wins []bool) bool {
	for s := range g.SuccessorsAt(n, t) {
		if wins[s] {
			return true
		}
	}

	return false
}

// everySuccessorWins is the universal one-step attractor test with the
// non-vacuity clause: no available edge means a loss.
func everySuccessorWins(g *tgraph.TemporalGraph, n tgraph.Node, t int, wins []bool) bool {
	available := false
	for s := range g.SuccessorsAt(n, t) {
		available = true
		if !wins[s] {
			return false
		}
	}

	return available
}
