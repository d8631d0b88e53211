// Package ontime solves punctual reachability games played on temporal
// graphs — directed graphs whose edges exist only at the time steps
// satisfying a logical constraint.
//
// 🚀 What is ontime?
//
//	A small, pure-Go game-solving core that brings together:
//		• Formula model: integer arithmetic & boolean constraints with
//		  free-variable analysis
//		• Predicate compiler: quantifier-free, single-variable formulas
//		  lowered to pure func(time) bool availability tests
//		• Temporal graphs: immutable multigraphs with per-node ownership
//		  and time-indexed adjacency
//		• Game solver: backward induction computing exact winning
//		  regions at time 0 from a target region at horizon k
//
// ✨ Why choose ontime?
//
//   - Exact semantics – punctual ("at exactly k") reachability, with the
//     universal attractor's non-vacuity clause handled correctly
//   - Deterministic – solving is a pure function of its inputs, safe for
//     golden-output testing
//   - Pure Go – no cgo, no hidden deps
//   - Composable – parsers, CLIs and formatters live outside the core
//     and talk to it through ASTs, identifier sets and boolean vectors
//
// Everything is organized under three subpackages:
//
//	formula/ — Expr/Formula ASTs, analysis & the predicate compiler
//	tgraph/  — temporal multigraph, ownership, id↔index translation
//	game/    — the backward-induction solver
//
// Quick sketch:
//
//	    s0 ──(x ≥ 5)──▶ s1
//	    ↺ true          ↺ true
//
//	waiting at s0 until time 5 and then crossing reaches s1 at time 6.
//
//	go get github.com/katalvlaran/ontime
package ontime
