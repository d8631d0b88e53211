// Package formula models the constraint language that governs when a
// temporal edge is available, and compiles it down to pure time
// predicates.
//
// What
//
//   - Expr: integer arithmetic over named variables — Add, Sub,
//     constant Scale, truncating Mod, Var, Const.
//   - Formula: boolean constraints — Forall/Exists quantifiers, n-ary
//     And/Or, Not, the comparisons =, !=, <, <=, >, >=, and the
//     literals true/false.
//   - Analysis: IsQuantifierFree, FreeVariables (with proper scope
//     shadowing), HasExactlyOneFreeVariable.
//   - Compile: lowers a quantifier-free formula with at most one free
//     variable into a Predicate — a pure func(t int) bool in which that
//     variable reads the global time.
//
// Why
//
//	Temporal-graph edges carry availability constraints written against
//	the current time. Solvers evaluate those constraints millions of
//	times, so the AST is compiled once into a small operator tree and
//	never re-inspected on the hot path.
//
// Semantics
//
//	Arithmetic is 64-bit signed; Mod is the truncating remainder (sign
//	follows the dividend, as Go's % operator) and requires a nonzero
//	modulus — a zero M panics at evaluation time, like % itself.
//	Compilation fails with
//	ErrQuantified for quantified formulas and ErrFreeVariables when more
//	than one distinct variable occurs free; with zero free variables the
//	predicate ignores its argument. A Var that does not match the single
//	free variable evaluates to 0 — unreachable after validation, kept as
//	a no-crash fallback.
//
// Complexity
//
//   - Analysis and compilation: O(size of the AST)
//   - Predicate call: O(size of the compiled tree)
//
// Usage
//
//	// x + 2 = 5, available exactly at time 3
//	f := formula.Eq{
//	    L: formula.Add{L: formula.Var{Name: "x"}, R: formula.Const{Value: 2}},
//	    R: formula.Const{Value: 5},
//	}
//	p, err := formula.Compile(f)
//	if err != nil {
//	    // ErrQuantified or ErrFreeVariables
//	}
//	p(3) // true
//	p(4) // false
package formula
