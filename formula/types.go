// Package formula defines the integer-arithmetic and boolean-constraint
// ASTs used to describe when a temporal edge is available, together with
// free-variable analysis and a compiler lowering quantifier-free,
// single-variable formulas into pure time predicates.
//
// This file declares the Expr and Formula variant sets, their
// s-expression String forms, and the compiler's sentinel errors.
//
// Errors:
//
//	ErrQuantified    - formula contains a Forall or Exists node.
//	ErrFreeVariables - formula has more than one distinct free variable.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for predicate compilation.
var (
	// ErrQuantified indicates the formula contains quantifiers and
	// therefore cannot be lowered to a time predicate.
	ErrQuantified = errors.New("formula: contains quantifiers")

	// ErrFreeVariables indicates the formula mentions more than one
	// distinct free variable.
	ErrFreeVariables = errors.New("formula: more than one free variable")
)

// Predicate is a pure, total function from a time step to availability.
// It is the compiled form of a quantifier-free Formula with at most one
// free variable; that variable denotes the global time.
type Predicate func(t int) bool

// Expr is an integer-valued arithmetic expression over named variables.
//
// The variant set is closed: Add, Sub, Scale, Mod, Var, Const. Traversal
// sites switch exhaustively over these six types and never expect new
// kinds at runtime.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Add is the sum of two subexpressions.
type Add struct {
	L, R Expr
}

// Sub is the difference of two subexpressions.
type Sub struct {
	L, R Expr
}

// Scale multiplies a subexpression by the constant K.
type Scale struct {
	K int64
	E Expr
}

// Mod is the remainder of a subexpression modulo the constant M.
// Remainder is truncating: the sign follows the dividend, as with Go's
// % on int64. M must be nonzero; evaluating a compiled Mod with M == 0
// panics with a divide-by-zero, exactly like the % operator.
type Mod struct {
	E Expr
	M int64
}

// Var is a named variable occurrence.
type Var struct {
	Name string
}

// Const is an integer literal.
type Const struct {
	Value int64
}

func (Add) isExpr()   {}
func (Sub) isExpr()   {}
func (Scale) isExpr() {}
func (Mod) isExpr()   {}
func (Var) isExpr()   {}
func (Const) isExpr() {}

func (e Add) String() string   { return fmt.Sprintf("(+ %s %s)", e.L, e.R) }
func (e Sub) String() string   { return fmt.Sprintf("(- %s %s)", e.L, e.R) }
func (e Scale) String() string { return fmt.Sprintf("(* %d %s)", e.K, e.E) }
func (e Mod) String() string   { return fmt.Sprintf("(mod %s %d)", e.E, e.M) }
func (e Var) String() string   { return e.Name }
func (e Const) String() string { return fmt.Sprintf("%d", e.Value) }

// Formula is a boolean constraint over Expr comparisons.
//
// The variant set is closed: Forall, Exists, And, Or, Not, the six
// comparisons Eq/Neq/Lt/Le/Gt/Ge, and the literals True/False.
type Formula interface {
	fmt.Stringer
	isFormula()
}

// Forall universally quantifies Var over Body.
type Forall struct {
	Var  string
	Body Formula
}

// Exists existentially quantifies Var over Body.
type Exists struct {
	Var  string
	Body Formula
}

// And is an n-ary conjunction. An empty conjunction is true.
type And struct {
	Subs []Formula
}

// Or is an n-ary disjunction. An empty disjunction is false.
type Or struct {
	Subs []Formula
}

// Not negates its subformula.
type Not struct {
	Sub Formula
}

// Eq holds when both sides are equal.
type Eq struct{ L, R Expr }

// Neq holds when the sides differ.
type Neq struct{ L, R Expr }

// Lt holds when the left side is strictly smaller.
type Lt struct{ L, R Expr }

// Le holds when the left side is smaller or equal.
type Le struct{ L, R Expr }

// Gt holds when the left side is strictly greater.
type Gt struct{ L, R Expr }

// Ge holds when the left side is greater or equal.
type Ge struct{ L, R Expr }

// True is the constant-true formula.
type True struct{}

// False is the constant-false formula.
type False struct{}

func (Forall) isFormula() {}
func (Exists) isFormula() {}
func (And) isFormula()    {}
func (Or) isFormula()     {}
func (Not) isFormula()    {}
func (Eq) isFormula()     {}
func (Neq) isFormula()    {}
func (Lt) isFormula()     {}
func (Le) isFormula()     {}
func (Gt) isFormula()     {}
func (Ge) isFormula()     {}
func (True) isFormula()   {}
func (False) isFormula()  {}

func (f Forall) String() string { return fmt.Sprintf("(forall %s %s)", f.Var, f.Body) }
func (f Exists) String() string { return fmt.Sprintf("(exists %s %s)", f.Var, f.Body) }
func (f And) String() string    { return nary("and", f.Subs) }
func (f Or) String() string     { return nary("or", f.Subs) }
func (f Not) String() string    { return fmt.Sprintf("(not %s)", f.Sub) }
func (f Eq) String() string     { return fmt.Sprintf("(= %s %s)", f.L, f.R) }
func (f Neq) String() string    { return fmt.Sprintf("(!= %s %s)", f.L, f.R) }
func (f Lt) String() string     { return fmt.Sprintf("(< %s %s)", f.L, f.R) }
func (f Le) String() string     { return fmt.Sprintf("(<= %s %s)", f.L, f.R) }
func (f Gt) String() string     { return fmt.Sprintf("(> %s %s)", f.L, f.R) }
func (f Ge) String() string     { return fmt.Sprintf("(>= %s %s)", f.L, f.R) }
func (True) String() string     { return "true" }
func (False) String() string    { return "false" }

// nary renders an n-ary connective in prefix notation.
func nary(op string, subs []Formula) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op)
	for _, s := range subs {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	b.WriteByte(')')

	return b.String()
}
