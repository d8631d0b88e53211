package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontime/formula"
)

// TestCompile_Errors verifies the two distinguishable failure modes.
func TestCompile_Errors(t *testing.T) {
	// quantifier anywhere in the tree is rejected
	quantified := formula.Forall{Var: "x", Body: eq(v("x"), c(1))}
	_, err := formula.Compile(quantified)
	assert.ErrorIs(t, err, formula.ErrQuantified, "quantified formula must be rejected")

	nested := formula.And{Subs: []formula.Formula{
		formula.True{},
		formula.Exists{Var: "y", Body: eq(v("y"), c(0))},
	}}
	_, err = formula.Compile(nested)
	assert.ErrorIs(t, err, formula.ErrQuantified, "nested quantifier must be rejected")

	// two distinct free variables are rejected
	twoFree := eq(formula.Add{L: v("x"), R: v("y")}, c(5))
	_, err = formula.Compile(twoFree)
	assert.ErrorIs(t, err, formula.ErrFreeVariables, "two free variables must be rejected")
}

// TestCompile_Literals covers the constant formulas, including large
// time values.
func TestCompile_Literals(t *testing.T) {
	p, err := formula.Compile(formula.True{})
	require.NoError(t, err)
	assert.True(t, p(0), "True must hold at time 0")
	assert.True(t, p(42), "True must hold at time 42")
	assert.True(t, p(1<<40), "True must hold at large times")

	p, err = formula.Compile(formula.False{})
	require.NoError(t, err)
	assert.False(t, p(0))
	assert.False(t, p(1<<40))
}

// TestCompile_SingleFreeVariable checks (x + 2) = 5 holds exactly at 3.
func TestCompile_SingleFreeVariable(t *testing.T) {
	f := eq(formula.Add{L: v("x"), R: c(2)}, c(5))
	p, err := formula.Compile(f)
	require.NoError(t, err)

	assert.True(t, p(3), "%s must hold at 3", f)
	assert.False(t, p(2), "%s must not hold at 2", f)
	assert.False(t, p(4), "%s must not hold at 4", f)
}

// TestCompile_NoFreeVariable checks a closed formula ignores its
// argument.
func TestCompile_NoFreeVariable(t *testing.T) {
	f := formula.Lt{L: c(3), R: c(5)}
	p, err := formula.Compile(f)
	require.NoError(t, err)

	for _, tt := range []int{0, 1, 7, 1 << 30} {
		assert.True(t, p(tt), "closed formula must ignore t=%d", tt)
	}
}

// TestCompile_Arithmetic exercises Sub, Scale, and truncating Mod.
func TestCompile_Arithmetic(t *testing.T) {
	// 2*x - 4 = 6  ⇔  x = 5
	f := formula.Formula(eq(
		formula.Sub{L: formula.Scale{K: 2, E: v("x")}, R: c(4)},
		c(6),
	))
	p, err := formula.Compile(f)
	require.NoError(t, err)
	assert.True(t, p(5))
	assert.False(t, p(4))

	// (x - 7) mod 3 = -2 at x = 5: remainder sign follows the dividend
	f = eq(formula.Mod{E: formula.Sub{L: v("x"), R: c(7)}, M: 3}, c(-2))
	p, err = formula.Compile(f)
	require.NoError(t, err)
	assert.True(t, p(5), "truncating remainder: (5-7) mod 3 = -2")
	assert.False(t, p(8), "(8-7) mod 3 = 1")

	// x mod 4 = 1 holds periodically
	f = eq(formula.Mod{E: v("x"), M: 4}, c(1))
	p, err = formula.Compile(f)
	require.NoError(t, err)
	assert.True(t, p(1))
	assert.True(t, p(5))
	assert.True(t, p(9))
	assert.False(t, p(2))
}

// TestCompile_Comparisons walks all six comparison operators at a
// boundary point.
func TestCompile_Comparisons(t *testing.T) {
	tests := []struct {
		name  string
		f     formula.Formula
		holds []int // times where the predicate holds
		fails []int // times where it does not
	}{
		{"eq", eq(v("x"), c(4)), []int{4}, []int{3, 5}},
		{"neq", formula.Neq{L: v("x"), R: c(4)}, []int{3, 5}, []int{4}},
		{"lt", formula.Lt{L: v("x"), R: c(4)}, []int{0, 3}, []int{4, 5}},
		{"le", formula.Le{L: v("x"), R: c(4)}, []int{3, 4}, []int{5}},
		{"gt", formula.Gt{L: v("x"), R: c(4)}, []int{5}, []int{3, 4}},
		{"ge", formula.Ge{L: v("x"), R: c(4)}, []int{4, 5}, []int{3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := formula.Compile(tc.f)
			require.NoError(t, err)
			for _, at := range tc.holds {
				assert.True(t, p(at), "%s at %d", tc.f, at)
			}
			for _, at := range tc.fails {
				assert.False(t, p(at), "%s at %d", tc.f, at)
			}
		})
	}
}

// TestCompile_Connectives covers n-ary And/Or, Not, and the empty
// connectives.
func TestCompile_Connectives(t *testing.T) {
	even := formula.Formula(eq(formula.Mod{E: v("x"), M: 2}, c(0)))
	big := formula.Formula(formula.Ge{L: v("x"), R: c(10)})

	p, err := formula.Compile(formula.And{Subs: []formula.Formula{even, big}})
	require.NoError(t, err)
	assert.True(t, p(12))
	assert.False(t, p(11), "odd fails the conjunction")
	assert.False(t, p(8), "small fails the conjunction")

	p, err = formula.Compile(formula.Or{Subs: []formula.Formula{even, big}})
	require.NoError(t, err)
	assert.True(t, p(8))
	assert.True(t, p(11))
	assert.False(t, p(7))

	p, err = formula.Compile(formula.Not{Sub: even})
	require.NoError(t, err)
	assert.True(t, p(3))
	assert.False(t, p(4))

	// empty conjunction is true, empty disjunction is false
	p, err = formula.Compile(formula.And{})
	require.NoError(t, err)
	assert.True(t, p(0))
	p, err = formula.Compile(formula.Or{})
	require.NoError(t, err)
	assert.False(t, p(0))
}

// TestCompile_BoundVariableOnly: a quantified formula is rejected even
// when the quantifier leaves no variable free.
func TestCompile_BoundVariableOnly(t *testing.T) {
	f := formula.Exists{Var: "x", Body: eq(v("x"), c(1))}
	_, err := formula.Compile(f)
	assert.ErrorIs(t, err, formula.ErrQuantified)
}
