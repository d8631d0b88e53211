package formula_test

import (
	"fmt"

	"github.com/katalvlaran/ontime/formula"
)

// ExampleCompile lowers (x + 2) = 5 into a time predicate and probes it
// around its single satisfying time step.
func ExampleCompile() {
	f := formula.Eq{
		L: formula.Add{L: formula.Var{Name: "x"}, R: formula.Const{Value: 2}},
		R: formula.Const{Value: 5},
	}

	p, err := formula.Compile(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(f)
	fmt.Println(p(2), p(3), p(4))
	// Output:
	// (= (+ x 2) 5)
	// false true false
}

// ExampleCompile_periodic models an edge open on even time steps only.
func ExampleCompile_periodic() {
	even := formula.Eq{
		L: formula.Mod{E: formula.Var{Name: "t"}, M: 2},
		R: formula.Const{Value: 0},
	}

	p, err := formula.Compile(even)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for t := 0; t < 5; t++ {
		fmt.Printf("t=%d %v\n", t, p(t))
	}
	// Output:
	// t=0 true
	// t=1 false
	// t=2 true
	// t=3 false
	// t=4 true
}

// ExampleFreeVariables shows quantifier shadowing: the bound x is not
// free, the untouched y is.
func ExampleFreeVariables() {
	f := formula.Forall{Var: "x", Body: formula.Eq{
		L: formula.Var{Name: "x"},
		R: formula.Var{Name: "y"},
	}}

	free := formula.FreeVariables(f)
	_, xFree := free["x"]
	_, yFree := free["y"]
	fmt.Println(len(free), xFree, yFree)
	// Output:
	// 1 false true
}
