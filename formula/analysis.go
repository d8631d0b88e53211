// Package formula free-variable and quantifier analysis.
//
// The collectors thread an explicit bound-variable scope through the
// recursion: a quantifier binds its variable on entry and restores the
// variable's previous bound-state on exit, so the same name may be
// reused at different scopes without interference.
package formula

// IsQuantifierFree reports whether f contains no Forall or Exists node
// anywhere in the tree.
// Complexity: O(size of f)
func IsQuantifierFree(f Formula) bool {
	switch v := f.(type) {
	case Forall, Exists:
		return false
	case And:
		for _, s := range v.Subs {
			if !IsQuantifierFree(s) {
				return false
			}
		}
		return true
	case Or:
		for _, s := range v.Subs {
			if !IsQuantifierFree(s) {
				return false
			}
		}
		return true
	case Not:
		return IsQuantifierFree(v.Sub)
	default:
		// comparisons and True/False are quantifier-free leaves
		return true
	}
}

// FreeVariables returns the set of variable names occurring free in f,
// i.e. not shadowed by an enclosing quantifier over the same name.
// Complexity: O(size of f)
func FreeVariables(f Formula) map[string]struct{} {
	bound := make(map[string]struct{})
	free := make(map[string]struct{})
	collectFormula(f, bound, free)

	return free
}

// HasExactlyOneFreeVariable reports whether the free-variable set of f
// is exactly {name}.
func HasExactlyOneFreeVariable(f Formula, name string) bool {
	free := FreeVariables(f)
	_, ok := free[name]

	return len(free) == 1 && ok
}

// collectFormula walks f, adding unbound variable occurrences to free.
// bound is mutated in place and restored around quantifier bodies.
func collectFormula(f Formula, bound, free map[string]struct{}) {
	switch v := f.(type) {
	case Forall:
		collectQuantified(v.Var, v.Body, bound, free)
	case Exists:
		collectQuantified(v.Var, v.Body, bound, free)
	case And:
		for _, s := range v.Subs {
			collectFormula(s, bound, free)
		}
	case Or:
		for _, s := range v.Subs {
			collectFormula(s, bound, free)
		}
	case Not:
		collectFormula(v.Sub, bound, free)
	case Eq:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Neq:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Lt:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Le:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Gt:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Ge:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case True, False:
		// no variables
	}
}

// collectQuantified binds name around body, then restores whether name
// was bound before entry (nested reuse of a name must not unbind the
// outer scope).
func collectQuantified(name string, body Formula, bound, free map[string]struct{}) {
	_, wasBound := bound[name]
	bound[name] = struct{}{}
	collectFormula(body, bound, free)
	if !wasBound {
		delete(bound, name)
	}
}

// collectExpr adds unbound variable occurrences in e to free.
func collectExpr(e Expr, bound, free map[string]struct{}) {
	switch v := e.(type) {
	case Add:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Sub:
		collectExpr(v.L, bound, free)
		collectExpr(v.R, bound, free)
	case Scale:
		collectExpr(v.E, bound, free)
	case Mod:
		collectExpr(v.E, bound, free)
	case Var:
		if _, ok := bound[v.Name]; !ok {
			free[v.Name] = struct{}{}
		}
	case Const:
		// no variables
	}
}
