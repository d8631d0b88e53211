// Package formula predicate compiler.
//
// Compile lowers a validated Formula into a small compiled-expression
// program — a closed variant set over the same few arithmetic and
// boolean operators plus "read the time parameter" and "constant" —
// evaluated recursively at call time. The program holds no reference to
// the source AST.
package formula

// exprOp enumerates compiled arithmetic operations.
type exprOp uint8

const (
	opConst exprOp = iota // literal k
	opTime                // the time parameter
	opAdd                 // l + r
	opSub                 // l - r
	opScale               // k * l
	opMod                 // l % k, truncating
)

// exprProgram is a compiled integer term, evaluated over int64 with
// truncating division semantics.
type exprProgram struct {
	op   exprOp
	k    int64
	l, r *exprProgram
}

func (p *exprProgram) eval(t int64) int64 {
	switch p.op {
	case opConst:
		return p.k
	case opTime:
		return t
	case opAdd:
		return p.l.eval(t) + p.r.eval(t)
	case opSub:
		return p.l.eval(t) - p.r.eval(t)
	case opScale:
		return p.k * p.l.eval(t)
	default: // opMod
		return p.l.eval(t) % p.k
	}
}

// boolOp enumerates compiled boolean operations.
type boolOp uint8

const (
	opFalse boolOp = iota
	opTrue
	opAll // conjunction over subs
	opAny // disjunction over subs
	opNot
	opEq
	opNeq
	opLt
	opLe
	opGt
	opGe
)

// boolProgram is a compiled boolean term. Comparison nodes use cl/cr;
// connectives use subs.
type boolProgram struct {
	op     boolOp
	subs   []*boolProgram
	cl, cr *exprProgram
}

func (p *boolProgram) eval(t int64) bool {
	switch p.op {
	case opFalse:
		return false
	case opTrue:
		return true
	case opAll:
		for _, s := range p.subs {
			if !s.eval(t) {
				return false
			}
		}
		return true
	case opAny:
		for _, s := range p.subs {
			if s.eval(t) {
				return true
			}
		}
		return false
	case opNot:
		return !p.subs[0].eval(t)
	case opEq:
		return p.cl.eval(t) == p.cr.eval(t)
	case opNeq:
		return p.cl.eval(t) != p.cr.eval(t)
	case opLt:
		return p.cl.eval(t) < p.cr.eval(t)
	case opLe:
		return p.cl.eval(t) <= p.cr.eval(t)
	case opGt:
		return p.cl.eval(t) > p.cr.eval(t)
	default: // opGe
		return p.cl.eval(t) >= p.cr.eval(t)
	}
}

// Compile lowers f into a Predicate over the time step.
//
// It succeeds iff f is quantifier-free and mentions at most one
// distinct free variable; that variable is read as the time parameter.
// With zero free variables the predicate ignores its argument.
// Returns ErrQuantified or ErrFreeVariables otherwise.
// Complexity: O(size of f) to compile; each call is O(size of f).
func Compile(f Formula) (Predicate, error) {
	if !IsQuantifierFree(f) {
		return nil, ErrQuantified
	}
	free := FreeVariables(f)
	if len(free) > 1 {
		return nil, ErrFreeVariables
	}
	timeVar := ""
	for name := range free {
		timeVar = name
	}

	prog := lowerFormula(f, timeVar)

	return func(t int) bool { return prog.eval(int64(t)) }, nil
}

// lowerFormula compiles f, reading timeVar as the time parameter.
// Quantifiers cannot occur after validation; should one slip through it
// lowers to constant false rather than panicking.
func lowerFormula(f Formula, timeVar string) *boolProgram {
	switch v := f.(type) {
	case And:
		return &boolProgram{op: opAll, subs: lowerAll(v.Subs, timeVar)}
	case Or:
		return &boolProgram{op: opAny, subs: lowerAll(v.Subs, timeVar)}
	case Not:
		return &boolProgram{op: opNot, subs: []*boolProgram{lowerFormula(v.Sub, timeVar)}}
	case Eq:
		return lowerCmp(opEq, v.L, v.R, timeVar)
	case Neq:
		return lowerCmp(opNeq, v.L, v.R, timeVar)
	case Lt:
		return lowerCmp(opLt, v.L, v.R, timeVar)
	case Le:
		return lowerCmp(opLe, v.L, v.R, timeVar)
	case Gt:
		return lowerCmp(opGt, v.L, v.R, timeVar)
	case Ge:
		return lowerCmp(opGe, v.L, v.R, timeVar)
	case True:
		return &boolProgram{op: opTrue}
	default: // False, or an unreachable quantifier
		return &boolProgram{op: opFalse}
	}
}

func lowerAll(subs []Formula, timeVar string) []*boolProgram {
	progs := make([]*boolProgram, len(subs))
	for i, s := range subs {
		progs[i] = lowerFormula(s, timeVar)
	}

	return progs
}

func lowerCmp(op boolOp, l, r Expr, timeVar string) *boolProgram {
	return &boolProgram{op: op, cl: lowerExpr(l, timeVar), cr: lowerExpr(r, timeVar)}
}

// lowerExpr compiles e. A Var matching timeVar reads the time
// parameter; any other Var is unreachable after validation and lowers
// defensively to constant 0.
func lowerExpr(e Expr, timeVar string) *exprProgram {
	switch v := e.(type) {
	case Add:
		return &exprProgram{op: opAdd, l: lowerExpr(v.L, timeVar), r: lowerExpr(v.R, timeVar)}
	case Sub:
		return &exprProgram{op: opSub, l: lowerExpr(v.L, timeVar), r: lowerExpr(v.R, timeVar)}
	case Scale:
		return &exprProgram{op: opScale, k: v.K, l: lowerExpr(v.E, timeVar)}
	case Mod:
		return &exprProgram{op: opMod, k: v.M, l: lowerExpr(v.E, timeVar)}
	case Var:
		if timeVar != "" && v.Name == timeVar {
			return &exprProgram{op: opTime}
		}
		return &exprProgram{op: opConst, k: 0}
	case Const:
		return &exprProgram{op: opConst, k: v.Value}
	default:
		return &exprProgram{op: opConst, k: 0}
	}
}
