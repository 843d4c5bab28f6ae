package taylor

import "fmt"

// ExpansionSpec directs one stage of a series expansion: the variable
// to eliminate, the point it is centered on, and the highest derivative
// degree to keep. Order 0 means "evaluate at the point, no derivative
// terms". Specs in a list are processed left to right.
type ExpansionSpec struct {
	Var   string
	Point Expr
	Order int
}

// Passes with no structural change end the driver's self-recursion; the
// cap backs the guard up if simplification keeps oscillating.
const maxExpandPasses = 64

// TaylorExpand returns the truncated power series of e in the given
// variables. Expressions free of every spec variable come back
// unchanged. A negative order in any spec fails with ErrNegativeOrder.
// Expansion about an infinity fails with ErrExpansionPoint;
// an expansion whose derivative fallback reproduces its own input fails
// with ErrDivergentExpansion instead of recursing forever.
func TaylorExpand(e Expr, specs ...ExpansionSpec) (Expr, error) {
	if len(specs) == 0 {
		return e, nil
	}
	for _, sp := range specs {
		if sp.Order < 0 {
			return nil, fmt.Errorf("%w: %s to order %d", ErrNegativeOrder, sp.Var, sp.Order)
		}
	}
	return expand(e.Simplify(), specs, 0)
}

// Taylor is the single-variable entry point.
func Taylor(e Expr, varName string, point Expr, order int) (Expr, error) {
	return TaylorExpand(e, ExpansionSpec{Var: varName, Point: point, Order: order})
}

// Maclaurin expands about zero.
func Maclaurin(e Expr, varName string, order int) (Expr, error) {
	return Taylor(e, varName, N(0), order)
}

// TaylorWithRemainder appends a big-O remainder term to the truncated
// series.
func TaylorWithRemainder(e Expr, varName string, point Expr, order int) (Expr, error) {
	series, err := Taylor(e, varName, point, order)
	if err != nil {
		return nil, err
	}
	remainder := OTerm(varName, order+1)
	if add, ok := series.(*Add); ok {
		return &Add{terms: append(add.Terms(), remainder)}, nil
	}
	return &Add{terms: []Expr{series, remainder}}, nil
}

func expand(e Expr, specs []ExpansionSpec, depth int) (Expr, error) {
	if depth >= maxExpandPasses {
		return nil, fmt.Errorf("%w: no fixpoint after %d passes for %s", ErrDivergentExpansion, maxExpandPasses, e)
	}
	if s, ok := knownSeries(e, specs); ok {
		return s, nil
	}
	free := true
	for _, sp := range specs {
		if ContainsSymbol(e, sp.Var) {
			free = false
			break
		}
	}
	if free {
		return e, nil
	}
	r, err := diffExpand(e, specs)
	if err != nil {
		return nil, err
	}
	// The self-reference check runs on the raw candidate, before any
	// further recursion and before normalization can fold a reproduced
	// input back into an innocuous-looking tree.
	for _, hit := range SearchSubtrees(e, r, nil) {
		if _, marked := hit.(*Deriv); !marked {
			return nil, fmt.Errorf("%w: expansion of %s reproduces its input", ErrDivergentExpansion, e)
		}
	}
	r = r.Simplify()
	// An unresolved derivative in an expansion variable cannot be
	// resolved by another pass; re-deriving it only raises the marker
	// order. The series is as resolved as it can get: accept it here.
	if markerResidual(r, specs) || r.Equal(e) {
		return r, nil
	}
	return expand(r, specs, depth+1)
}

// markerResidual reports whether the candidate still carries an
// unresolved derivative taken in one of the spec variables.
func markerResidual(e Expr, specs []ExpansionSpec) bool {
	if d, ok := e.(*Deriv); ok {
		for _, sp := range specs {
			if d.varName == sp.Var {
				return true
			}
		}
	}
	for _, c := range Children(e) {
		if markerResidual(c, specs) {
			return true
		}
	}
	return false
}

// diffExpand is the generic derivative-based expansion: the sum of
// f^(k)(p)/k! * (v-p)^k for k = 0..order, with each coefficient
// re-expanded in the remaining variables.
func diffExpand(e Expr, specs []ExpansionSpec) (Expr, error) {
	if err := checkPoints(specs); err != nil {
		return nil, err
	}
	return diffTerms(e, specs)
}

func diffTerms(e Expr, specs []ExpansionSpec) (Expr, error) {
	if len(specs) == 0 {
		return e, nil
	}
	sp, rest := specs[0], specs[1:]
	shift := AddOf(S(sp.Var), MulOf(N(-1), sp.Point))
	deriv := e
	fact := N(1)
	terms := make([]Expr, 0, sp.Order+1)
	raw := false
	for k := 0; k <= sp.Order; k++ {
		if k > 0 {
			deriv = Diff(deriv, sp.Var)
			fact = numMul(fact, N(int64(k)))
		}
		coeff, defined := substituteAt(deriv, sp.Var, sp.Point)
		if !defined {
			// Undefined at the point: keep the unevaluated derivative,
			// still written in sp.Var. Imprecise but deliberate; the
			// driver decides whether the result is usable.
			coeff = deriv
		}
		var err error
		coeff, err = diffTerms(coeff, rest)
		if err != nil {
			return nil, err
		}
		if defined {
			terms = append(terms, MulOf(numRecip(fact), coeff, PowOf(shift, N(int64(k)))))
		} else {
			// Assemble without simplifying so the residual stays
			// visible to the self-reference check.
			raw = true
			terms = append(terms, &Mul{factors: []Expr{numRecip(fact), coeff, &Pow{base: shift, exp: N(int64(k))}}})
		}
	}
	if raw {
		return &Add{terms: terms}, nil
	}
	return AddOf(terms...), nil
}

// substituteAt substitutes value for varName and reports whether the
// result is numerically defined. A zero base raised to a non-positive
// power, or the logarithm of a non-positive numeral, marks the whole
// substitution undefined; unresolved derivatives in their own variable
// are skipped rather than evaluated.
func substituteAt(e Expr, varName string, value Expr) (Expr, bool) {
	switch t := e.(type) {
	case *Sym:
		if t.name == varName {
			return value, true
		}
		return t, true
	case *Deriv:
		if t.varName == varName {
			return t, true
		}
		inner, ok := substituteAt(t.expr, varName, value)
		if !ok {
			return nil, false
		}
		return &Deriv{expr: inner, varName: t.varName, order: t.order}, true
	case *Add:
		out := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			s, ok := substituteAt(term, varName, value)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return AddOf(out...), true
	case *Mul:
		out := make([]Expr, len(t.factors))
		for i, f := range t.factors {
			s, ok := substituteAt(f, varName, value)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return MulOf(out...), true
	case *Pow:
		base, ok := substituteAt(t.base, varName, value)
		if !ok {
			return nil, false
		}
		exp, ok := substituteAt(t.exp, varName, value)
		if !ok {
			return nil, false
		}
		if isZeroNum(base) {
			if en, isNum := exp.(*Num); isNum && !en.IsPositive() {
				return nil, false
			}
		}
		return PowOf(base, exp), true
	case *Func:
		arg, ok := substituteAt(t.arg, varName, value)
		if !ok {
			return nil, false
		}
		if t.name == "ln" {
			if an, isNum := arg.(*Num); isNum && !an.IsPositive() {
				return nil, false
			}
		}
		return FuncOf(t.name, arg), true
	}
	return e, true
}

// checkPoints rejects expansion about infinity before any work is done.
func checkPoints(specs []ExpansionSpec) error {
	for _, sp := range specs {
		if inf, ok := sp.Point.(*Inf); ok {
			return fmt.Errorf("%w: cannot expand %s about %s", ErrExpansionPoint, sp.Var, inf)
		}
	}
	return nil
}

// ============================================================
// Top-level convenience functions
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

func Diff(expr Expr, varName string) Expr {
	return expr.Diff(varName).Simplify()
}

func DiffN(expr Expr, varName string, n int) Expr {
	result := expr
	for i := 0; i < n; i++ {
		result = Diff(result, varName)
	}
	return result
}
