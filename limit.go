package taylor

import "math"

// LimitResult holds the result of a limit computation.
type LimitResult struct {
	Value   Expr
	Success bool
	Error   string
}

// Limit computes lim_{varName -> point} expr. Direct substitution is
// tried first; an indeterminate quotient goes through L'Hôpital a
// bounded number of times, and a truncated series expansion is the last
// resort.
func Limit(expr Expr, varName string, point Expr) LimitResult {
	return limitRecursive(expr, varName, point, 5)
}

func limitRecursive(expr Expr, varName string, point Expr, maxLhopital int) LimitResult {
	expr = expr.Simplify()
	if subbed, defined := substituteAt(expr, varName, point); defined {
		if !ContainsSymbol(subbed, varName) && finiteValue(subbed) {
			return LimitResult{Value: subbed, Success: true}
		}
	}
	if maxLhopital > 0 {
		if num, denom, ok := extractQuotient(expr); ok {
			nv, nok := Sub(num, varName, point).Eval()
			dv, dok := Sub(denom, varName, point).Eval()
			if nok && dok && nv.IsZero() && dv.IsZero() {
				dNum := Diff(num, varName)
				dDen := Diff(denom, varName)
				return limitRecursive(MulOf(dNum, PowOf(dDen, N(-1))), varName, point, maxLhopital-1)
			}
		}
	}
	if _, isInf := point.(*Inf); !isInf {
		if series, err := Taylor(expr, varName, point, 4); err == nil {
			if subbed, defined := substituteAt(series, varName, point); defined {
				if !ContainsSymbol(subbed, varName) && finiteValue(subbed) {
					return LimitResult{Value: subbed, Success: true}
				}
			}
		}
	}
	return LimitResult{
		Error:   "limit could not be determined: " + expr.String() + " as " + varName + " -> " + point.String(),
		Success: false,
	}
}

// finiteValue reports whether an expression with no free occurrence of
// the limit variable represents a finite value (symbolic constants
// count as finite).
func finiteValue(e Expr) bool {
	if _, isInf := e.(*Inf); isInf {
		return false
	}
	if v, ok := e.Eval(); ok {
		f, _ := v.val.Float64()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// extractQuotient splits a product with negative-power factors into
// numerator and denominator.
func extractQuotient(e Expr) (num, denom Expr, ok bool) {
	m, isMul := e.(*Mul)
	if !isMul {
		return nil, nil, false
	}
	var numFactors, denomFactors []Expr
	for _, f := range m.factors {
		if p, isPow := f.(*Pow); isPow {
			if en, isNum := p.exp.(*Num); isNum && en.IsNegOne() {
				denomFactors = append(denomFactors, p.base)
				continue
			}
		}
		numFactors = append(numFactors, f)
	}
	if len(denomFactors) == 0 {
		return nil, nil, false
	}
	var n, d Expr
	switch len(numFactors) {
	case 0:
		n = N(1)
	case 1:
		n = numFactors[0]
	default:
		n = &Mul{factors: numFactors}
	}
	if len(denomFactors) == 1 {
		d = denomFactors[0]
	} else {
		d = &Mul{factors: denomFactors}
	}
	return n, d, true
}
