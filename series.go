package taylor

import "math/big"

// seriesCoeff returns the exact k-th Maclaurin coefficient of a
// function, or nil when the x^k term vanishes.
type seriesCoeff func(k int) *Num

// maclaurinRules holds the functions with a known closed-form series
// about zero. The driver consults this table before falling back to
// derivatives.
var maclaurinRules = map[string]seriesCoeff{
	"exp": func(k int) *Num {
		return invFactorial(k)
	},
	"sin": func(k int) *Num {
		if k%2 == 0 {
			return nil
		}
		c := invFactorial(k)
		if (k/2)%2 == 1 {
			return numMul(N(-1), c)
		}
		return c
	},
	"cos": func(k int) *Num {
		if k%2 == 1 {
			return nil
		}
		c := invFactorial(k)
		if (k/2)%2 == 1 {
			return numMul(N(-1), c)
		}
		return c
	},
	"sinh": func(k int) *Num {
		if k%2 == 0 {
			return nil
		}
		return invFactorial(k)
	},
	"cosh": func(k int) *Num {
		if k%2 == 1 {
			return nil
		}
		return invFactorial(k)
	},
	"atan": func(k int) *Num {
		if k == 0 || k%2 == 0 {
			return nil
		}
		c := F(1, int64(k))
		if (k/2)%2 == 1 {
			return numMul(N(-1), c)
		}
		return c
	},
}

func invFactorial(k int) *Num {
	f := big.NewInt(1)
	for i := int64(2); i <= int64(k); i++ {
		f.Mul(f, big.NewInt(i))
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(1), f)}
}

// knownSeries recognizes a single-variable expansion of a tabulated
// function applied directly to the expansion variable about zero, and
// produces the truncated series without any differentiation. Shifted
// points and composed arguments take the derivative fallback.
func knownSeries(e Expr, specs []ExpansionSpec) (Expr, bool) {
	if len(specs) != 1 {
		return nil, false
	}
	sp := specs[0]
	if sp.Order < 0 || !isZeroNum(sp.Point) {
		return nil, false
	}
	f, ok := e.(*Func)
	if !ok {
		return nil, false
	}
	rule, ok := maclaurinRules[f.name]
	if !ok {
		return nil, false
	}
	arg, ok := f.arg.(*Sym)
	if !ok || arg.name != sp.Var {
		return nil, false
	}
	terms := make([]Expr, 0, sp.Order+1)
	for k := 0; k <= sp.Order; k++ {
		c := rule(k)
		if c == nil {
			continue
		}
		switch k {
		case 0:
			terms = append(terms, c)
		case 1:
			terms = append(terms, MulOf(c, S(sp.Var)))
		default:
			terms = append(terms, MulOf(c, PowOf(S(sp.Var), N(int64(k)))))
		}
	}
	return AddOf(terms...), true
}
