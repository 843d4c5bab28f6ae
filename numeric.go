package taylor

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EvalDecimal evaluates an expression, typically a truncated series,
// at the given variable bindings using arbitrary-precision decimal
// arithmetic. prec is the number of digits carried through division,
// conversion of rationals, and the transcendental functions. Remainder
// terms evaluate to zero; unresolved derivatives and infinities fail.
func EvalDecimal(e Expr, bindings map[string]decimal.Decimal, prec int32) (decimal.Decimal, error) {
	switch t := e.(type) {
	case *Num:
		return decimal.NewFromBigRat(t.val, prec), nil
	case *Sym:
		v, ok := bindings[t.name]
		if !ok {
			return decimal.Zero, fmt.Errorf("unbound symbol: %s", t.name)
		}
		return v, nil
	case *Add:
		acc := decimal.Zero
		for _, term := range t.terms {
			v, err := EvalDecimal(term, bindings, prec)
			if err != nil {
				return decimal.Zero, err
			}
			acc = acc.Add(v)
		}
		return acc, nil
	case *Mul:
		acc := decimal.NewFromInt(1)
		for _, f := range t.factors {
			v, err := EvalDecimal(f, bindings, prec)
			if err != nil {
				return decimal.Zero, err
			}
			acc = acc.Mul(v)
		}
		return acc, nil
	case *Pow:
		base, err := EvalDecimal(t.base, bindings, prec)
		if err != nil {
			return decimal.Zero, err
		}
		exp, err := EvalDecimal(t.exp, bindings, prec)
		if err != nil {
			return decimal.Zero, err
		}
		return base.PowWithPrecision(exp, prec)
	case *Func:
		arg, err := EvalDecimal(t.arg, bindings, prec)
		if err != nil {
			return decimal.Zero, err
		}
		return evalDecimalFunc(t.name, arg, prec)
	case *BigO:
		// Truncation remainder: contributes nothing to the value.
		return decimal.Zero, nil
	case *Deriv:
		return decimal.Zero, fmt.Errorf("cannot evaluate unresolved derivative %s", t)
	case *Inf:
		return decimal.Zero, fmt.Errorf("cannot evaluate %s", t)
	}
	return decimal.Zero, fmt.Errorf("cannot evaluate expression %s", e)
}

func evalDecimalFunc(name string, arg decimal.Decimal, prec int32) (decimal.Decimal, error) {
	two := decimal.NewFromInt(2)
	switch name {
	case "sin":
		return arg.Sin(), nil
	case "cos":
		return arg.Cos(), nil
	case "tan":
		return arg.Tan(), nil
	case "atan":
		return arg.Atan(), nil
	case "abs":
		return arg.Abs(), nil
	case "exp":
		return arg.ExpTaylor(prec)
	case "ln":
		return arg.Ln(prec)
	case "sinh":
		pos, err := arg.ExpTaylor(prec)
		if err != nil {
			return decimal.Zero, err
		}
		neg, err := arg.Neg().ExpTaylor(prec)
		if err != nil {
			return decimal.Zero, err
		}
		return pos.Sub(neg).DivRound(two, prec), nil
	case "cosh":
		pos, err := arg.ExpTaylor(prec)
		if err != nil {
			return decimal.Zero, err
		}
		neg, err := arg.Neg().ExpTaylor(prec)
		if err != nil {
			return decimal.Zero, err
		}
		return pos.Add(neg).DivRound(two, prec), nil
	case "floor":
		return arg.Floor(), nil
	case "ceil":
		return arg.Ceil(), nil
	case "sign":
		return decimal.NewFromInt(int64(arg.Sign())), nil
	}
	return decimal.Zero, fmt.Errorf("no numeric rule for function %q", name)
}
