package taylor

import (
	"fmt"
	"math"
)

// ============================================================
// Func — named function applications
// ============================================================

type Func struct {
	name string
	arg  Expr
}

// FuncOf applies a named single-argument function. Unknown names are
// allowed; they simply have no simplification or derivative rule.
func FuncOf(name string, arg Expr) Expr { return (&Func{name: name, arg: arg}).Simplify() }

func SinOf(arg Expr) Expr   { return FuncOf("sin", arg) }
func CosOf(arg Expr) Expr   { return FuncOf("cos", arg) }
func TanOf(arg Expr) Expr   { return FuncOf("tan", arg) }
func ExpOf(arg Expr) Expr   { return FuncOf("exp", arg) }
func LnOf(arg Expr) Expr    { return FuncOf("ln", arg) }
func SqrtOf(arg Expr) Expr  { return PowOf(arg, F(1, 2)) }
func AbsOf(arg Expr) Expr   { return FuncOf("abs", arg) }
func AtanOf(arg Expr) Expr  { return FuncOf("atan", arg) }
func SinhOf(arg Expr) Expr  { return FuncOf("sinh", arg) }
func CoshOf(arg Expr) Expr  { return FuncOf("cosh", arg) }
func TanhOf(arg Expr) Expr  { return FuncOf("tanh", arg) }
func FloorOf(arg Expr) Expr { return FuncOf("floor", arg) }
func CeilOf(arg Expr) Expr  { return FuncOf("ceil", arg) }
func SignOf(arg Expr) Expr  { return FuncOf("sign", arg) }

func (f *Func) Simplify() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		v, _ := n.val.Float64()
		switch f.name {
		case "sin":
			return NFloat(math.Sin(v))
		case "cos":
			return NFloat(math.Cos(v))
		case "tan":
			return NFloat(math.Tan(v))
		case "exp":
			return NFloat(math.Exp(v))
		case "ln":
			if v > 0 {
				return NFloat(math.Log(v))
			}
		case "abs":
			return NFloat(math.Abs(v))
		case "atan":
			return NFloat(math.Atan(v))
		case "sinh":
			return NFloat(math.Sinh(v))
		case "cosh":
			return NFloat(math.Cosh(v))
		case "tanh":
			return NFloat(math.Tanh(v))
		case "floor":
			return NFloat(math.Floor(v))
		case "ceil":
			return NFloat(math.Ceil(v))
		case "sign":
			switch {
			case v > 0:
				return N(1)
			case v < 0:
				return N(-1)
			default:
				return N(0)
			}
		}
	}
	switch f.name {
	case "ln":
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.arg
		}
	case "exp":
		if inner, ok := arg.(*Func); ok && inner.name == "ln" {
			return inner.arg
		}
	case "abs":
		if m, ok := arg.(*Mul); ok && len(m.factors) >= 1 {
			if coeff, ok2 := m.factors[0].(*Num); ok2 && coeff.IsNegOne() {
				inner := m.factors[1:]
				if len(inner) == 1 {
					return AbsOf(inner[0])
				}
				return AbsOf(MulOf(inner...))
			}
		}
	}
	return &Func{name: f.name, arg: arg}
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Func) Sub(varName string, value Expr) Expr {
	return FuncOf(f.name, f.arg.Sub(varName, value))
}

func (f *Func) Diff(varName string) Expr {
	du := f.arg.Diff(varName)
	var outer Expr
	switch f.name {
	case "sin":
		outer = CosOf(f.arg)
	case "cos":
		outer = MulOf(N(-1), SinOf(f.arg))
	case "tan":
		outer = AddOf(N(1), PowOf(TanOf(f.arg), N(2)))
	case "exp":
		outer = ExpOf(f.arg)
	case "ln":
		outer = PowOf(f.arg, N(-1))
	case "atan":
		outer = PowOf(AddOf(N(1), PowOf(f.arg, N(2))), N(-1))
	case "sinh":
		outer = CoshOf(f.arg)
	case "cosh":
		outer = SinhOf(f.arg)
	case "tanh":
		outer = AddOf(N(1), MulOf(N(-1), PowOf(TanhOf(f.arg), N(2))))
	case "abs":
		outer = SignOf(f.arg)
	case "sign":
		// Zero away from the origin; the jump at zero has no
		// classical derivative, which the marker records.
		if !ContainsSymbol(f.arg, varName) {
			return N(0)
		}
		return DerivOf(f, varName, 1)
	default:
		// No closed form; leave the derivative symbolic.
		if !ContainsSymbol(f.arg, varName) {
			return N(0)
		}
		return DerivOf(f, varName, 1)
	}
	return MulOf(outer, du).Simplify()
}

func (f *Func) Eval() (*Num, bool) {
	n, ok := f.arg.Eval()
	if !ok {
		return nil, false
	}
	v, _ := n.val.Float64()
	switch f.name {
	case "sin":
		return NFloat(math.Sin(v)), true
	case "cos":
		return NFloat(math.Cos(v)), true
	case "tan":
		return NFloat(math.Tan(v)), true
	case "exp":
		return NFloat(math.Exp(v)), true
	case "ln":
		if v <= 0 {
			return nil, false
		}
		return NFloat(math.Log(v)), true
	case "abs":
		return NFloat(math.Abs(v)), true
	case "atan":
		return NFloat(math.Atan(v)), true
	case "sinh":
		return NFloat(math.Sinh(v)), true
	case "cosh":
		return NFloat(math.Cosh(v)), true
	case "tanh":
		return NFloat(math.Tanh(v)), true
	case "floor":
		return NFloat(math.Floor(v)), true
	case "ceil":
		return NFloat(math.Ceil(v)), true
	case "sign":
		return N(int64(n.val.Sign())), true
	}
	return nil, false
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) exprType() string { return "func" }
func (f *Func) FuncName() string { return f.name }
func (f *Func) Arg() Expr        { return f.arg }

// ============================================================
// Deriv — unresolved symbolic derivative
// ============================================================

// Deriv marks the order-th derivative of an expression with respect to
// varName as "no closed form found, left symbolic". An occurrence of
// the original expression underneath a Deriv node is a legitimate
// residual and does not count as a self-reference.
type Deriv struct {
	expr    Expr
	varName string
	order   int
}

// DerivOf wraps expr in a derivative marker, merging with an existing
// marker for the same variable.
func DerivOf(expr Expr, varName string, order int) Expr {
	if d, ok := expr.(*Deriv); ok && d.varName == varName {
		return &Deriv{expr: d.expr, varName: varName, order: d.order + order}
	}
	return &Deriv{expr: expr, varName: varName, order: order}
}

func (d *Deriv) Simplify() Expr {
	return &Deriv{expr: d.expr.Simplify(), varName: d.varName, order: d.order}
}

func (d *Deriv) String() string {
	return fmt.Sprintf("D(%s, %s, %d)", d.expr, d.varName, d.order)
}

// Sub leaves the node untouched when the substituted variable is the
// derivative variable: this tree has no way to say "derivative
// evaluated at a point", so the residual stays written in terms of it.
func (d *Deriv) Sub(varName string, value Expr) Expr {
	if varName == d.varName {
		return d
	}
	return &Deriv{expr: d.expr.Sub(varName, value), varName: d.varName, order: d.order}
}

func (d *Deriv) Diff(varName string) Expr {
	if varName == d.varName {
		return &Deriv{expr: d.expr, varName: d.varName, order: d.order + 1}
	}
	if !ContainsSymbol(d, varName) {
		return N(0)
	}
	return DerivOf(d, varName, 1)
}

func (d *Deriv) Eval() (*Num, bool) { return nil, false }

func (d *Deriv) Equal(other Expr) bool {
	o, ok := other.(*Deriv)
	return ok && d.varName == o.varName && d.order == o.order && d.expr.Equal(o.expr)
}

func (d *Deriv) exprType() string { return "deriv" }
func (d *Deriv) Operand() Expr    { return d.expr }
func (d *Deriv) Var() string      { return d.varName }
func (d *Deriv) Order() int       { return d.order }

// ============================================================
// BigO — remainder term for truncated series
// ============================================================

type BigO struct {
	varName string
	order   int
}

func OTerm(varName string, order int) *BigO { return &BigO{varName: varName, order: order} }

func (o *BigO) Simplify() Expr        { return o }
func (o *BigO) String() string        { return fmt.Sprintf("O(%s^%d)", o.varName, o.order) }
func (o *BigO) Sub(string, Expr) Expr { return o }
func (o *BigO) Diff(string) Expr      { return N(0) }
func (o *BigO) Eval() (*Num, bool)    { return nil, false }
func (o *BigO) Equal(other Expr) bool {
	ob, ok := other.(*BigO)
	return ok && ob.varName == o.varName && ob.order == o.order
}
func (o *BigO) exprType() string { return "bigo" }
func (o *BigO) Var() string      { return o.varName }
func (o *BigO) Order() int       { return o.order }
