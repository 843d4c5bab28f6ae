package taylor

// Access to unexported pieces for the external test package.

var (
	KnownSeries  = knownSeries
	DiffExpand   = diffExpand
	InvFactorial = invFactorial
)

func MaclaurinRuleNames() []string {
	names := make([]string, 0, len(maclaurinRules))
	for name := range maclaurinRules {
		names = append(names, name)
	}
	return names
}

// Raw constructors build nodes without simplification, so tests can pin
// down exact tree shapes.

func RawAdd(terms ...Expr) Expr   { return &Add{terms: terms} }
func RawMul(factors ...Expr) Expr { return &Mul{factors: factors} }
func RawPow(base, exp Expr) Expr  { return &Pow{base: base, exp: exp} }

func RawFunc(name string, arg Expr) Expr { return &Func{name: name, arg: arg} }

func RawDeriv(expr Expr, varName string, order int) Expr {
	return &Deriv{expr: expr, varName: varName, order: order}
}
