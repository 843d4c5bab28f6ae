// Package taylor implements symbolic Taylor-series expansion on top of a
// small deterministic expression kernel.
//
// Expressions are immutable trees with exact rational numerals
// (math/big.Rat) and structural equality. The expansion driver
// (TaylorExpand) recognizes closed-form Maclaurin rules, short-circuits
// on variable-free input, and otherwise falls back to repeated symbolic
// differentiation; a structural self-reference check turns would-be
// unbounded re-expansion into a reported error.
package taylor

import (
	"fmt"
	"math/big"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	Sub(varName string, value Expr) Expr
	Diff(varName string) Expr
	Eval() (*Num, bool)
	Equal(other Expr) bool
	exprType() string
}

// ============================================================
// Num — exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("taylor: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func NFloat(f float64) *Num { return &Num{val: new(big.Rat).SetFloat64(f)} }

// ParseNum parses an integer, fraction ("-1/3") or decimal ("0.25")
// literal into an exact rational.
func ParseNum(s string) (*Num, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid number literal: %q", s)
	}
	return &Num{val: r}, nil
}

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) exprType() string      { return "num" }
func (n *Num) Float64() float64      { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(new(big.Rat).SetInt64(1)) == 0 }
func (n *Num) IsNegOne() bool        { return n.val.Cmp(new(big.Rat).SetInt64(-1)) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }
func (n *Num) IsPositive() bool      { return n.val.Sign() > 0 }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("taylor: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

func isZeroNum(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsZero()
}

// ============================================================
// Sym — symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym          { return &Sym{name: name} }
func (s *Sym) Simplify() Expr     { return s }
func (s *Sym) String() string     { return s.name }
func (s *Sym) Eval() (*Num, bool) { return nil, false }
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}
func (s *Sym) exprType() string { return "sym" }
func (s *Sym) Name() string     { return s.name }
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}
func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

// ============================================================
// Inf — signed infinity marker
// ============================================================

// Inf is a symbolic positive or negative infinity. It only ever appears
// as a would-be expansion point or a limit target; the expansion engine
// rejects it outright rather than attempting an asymptotic series.
type Inf struct{ sign int }

func PosInf() *Inf { return &Inf{sign: 1} }
func NegInf() *Inf { return &Inf{sign: -1} }

func (i *Inf) Simplify() Expr        { return i }
func (i *Inf) Sub(string, Expr) Expr { return i }
func (i *Inf) Diff(string) Expr      { return N(0) }
func (i *Inf) Eval() (*Num, bool)    { return nil, false }
func (i *Inf) Equal(other Expr) bool {
	o, ok := other.(*Inf)
	return ok && i.sign == o.sign
}
func (i *Inf) exprType() string { return "inf" }
func (i *Inf) Sign() int        { return i.sign }
func (i *Inf) String() string {
	if i.sign < 0 {
		return "-inf"
	}
	return "inf"
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

// ContainsSymbol reports whether name occurs anywhere in e. An
// unresolved derivative counts as an occurrence of its own derivative
// variable: the node stays written in terms of it.
func ContainsSymbol(e Expr, name string) bool {
	_, ok := FreeSymbols(e)[name]
	return ok
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	case *Deriv:
		out[v.varName] = struct{}{}
		collectSymbols(v.expr, out)
	}
}
