package taylor_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taylor "github.com/symkit/taylor"
)

func TestEvalDecimal_Polynomial(t *testing.T) {
	x := taylor.S("x")
	e := taylor.AddOf(taylor.PowOf(x, taylor.N(2)), taylor.N(1))
	v, err := taylor.EvalDecimal(e, map[string]decimal.Decimal{"x": decimal.NewFromInt(2)}, 28)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(5)), "got %s", v)
}

func TestEvalDecimal_RationalCoefficient(t *testing.T) {
	e := taylor.MulOf(taylor.F(1, 4), taylor.S("x"))
	v, err := taylor.EvalDecimal(e, map[string]decimal.Decimal{"x": decimal.NewFromInt(6)}, 28)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("1.5")), "got %s", v)
}

// Evaluating a truncated exp series at 1 must match the partial sum
// of 1/k! to well within the precision of the series itself.
func TestEvalDecimal_TruncatedExpSeries(t *testing.T) {
	series, err := taylor.Maclaurin(taylor.ExpOf(taylor.S("x")), "x", 8)
	require.NoError(t, err)

	v, err := taylor.EvalDecimal(series, map[string]decimal.Decimal{"x": decimal.NewFromInt(1)}, 28)
	require.NoError(t, err)

	want := decimal.NewFromBigRat(big.NewRat(109601, 40320), 28)
	diff := v.Sub(want).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("1e-20")),
		"got %s, want %s (diff %s)", v, want, diff)
}

func TestEvalDecimal_RemainderTermIsZero(t *testing.T) {
	series, err := taylor.TaylorWithRemainder(taylor.SinOf(taylor.S("x")), "x", taylor.N(0), 3)
	require.NoError(t, err)

	bare, err := taylor.Taylor(taylor.SinOf(taylor.S("x")), "x", taylor.N(0), 3)
	require.NoError(t, err)

	bindings := map[string]decimal.Decimal{"x": decimal.RequireFromString("0.25")}
	withO, err := taylor.EvalDecimal(series, bindings, 28)
	require.NoError(t, err)
	withoutO, err := taylor.EvalDecimal(bare, bindings, 28)
	require.NoError(t, err)
	assert.True(t, withO.Equal(withoutO))
}

func TestEvalDecimal_NativeFunctions(t *testing.T) {
	bindings := map[string]decimal.Decimal{"x": decimal.NewFromInt(0)}
	for _, e := range []taylor.Expr{
		taylor.SinOf(taylor.S("x")),
		taylor.AbsOf(taylor.S("x")),
		taylor.SinhOf(taylor.S("x")),
	} {
		v, err := taylor.EvalDecimal(e, bindings, 28)
		require.NoError(t, err)
		assert.True(t, v.IsZero(), "%s at 0 should be 0, got %s", taylor.String(e), v)
	}

	v, err := taylor.EvalDecimal(taylor.CoshOf(taylor.S("x")), bindings, 28)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(1)), "cosh(0) should be 1, got %s", v)
}

func TestEvalDecimal_UnboundSymbol(t *testing.T) {
	_, err := taylor.EvalDecimal(taylor.S("x"), nil, 28)
	assert.Error(t, err)
}

func TestEvalDecimal_UnresolvedDerivative(t *testing.T) {
	d := taylor.DerivOf(taylor.FuncOf("f", taylor.S("x")), "x", 1)
	_, err := taylor.EvalDecimal(d, map[string]decimal.Decimal{"x": decimal.NewFromInt(1)}, 28)
	assert.Error(t, err)
}

func TestEvalDecimal_Infinity(t *testing.T) {
	_, err := taylor.EvalDecimal(taylor.PosInf(), nil, 28)
	assert.Error(t, err)
}
