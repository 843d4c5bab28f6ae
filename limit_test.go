package taylor_test

import (
	"testing"

	taylor "github.com/symkit/taylor"
)

func TestLimit_DirectSubstitution(t *testing.T) {
	res := taylor.Limit(taylor.CosOf(taylor.S("x")), "x", taylor.N(0))
	if !res.Success || !res.Value.Equal(taylor.N(1)) {
		t.Errorf("lim cos(x) at 0 should be 1, got %+v", res)
	}
}

func TestLimit_SinXOverX(t *testing.T) {
	x := taylor.S("x")
	e := taylor.MulOf(taylor.SinOf(x), taylor.PowOf(x, taylor.N(-1)))
	res := taylor.Limit(e, "x", taylor.N(0))
	if !res.Success || !res.Value.Equal(taylor.N(1)) {
		t.Errorf("lim sin(x)/x at 0 should be 1, got %+v", res)
	}
}

func TestLimit_RemovableSingularity(t *testing.T) {
	// (x^2 - 1)/(x - 1) -> 2 as x -> 1
	x := taylor.S("x")
	num := taylor.AddOf(taylor.PowOf(x, taylor.N(2)), taylor.N(-1))
	denom := taylor.AddOf(x, taylor.N(-1))
	e := taylor.MulOf(num, taylor.PowOf(denom, taylor.N(-1)))
	res := taylor.Limit(e, "x", taylor.N(1))
	if !res.Success || !res.Value.Equal(taylor.N(2)) {
		t.Errorf("want 2, got %+v", res)
	}
}

func TestLimit_AtInfinity_Undetermined(t *testing.T) {
	res := taylor.Limit(taylor.S("x"), "x", taylor.PosInf())
	if res.Success {
		t.Errorf("lim x at inf should not resolve, got %s", taylor.String(res.Value))
	}
}

func TestLimit_PoleIsNotALimit(t *testing.T) {
	e := taylor.PowOf(taylor.S("x"), taylor.N(-1))
	res := taylor.Limit(e, "x", taylor.N(0))
	if res.Success {
		t.Errorf("lim 1/x at 0 should not resolve, got %s", taylor.String(res.Value))
	}
}
