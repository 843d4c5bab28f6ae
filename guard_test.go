package taylor_test

import (
	"testing"

	taylor "github.com/symkit/taylor"
)

func exprList(es []taylor.Expr) string {
	s := "["
	for i, e := range es {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

func TestSearchSubtrees_MatchingChildReportsParent(t *testing.T) {
	tree := taylor.RawAdd(taylor.N(1), taylor.N(2), taylor.N(3))
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 1 || got[0] != tree {
		t.Errorf("want [%s], got %s", tree, exprList(got))
	}
}

func TestSearchSubtrees_RepeatedChildReportsParentOnce(t *testing.T) {
	tree := taylor.RawAdd(taylor.N(1), taylor.N(2), taylor.N(2), taylor.N(3))
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 1 || got[0] != tree {
		t.Errorf("want [%s], got %s", tree, exprList(got))
	}
}

func TestSearchSubtrees_TwoNestedMatches(t *testing.T) {
	first := taylor.RawAdd(taylor.N(2))
	second := taylor.RawAdd(taylor.N(2))
	tree := taylor.RawAdd(taylor.N(1), first, taylor.N(3), second)
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Errorf("want both nested matches in order, got %s", exprList(got))
	}
}

func TestSearchSubtrees_DirectChild(t *testing.T) {
	inner := taylor.RawAdd(taylor.N(2))
	tree := taylor.RawAdd(taylor.N(1), inner, taylor.N(3))
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 1 || got[0] != inner {
		t.Errorf("want [%s], got %s", inner, exprList(got))
	}
}

func TestSearchSubtrees_NoMatch(t *testing.T) {
	tree := taylor.RawAdd(taylor.N(1), taylor.RawAdd(taylor.N(2)), taylor.N(3))
	if got := taylor.SearchSubtrees(taylor.N(9), tree, nil); len(got) != 0 {
		t.Errorf("want no matches, got %s", exprList(got))
	}
}

func TestSearchSubtrees_PrunesBelowMatch(t *testing.T) {
	// The nested occurrence of 2 sits below a subtree that already
	// matched, so only the outer match is reported.
	inner := taylor.RawAdd(taylor.N(2), taylor.RawAdd(taylor.N(2)))
	tree := taylor.RawAdd(inner, taylor.N(1))
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 1 || got[0] != inner {
		t.Errorf("want [%s], got %s", inner, exprList(got))
	}
}

func TestSearchSubtrees_SiblingMatches(t *testing.T) {
	m := taylor.RawMul(taylor.N(2), taylor.N(5))
	p := taylor.RawPow(taylor.N(2), taylor.N(7))
	tree := taylor.RawAdd(m, p)
	got := taylor.SearchSubtrees(taylor.N(2), tree, nil)
	if len(got) != 2 || got[0] != m || got[1] != p {
		t.Errorf("want [%s, %s], got %s", m, p, exprList(got))
	}
}

func TestSearchSubtrees_RootItselfNeverMatches(t *testing.T) {
	// Only parents of a matching child are reported; a tree equal to
	// the branch is not its own parent.
	if got := taylor.SearchSubtrees(taylor.N(2), taylor.N(2), nil); len(got) != 0 {
		t.Errorf("want no matches, got %s", exprList(got))
	}
}

func TestSearchSubtrees_AtomHasNoChildren(t *testing.T) {
	if got := taylor.SearchSubtrees(taylor.S("x"), taylor.S("x"), nil); got != nil {
		t.Errorf("want nil, got %s", exprList(got))
	}
}

func TestSearchSubtrees_FindsUnderFuncAndDeriv(t *testing.T) {
	f := taylor.RawFunc("sin", taylor.S("x"))
	d := taylor.RawDeriv(f, "x", 1)
	got := taylor.SearchSubtrees(f, d, nil)
	if len(got) != 1 || got[0] != d {
		t.Errorf("want the derivative node, got %s", exprList(got))
	}
}

func TestSearchSubtrees_CustomEquality(t *testing.T) {
	anyNum := func(a, b taylor.Expr) bool {
		_, aNum := a.(*taylor.Num)
		_, bNum := b.(*taylor.Num)
		return aNum && bNum
	}
	tree := taylor.RawPow(taylor.S("x"), taylor.N(3))
	if got := taylor.SearchSubtrees(taylor.N(99), tree, nil); len(got) != 0 {
		t.Errorf("structural equality should not match, got %s", exprList(got))
	}
	got := taylor.SearchSubtrees(taylor.N(99), tree, anyNum)
	if len(got) != 1 || got[0] != tree {
		t.Errorf("custom equality should match the exponent's parent, got %s", exprList(got))
	}
}

func TestChildren(t *testing.T) {
	x, y := taylor.S("x"), taylor.S("y")
	cases := []struct {
		expr taylor.Expr
		want int
	}{
		{taylor.RawAdd(x, y, taylor.N(1)), 3},
		{taylor.RawMul(x, y), 2},
		{taylor.RawPow(x, taylor.N(2)), 2},
		{taylor.RawFunc("sin", x), 1},
		{taylor.RawDeriv(x, "x", 1), 1},
		{taylor.N(5), 0},
		{x, 0},
		{taylor.PosInf(), 0},
		{taylor.OTerm("x", 3), 0},
	}
	for _, c := range cases {
		if got := taylor.Children(c.expr); len(got) != c.want {
			t.Errorf("Children(%s): want %d, got %d", c.expr, c.want, len(got))
		}
	}
}
