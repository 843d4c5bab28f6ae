package taylor

// EqualFunc compares two expressions. SearchSubtrees accepts any
// predicate so callers can substitute a coarser equality (for example
// one that ignores numeric coefficients) for the structural default.
type EqualFunc func(a, b Expr) bool

// StructuralEqual is the default equality used by SearchSubtrees.
func StructuralEqual(a, b Expr) bool { return a.Equal(b) }

// Children returns copies of a node's immediate operands; atoms have
// none.
func Children(e Expr) []Expr {
	switch t := e.(type) {
	case *Add:
		return t.Terms()
	case *Mul:
		return t.Factors()
	case *Pow:
		return []Expr{t.base, t.exp}
	case *Func:
		return []Expr{t.arg}
	case *Deriv:
		return []Expr{t.expr}
	}
	return nil
}

// SearchSubtrees walks tree depth-first and collects every subtree
// whose immediate children contain branch under eq (nil means
// StructuralEqual). A matching subtree is reported once and not
// searched further; its siblings and the rest of the tree still are.
func SearchSubtrees(branch, tree Expr, eq EqualFunc) []Expr {
	if eq == nil {
		eq = StructuralEqual
	}
	kids := Children(tree)
	if len(kids) == 0 {
		return nil
	}
	for _, c := range kids {
		if eq(c, branch) {
			return []Expr{tree}
		}
	}
	var found []Expr
	for _, c := range kids {
		found = append(found, SearchSubtrees(branch, c, eq)...)
	}
	return found
}
