package taylor

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON renders an expression tree as a JSON object keyed by node
// type, the format the CLI accepts.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(exprToJSON(e))
	return string(b), err
}

func exprToJSON(e Expr) map[string]interface{} {
	switch v := e.(type) {
	case *Num:
		return map[string]interface{}{"type": "num", "value": v.String()}
	case *Sym:
		return map[string]interface{}{"type": "sym", "name": v.name}
	case *Add:
		ts := make([]map[string]interface{}, len(v.terms))
		for i, t := range v.terms {
			ts[i] = exprToJSON(t)
		}
		return map[string]interface{}{"type": "add", "terms": ts}
	case *Mul:
		fs := make([]map[string]interface{}, len(v.factors))
		for i, f := range v.factors {
			fs[i] = exprToJSON(f)
		}
		return map[string]interface{}{"type": "mul", "factors": fs}
	case *Pow:
		return map[string]interface{}{"type": "pow", "base": exprToJSON(v.base), "exp": exprToJSON(v.exp)}
	case *Func:
		return map[string]interface{}{"type": "func", "name": v.name, "arg": exprToJSON(v.arg)}
	case *Deriv:
		return map[string]interface{}{"type": "deriv", "expr": exprToJSON(v.expr), "var": v.varName, "order": v.order}
	case *Inf:
		return map[string]interface{}{"type": "inf", "sign": v.sign}
	case *BigO:
		return map[string]interface{}{"type": "bigo", "var": v.varName, "order": v.order}
	}
	return map[string]interface{}{"type": e.exprType()}
}

// FromJSON rebuilds an expression from its JSON object form.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subObj := func(field string) (map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		return m, nil
	}

	subObjArray := func(field string) ([]map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]map[string]interface{}, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			out[i] = m
		}
		return out, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	subNumberAsInt := func(field string) (int, error) {
		v, ok := data[field]
		if !ok {
			return 0, fmt.Errorf("%s: missing %q", typ, field)
		}
		n, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("%s: %q must be a number", typ, field)
		}
		return int(n), nil
	}

	switch typ {
	case "num":
		valAny, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("num: missing 'value'")
		}
		val, ok := valAny.(string)
		if !ok || val == "" {
			return nil, fmt.Errorf("num: 'value' must be a non-empty string")
		}
		r := new(big.Rat)
		if _, ok := r.SetString(val); !ok {
			return nil, fmt.Errorf("invalid num value: %s", val)
		}
		return &Num{val: r}, nil

	case "sym":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		return S(name), nil

	case "add":
		objs, err := subObjArray("terms")
		if err != nil {
			return nil, err
		}
		terms := make([]Expr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("add: terms[%d]: %w", i, err)
			}
			terms[i] = e
		}
		return AddOf(terms...), nil

	case "mul":
		objs, err := subObjArray("factors")
		if err != nil {
			return nil, err
		}
		factors := make([]Expr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("mul: factors[%d]: %w", i, err)
			}
			factors[i] = e
		}
		return MulOf(factors...), nil

	case "pow":
		baseM, err := subObj("base")
		if err != nil {
			return nil, err
		}
		expM, err := subObj("exp")
		if err != nil {
			return nil, err
		}
		base, err := FromJSON(baseM)
		if err != nil {
			return nil, fmt.Errorf("pow: base: %w", err)
		}
		exp, err := FromJSON(expM)
		if err != nil {
			return nil, fmt.Errorf("pow: exp: %w", err)
		}
		return PowOf(base, exp), nil

	case "func":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		argM, err := subObj("arg")
		if err != nil {
			return nil, err
		}
		arg, err := FromJSON(argM)
		if err != nil {
			return nil, fmt.Errorf("func: arg: %w", err)
		}
		return FuncOf(name, arg), nil

	case "deriv":
		exprM, err := subObj("expr")
		if err != nil {
			return nil, err
		}
		inner, err := FromJSON(exprM)
		if err != nil {
			return nil, fmt.Errorf("deriv: expr: %w", err)
		}
		v, err := subString("var")
		if err != nil {
			return nil, err
		}
		order, err := subNumberAsInt("order")
		if err != nil {
			return nil, err
		}
		if order < 1 {
			return nil, fmt.Errorf("deriv: 'order' must be >= 1")
		}
		return DerivOf(inner, v, order), nil

	case "inf":
		sign, err := subNumberAsInt("sign")
		if err != nil {
			return nil, err
		}
		if sign < 0 {
			return NegInf(), nil
		}
		return PosInf(), nil

	case "bigo":
		v, err := subString("var")
		if err != nil {
			return nil, err
		}
		order, err := subNumberAsInt("order")
		if err != nil {
			return nil, err
		}
		return OTerm(v, order), nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}
