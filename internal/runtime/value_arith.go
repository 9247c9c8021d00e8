package runtime

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

// Less implements the total ordering extended to Number and Bool alone.
// Any other pairing is a TypeError.
func Less(span ast.Span, a, b Value) (bool, error) {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false, typeErr(span, "<", a, b)
		}
		return av < bv, nil
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, typeErr(span, "<", a, b)
		}
		return !bool(av) && bool(bv), nil
	default:
		return false, typeErr(span, "<", a, b)
	}
}

func typeErr(span ast.Span, op string, a, b Value) *langerr.Error {
	return langerr.NewType(span, "unsupported operand kinds for %s: %s and %s", op, a.Kind(), b.Kind())
}

// ApplyBinary implements binary operator semantics for
// op in {+,-,*,/,%,<,<=,>,>=,==,!=,and,or}.
func ApplyBinary(span ast.Span, op string, l, r Value) (Value, error) {
	switch op {
	case "==":
		return Bool(Equal(l, r)), nil
	case "!=":
		return Bool(!Equal(l, r)), nil
	case "<", "<=", ">", ">=":
		return compare(span, op, l, r)
	case "and", "or":
		lb, ok := l.(Bool)
		if !ok {
			return nil, typeErr(span, op, l, r)
		}
		rb, ok := r.(Bool)
		if !ok {
			return nil, typeErr(span, op, l, r)
		}
		if op == "and" {
			return Bool(bool(lb) && bool(rb)), nil
		}
		return Bool(bool(lb) || bool(rb)), nil
	case "+", "-", "*", "/", "%":
		return arith(span, op, l, r)
	default:
		return nil, langerr.NewInternal(span, "unknown operator %q", op)
	}
}

func compare(span ast.Span, op string, l, r Value) (Value, error) {
	lt, err := Less(span, l, r)
	if err != nil {
		return nil, err
	}
	eq := Equal(l, r)
	switch op {
	case "<":
		return Bool(lt), nil
	case "<=":
		return Bool(lt || eq), nil
	case ">":
		gt, err := Less(span, r, l)
		if err != nil {
			return nil, err
		}
		return Bool(gt), nil
	case ">=":
		gt, err := Less(span, r, l)
		if err != nil {
			return nil, err
		}
		return Bool(gt || eq), nil
	}
	return nil, langerr.NewInternal(span, "unknown comparison %q", op)
}

func arith(span ast.Span, op string, l, r Value) (Value, error) {
	switch lv := l.(type) {
	case Number:
		switch rv := r.(type) {
		case Number:
			return numOp(span, op, float64(lv), float64(rv))
		case Vec4:
			return vecOp(span, op, Vec4{float64(lv), float64(lv), float64(lv), float64(lv)}, rv)
		}
	case Vec4:
		switch rv := r.(type) {
		case Vec4:
			return vecOp(span, op, lv, rv)
		case Number:
			return vecOp(span, op, lv, Vec4{float64(rv), float64(rv), float64(rv), float64(rv)})
		}
	case *List:
		rv, ok := r.(*List)
		if ok && op == "+" {
			out := make([]Value, 0, len(lv.Elements)+len(rv.Elements))
			out = append(out, lv.Elements...)
			out = append(out, rv.Elements...)
			return NewList(out), nil
		}
	case *Map:
		rv, ok := r.(*Map)
		if ok && op == "+" {
			out := lv.Clone()
			for _, k := range rv.keys {
				out.Set(k, rv.values[k])
			}
			return out, nil
		}
	}
	return nil, typeErr(span, op, l, r)
}

func numOp(span ast.Span, op string, l, r float64) (Value, error) {
	switch op {
	case "+":
		return Number(l + r), nil
	case "-":
		return Number(l - r), nil
	case "*":
		return Number(l * r), nil
	case "/":
		if r == 0 {
			return nil, langerr.NewRuntime(span, "division by zero")
		}
		return Number(l / r), nil
	case "%":
		if r == 0 {
			return nil, langerr.NewRuntime(span, "division by zero")
		}
		m := l - r*float64(int64(l/r))
		return Number(m), nil
	}
	return nil, langerr.NewInternal(span, "unknown arithmetic operator %q", op)
}

func vecOp(span ast.Span, op string, l, r Vec4) (Value, error) {
	x, err := numOp(span, op, l.X, r.X)
	if err != nil {
		return nil, err
	}
	y, err := numOp(span, op, l.Y, r.Y)
	if err != nil {
		return nil, err
	}
	z, err := numOp(span, op, l.Z, r.Z)
	if err != nil {
		return nil, err
	}
	w, err := numOp(span, op, l.W, r.W)
	if err != nil {
		return nil, err
	}
	return Vec4{float64(x.(Number)), float64(y.(Number)), float64(z.(Number)), float64(w.(Number))}, nil
}
