package runtime

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

// All reports whether pred is truthy for every item, short-circuiting on
// the first falsy result.
func All(span ast.Span, it Iterator, caller Caller, pred Value) (Value, error) {
	for {
		out, ok := it.Next()
		if !ok {
			return Bool(true), nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := caller.CallValue(pred, []Value{out.AsValue()})
		if err != nil {
			return nil, err
		}
		b, ok := v.(Bool)
		if !ok || !bool(b) {
			return Bool(false), nil
		}
	}
}

// Any reports whether pred is truthy for some item, short-circuiting on
// the first truthy result.
func Any(span ast.Span, it Iterator, caller Caller, pred Value) (Value, error) {
	for {
		out, ok := it.Next()
		if !ok {
			return Bool(false), nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := caller.CallValue(pred, []Value{out.AsValue()})
		if err != nil {
			return nil, err
		}
		if b, ok := v.(Bool); ok && bool(b) {
			return Bool(true), nil
		}
	}
}

// Consume drains it purely for side effects (most useful after each).
func Consume(span ast.Span, it Iterator) (Value, error) {
	for {
		out, ok := it.Next()
		if !ok {
			return Empty{}, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
	}
}

// Count drains it and reports how many items it produced.
func Count(span ast.Span, it Iterator) (Value, error) {
	n := 0
	for {
		out, ok := it.Next()
		if !ok {
			return Number(n), nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		n++
	}
}

// Find returns the first item pred accepts, or Empty if none does.
func Find(span ast.Span, it Iterator, caller Caller, pred Value) (Value, error) {
	for {
		out, ok := it.Next()
		if !ok {
			return Empty{}, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := caller.CallValue(pred, []Value{out.AsValue()})
		if err != nil {
			return nil, err
		}
		if b, ok := v.(Bool); ok && bool(b) {
			return out.AsValue(), nil
		}
	}
}

// Fold reduces it left to right starting from init, calling f(acc, item).
func Fold(span ast.Span, it Iterator, caller Caller, init Value, f Value) (Value, error) {
	acc := init
	for {
		out, ok := it.Next()
		if !ok {
			return acc, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := caller.CallValue(f, []Value{acc, out.AsValue()})
		if err != nil {
			return nil, err
		}
		acc = v
	}
}

// Last drains it and returns the final item, or Empty if it produced none.
func Last(span ast.Span, it Iterator) (Value, error) {
	var last Value = Empty{}
	for {
		out, ok := it.Next()
		if !ok {
			return last, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		last = out.AsValue()
	}
}

// Max returns the greatest item by Less, with the earliest of equal
// maxima winning ties; Empty if it produced no items.
func Max(span ast.Span, it Iterator) (Value, error) {
	return extremum(span, it, false)
}

// Min returns the least item by Less, with the earliest of equal minima
// winning ties; Empty if it produced no items.
func Min(span ast.Span, it Iterator) (Value, error) {
	return extremum(span, it, true)
}

func extremum(span ast.Span, it Iterator, wantMin bool) (Value, error) {
	var best Value
	have := false
	for {
		out, ok := it.Next()
		if !ok {
			break
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v := out.AsValue()
		if !have {
			best, have = v, true
			continue
		}
		lt, err := Less(span, v, best)
		if err != nil {
			return nil, err
		}
		if wantMin && lt {
			best = v
		}
		if !wantMin {
			gt, err := Less(span, best, v)
			if err != nil {
				return nil, err
			}
			if gt {
				best = v
			}
		}
	}
	if !have {
		return Empty{}, nil
	}
	return best, nil
}

// MinMax returns a (min, max) pair as a 2-element List, or Empty if it
// produced no items.
func MinMax(span ast.Span, it Iterator) (Value, error) {
	items := make([]Value, 0)
	for {
		out, ok := it.Next()
		if !ok {
			break
		}
		if out.Err != nil {
			return nil, out.Err
		}
		items = append(items, out.AsValue())
	}
	if len(items) == 0 {
		return Empty{}, nil
	}
	lo, hi := items[0], items[0]
	for _, v := range items[1:] {
		if lt, err := Less(span, v, lo); err != nil {
			return nil, err
		} else if lt {
			lo = v
		}
		if gt, err := Less(span, hi, v); err != nil {
			return nil, err
		} else if gt {
			hi = v
		}
	}
	return NewList([]Value{lo, hi}), nil
}

// Position returns the zero-based index of the first item pred accepts,
// or Empty if none does.
func Position(span ast.Span, it Iterator, caller Caller, pred Value) (Value, error) {
	idx := int64(0)
	for {
		out, ok := it.Next()
		if !ok {
			return Empty{}, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := caller.CallValue(pred, []Value{out.AsValue()})
		if err != nil {
			return nil, err
		}
		if b, ok := v.(Bool); ok && bool(b) {
			return Number(idx), nil
		}
		idx++
	}
}

// Product multiplies every item together, starting from 1.
func Product(span ast.Span, it Iterator) (Value, error) {
	return reduceArith(span, it, "*", Number(1))
}

// Sum adds every item together, starting from 0.
func Sum(span ast.Span, it Iterator) (Value, error) {
	return reduceArith(span, it, "+", Number(0))
}

func reduceArith(span ast.Span, it Iterator, op string, init Value) (Value, error) {
	acc := init
	for {
		out, ok := it.Next()
		if !ok {
			return acc, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		v, err := ApplyBinary(span, op, acc, out.AsValue())
		if err != nil {
			return nil, err
		}
		acc = v
	}
}

// ToList drains it into a fresh List.
func ToList(span ast.Span, it Iterator) (Value, error) {
	elems := make([]Value, 0, sizeHintOrZero(it))
	for {
		out, ok := it.Next()
		if !ok {
			return NewList(elems), nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		elems = append(elems, out.AsValue())
	}
}

func sizeHintOrZero(it Iterator) int {
	if n := it.SizeHint(); n > 0 {
		return n
	}
	return 0
}

// ToMap drains it into a fresh Map. Each item may be a Pair or a
// 2-element List whose first element is a Str key, or a bare value,
// which becomes the key (rendered as a string) with Empty as its value.
// A Pair or 2-element List whose first element is not a Str, such as an
// enumerate pair, is a TypeError.
func ToMap(span ast.Span, it Iterator) (Value, error) {
	m := NewMap()
	for {
		out, ok := it.Next()
		if !ok {
			return m, nil
		}
		if out.Err != nil {
			return nil, out.Err
		}
		key, val, err := asEntry(span, out)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
}

func asEntry(span ast.Span, out Output) (string, Value, error) {
	if out.Pair != nil {
		k, ok := out.Pair.First.(*Str)
		if !ok {
			return "", nil, langerr.NewType(span, "to_map requires string keys, got %s", out.Pair.First.TypeName())
		}
		return k.Value, out.Pair.Second, nil
	}
	if lst, ok := out.Value.(*List); ok && len(lst.Elements) == 2 {
		k, ok := lst.Elements[0].(*Str)
		if !ok {
			return "", nil, langerr.NewType(span, "to_map requires string keys, got %s", lst.Elements[0].TypeName())
		}
		return k.Value, lst.Elements[1], nil
	}
	if s, ok := out.AsValue().(*Str); ok {
		return s.Value, Empty{}, nil
	}
	key, err := ToString(span, out.AsValue())
	if err != nil {
		return "", nil, err
	}
	return key, Empty{}, nil
}

// ToNum2 drains exactly two items into a Vec4 with Z=W=0; extra items
// are ignored, missing ones default to 0.
func ToNum2(span ast.Span, it Iterator) (Value, error) {
	return toVec(span, it, 2)
}

// ToNum4 drains up to four items into a Vec4, defaulting missing lanes to 0.
func ToNum4(span ast.Span, it Iterator) (Value, error) {
	return toVec(span, it, 4)
}

func toVec(span ast.Span, it Iterator, n int) (Value, error) {
	var lanes [4]float64
	for i := 0; i < n; i++ {
		out, ok := it.Next()
		if !ok {
			break
		}
		if out.Err != nil {
			return nil, out.Err
		}
		num, ok := out.AsValue().(Number)
		if !ok {
			return nil, langerr.NewType(span, "expected Number lanes, got %s", out.AsValue().TypeName())
		}
		lanes[i] = float64(num)
	}
	return Vec4{lanes[0], lanes[1], lanes[2], lanes[3]}, nil
}

// ToStringTerminal drains it, rendering and concatenating every item.
func ToStringTerminal(span ast.Span, it Iterator) (Value, error) {
	var elems []Value
	for {
		out, ok := it.Next()
		if !ok {
			break
		}
		if out.Err != nil {
			return nil, out.Err
		}
		elems = append(elems, out.AsValue())
	}
	parts := make([]byte, 0)
	for _, e := range elems {
		s, err := ToString(span, e)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s...)
	}
	return NewStr(string(parts)), nil
}

// ToTuple drains it into a fixed-size List, the representation used in
// place of a dedicated tuple kind.
func ToTuple(span ast.Span, it Iterator) (Value, error) {
	return ToList(span, it)
}
