package runtime

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

// indexInto implements `target[idx]` for every indexable kind:
// List and Str by integer position, List by Range (yielding a slice),
// Map by string key, Vec4 by lane number 0..3.
func indexInto(span ast.Span, target, idx Value) (Value, error) {
	switch t := target.(type) {
	case *List:
		if r, ok := idx.(Range); ok {
			return sliceList(span, t, r)
		}
		n, ok := idx.(Number)
		if !ok {
			return nil, langerr.NewType(span, langerr.MsgTypeMismatch, "list index", "Number", idx.TypeName())
		}
		i := n.Int()
		if i < 0 {
			return nil, langerr.NewRange(span, langerr.MsgNegativeIndex, i)
		}
		if i >= int64(len(t.Elements)) {
			return nil, langerr.NewRange(span, langerr.MsgIndexOutOfRange, i, len(t.Elements))
		}
		return t.Elements[i], nil

	case *Map:
		s, ok := idx.(*Str)
		if !ok {
			return nil, langerr.NewType(span, langerr.MsgTypeMismatch, "map index", "Str", idx.TypeName())
		}
		v, ok := t.Get(s.Value)
		if !ok {
			return nil, langerr.NewName(span, langerr.MsgIdentifierMissing, s.Value)
		}
		return v, nil

	case *Str:
		n, ok := idx.(Number)
		if !ok {
			return nil, langerr.NewType(span, langerr.MsgTypeMismatch, "string index", "Number", idx.TypeName())
		}
		runes := []rune(t.Value)
		i := n.Int()
		if i < 0 {
			return nil, langerr.NewRange(span, langerr.MsgNegativeIndex, i)
		}
		if i >= int64(len(runes)) {
			return nil, langerr.NewRange(span, langerr.MsgIndexOutOfRange, i, len(runes))
		}
		return NewStr(string(runes[i])), nil

	case Vec4:
		n, ok := idx.(Number)
		if !ok {
			return nil, langerr.NewType(span, langerr.MsgTypeMismatch, "vector lane", "Number", idx.TypeName())
		}
		switch n.Int() {
		case 0:
			return Number(t.X), nil
		case 1:
			return Number(t.Y), nil
		case 2:
			return Number(t.Z), nil
		case 3:
			return Number(t.W), nil
		default:
			return nil, langerr.NewRange(span, langerr.MsgIndexOutOfRange, n.Int(), 4)
		}

	default:
		return nil, langerr.NewType(span, langerr.MsgNotAList, target.TypeName())
	}
}

// sliceList implements `list[min..max]`, returning a new List holding
// the elements the half-open range covers.
func sliceList(span ast.Span, t *List, r Range) (Value, error) {
	if r.Min < 0 {
		return nil, langerr.NewRange(span, langerr.MsgNegativeIndex, r.Min)
	}
	if r.Max < r.Min {
		return nil, langerr.NewRange(span, langerr.MsgBadRange, r.Min, r.Max)
	}
	if r.Max > int64(len(t.Elements)) {
		return nil, langerr.NewRange(span, langerr.MsgIndexOutOfRange, r.Max-1, len(t.Elements))
	}
	elems := make([]Value, r.Len())
	copy(elems, t.Elements[r.Min:r.Max])
	return NewList(elems), nil
}
