package runtime

// Equal implements deep structural equality: Str, List,
// Map compare structurally; Function, External, Iterator compare by
// identity; everything else compares by Go value equality. Values of
// different kinds are always unequal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Empty:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case Vec4:
		return av == b.(Vec4)
	case Range:
		return av == b.(Range)
	case *Str:
		return av.Value == b.(*Str).Value
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i, e := range av.Elements {
			if !Equal(e, bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			other, ok := bv.Get(k)
			if !ok || !Equal(av.values[k], other) {
				return false
			}
		}
		return true
	case *Function:
		return av == b.(*Function)
	case *External:
		return av == b.(*External)
	case *ForSpec:
		return av == b.(*ForSpec)
	default:
		// Iterators and any other reference kind compare by identity.
		return a == b
	}
}
