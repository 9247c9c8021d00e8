package runtime

// Pair is the key/value shape iterator adaptors like enumerate produce;
// terminals such as to_map consult it to decide whether an output item
// is a single value or a key/value pair.
type Pair struct {
	First  Value
	Second Value
}

// Output is one item an Iterator yields. Exactly one of Value or Pair is
// meaningful for a given item; Err signals the iterator itself failed
// (a user callback raised) and consumption must stop.
type Output struct {
	Value Value
	Pair  *Pair
	Err   error
}

// AsValue collapses an Output to a single Value the way every terminal
// that doesn't care about pair-ness does: a Pair becomes a 2-element
// tuple (List), since there is no dedicated Tuple kind.
func (o Output) AsValue() Value {
	if o.Pair != nil {
		return NewList([]Value{o.Pair.First, o.Pair.Second})
	}
	return o.Value
}

// Iterator is the lazy pull interface every adaptor and base sequence
// implements. Next returns (output, true) for each produced item, and
// (zero, false) once exhausted; it is never called again after that.
// It embeds Value so an Iterator can flow through the evaluator as an
// ordinary first-class value (KindIterator) wherever one escapes a
// for-loop or a stdlib call that returns a lazy chain.
type Iterator interface {
	Value
	Next() (Output, bool)
	MakeCopy() Iterator
	SizeHint() int
}

// iterBase supplies the Value half of Iterator to every concrete
// iterator type; iterators have no script-visible fields of their own.
type iterBase struct{}

func (iterBase) Kind() Kind       { return KindIterator }
func (iterBase) TypeName() string { return string(KindIterator) }

type listIterator struct {
	iterBase
	elems []Value
	pos   int
}

// NewListIterator makes an Iterator over a snapshot of l's elements, so
// MakeCopy's two resulting iterators never desync from each other.
func NewListIterator(l *List) Iterator {
	return &listIterator{elems: l.Elements}
}

func (it *listIterator) Next() (Output, bool) {
	if it.pos >= len(it.elems) {
		return Output{}, false
	}
	v := it.elems[it.pos]
	it.pos++
	return Output{Value: v}, true
}

func (it *listIterator) MakeCopy() Iterator {
	cp := *it
	return &cp
}

func (it *listIterator) SizeHint() int {
	n := len(it.elems) - it.pos
	if n < 0 {
		return 0
	}
	return n
}

type rangeIterator struct {
	iterBase
	cur, max int64
}

// NewRangeIterator makes an Iterator over the half-open interval r.
func NewRangeIterator(r Range) Iterator {
	return &rangeIterator{cur: r.Min, max: r.Max}
}

func (it *rangeIterator) Next() (Output, bool) {
	if it.cur >= it.max {
		return Output{}, false
	}
	v := it.cur
	it.cur++
	return Output{Value: Number(v)}, true
}

func (it *rangeIterator) MakeCopy() Iterator {
	cp := *it
	return &cp
}

func (it *rangeIterator) SizeHint() int {
	n := it.max - it.cur
	if n < 0 {
		return 0
	}
	return int(n)
}

// MakeIterator turns any value for which IsIterable reports true into an
// Iterator. It is the single place that decides how each iterable kind
// is traversed.
func MakeIterator(v Value) (Iterator, bool) {
	switch vv := v.(type) {
	case *List:
		return NewListIterator(vv), true
	case Range:
		return NewRangeIterator(vv), true
	case Iterator:
		return vv, true
	case *External:
		raw, ok := vv.Meta.Get("iter")
		if !ok {
			return nil, false
		}
		it, ok := raw.(Iterator)
		return it, ok
	default:
		return nil, false
	}
}
