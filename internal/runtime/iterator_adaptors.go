package runtime

// Caller is the subset of *Evaluator the adaptors that need to invoke a
// user function (each, keep, intersperse_with) depend on. Keeping it as
// a narrow interface instead of importing *Evaluator directly avoids
// giving every adaptor the whole evaluator surface.
type Caller interface {
	CallValue(fn Value, args []Value) (Value, error)
}

// chainIterator exhausts each upstream iterator in turn.
type chainIterator struct {
	iterBase
	ups []Iterator
	pos int
}

func Chain(ups ...Iterator) Iterator { return &chainIterator{ups: ups} }

func (it *chainIterator) Next() (Output, bool) {
	for it.pos < len(it.ups) {
		if out, ok := it.ups[it.pos].Next(); ok {
			return out, true
		}
		it.pos++
	}
	return Output{}, false
}

func (it *chainIterator) MakeCopy() Iterator {
	cp := make([]Iterator, len(it.ups))
	for i, u := range it.ups {
		cp[i] = u.MakeCopy()
	}
	return &chainIterator{ups: cp, pos: it.pos}
}

func (it *chainIterator) SizeHint() int {
	n := 0
	for i := it.pos; i < len(it.ups); i++ {
		n += it.ups[i].SizeHint()
	}
	return n
}

// chunksIterator groups upstream items into Lists of size n; the final
// chunk may be shorter when the upstream length isn't a multiple of n.
type chunksIterator struct {
	iterBase
	up Iterator
	n  int
}

func Chunks(up Iterator, n int) Iterator { return &chunksIterator{up: up, n: n} }

func (it *chunksIterator) Next() (Output, bool) {
	chunk := make([]Value, 0, it.n)
	for len(chunk) < it.n {
		out, ok := it.up.Next()
		if !ok {
			break
		}
		chunk = append(chunk, out.AsValue())
	}
	if len(chunk) == 0 {
		return Output{}, false
	}
	return Output{Value: NewList(chunk)}, true
}

func (it *chunksIterator) MakeCopy() Iterator {
	return &chunksIterator{up: it.up.MakeCopy(), n: it.n}
}

func (it *chunksIterator) SizeHint() int {
	n := it.up.SizeHint()
	return (n + it.n - 1) / it.n
}

// cycleIterator repeats the upstream sequence indefinitely, restarting
// from a copy taken before any consumption.
type cycleIterator struct {
	iterBase
	start Iterator
	cur   Iterator
}

func Cycle(up Iterator) Iterator {
	return &cycleIterator{start: up.MakeCopy(), cur: up}
}

func (it *cycleIterator) Next() (Output, bool) {
	out, ok := it.cur.Next()
	if ok {
		return out, true
	}
	if it.start.SizeHint() == 0 {
		return Output{}, false
	}
	it.cur = it.start.MakeCopy()
	return it.cur.Next()
}

func (it *cycleIterator) MakeCopy() Iterator {
	return &cycleIterator{start: it.start.MakeCopy(), cur: it.cur.MakeCopy()}
}

func (it *cycleIterator) SizeHint() int { return -1 }

// eachIterator calls f on every item for its side effect and passes the
// item through unchanged; an error from f halts iteration.
type eachIterator struct {
	iterBase
	up     Iterator
	caller Caller
	fn     Value
}

func Each(up Iterator, caller Caller, fn Value) Iterator {
	return &eachIterator{up: up, caller: caller, fn: fn}
}

func (it *eachIterator) Next() (Output, bool) {
	out, ok := it.up.Next()
	if !ok {
		return Output{}, false
	}
	if _, err := it.caller.CallValue(it.fn, []Value{out.AsValue()}); err != nil {
		return Output{Err: err}, true
	}
	return out, true
}

func (it *eachIterator) MakeCopy() Iterator {
	return &eachIterator{up: it.up.MakeCopy(), caller: it.caller, fn: it.fn}
}

func (it *eachIterator) SizeHint() int { return it.up.SizeHint() }

// enumerateIterator pairs each item with its zero-based position.
type enumerateIterator struct {
	iterBase
	up  Iterator
	idx int64
}

func Enumerate(up Iterator) Iterator { return &enumerateIterator{up: up} }

func (it *enumerateIterator) Next() (Output, bool) {
	out, ok := it.up.Next()
	if !ok {
		return Output{}, false
	}
	p := Output{Pair: &Pair{First: Number(it.idx), Second: out.AsValue()}}
	it.idx++
	return p, true
}

func (it *enumerateIterator) MakeCopy() Iterator {
	return &enumerateIterator{up: it.up.MakeCopy(), idx: it.idx}
}

func (it *enumerateIterator) SizeHint() int { return it.up.SizeHint() }

// flattenIterator traverses each upstream item, itself expected to be
// iterable, in turn.
type flattenIterator struct {
	iterBase
	up     Iterator
	inner  Iterator
}

func Flatten(up Iterator) Iterator { return &flattenIterator{up: up} }

func (it *flattenIterator) Next() (Output, bool) {
	for {
		if it.inner != nil {
			if out, ok := it.inner.Next(); ok {
				return out, true
			}
			it.inner = nil
		}
		out, ok := it.up.Next()
		if !ok {
			return Output{}, false
		}
		inner, ok := MakeIterator(out.AsValue())
		if !ok {
			return Output{Err: nil, Value: out.AsValue()}, true
		}
		it.inner = inner
	}
}

func (it *flattenIterator) MakeCopy() Iterator {
	cp := &flattenIterator{up: it.up.MakeCopy()}
	if it.inner != nil {
		cp.inner = it.inner.MakeCopy()
	}
	return cp
}

func (it *flattenIterator) SizeHint() int { return -1 }

// intersperseIterator inserts sep between every pair of upstream items.
type intersperseIterator struct {
	iterBase
	up       Iterator
	sep      Value
	sepFn    Value
	caller   Caller
	pending  *Output
	started  bool
}

func Intersperse(up Iterator, sep Value) Iterator {
	return &intersperseIterator{up: up, sep: sep}
}

func IntersperseWith(up Iterator, caller Caller, fn Value) Iterator {
	return &intersperseIterator{up: up, sepFn: fn, caller: caller}
}

func (it *intersperseIterator) Next() (Output, bool) {
	if it.pending != nil {
		p := *it.pending
		it.pending = nil
		return p, true
	}
	out, ok := it.up.Next()
	if !ok {
		return Output{}, false
	}
	if it.started {
		it.pending = &out
		if it.sepFn != nil {
			v, err := it.caller.CallValue(it.sepFn, nil)
			if err != nil {
				return Output{Err: err}, true
			}
			return Output{Value: v}, true
		}
		return Output{Value: it.sep}, true
	}
	it.started = true
	return out, true
}

func (it *intersperseIterator) MakeCopy() Iterator {
	cp := *it
	cp.up = it.up.MakeCopy()
	return &cp
}

func (it *intersperseIterator) SizeHint() int {
	n := it.up.SizeHint()
	if n <= 0 {
		return n
	}
	return 2*n - 1
}

// keepIterator yields only items for which pred returns a truthy Bool.
type keepIterator struct {
	iterBase
	up     Iterator
	caller Caller
	pred   Value
}

func Keep(up Iterator, caller Caller, pred Value) Iterator {
	return &keepIterator{up: up, caller: caller, pred: pred}
}

func (it *keepIterator) Next() (Output, bool) {
	for {
		out, ok := it.up.Next()
		if !ok {
			return Output{}, false
		}
		v, err := it.caller.CallValue(it.pred, []Value{out.AsValue()})
		if err != nil {
			return Output{Err: err}, true
		}
		if b, ok := v.(Bool); ok && bool(b) {
			return out, true
		}
	}
}

func (it *keepIterator) MakeCopy() Iterator {
	return &keepIterator{up: it.up.MakeCopy(), caller: it.caller, pred: it.pred}
}

func (it *keepIterator) SizeHint() int { return -1 }

// takeIterator stops after n items regardless of upstream length.
type takeIterator struct {
	iterBase
	up   Iterator
	left int
}

func Take(up Iterator, n int) Iterator { return &takeIterator{up: up, left: n} }

func (it *takeIterator) Next() (Output, bool) {
	if it.left <= 0 {
		return Output{}, false
	}
	out, ok := it.up.Next()
	if !ok {
		it.left = 0
		return Output{}, false
	}
	it.left--
	return out, true
}

func (it *takeIterator) MakeCopy() Iterator {
	return &takeIterator{up: it.up.MakeCopy(), left: it.left}
}

func (it *takeIterator) SizeHint() int {
	n := it.up.SizeHint()
	if n < it.left {
		return n
	}
	return it.left
}

// skipIterator discards the first n items, then yields the rest.
type skipIterator struct {
	iterBase
	up      Iterator
	skipped bool
	n       int
}

func Skip(up Iterator, n int) Iterator { return &skipIterator{up: up, n: n} }

func (it *skipIterator) Next() (Output, bool) {
	if !it.skipped {
		for i := 0; i < it.n; i++ {
			if _, ok := it.up.Next(); !ok {
				break
			}
		}
		it.skipped = true
	}
	return it.up.Next()
}

func (it *skipIterator) MakeCopy() Iterator {
	return &skipIterator{up: it.up.MakeCopy(), skipped: it.skipped, n: it.n}
}

func (it *skipIterator) SizeHint() int {
	n := it.up.SizeHint()
	if !it.skipped {
		n -= it.n
	}
	if n < 0 {
		return 0
	}
	return n
}

// windowsIterator yields overlapping Lists of size n, advancing by one.
type windowsIterator struct {
	iterBase
	up  Iterator
	n   int
	buf []Value
}

func Windows(up Iterator, n int) Iterator { return &windowsIterator{up: up, n: n} }

func (it *windowsIterator) Next() (Output, bool) {
	for len(it.buf) < it.n {
		out, ok := it.up.Next()
		if !ok {
			return Output{}, false
		}
		it.buf = append(it.buf, out.AsValue())
	}
	window := make([]Value, it.n)
	copy(window, it.buf)
	it.buf = it.buf[1:]
	return Output{Value: NewList(window)}, true
}

func (it *windowsIterator) MakeCopy() Iterator {
	buf := make([]Value, len(it.buf))
	copy(buf, it.buf)
	return &windowsIterator{up: it.up.MakeCopy(), n: it.n, buf: buf}
}

func (it *windowsIterator) SizeHint() int {
	n := it.up.SizeHint() + len(it.buf) - it.n + 1
	if n < 0 {
		return 0
	}
	return n
}

// zipIterator pairs items from two upstream iterators, stopping as soon
// as either is exhausted.
type zipIterator struct {
	iterBase
	a, b Iterator
}

func Zip(a, b Iterator) Iterator { return &zipIterator{a: a, b: b} }

func (it *zipIterator) Next() (Output, bool) {
	oa, ok := it.a.Next()
	if !ok {
		return Output{}, false
	}
	ob, ok := it.b.Next()
	if !ok {
		return Output{}, false
	}
	return Output{Pair: &Pair{First: oa.AsValue(), Second: ob.AsValue()}}, true
}

func (it *zipIterator) MakeCopy() Iterator {
	return &zipIterator{a: it.a.MakeCopy(), b: it.b.MakeCopy()}
}

func (it *zipIterator) SizeHint() int {
	na, nb := it.a.SizeHint(), it.b.SizeHint()
	if na < nb {
		return na
	}
	return nb
}
