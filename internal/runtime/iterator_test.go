package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
)

// fakeCaller lets adaptor/terminal tests exercise callback-taking
// functions without routing through the full user-function evaluator.
type fakeCaller struct {
	call func(args []Value) (Value, error)
}

func (f fakeCaller) CallValue(_ Value, args []Value) (Value, error) { return f.call(args) }

func drain(it Iterator) []Value {
	var out []Value
	for {
		o, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, o.AsValue())
	}
}

func numsIterator(ns ...float64) Iterator {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = Number(n)
	}
	return NewListIterator(NewList(elems))
}

func TestChainConcatenatesInOrder(t *testing.T) {
	got := drain(Chain(numsIterator(1, 2), numsIterator(3, 4)))
	assert.Equal(t, []Value{Number(1), Number(2), Number(3), Number(4)}, got)
}

func TestTakeAndSkip(t *testing.T) {
	got := drain(Take(numsIterator(1, 2, 3, 4, 5), 2))
	assert.Equal(t, []Value{Number(1), Number(2)}, got)

	got = drain(Skip(numsIterator(1, 2, 3, 4, 5), 2))
	assert.Equal(t, []Value{Number(3), Number(4), Number(5)}, got)
}

func TestEnumerateYieldsPairs(t *testing.T) {
	it := Enumerate(numsIterator(10, 20))
	o, ok := it.Next()
	require.True(t, ok)
	require.NotNil(t, o.Pair)
	assert.Equal(t, Number(0), o.Pair.First)
	assert.Equal(t, Number(10), o.Pair.Second)
}

func TestZipStopsAtShorterSide(t *testing.T) {
	got := drain(Zip(numsIterator(1, 2, 3), numsIterator(10, 20)))
	require.Len(t, got, 2)
	first := got[0].(*List)
	assert.Equal(t, []Value{Number(1), Number(10)}, first.Elements)
}

func TestWindowsSlides(t *testing.T) {
	got := drain(Windows(numsIterator(1, 2, 3, 4), 2))
	require.Len(t, got, 3)
	assert.Equal(t, []Value{Number(1), Number(2)}, got[0].(*List).Elements)
	assert.Equal(t, []Value{Number(2), Number(3)}, got[1].(*List).Elements)
	assert.Equal(t, []Value{Number(3), Number(4)}, got[2].(*List).Elements)
}

func TestCycleRestartsFromCopy(t *testing.T) {
	it := Cycle(numsIterator(1, 2))
	var got []Value
	for i := 0; i < 5; i++ {
		o, ok := it.Next()
		require.True(t, ok)
		got = append(got, o.AsValue())
	}
	assert.Equal(t, []Value{Number(1), Number(2), Number(1), Number(2), Number(1)}, got)
}

func TestKeepFiltersOnTruthyPredicate(t *testing.T) {
	even := fakeCaller{call: func(args []Value) (Value, error) {
		n := int64(args[0].(Number))
		return Bool(n%2 == 0), nil
	}}
	got := drain(Keep(numsIterator(1, 2, 3, 4), even, nil))
	assert.Equal(t, []Value{Number(2), Number(4)}, got)
}

func TestSumAndProduct(t *testing.T) {
	var span ast.Span
	sum, err := Sum(span, numsIterator(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, Number(6), sum)

	product, err := Product(span, numsIterator(2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, Number(24), product)
}

func TestFoldAccumulates(t *testing.T) {
	var span ast.Span
	concat := fakeCaller{call: func(args []Value) (Value, error) {
		acc := args[0].(Number)
		n := args[1].(Number)
		return acc + n, nil
	}}
	got, err := Fold(span, numsIterator(1, 2, 3), concat, Number(10), nil)
	require.NoError(t, err)
	assert.Equal(t, Number(16), got)
}

func TestFindReturnsFirstMatch(t *testing.T) {
	var span ast.Span
	isThree := fakeCaller{call: func(args []Value) (Value, error) {
		return Bool(args[0].(Number) == Number(3)), nil
	}}
	got, err := Find(span, numsIterator(1, 2, 3, 4), isThree, nil)
	require.NoError(t, err)
	assert.Equal(t, Number(3), got)
}

func TestToListRespectsOrder(t *testing.T) {
	var span ast.Span
	got, err := ToList(span, numsIterator(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, got.(*List).Elements)
}

func TestMinMax(t *testing.T) {
	var span ast.Span
	got, err := MinMax(span, numsIterator(3, 1, 4, 1, 5))
	require.NoError(t, err)
	pair := got.(*List)
	assert.Equal(t, Number(1), pair.Elements[0])
	assert.Equal(t, Number(5), pair.Elements[1])
}

func TestToMapFromPairsAndTwoElementLists(t *testing.T) {
	var span ast.Span
	pairs := NewList([]Value{
		NewList([]Value{NewStr("a"), Number(1)}),
		NewList([]Value{NewStr("b"), Number(2)}),
	})
	v, err := ToMap(span, NewListIterator(pairs))
	require.NoError(t, err)
	m := v.(*Map)
	a, _ := m.Get("a")
	b, _ := m.Get("b")
	assert.Equal(t, Number(1), a)
	assert.Equal(t, Number(2), b)
}

func TestToMapFromBareValuesUsesValueAsKeyWithEmptyResult(t *testing.T) {
	var span ast.Span
	v, err := ToMap(span, numsIterator(0, 1, 2))
	require.NoError(t, err)
	m := v.(*Map)
	for _, k := range []string{"0", "1", "2"} {
		val, ok := m.Get(k)
		require.True(t, ok, "expected key %q", k)
		assert.Equal(t, Empty{}, val)
	}
}

func TestMakeIteratorFromRangeAndList(t *testing.T) {
	it, ok := MakeIterator(Range{Min: 0, Max: 3})
	require.True(t, ok)
	assert.Equal(t, []Value{Number(0), Number(1), Number(2)}, drain(it))

	it, ok = MakeIterator(NewList([]Value{Number(7)}))
	require.True(t, ok)
	assert.Equal(t, []Value{Number(7)}, drain(it))

	_, ok = MakeIterator(Number(1))
	assert.False(t, ok)
}
