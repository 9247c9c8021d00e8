package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/runtime"
)

func run(t *testing.T, src string) runtime.Value {
	t.Helper()
	v, err := New().Run(src)
	require.NoError(t, err)
	return v
}

func TestArithmeticAndPrecedence(t *testing.T) {
	v := run(t, "1 + 2 * 3")
	assert.Equal(t, runtime.Number(7), v)
}

func TestAssignmentAndGlobalScope(t *testing.T) {
	v := run(t, "x = 10\nx + 5")
	assert.Equal(t, runtime.Number(15), v)
}

func TestMultiAssignDestructures(t *testing.T) {
	v := run(t, "(a, b) = 1, 2\na + b")
	assert.Equal(t, runtime.Number(3), v)
}

func TestMultiAssignScalarBindsFirstTargetOnly(t *testing.T) {
	vm := New()
	_, err := vm.Run("(a, b) = 1")
	require.NoError(t, err)
	a, ok := vm.Global("a")
	require.True(t, ok)
	b, ok := vm.Global("b")
	require.True(t, ok)
	assert.Equal(t, runtime.Number(1), a)
	assert.Equal(t, runtime.Empty{}, b)
}

func TestIfElseIf(t *testing.T) {
	v := run(t, "x = 2\nif x == 1 \"one\" else if x == 2 \"two\" else \"other\"")
	assert.Equal(t, "two", v.(*runtime.Str).Value)
}

func TestForLoopExpandsIntoSurroundingList(t *testing.T) {
	v := run(t, "[0, for x in 1..4 yield x * 2, 99]")
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{
		runtime.Number(0), runtime.Number(2), runtime.Number(4), runtime.Number(6), runtime.Number(99),
	}, list.Elements)
}

func TestForLoopWithCondition(t *testing.T) {
	v := run(t, "for x in 0..6 if x % 2 == 0 yield x")
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{
		runtime.Number(0), runtime.Number(2), runtime.Number(4),
	}, list.Elements)
}

func TestForLoopLockstepOverMultipleRanges(t *testing.T) {
	v := run(t, "for a, b in 0..5, 10..12 yield a + b")
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{runtime.Number(10), runtime.Number(12)}, list.Elements)
}

func TestFunctionCallAndClosureOverGlobals(t *testing.T) {
	v := run(t, "add = |x, y| x + y\nadd(2, 3)")
	assert.Equal(t, runtime.Number(5), v)
}

func TestMapAttachedFunctionSelfBinding(t *testing.T) {
	v := run(t, `m = {count: 3, bump: |self| self["count"] + 1}
m.bump()`)
	assert.Equal(t, runtime.Number(4), v)
}

func TestIndexingListWithRangeReturnsSlice(t *testing.T) {
	v := run(t, `xs = [10, 20, 30, 40, 50]
xs[1..3]`)
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{runtime.Number(20), runtime.Number(30)}, list.Elements)
}

func TestIndexingListWithOutOfRangeRangeIsAnError(t *testing.T) {
	_, err := New().Run(`xs = [1, 2]
xs[0..5]`)
	require.Error(t, err)
}

func TestForLoopDestructuresSingleListOfLists(t *testing.T) {
	v := run(t, `for a, b in [[1, 2], [3, 4]] yield a + b`)
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{runtime.Number(3), runtime.Number(7)}, list.Elements)
}

func TestRecursiveLocalFunctionCanCallItselfByName(t *testing.T) {
	// fact is bound only inside run_fact's own call frame, never in
	// Globals; its recursive call must still resolve by reaching the
	// self-binding callUserFunction stages into fact's own new frame.
	v := run(t, `run_fact = |n| {
    fact = |m| if m <= 1 1 else m * fact(m - 1)
    fact(n)
}
run_fact(5)`)
	assert.Equal(t, runtime.Number(120), v)
}

func TestIndexingListMapStringVector(t *testing.T) {
	v := run(t, `xs = [10, 20, 30]
xs[1]`)
	assert.Equal(t, runtime.Number(20), v)

	v = run(t, `m = {a: 1}
m["a"]`)
	assert.Equal(t, runtime.Number(1), v)

	v = run(t, `s = "hello"
s[1]`)
	assert.Equal(t, "e", v.(*runtime.Str).Value)

	v = run(t, `v = iterator.to_num4([1, 2, 3, 4])
v[2]`)
	assert.Equal(t, runtime.Number(3), v)
}

func TestIteratorPipelineThroughStdlib(t *testing.T) {
	v := run(t, "iterator.sum(iterator.keep(0..10, |n| n % 2 == 0))")
	assert.Equal(t, runtime.Number(20), v)
}

func TestIteratorToListMaterializesLazyChain(t *testing.T) {
	v := run(t, "iterator.to_list(iterator.take(iterator.skip(0..10, 2), 3))")
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{runtime.Number(2), runtime.Number(3), runtime.Number(4)}, list.Elements)
}

func TestCoreTypeAndVersion(t *testing.T) {
	v := run(t, `lumen.type(42)`)
	assert.Equal(t, "Number", v.(*runtime.Str).Value)

	v = run(t, `lumen.type("x")`)
	assert.Equal(t, "Str", v.(*runtime.Str).Value)

	v = run(t, `lumen.version()`)
	assert.Equal(t, config.Version, v.(*runtime.Str).Value)
}

func TestJSONRoundTrip(t *testing.T) {
	v := run(t, `json.decode(json.encode([1, 2, "x"]))`)
	list := v.(*runtime.List)
	assert.Equal(t, []runtime.Value{runtime.Number(1), runtime.Number(2), runtime.NewStr("x")}, list.Elements)
}

func TestYAMLRoundTrip(t *testing.T) {
	v := run(t, `yaml.decode(yaml.encode({a: 1, b: 2}))`)
	m := v.(*runtime.Map)
	a, _ := m.Get("a")
	b, _ := m.Get("b")
	assert.Equal(t, runtime.Number(1), a)
	assert.Equal(t, runtime.Number(2), b)
}

func TestHostRegisteredFunctionCallableFromScript(t *testing.T) {
	vm := New()
	vm.RegisterFunction("host.greet", func(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
		name := args[0].(*runtime.Str).Value
		return runtime.NewStr("hello, " + name), nil
	})
	v, err := vm.Run(`host.greet("world")`)
	require.NoError(t, err)
	assert.Equal(t, "hello, world", v.(*runtime.Str).Value)
}

func TestSetGlobalAndReadGlobalAfterRun(t *testing.T) {
	vm := New()
	vm.SetGlobal("seed", runtime.Number(41))
	_, err := vm.Run("seed = seed + 1")
	require.NoError(t, err)
	got, ok := vm.Global("seed")
	require.True(t, ok)
	assert.Equal(t, runtime.Number(42), got)
}

func TestDivisionByZeroIsReportedAsAnError(t *testing.T) {
	_, err := New().Run("1 / 0")
	require.Error(t, err)
}

func TestUndefinedIdentifierIsAnError(t *testing.T) {
	_, err := New().Run("nope")
	require.Error(t, err)
}
