package stdlib

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
)

var zeroSpan ast.Span

func registerIterator(reg *runtime.Registry) {
	reg.Register([]string{"chain"}, iterChain)
	reg.Register([]string{"chunks"}, iterChunks)
	reg.Register([]string{"cycle"}, iterCycle)
	reg.Register([]string{"each"}, iterEach)
	reg.Register([]string{"enumerate"}, iterEnumerate)
	reg.Register([]string{"flatten"}, iterFlatten)
	reg.Register([]string{"intersperse"}, iterIntersperse)
	reg.Register([]string{"intersperse_with"}, iterIntersperseWith)
	reg.Register([]string{"keep"}, iterKeep)
	reg.Register([]string{"take"}, iterTake)
	reg.Register([]string{"skip"}, iterSkip)
	reg.Register([]string{"windows"}, iterWindows)
	reg.Register([]string{"zip"}, iterZip)

	reg.Register([]string{"all"}, termAll)
	reg.Register([]string{"any"}, termAny)
	reg.Register([]string{"consume"}, termConsume)
	reg.Register([]string{"count"}, termCount)
	reg.Register([]string{"find"}, termFind)
	reg.Register([]string{"fold"}, termFold)
	reg.Register([]string{"last"}, termLast)
	reg.Register([]string{"max"}, termMax)
	reg.Register([]string{"min"}, termMin)
	reg.Register([]string{"min_max"}, termMinMax)
	reg.Register([]string{"position"}, termPosition)
	reg.Register([]string{"product"}, termProduct)
	reg.Register([]string{"sum"}, termSum)
	reg.Register([]string{"to_list"}, termToList)
	reg.Register([]string{"to_map"}, termToMap)
	reg.Register([]string{"to_num2"}, termToNum2)
	reg.Register([]string{"to_num4"}, termToNum4)
	reg.Register([]string{"to_string"}, termToString)
	reg.Register([]string{"to_tuple"}, termToTuple)
}

func wrapIterator(it runtime.Iterator) runtime.Value {
	return it
}

func asIterable(name string, args []runtime.Value, idx int) (runtime.Iterator, error) {
	if idx >= len(args) {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, name, idx+1, len(args))
	}
	it, ok := runtime.MakeIterator(args[idx])
	if !ok {
		return nil, langerr.NewType(zeroSpan, langerr.MsgNotIterable, args[idx].TypeName())
	}
	return it, nil
}

func asInt(name string, args []runtime.Value, idx int) (int, error) {
	if idx >= len(args) {
		return 0, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, name, idx+1, len(args))
	}
	n, ok := args[idx].(runtime.Number)
	if !ok {
		return 0, langerr.NewType(zeroSpan, langerr.MsgTypeMismatch, name, "Number", args[idx].TypeName())
	}
	return int(n.Int()), nil
}

func iterChain(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	a, err := asIterable("chain", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := asIterable("chain", args, 1)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Chain(a, b)), nil
}

func iterChunks(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("chunks", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := asInt("chunks", args, 1)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, langerr.NewRange(zeroSpan, "chunks size must be >= 1, got %d", n)
	}
	return wrapIterator(runtime.Chunks(it, n)), nil
}

func iterCycle(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("cycle", args, 0)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Cycle(it)), nil
}

func iterEach(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("each", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "each", 2, len(args))
	}
	return wrapIterator(runtime.Each(it, ev, args[1])), nil
}

func iterEnumerate(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("enumerate", args, 0)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Enumerate(it)), nil
}

func iterFlatten(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("flatten", args, 0)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Flatten(it)), nil
}

func iterIntersperse(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("intersperse", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "intersperse", 2, len(args))
	}
	return wrapIterator(runtime.Intersperse(it, args[1])), nil
}

func iterIntersperseWith(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("intersperse_with", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "intersperse_with", 2, len(args))
	}
	return wrapIterator(runtime.IntersperseWith(it, ev, args[1])), nil
}

func iterKeep(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("keep", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "keep", 2, len(args))
	}
	return wrapIterator(runtime.Keep(it, ev, args[1])), nil
}

func iterTake(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("take", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := asInt("take", args, 1)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Take(it, n)), nil
}

func iterSkip(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("skip", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := asInt("skip", args, 1)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Skip(it, n)), nil
}

func iterWindows(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("windows", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := asInt("windows", args, 1)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, langerr.NewRange(zeroSpan, "windows size must be >= 1, got %d", n)
	}
	return wrapIterator(runtime.Windows(it, n)), nil
}

func iterZip(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	a, err := asIterable("zip", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := asIterable("zip", args, 1)
	if err != nil {
		return nil, err
	}
	return wrapIterator(runtime.Zip(a, b)), nil
}

func termAll(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("all", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "all", 2, len(args))
	}
	return runtime.All(zeroSpan, it, ev, args[1])
}

func termAny(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("any", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "any", 2, len(args))
	}
	return runtime.Any(zeroSpan, it, ev, args[1])
}

func termConsume(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("consume", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Consume(zeroSpan, it)
}

func termCount(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("count", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Count(zeroSpan, it)
}

func termFind(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("find", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "find", 2, len(args))
	}
	return runtime.Find(zeroSpan, it, ev, args[1])
}

func termFold(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("fold", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "fold", 3, len(args))
	}
	return runtime.Fold(zeroSpan, it, ev, args[1], args[2])
}

func termLast(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("last", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Last(zeroSpan, it)
}

func termMax(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("max", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Max(zeroSpan, it)
}

func termMin(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("min", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Min(zeroSpan, it)
}

func termMinMax(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("min_max", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.MinMax(zeroSpan, it)
}

func termPosition(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("position", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "position", 2, len(args))
	}
	return runtime.Position(zeroSpan, it, ev, args[1])
}

func termProduct(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("product", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Product(zeroSpan, it)
}

func termSum(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("sum", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.Sum(zeroSpan, it)
}

func termToList(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_list", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToList(zeroSpan, it)
}

func termToMap(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_map", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToMap(zeroSpan, it)
}

func termToNum2(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_num2", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToNum2(zeroSpan, it)
}

func termToNum4(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_num4", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToNum4(zeroSpan, it)
}

func termToString(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_string", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToStringTerminal(zeroSpan, it)
}

func termToTuple(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	it, err := asIterable("to_tuple", args, 0)
	if err != nil {
		return nil, err
	}
	return runtime.ToTuple(zeroSpan, it)
}
