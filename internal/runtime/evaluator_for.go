package runtime

import (
	"github.com/lumen-lang/lumen/internal/langerr"
)

// collectFor runs a deferred loop specification to completion:
// every Ranges expression is turned into an Iterator and stepped in
// lockstep, stopping the moment any one is exhausted; each iteration
// binds Args via bindArgs, filters on Condition when present, and
// splices the body's expanded results into the overall result.
func (e *Evaluator) collectFor(spec *ForSpec) ([]Value, error) {
	iters := make([]Iterator, len(spec.Ranges))
	for i, rnode := range spec.Ranges {
		v, err := e.evalCaptured(rnode)
		if err != nil {
			return nil, err
		}
		it, ok := MakeIterator(v)
		if !ok {
			return nil, langerr.NewType(rnode.Span(), langerr.MsgNotIterable, v.TypeName())
		}
		iters[i] = it
	}

	var results []Value
	for {
		values := make([]Value, len(iters))
		exhausted := false
		for i, it := range iters {
			out, ok := it.Next()
			if !ok {
				exhausted = true
				break
			}
			if out.Err != nil {
				return nil, out.Err
			}
			values[i] = out.AsValue()
		}
		if exhausted {
			break
		}

		bindArgs(e, spec.Args, values)

		if spec.Condition != nil {
			condVal, err := e.evalCaptured(spec.Condition)
			if err != nil {
				return nil, err
			}
			cond, ok := condVal.(Bool)
			if !ok {
				return nil, langerr.NewType(spec.Condition.Span(), langerr.MsgTypeMismatch, "for condition", "Bool", condVal.TypeName())
			}
			if !bool(cond) {
				continue
			}
		}

		bodyVals, err := e.evalExpanded(spec.Body)
		if err != nil {
			return nil, err
		}
		results = append(results, bodyVals...)
	}
	return results, nil
}

// bindArgs binds one step's values to the loop's argument names. A
// single range whose element is itself a List destructures that list's
// elements positionally across the arguments instead of binding the
// whole list to the first one; every other shape binds values
// positionally, padding with Empty when there are more names than
// values.
func bindArgs(e *Evaluator, names []string, values []Value) {
	if len(values) == 1 && len(names) > 1 {
		if list, ok := values[0].(*List); ok {
			for i, name := range names {
				if i < len(list.Elements) {
					e.bindName(name, list.Elements[i])
				} else {
					e.bindName(name, Empty{})
				}
			}
			return
		}
	}
	for i, name := range names {
		if i < len(values) {
			e.bindName(name, values[i])
		} else {
			e.bindName(name, Empty{})
		}
	}
}
