package runtime

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

// evalCall evaluates every argument with capture (positional
// correspondence, no splicing), then dispatches to a user function or
// an external callable and pushes the single result.
func (e *Evaluator) evalCall(call *ast.Call) error {
	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		v, err := e.evalCaptured(a)
		if err != nil {
			return err
		}
		args[i] = v
	}
	v, err := e.dispatchCall(call.Callee, args, call.Sp)
	if err != nil {
		return err
	}
	e.Returns.Push(v)
	return nil
}

// dispatchCall resolves Callee through the scope chain first; only when
// that resolution fails with a NameError does it fall back to the
// external registry — any other error, or a successfully resolved
// non-Function value, is reported as-is.
func (e *Evaluator) dispatchCall(callee *ast.Id, args []Value, span ast.Span) (Value, error) {
	resolved, receiver, err := e.resolveId(callee)
	if err == nil {
		fn, ok := resolved.(*Function)
		if !ok {
			return nil, langerr.NewType(span, langerr.MsgNotCallable, resolved.TypeName())
		}
		callArgs := args
		if fn.HasSelfParam() && receiver != nil {
			callArgs = append([]Value{receiver}, args...)
		}
		callName := callee.Path[len(callee.Path)-1]
		return e.callUserFunction(fn, callArgs, span, callName)
	}
	if !langerr.As(err, langerr.NameError) {
		return nil, err
	}
	extFn, ok := e.Externals.Lookup(callee.Path)
	if !ok {
		return nil, err
	}
	v, callErr := extFn(e, args)
	if callErr != nil {
		return nil, langerr.Wrap(span, joinPath(callee.Path), callErr)
	}
	return v, nil
}

// callUserFunction binds args to fn's parameters as a single committed
// frame (the staging buffer is only made visible once every argument
// is bound) and evaluates the body with capture. callName, when
// non-empty, is also bound in the new frame to fn itself, so a function
// can call itself by the name it was invoked under even when that name
// lives in an enclosing call's frame rather than the global scope.
func (e *Evaluator) callUserFunction(fn *Function, args []Value, span ast.Span, callName string) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, langerr.NewArity(span, langerr.MsgArityMismatch, "function", len(fn.Params), len(args))
	}
	staging := NewStaging()
	isParam := false
	for i, p := range fn.Params {
		staging.Set(p, args[i])
		isParam = isParam || p == callName
	}
	if callName != "" && !isParam {
		staging.Set(callName, fn)
	}
	e.Calls.Commit(staging)
	defer e.Calls.Pop()
	return e.evalCaptured(fn.Body)
}

// CallValue invokes a Value known to be callable from Go code — the
// hook iterator adaptors and stdlib higher-order builtins use to call
// back into user functions (satisfies the Caller interface).
func (e *Evaluator) CallValue(fn Value, args []Value) (Value, error) {
	f, ok := fn.(*Function)
	if !ok {
		return nil, langerr.NewType(ast.Span{}, langerr.MsgNotCallable, fn.TypeName())
	}
	return e.callUserFunction(f, args, ast.Span{}, "")
}

func joinPath(path []string) string {
	out := path[0]
	for _, seg := range path[1:] {
		out += "." + seg
	}
	return out
}
