package runtime

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

// Evaluator is the tree-walking core: one global scope, one call stack,
// one return stack, and the external-function registry the host wired
// up before running anything.
type Evaluator struct {
	Globals   *Scope
	Calls     *CallStack
	Returns   *ReturnStack
	Externals *Registry
}

// NewEvaluator starts an Evaluator with an empty global scope, ready to
// evaluate top-level statements against ext.
func NewEvaluator(ext *Registry) *Evaluator {
	if ext == nil {
		ext = NewRegistry()
	}
	return &Evaluator{
		Globals:   NewScope(),
		Calls:     &CallStack{},
		Returns:   &ReturnStack{},
		Externals: ext,
	}
}

// Eval dispatches node, filling a freshly opened return-stack frame with
// whatever values node produces. The caller is responsible for popping
// that frame; evalExpanded/evalCaptured/evalChildInto do not go through
// Eval but open and pop their own frame via evalRaw.
func (e *Evaluator) Eval(node ast.Node) error {
	e.Returns.StartFrame()
	if err := e.dispatch(node); err != nil {
		e.Returns.PopFrame()
		return err
	}
	return nil
}

func (e *Evaluator) dispatch(node ast.Node) error {
	switch n := node.(type) {
	case *ast.BoolLit:
		e.Returns.Push(Bool(n.Value))
		return nil

	case *ast.NumberLit:
		e.Returns.Push(Number(n.Value))
		return nil

	case *ast.StrLit:
		e.Returns.Push(NewStr(n.Value))
		return nil

	case *ast.Vec4Lit:
		lanes := make([]float64, 4)
		for i, comp := range []ast.Node{n.X, n.Y, n.Z, n.W} {
			v, err := e.evalCaptured(comp)
			if err != nil {
				return err
			}
			num, ok := v.(Number)
			if !ok {
				return langerr.NewType(comp.Span(), langerr.MsgTypeMismatch, "Vec4 component", "Number", v.TypeName())
			}
			lanes[i] = float64(num)
		}
		e.Returns.Push(Vec4{lanes[0], lanes[1], lanes[2], lanes[3]})
		return nil

	case *ast.ListLit:
		var elems []Value
		for _, child := range n.Elements {
			vals, err := e.evalExpanded(child)
			if err != nil {
				return err
			}
			elems = append(elems, vals...)
		}
		e.Returns.Push(NewList(elems))
		return nil

	case *ast.RangeLit:
		return e.dispatchRange(n)

	case *ast.MapLit:
		m := NewMap()
		for _, entry := range n.Entries {
			v, err := e.evalCaptured(entry.Value)
			if err != nil {
				return err
			}
			m.Set(entry.Key, v)
		}
		e.Returns.Push(m)
		return nil

	case *ast.IndexExpr:
		target, _, err := e.resolveId(n.Target)
		if err != nil {
			return err
		}
		idx, err := e.evalCaptured(n.Index)
		if err != nil {
			return err
		}
		v, err := indexInto(n.Sp, target, idx)
		if err != nil {
			return err
		}
		e.Returns.Push(v)
		return nil

	case *ast.Id:
		v, _, err := e.resolveId(n)
		if err != nil {
			return err
		}
		e.Returns.Push(v)
		return nil

	case *ast.Block:
		return e.dispatchBlock(n)

	case *ast.Expressions:
		for _, child := range n.Children {
			v, err := e.evalCaptured(child)
			if err != nil {
				return err
			}
			e.Returns.Push(v)
		}
		return nil

	case *ast.FunctionLit:
		e.Returns.Push(&Function{Params: n.Params, Body: n.Body})
		return nil

	case *ast.Call:
		return e.evalCall(n)

	case *ast.Assign:
		v, err := e.evalCaptured(n.Value)
		if err != nil {
			return err
		}
		e.bind(n.Target, v, n.Global)
		e.Returns.Push(Empty{})
		return nil

	case *ast.MultiAssign:
		return e.dispatchMultiAssign(n)

	case *ast.Op:
		lv, err := e.evalCaptured(n.Lhs)
		if err != nil {
			return err
		}
		rv, err := e.evalCaptured(n.Rhs)
		if err != nil {
			return err
		}
		res, err := ApplyBinary(n.Sp, n.Operator, lv, rv)
		if err != nil {
			return err
		}
		e.Returns.Push(res)
		return nil

	case *ast.If:
		return e.dispatchIf(n)

	case *ast.For:
		e.Returns.Push(&ForSpec{Args: n.Args, Ranges: n.Ranges, Condition: n.Condition, Body: n.Body})
		return nil

	default:
		return langerr.NewInternal(node.Span(), "unhandled node type %T", node)
	}
}

func (e *Evaluator) dispatchRange(n *ast.RangeLit) error {
	minV, err := e.evalCaptured(n.Min)
	if err != nil {
		return err
	}
	maxV, err := e.evalCaptured(n.Max)
	if err != nil {
		return err
	}
	minN, ok := minV.(Number)
	if !ok {
		return langerr.NewType(n.Sp, langerr.MsgTypeMismatch, "range bound", "Number", minV.TypeName())
	}
	maxN, ok := maxV.(Number)
	if !ok {
		return langerr.NewType(n.Sp, langerr.MsgTypeMismatch, "range bound", "Number", maxV.TypeName())
	}
	lo, hi := minN.Int(), maxN.Int()
	if n.Inclusive {
		hi++
	}
	if lo > hi {
		return langerr.NewRange(n.Sp, langerr.MsgBadRange, lo, hi)
	}
	e.Returns.Push(Range{Min: lo, Max: hi})
	return nil
}

func (e *Evaluator) dispatchBlock(n *ast.Block) error {
	if len(n.Children) == 0 {
		e.Returns.Push(Empty{})
		return nil
	}
	for i, child := range n.Children {
		if i == len(n.Children)-1 {
			v, err := e.evalCaptured(child)
			if err != nil {
				return err
			}
			e.Returns.Push(v)
			return nil
		}
		if _, err := e.evalExpanded(child); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) dispatchMultiAssign(n *ast.MultiAssign) error {
	var flat []Value
	for _, valNode := range n.Values {
		vals, err := e.evalExpanded(valNode)
		if err != nil {
			return err
		}
		flat = append(flat, vals...)
	}
	for i, target := range n.Targets {
		var v Value = Empty{}
		if i < len(flat) {
			v = flat[i]
		}
		e.bind(target, v, n.Global)
	}
	e.Returns.Push(Empty{})
	return nil
}

func (e *Evaluator) dispatchIf(n *ast.If) error {
	condVal, err := e.evalCaptured(n.Cond)
	if err != nil {
		return err
	}
	cond, ok := condVal.(Bool)
	if !ok {
		return langerr.NewType(n.Sp, langerr.MsgTypeMismatch, "if condition", "Bool", condVal.TypeName())
	}
	if bool(cond) {
		return e.evalChildInto(n.Then)
	}
	if n.ElseIf != nil {
		econdVal, err := e.evalCaptured(n.ElseIf.Cond)
		if err != nil {
			return err
		}
		econd, ok := econdVal.(Bool)
		if !ok {
			return langerr.NewType(n.Sp, langerr.MsgTypeMismatch, "else-if condition", "Bool", econdVal.TypeName())
		}
		if bool(econd) {
			return e.evalChildInto(n.ElseIf.Then)
		}
	}
	if n.Else != nil {
		return e.evalChildInto(n.Else)
	}
	e.Returns.Push(Empty{})
	return nil
}

// evalRaw evaluates node in its own frame and returns that frame's raw
// values, unexpanded.
func (e *Evaluator) evalRaw(node ast.Node) ([]Value, error) {
	e.Returns.StartFrame()
	if err := e.dispatch(node); err != nil {
		e.Returns.PopFrame()
		return nil, err
	}
	return e.Returns.PopFrame(), nil
}

// evalExpanded evaluates node and applies the single-value expansion
// rule: a lone ForSpec runs to completion and splices its produced
// values, a lone Range splices its covered integers, a lone Empty
// splices to nothing. Any other result (including an already-multi-
// valued frame) passes through unchanged.
func (e *Evaluator) evalExpanded(node ast.Node) ([]Value, error) {
	vals, err := e.evalRaw(node)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return vals, nil
	}
	switch v := vals[0].(type) {
	case Empty:
		return []Value{}, nil
	case Range:
		out := make([]Value, 0, v.Len())
		for i := v.Min; i < v.Max; i++ {
			out = append(out, Number(i))
		}
		return out, nil
	case *ForSpec:
		return e.collectFor(v)
	default:
		return vals, nil
	}
}

// evalChildInto evaluates node with expansion and pushes the resulting
// values directly into the currently-open (parent) frame. Used by the
// node kind that delegates its whole result to a sub-expression: an
// if/else-if/else branch.
func (e *Evaluator) evalChildInto(node ast.Node) error {
	vals, err := e.evalExpanded(node)
	if err != nil {
		return err
	}
	for _, v := range vals {
		e.Returns.Push(v)
	}
	return nil
}

// evalCaptured evaluates node with expansion, then collapses the result
// to a single Value: zero values become Empty, one value passes
// through, two or more become a List (tuples are represented this way
// rather than as a dedicated kind).
func (e *Evaluator) evalCaptured(node ast.Node) (Value, error) {
	vals, err := e.evalExpanded(node)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return Empty{}, nil
	case 1:
		if _, ok := vals[0].(*ForSpec); ok {
			return nil, langerr.NewInternal(node.Span(), "unexpanded for-loop reached capture")
		}
		return vals[0], nil
	default:
		for _, v := range vals {
			if _, ok := v.(*ForSpec); ok {
				return nil, langerr.NewInternal(node.Span(), "unexpanded for-loop reached capture")
			}
		}
		return NewList(vals), nil
	}
}

// bind writes name = v the way Assign and for-loop variable binding
// both do: into the current call frame if one is open, else into the
// global scope — unless global is forced, which always targets Globals.
func (e *Evaluator) bind(target *ast.Id, v Value, global bool) {
	name := target.Path[0]
	if !global && e.Calls.Depth() > 0 {
		e.Calls.SetTop(name, v)
		return
	}
	e.Globals.Set(name, v)
}

func (e *Evaluator) bindName(name string, v Value) {
	if e.Calls.Depth() > 0 {
		e.Calls.SetTop(name, v)
		return
	}
	e.Globals.Set(name, v)
}

// resolveId looks up id's first path segment in the current call frame
// (falling back to Globals), then traverses any remaining dotted
// segments through Map values. It returns the last Map traversed as
// receiver, for the call site's self-binding decision.
func (e *Evaluator) resolveId(id *ast.Id) (value Value, receiver Value, err error) {
	name := id.Path[0]
	var v Value
	var ok bool
	if e.Calls.Depth() > 0 {
		v, ok = e.Calls.Get(name)
	}
	if !ok {
		v, ok = e.Globals.Get(name)
	}
	if !ok {
		return nil, nil, langerr.NewName(id.Sp, langerr.MsgIdentifierMissing, name)
	}
	for _, seg := range id.Path[1:] {
		m, ok := v.(*Map)
		if !ok {
			return nil, nil, langerr.NewType(id.Sp, langerr.MsgNotAMap, v.TypeName())
		}
		receiver = m
		nv, ok := m.Get(seg)
		if !ok {
			return nil, nil, langerr.NewName(id.Sp, langerr.MsgIdentifierMissing, seg)
		}
		v = nv
	}
	return v, receiver, nil
}
