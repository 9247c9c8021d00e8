// Package embed is the high-level API a Go host program uses to embed
// Lumen: parse and run source, and register host functions and
// namespaces the script can call into.
package embed

import (
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/runtime"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

// VM wraps an Evaluator and its external-function registry behind a
// small host-facing surface.
type VM struct {
	eval *runtime.Evaluator
	reg  *runtime.Registry
}

// New starts a VM with every built-in module (iterator, lumen, json,
// yaml) already registered.
func New() *VM {
	reg := stdlib.Bind()
	return &VM{eval: runtime.NewEvaluator(reg), reg: reg}
}

// Run parses and evaluates src, returning the single captured result
// value or the first error raised anywhere in the program.
func (v *VM) Run(src string) (runtime.Value, error) {
	p, err := parser.New(src)
	if err != nil {
		return nil, err
	}
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return runtime.Run(v.eval, program)
}

// RegisterFunction binds a host function at the given dotted path
// (e.g. "app.greet"), callable from script as `app.greet(...)`.
func (v *VM) RegisterFunction(path string, fn runtime.ExternalFn) {
	v.reg.Register(splitPath(path), fn)
}

// RegisterNamespace creates (or returns) a nested namespace at path,
// for hosts that want to populate several functions under one prefix.
func (v *VM) RegisterNamespace(path string) *runtime.Registry {
	return v.reg.RegisterNamespace(splitPath(path))
}

// Global reads a top-level script variable after Run completes.
func (v *VM) Global(name string) (runtime.Value, bool) {
	return v.eval.Globals.Get(name)
}

// SetGlobal seeds a top-level script variable before calling Run.
func (v *VM) SetGlobal(name string, value runtime.Value) {
	v.eval.Globals.Set(name, value)
}

// NewExternal wraps an arbitrary Go value as an opaque script-visible
// External, optionally tagged with a type name for display/type().
func NewExternal(data any, typeTag string) *runtime.External {
	return runtime.NewExternal(data, nil, typeTag)
}

func splitPath(path string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}
