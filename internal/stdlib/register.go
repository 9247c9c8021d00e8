// Package stdlib wires the external-callable registry every Evaluator
// uses for resolution that falls through the scope chain: the iterator
// adaptor/terminal module, the core module (type introspection, version,
// unique and per-instance ids), and the structured-data modules (json, yaml).
package stdlib

import (
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/runtime"
)

// Bind populates a fresh Registry with every module this distribution
// ships and returns it, ready to pass to runtime.NewEvaluator.
func Bind() *runtime.Registry {
	reg := runtime.NewRegistry()
	registerIterator(reg.RegisterNamespace([]string{config.IteratorModuleName}))
	registerCore(reg.RegisterNamespace([]string{config.CoreModuleName}))
	registerJSON(reg.RegisterNamespace([]string{config.JSONModuleName}))
	registerYAML(reg.RegisterNamespace([]string{config.YAMLModuleName}))
	return reg
}
