package runtime

import "strings"

// ExternalFn is a host-provided callable, reached through the registry
// rather than through a Value binding: external resolution is only
// tried once an Id lookup through the scope chain fails with a
// NameError.
type ExternalFn func(ev *Evaluator, args []Value) (Value, error)

// Registry is a hierarchical namespace of external callables, keyed by
// dotted path (e.g. ["iterator", "map"]). Each segment is either a leaf
// ExternalFn or a nested *Registry.
type Registry struct {
	entries map[string]any
}

// NewRegistry starts an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register binds fn at path, creating intermediate namespaces as needed.
func (r *Registry) Register(path []string, fn ExternalFn) {
	if len(path) == 0 {
		return
	}
	if len(path) == 1 {
		r.entries[path[0]] = fn
		return
	}
	ns := r.namespace(path[0])
	ns.Register(path[1:], fn)
}

// RegisterNamespace creates (or returns the existing) nested namespace
// at path, for callers that want to populate it directly.
func (r *Registry) RegisterNamespace(path []string) *Registry {
	if len(path) == 0 {
		return r
	}
	return r.namespace(path[0]).RegisterNamespace(path[1:])
}

func (r *Registry) namespace(name string) *Registry {
	existing, ok := r.entries[name]
	if ok {
		if ns, ok := existing.(*Registry); ok {
			return ns
		}
	}
	ns := NewRegistry()
	r.entries[name] = ns
	return ns
}

// Lookup resolves a dotted path to a leaf ExternalFn.
func (r *Registry) Lookup(path []string) (ExternalFn, bool) {
	if len(path) == 0 {
		return nil, false
	}
	entry, ok := r.entries[path[0]]
	if !ok {
		return nil, false
	}
	if len(path) == 1 {
		fn, ok := entry.(ExternalFn)
		return fn, ok
	}
	ns, ok := entry.(*Registry)
	if !ok {
		return nil, false
	}
	return ns.Lookup(path[1:])
}

// LookupDotted is a convenience wrapper for callers holding a
// dot-joined path string instead of a slice.
func (r *Registry) LookupDotted(path string) (ExternalFn, bool) {
	return r.Lookup(strings.Split(path, "."))
}
