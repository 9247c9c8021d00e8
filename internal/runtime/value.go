// Package runtime implements the tree-walking evaluator core: the value
// model, the return stack, the call stack, the global scope, the
// external-function registry, and the expression evaluator itself.
package runtime

import (
	"github.com/google/uuid"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/config"
)

// Kind tags every value variant in the closed universe of dynamic types.
// Every operator and builtin switches on Kind (directly, or indirectly
// through a Go type switch over the concrete types below, which is a
// closed set matching this enumeration one for one).
type Kind string

const (
	KindEmpty    Kind = "Empty"
	KindBool     Kind = "Bool"
	KindNumber   Kind = "Number"
	KindVec4     Kind = "Vec4"
	KindStr      Kind = "Str"
	KindList     Kind = "List"
	KindRange    Kind = "Range"
	KindMap      Kind = "Map"
	KindFunction Kind = "Function"
	KindExternal Kind = "External"
	KindFor      Kind = "For"
	KindIterator Kind = "Iterator"
)

// Value is implemented by every runtime value. TypeName is the script-
// visible name; it is always equal to string(Kind()) for core kinds, but
// External values may report a host-chosen TypeName while still tagging
// Kind() as KindExternal.
type Value interface {
	Kind() Kind
	TypeName() string
}

// Empty is the unit/absence marker produced by statements without a result.
type Empty struct{}

func (Empty) Kind() Kind        { return KindEmpty }
func (Empty) TypeName() string  { return string(KindEmpty) }

// Bool is a two-state truth value.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (Bool) TypeName() string { return string(KindBool) }

// Number is a double-precision float; integral values are a
// representational subset, used for ranges, indices, and loop
// counters.
type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (Number) TypeName() string { return string(KindNumber) }

// Int truncates toward zero, for contexts that require an integer
// (indexing, range bounds).
func (n Number) Int() int64 { return int64(n) }

// Vec4 is a fixed 4-lane numeric vector with componentwise arithmetic.
type Vec4 struct{ X, Y, Z, W float64 }

func (Vec4) Kind() Kind       { return KindVec4 }
func (Vec4) TypeName() string { return string(KindVec4) }

// Str is immutable text, shared by reference; equality is structural.
type Str struct{ Value string }

func NewStr(s string) *Str { return &Str{Value: s} }

func (*Str) Kind() Kind       { return KindStr }
func (*Str) TypeName() string { return string(KindStr) }

// List is an ordered, reference-shared sequence. The core never mutates
// a shared list in place; operators that appear to mutate (binary `+`)
// allocate a fresh List.
type List struct{ Elements []Value }

func NewList(elems []Value) *List { return &List{Elements: elems} }

func (*List) Kind() Kind       { return KindList }
func (*List) TypeName() string { return string(KindList) }

// Range is a half-open integer interval [Min, Max). Inclusive syntactic
// ranges are normalized to Max+1 by the parser/evaluator at construction,
// never stored as a separate flag.
type Range struct{ Min, Max int64 }

func (Range) Kind() Kind       { return KindRange }
func (Range) TypeName() string { return string(KindRange) }

// Len is the number of integers the range covers.
func (r Range) Len() int64 {
	if r.Max <= r.Min {
		return 0
	}
	return r.Max - r.Min
}

// Map is an unordered (insertion-ordered for display purposes) mapping
// from interned string keys to values, shared by reference.
type Map struct {
	keys       []string
	values     map[string]Value
	instanceID string
}

func NewMap() *Map { return &Map{values: make(map[string]Value)} }

func (*Map) Kind() Kind       { return KindMap }
func (*Map) TypeName() string { return string(KindMap) }

// Set inserts or replaces key, preserving first-insertion order for
// existing keys and appending new keys at the end.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get looks up key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the insertion-ordered key list. The caller must not mutate it.
func (m *Map) Keys() []string { return m.keys }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Clone makes a shallow copy with its own key/value storage (used by
// binary `+` on two maps, which never mutates either operand). The
// clone gets its own identity: object_id() must distinguish it from
// the map it was cloned from.
func (m *Map) Clone() *Map {
	out := NewMap()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}

// ObjectID reports a stable per-instance identifier, minted on first
// use so every Map pays the allocation only if a script actually asks
// for it.
func (m *Map) ObjectID() string {
	if m.instanceID == "" {
		m.instanceID = uuid.NewString()
	}
	return m.instanceID
}

// Function is a user-defined callable: ordered argument names (the first
// may be the literal name "self") and an owned AST body. Identity-shared.
type Function struct {
	Params []string
	Body   ast.Node
}

func (*Function) Kind() Kind       { return KindFunction }
func (*Function) TypeName() string { return string(KindFunction) }

// HasSelfParam reports whether Params[0] is the reserved self name.
func (f *Function) HasSelfParam() bool {
	return len(f.Params) > 0 && f.Params[0] == config.SelfArgName
}

// External is an opaque host value: a data payload plus a shared
// meta-map describing its operations. Identity-shared.
type External struct {
	Data       any
	Meta       *Map
	TypeTag    string
	Borrowed   bool
	instanceID string
}

// NewExternal wraps data as a script-visible External, stamping it with
// a fresh instance id that lumen.object_id() can read back later.
func NewExternal(data any, meta *Map, typeTag string) *External {
	if meta == nil {
		meta = NewMap()
	}
	return &External{Data: data, Meta: meta, TypeTag: typeTag, instanceID: uuid.NewString()}
}

func (*External) Kind() Kind { return KindExternal }
func (e *External) TypeName() string {
	if e.TypeTag != "" {
		return e.TypeTag
	}
	return string(KindExternal)
}

// ObjectID reports the stamped instance id, minting one lazily for
// Externals built directly as a struct literal rather than through
// NewExternal.
func (e *External) ObjectID() string {
	if e.instanceID == "" {
		e.instanceID = uuid.NewString()
	}
	return e.instanceID
}

// ForSpec is a deferred loop specification, created but not executed by
// Eval; the surrounding context executes it by calling collectFor.
type ForSpec struct {
	Args      []string
	Ranges    []ast.Node
	Condition ast.Node
	Body      ast.Node
}

func (*ForSpec) Kind() Kind       { return KindFor }
func (*ForSpec) TypeName() string { return string(KindFor) }

// IsIterable reports whether v can be turned into an Iterator by MakeIterator.
func IsIterable(v Value) bool {
	switch vv := v.(type) {
	case *List, Range, Iterator:
		return true
	case *External:
		_, ok := vv.Meta.Get("iter")
		return ok
	default:
		return false
	}
}

// IsSequence reports whether v is a List. Str and Vec4 also accept a
// numeric index in indexInto but are not reported here.
func IsSequence(v Value) bool {
	_, ok := v.(*List)
	return ok
}

// IsCallable reports whether v can appear as a Call target resolved
// through the scope (external callables are resolved through the
// registry, not as values, so they are not covered here).
func IsCallable(v Value) bool {
	_, ok := v.(*Function)
	return ok
}
