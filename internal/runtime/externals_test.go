package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoFn(ev *Evaluator, args []Value) (Value, error) {
	return args[0], nil
}

func TestRegistryRegisterAndLookupLeaf(t *testing.T) {
	reg := NewRegistry()
	reg.Register([]string{"lumen", "type"}, echoFn)

	fn, ok := reg.Lookup([]string{"lumen", "type"})
	require.True(t, ok)
	v, err := fn(nil, []Value{Number(5)})
	require.NoError(t, err)
	assert.Equal(t, Number(5), v)
}

func TestRegistryLookupMissingPathFails(t *testing.T) {
	reg := NewRegistry()
	reg.Register([]string{"lumen", "type"}, echoFn)

	_, ok := reg.Lookup([]string{"lumen", "version"})
	assert.False(t, ok)

	_, ok = reg.Lookup([]string{"nope"})
	assert.False(t, ok)
}

func TestRegistryLookupThroughLeafFails(t *testing.T) {
	reg := NewRegistry()
	reg.Register([]string{"lumen"}, echoFn)

	_, ok := reg.Lookup([]string{"lumen", "type"})
	assert.False(t, ok, "a path cannot continue through an already-bound leaf")
}

func TestRegistryNamespaceIsSharedAcrossRegisterCalls(t *testing.T) {
	reg := NewRegistry()
	reg.Register([]string{"iterator", "sum"}, echoFn)
	reg.Register([]string{"iterator", "count"}, echoFn)

	ns := reg.RegisterNamespace([]string{"iterator"})
	_, ok := ns.Lookup([]string{"sum"})
	assert.True(t, ok)
	_, ok = ns.Lookup([]string{"count"})
	assert.True(t, ok)
}

func TestRegistryLookupDotted(t *testing.T) {
	reg := NewRegistry()
	reg.Register([]string{"iterator", "sum"}, echoFn)

	fn, ok := reg.LookupDotted("iterator.sum")
	require.True(t, ok)
	assert.NotNil(t, fn)
}
