package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/runtime"
)

func TestFromGoScalars(t *testing.T) {
	v, err := fromGo(nil)
	require.NoError(t, err)
	assert.Equal(t, runtime.Empty{}, v)

	v, err = fromGo(true)
	require.NoError(t, err)
	assert.Equal(t, runtime.Bool(true), v)

	v, err = fromGo(3.5)
	require.NoError(t, err)
	assert.Equal(t, runtime.Number(3.5), v)

	v, err = fromGo("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", v.(*runtime.Str).Value)
}

func TestFromGoNestedStructures(t *testing.T) {
	v, err := fromGo(map[string]any{"b": 2.0, "a": 1.0})
	require.NoError(t, err)
	m := v.(*runtime.Map)
	assert.Equal(t, []string{"a", "b"}, m.Keys(), "keys must be deterministically ordered")

	v, err = fromGo([]any{1.0, "x", nil})
	require.NoError(t, err)
	list := v.(*runtime.List)
	assert.Equal(t, runtime.Number(1), list.Elements[0])
	assert.Equal(t, "x", list.Elements[1].(*runtime.Str).Value)
	assert.Equal(t, runtime.Empty{}, list.Elements[2])
}

func TestToGoRoundTrip(t *testing.T) {
	m := runtime.NewMap()
	m.Set("x", runtime.Number(1))
	m.Set("y", runtime.NewList([]runtime.Value{runtime.Bool(true), runtime.Empty{}}))

	g, err := toGo(m)
	require.NoError(t, err)
	back, err := fromGo(g)
	require.NoError(t, err)
	assert.True(t, runtime.Equal(m, back))
}

func TestToGoRejectsUnserializableValues(t *testing.T) {
	_, err := toGo(&runtime.Function{})
	require.Error(t, err)
}
