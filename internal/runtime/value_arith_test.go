package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

func TestApplyBinaryArithmetic(t *testing.T) {
	var span ast.Span

	t.Run("number add", func(t *testing.T) {
		v, err := ApplyBinary(span, "+", Number(2), Number(3))
		require.NoError(t, err)
		assert.Equal(t, Number(5), v)
	})

	t.Run("vector plus scalar broadcasts", func(t *testing.T) {
		v, err := ApplyBinary(span, "+", Vec4{1, 2, 3, 4}, Number(1))
		require.NoError(t, err)
		assert.Equal(t, Vec4{2, 3, 4, 5}, v)
	})

	t.Run("list concatenation allocates a fresh list", func(t *testing.T) {
		a := NewList([]Value{Number(1)})
		b := NewList([]Value{Number(2)})
		v, err := ApplyBinary(span, "+", a, b)
		require.NoError(t, err)
		sum := v.(*List)
		assert.Equal(t, []Value{Number(1), Number(2)}, sum.Elements)
		assert.Len(t, a.Elements, 1, "operands must not be mutated")
	})

	t.Run("map plus map is right biased", func(t *testing.T) {
		a := NewMap()
		a.Set("x", Number(1))
		b := NewMap()
		b.Set("x", Number(2))
		b.Set("y", Number(3))
		v, err := ApplyBinary(span, "+", a, b)
		require.NoError(t, err)
		merged := v.(*Map)
		x, _ := merged.Get("x")
		y, _ := merged.Get("y")
		assert.Equal(t, Number(2), x)
		assert.Equal(t, Number(3), y)
	})

	t.Run("division by zero is a runtime error", func(t *testing.T) {
		_, err := ApplyBinary(span, "/", Number(1), Number(0))
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.RuntimeError))
	})

	t.Run("mismatched kinds are a type error", func(t *testing.T) {
		_, err := ApplyBinary(span, "+", Number(1), NewStr("x"))
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.TypeError))
	})

	t.Run("and/or require both operands to be Bool", func(t *testing.T) {
		v, err := ApplyBinary(span, "and", Bool(true), Bool(false))
		require.NoError(t, err)
		assert.Equal(t, Bool(false), v)

		_, err = ApplyBinary(span, "and", Bool(true), Number(1))
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.TypeError))
	})

	t.Run("vector division by zero in a non-X lane is reported, not panicked", func(t *testing.T) {
		_, err := ApplyBinary(span, "/", Vec4{1, 2, 3, 4}, Vec4{1, 0, 1, 1})
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.RuntimeError))
	})

	t.Run("vector modulo by zero in the Z lane is reported, not panicked", func(t *testing.T) {
		_, err := ApplyBinary(span, "%", Vec4{1, 2, 3, 4}, Vec4{1, 1, 0, 1})
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.RuntimeError))
	})

	t.Run("vector division by zero in the W lane is reported, not panicked", func(t *testing.T) {
		_, err := ApplyBinary(span, "/", Vec4{1, 2, 3, 4}, Vec4{1, 1, 1, 0})
		require.Error(t, err)
		assert.True(t, langerr.As(err, langerr.RuntimeError))
	})
}

func TestApplyBinaryComparison(t *testing.T) {
	var span ast.Span

	cases := []struct {
		op   string
		a, b Value
		want bool
	}{
		{"<", Number(1), Number(2), true},
		{"<=", Number(2), Number(2), true},
		{">", Number(3), Number(2), true},
		{">=", Number(2), Number(3), false},
		{"==", NewStr("ab"), NewStr("ab"), true},
		{"!=", NewStr("ab"), NewStr("cd"), true},
	}
	for _, c := range cases {
		v, err := ApplyBinary(span, c.op, c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, Bool(c.want), v, "%s %v %v", c.op, c.a, c.b)
	}
}

func TestLessRejectsIncomparableKinds(t *testing.T) {
	var span ast.Span
	_, err := Less(span, NewList(nil), NewList(nil))
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.TypeError))
}
