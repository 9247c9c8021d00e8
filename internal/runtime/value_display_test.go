package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

func TestToString(t *testing.T) {
	var span ast.Span

	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"empty", Empty{}, "()"},
		{"bool true", Bool(true), "true"},
		{"integral number", Number(3), "3"},
		{"fractional number", Number(1.5), "1.5"},
		{"vector", Vec4{1, 2, 3, 4}, "(1, 2, 3, 4)"},
		{"string", NewStr("hi"), "hi"},
		{"range", Range{Min: 0, Max: 3}, "0..3"},
		{"list", NewList([]Value{Number(1), Number(2)}), "[1, 2]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToString(span, c.v)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestToStringMap(t *testing.T) {
	m := NewMap()
	m.Set("a", Number(1))
	m.Set("b", Number(2))
	got, err := ToString(ast.Span{}, m)
	require.NoError(t, err)
	assert.Equal(t, "{a: 1, b: 2}", got)
}

func TestToStringDetectsCycles(t *testing.T) {
	l := NewList(nil)
	l.Elements = []Value{l}
	_, err := ToString(ast.Span{}, l)
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.RuntimeError))
}
