package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
)

func TestIndexIntoListWithRangeSlices(t *testing.T) {
	var span ast.Span
	list := NewList([]Value{Number(10), Number(20), Number(30), Number(40)})

	v, err := indexInto(span, list, Range{Min: 1, Max: 3})
	require.NoError(t, err)
	sliced := v.(*List)
	assert.Equal(t, []Value{Number(20), Number(30)}, sliced.Elements)
	assert.Len(t, list.Elements, 4, "slicing must not mutate the source list")
}

func TestIndexIntoListWithRangeOutOfBoundsIsRangeError(t *testing.T) {
	var span ast.Span
	list := NewList([]Value{Number(1), Number(2)})

	_, err := indexInto(span, list, Range{Min: 0, Max: 5})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.RangeError))
}

func TestIndexIntoListWithNegativeRangeIsRangeError(t *testing.T) {
	var span ast.Span
	list := NewList([]Value{Number(1), Number(2)})

	_, err := indexInto(span, list, Range{Min: -1, Max: 1})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.RangeError))
}

func TestIndexIntoListWithNumberStillWorks(t *testing.T) {
	var span ast.Span
	list := NewList([]Value{Number(1), Number(2), Number(3)})

	v, err := indexInto(span, list, Number(1))
	require.NoError(t, err)
	assert.Equal(t, Number(2), v)
}
