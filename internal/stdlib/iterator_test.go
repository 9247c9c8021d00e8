package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
)

func rangeArg(min, max int64) runtime.Value { return runtime.Range{Min: min, Max: max} }

func TestTermAllMissingPredicateIsArityErrorNotPanic(t *testing.T) {
	_, err := termAll(nil, []runtime.Value{rangeArg(0, 5)})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.ArityError))
}

func TestTermAnyMissingPredicateIsArityErrorNotPanic(t *testing.T) {
	_, err := termAny(nil, []runtime.Value{rangeArg(0, 5)})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.ArityError))
}

func TestTermFindMissingPredicateIsArityErrorNotPanic(t *testing.T) {
	_, err := termFind(nil, []runtime.Value{rangeArg(0, 5)})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.ArityError))
}

func TestTermPositionMissingPredicateIsArityErrorNotPanic(t *testing.T) {
	_, err := termPosition(nil, []runtime.Value{rangeArg(0, 5)})
	require.Error(t, err)
	assert.True(t, langerr.As(err, langerr.ArityError))
}
