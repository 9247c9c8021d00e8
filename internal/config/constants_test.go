package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSourceExt(t *testing.T) {
	assert.True(t, HasSourceExt("main.lum"))
	assert.True(t, HasSourceExt("main.lumen"))
	assert.False(t, HasSourceExt("main.go"))
}

func TestTrimSourceExt(t *testing.T) {
	assert.Equal(t, "main", TrimSourceExt("main.lum"))
	assert.Equal(t, "main", TrimSourceExt("main.lumen"))
	assert.Equal(t, "main.go", TrimSourceExt("main.go"))
}
