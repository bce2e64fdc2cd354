package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Zero(b)
	assert.Equal(t, make([]byte, 5), b)

	Zero(nil) // must not panic
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, ConstantTimeEqual([]byte("same"), []byte("same")))
	assert.False(t, ConstantTimeEqual([]byte("same"), []byte("diff")))
	assert.False(t, ConstantTimeEqual([]byte("short"), []byte("longer")))
	assert.True(t, ConstantTimeEqual(nil, []byte{}))
}
