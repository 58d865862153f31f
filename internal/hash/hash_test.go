package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256HasherIsDeterministic(t *testing.T) {
	h := NewSHA256Hasher()

	a := h.HashBytes([]byte("hello"))
	b := h.HashBytes([]byte("hello"))
	c := h.HashBytes([]byte("world"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestFakeHasherProducesDistinctDigests(t *testing.T) {
	h := NewFakeHasher()

	a := h.HashBytes([]byte("x"))
	b := h.HashBytes([]byte("x"))

	assert.NotEqual(t, a, b)
}
