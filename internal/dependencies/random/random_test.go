package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
	assert.Equal(t, a.String(12, IDAlphabet), b.String(12, IDAlphabet))
}

func TestIntnBounds(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for i := 0; i < 100; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestStringUsesAlphabet(t *testing.T) {
	r := NewSeeded(1)
	s := r.String(32, "ab")
	assert.Len(t, s, 32)
	for _, ch := range s {
		assert.Contains(t, "ab", string(ch))
	}
	assert.Empty(t, r.String(0, "ab"))
	assert.Empty(t, r.String(4, ""))
}
