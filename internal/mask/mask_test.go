package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmap_SetAt(t *testing.T) {
	b := NewBitmap(4, 3)
	assert.Equal(t, 0, b.Count())

	b.Set(2, 1, true)
	assert.True(t, b.At(2, 1))
	assert.False(t, b.At(1, 2))
	assert.Equal(t, 1, b.Count())

	// Out-of-range reads are false, writes ignored.
	assert.False(t, b.At(-1, 0))
	assert.False(t, b.At(4, 0))
	b.Set(10, 10, true)
	assert.Equal(t, 1, b.Count())
}

func TestBitmap_Clone(t *testing.T) {
	b := NewBitmap(3, 3)
	b.Set(1, 1, true)

	c := b.Clone()
	c.Set(0, 0, true)

	assert.Equal(t, 1, b.Count(), "clone must not alias the original")
	assert.Equal(t, 2, c.Count())
	assert.True(t, c.At(1, 1))
}
