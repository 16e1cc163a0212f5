package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 64, 64)

	assert.True(t, a.Intersects(NewRect(32, 32, 64, 64)))
	assert.True(t, a.Intersects(NewRect(-32, -32, 64, 64)))
	assert.True(t, a.Intersects(a), "a box intersects itself")

	// Sharing an edge is not an intersection.
	assert.False(t, a.Intersects(NewRect(64, 0, 64, 64)))
	assert.False(t, a.Intersects(NewRect(0, 64, 64, 64)))
	assert.False(t, a.Intersects(NewRect(128, 0, 64, 64)))
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Vec2{X: 25, Y: 40}, r.Center())
}

func TestRectTranslated(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	moved := r.Translated(Vec2{X: 5, Y: -5})

	assert.Equal(t, NewRect(15, 15, 30, 40), moved)
	assert.Equal(t, NewRect(10, 20, 30, 40), r, "original is unchanged")
}
