package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersectsIsStrict(t *testing.T) {
	floor := Rect{X: 0, Y: 64, W: 32, H: 32}

	assert.False(t, Rect{X: 0, Y: 32, W: 32, H: 32}.Intersects(floor), "resting on top")
	assert.True(t, Rect{X: 0, Y: 32.5, W: 32, H: 32}.Intersects(floor))
	assert.False(t, Rect{X: 32, Y: 64, W: 32, H: 32}.Intersects(floor), "side by side")
	assert.True(t, Rect{X: 31.9, Y: 64, W: 32, H: 32}.Intersects(floor))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 320, H: 192}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(319.9, 191.9))
	assert.False(t, r.Contains(320, 10))
}

func TestDamp(t *testing.T) {
	assert.InDelta(t, 9.0, Damp(10, 0.9, 0.5), 1e-9)
	assert.Equal(t, 0.0, Damp(0.5, 0.9, 0.5))
	assert.Equal(t, 0.0, Damp(-0.4, 1, 0.5))
}

func TestInverseLerpClamps(t *testing.T) {
	assert.Equal(t, 0.0, InverseLerp(20, 110, 5))
	assert.Equal(t, 1.0, InverseLerp(20, 110, 200))
	assert.InDelta(t, 0.5, InverseLerp(20, 110, 65), 1e-9)
}

func TestDirection(t *testing.T) {
	x, y := Direction(0, 0, 3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Direction(1, 1, 1, 1)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestRectSweep(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 4, H: 4}
	assert.Equal(t, Rect{X: 10, Y: 10, W: 9, H: 4}, r.Sweep(5, 0))
	assert.Equal(t, Rect{X: 5, Y: 7, W: 9, H: 7}, r.Sweep(-5, -3))
	assert.Equal(t, Rect{X: 9, Y: 9, W: 6, H: 6}, r.Grow(1))
}
