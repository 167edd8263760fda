package gamemath

import "github.com/solarlune/resolv"

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// RectOf returns the bounds of a resolv object.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports a strict overlap: boxes that only share an edge do not
// intersect, so a body resting on a floor is not inside it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point lies inside r. The left and top edges
// are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Sweep returns the box covering r before and after moving by (dx, dy).
func (r Rect) Sweep(dx, dy float64) Rect {
	if dx < 0 {
		r.X += dx
		r.W -= dx
	} else {
		r.W += dx
	}
	if dy < 0 {
		r.Y += dy
		r.H -= dy
	} else {
		r.H += dy
	}
	return r
}

// Grow expands r by n on every side.
func (r Rect) Grow(n float64) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}
