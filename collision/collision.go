// Package collision moves axis-aligned boxes against solid boxes one axis
// at a time: the vertical pass runs to completion before the horizontal pass.
package collision

import (
	"math"
	"sort"

	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Params are the vertical motion limits of a body.
type Params struct {
	Gravity   float64
	MaxFall   float64 // clamp on |vy|
	WallSlide float64 // cap on downward speed while sliding down a wall
}

// Body is a moving box and its velocity. Both are updated in place.
type Body struct {
	Obj *resolv.Object
	Vel *dmath.Vec2
}

// Contacts reports what a pass ran into.
type Contacts struct {
	Landed     bool
	Ground     *resolv.Object
	HitCeiling bool
	HitWall    bool
	WallNormal int
}

// Candidates returns the objects in space's cells around r carrying any of
// tags, or every object when no tag is given. r is grown by a pixel so that
// touching neighbours are included. The result is ordered top to bottom,
// then left to right.
func Candidates(space *resolv.Space, r gamemath.Rect, tags ...string) []*resolv.Object {
	if space == nil {
		return nil
	}
	r = r.Grow(1)
	x0, y0 := space.WorldToSpace(r.X, r.Y)
	x1, y1 := space.WorldToSpace(r.Right(), r.Bottom())

	var out []*resolv.Object
	seen := make(map[*resolv.Object]struct{})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if _, ok := seen[obj]; ok {
					continue
				}
				if len(tags) > 0 && !obj.HasTags(tags...) {
					continue
				}
				seen[obj] = struct{}{}
				out = append(out, obj)
			}
		}
	}
	SortRowMajor(out)
	return out
}

// SortRowMajor orders objects by y, then x.
func SortRowMajor(objs []*resolv.Object) {
	sort.SliceStable(objs, func(i, j int) bool {
		if objs[i].Y != objs[j].Y {
			return objs[i].Y < objs[j].Y
		}
		return objs[i].X < objs[j].X
	})
}

// ApplyGravity accelerates vel downward for dt seconds.
func ApplyGravity(vel *dmath.Vec2, p Params, dt float64, wallSliding bool) {
	vel.Y += p.Gravity * dt
	vel.Y = gamemath.ClampSpeed(vel.Y, p.MaxFall)
	if wallSliding && vel.Y > p.WallSlide {
		vel.Y = p.WallSlide
	}
}

// ResolveY moves b down by dy and pushes it out of every solid it ends up
// inside. A body moving down lands on top; otherwise it bumps its head.
// Semi-solids only stop a body whose bottom edge, before this frame's move,
// was at or above their top edge.
func ResolveY(b Body, dy float64, solids, semis []*resolv.Object, prevBottom float64) Contacts {
	var c Contacts
	obj := b.Obj
	obj.Y += dy
	falling := travel(b.Vel.Y, dy) > 0

	for _, s := range solids {
		if !gamemath.RectOf(obj).Intersects(gamemath.RectOf(s)) {
			continue
		}
		obj.Y = math.Round(obj.Y)
		if falling {
			obj.Y = s.Y - obj.H
			c.Landed = true
			c.Ground = s
		} else {
			obj.Y = s.Y + s.H
			c.HitCeiling = true
		}
		b.Vel.Y = 0
	}

	for _, s := range semis {
		if prevBottom > s.Y {
			continue
		}
		if !gamemath.RectOf(obj).Intersects(gamemath.RectOf(s)) {
			continue
		}
		obj.Y = s.Y - obj.H
		c.Landed = true
		c.Ground = s
		b.Vel.Y = 0
	}

	obj.Update()
	return c
}

// ResolveX moves b right by dx and pushes it out of every solid it ends up
// inside, against the direction of travel.
func ResolveX(b Body, dx float64, solids []*resolv.Object) Contacts {
	var c Contacts
	obj := b.Obj
	obj.X += dx
	dir := travel(b.Vel.X, dx)

	for _, s := range solids {
		if !gamemath.RectOf(obj).Intersects(gamemath.RectOf(s)) {
			continue
		}
		obj.X = math.Round(obj.X)
		if dir > 0 {
			obj.X = s.X - obj.W
		} else {
			obj.X = s.X + s.W
		}
		b.Vel.X = 0
		c.HitWall = true
		c.WallNormal = -dir
	}

	obj.Update()
	return c
}

// travel is the direction of motion along one axis. A body at rest can still
// be displaced, for example when carried by a moving solid.
func travel(v, d float64) int {
	if dir := gamemath.Sign(v); dir != 0 {
		return dir
	}
	return gamemath.Sign(d)
}

// ProbeWalls looks one pixel to each side of r. It reports whether a wall is
// adjacent and which way its normal points: +1 for a wall on the left, -1 for
// one on the right. With walls on both sides the normal points away from
// inputDir, or stays prevNormal when there is no input.
func ProbeWalls(r gamemath.Rect, solids []*resolv.Object, inputDir, prevNormal int) (bool, int) {
	left := FirstHit(r.Offset(-1, 0), solids) != nil
	right := FirstHit(r.Offset(1, 0), solids) != nil

	switch {
	case left && right:
		if inputDir != 0 {
			return true, -inputDir
		}
		return true, prevNormal
	case left:
		return true, 1
	case right:
		return true, -1
	}
	return false, 0
}

// FirstHit returns the first solid r strictly overlaps, or nil.
func FirstHit(r gamemath.Rect, solids []*resolv.Object) *resolv.Object {
	for _, s := range solids {
		if r.Intersects(gamemath.RectOf(s)) {
			return s
		}
	}
	return nil
}
