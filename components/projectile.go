package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BulletData is the traced path of a hitscan shot.
type BulletData struct {
	From math.Vec2
	To   math.Vec2
	Hit  bool
}

var Bullet = donburi.NewComponentType[BulletData]()

type ImpactData struct {
	Origin math.Vec2
	Radius float64
}

var Impact = donburi.NewComponentType[ImpactData]()
