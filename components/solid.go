package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SolidData marks an entity as a dynamic solid. Object may differ from the
// entity's own hitbox; Delta is how far the solid moved during its last update.
type SolidData struct {
	Object *resolv.Object
	Delta  math.Vec2
}

var Solid = donburi.NewComponentType[SolidData]()
