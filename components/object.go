package components

import (
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hitbox. Its Data field points back at the
// owning *world.Entity.
type ObjectData struct {
	*resolv.Object
}

func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.RectOf(o.Object)
}

var Object = donburi.NewComponentType[ObjectData]()
