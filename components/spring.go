package components

import (
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpringData tracks a spring's compression. The entity hitbox is the
// activation strip on top of the spring.
type SpringData struct {
	Tile          math.Vec2 // top-left of the spring's tile
	Launch        gamemath.Rect
	Compressed    bool
	Ready         bool
	TouchedLaunch bool
}

var Spring = donburi.NewComponentType[SpringData]()
