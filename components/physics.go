package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2

	Grounded bool
	Ground   *resolv.Object // solid stood on at the end of the last vertical pass

	TouchingWall bool
	WallNormal   int // +1 wall on the left, -1 wall on the right
}

var Physics = donburi.NewComponentType[PhysicsData]()
