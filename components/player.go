package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn math.Vec2

	Jumping    bool
	Ammo       bool    // single shot, refilled on landing
	Shooting   bool    // shoot held this frame
	JumpBuffer float64 // seconds left on a buffered jump press

	Deaths int
}

var Player = donburi.NewComponentType[PlayerData]()
