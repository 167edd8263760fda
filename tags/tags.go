package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Bullet       = donburi.NewTag().SetName("Bullet")
	Impact       = donburi.NewTag().SetName("Impact")
	Spring       = donburi.NewTag().SetName("Spring")
	Bonus        = donburi.NewTag().SetName("Bonus")
	Spike        = donburi.NewTag().SetName("Spike")
	MovingBlock  = donburi.NewTag().SetName("MovingBlock")
	Interactable = donburi.NewTag().SetName("Interactable")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvSemiSolid = "semisolid"
	ResolvPlayer    = "Player"
)
