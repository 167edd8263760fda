package factory

import (
	"github.com/automoto/roomrunner/archetypes"
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/input"
	"github.com/automoto/roomrunner/tags"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its top-left corner at (x, y), which
// also becomes its respawn point.
func CreatePlayer(w *world.World, x, y float64, in input.State, texture any) *world.Entity {
	player := archetypes.Player.Spawn(w)
	entry := player.Entry()

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Player.SetValue(entry, components.PlayerData{
		Spawn: math.Vec2{X: x, Y: y},
		Ammo:  true,
	})
	components.Physics.SetValue(entry, components.PhysicsData{})
	components.Control.SetValue(entry, components.ControlData{State: in})
	components.Sprite.SetValue(entry, components.SpriteData{Texture: texture})

	return player
}
