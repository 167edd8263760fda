package systems

import (
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/automoto/roomrunner/world"
)

// touchBonus refills the player's shot. A bonus touched with ammo in hand
// stays where it is.
func (env *Env) touchBonus(w *world.World, bonus, player *world.Entity) {
	p := components.Player.Get(player.Entry())
	if p.Ammo {
		return
	}
	p.Ammo = true
	w.Destroy(bonus)
}

func (env *Env) touchSpike(_ *world.World, _, player *world.Entity) {
	vy := components.Physics.Get(player.Entry()).Velocity.Y
	if cfg.Death.KillsOnHazard(vy) {
		env.Kill(player)
	}
}

// touchSpring presses the spring down under the player. Jumping off a spring
// that was fully pressed adds its launch force to the jump.
func touchSpring(_ *world.World, spring, player *world.Entity) {
	entry := spring.Entry()
	s := components.Spring.Get(entry)
	strip := components.Object.Get(entry).Object
	solid := components.Solid.Get(entry).Object
	p := components.Player.Get(player.Entry())
	physics := components.Physics.Get(player.Entry())

	strip.X = s.Tile.X
	strip.W = leveldata.TileUnit
	solid.Y = s.Tile.Y
	solid.H = cfg.Spring.CompressedHeight
	s.Compressed = true

	if s.TouchedLaunch && p.Jumping && s.Ready {
		physics.Velocity.Y -= cfg.Spring.LaunchForce
	}
	if !p.Jumping {
		s.Ready = true
	}
	s.TouchedLaunch = s.Launch.Intersects(hitbox(player))
}

func releaseSpring(_ *world.World, spring, _ *world.Entity) {
	entry := spring.Entry()
	s := components.Spring.Get(entry)
	strip := components.Object.Get(entry).Object
	solid := components.Solid.Get(entry).Object

	floor := s.Tile.Y + leveldata.TileUnit
	strip.X = s.Tile.X + 1
	strip.W = leveldata.TileUnit - 2
	solid.Y = floor - cfg.Spring.Height
	solid.H = cfg.Spring.Height
	s.Compressed = false
	s.Ready = false
}
