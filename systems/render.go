package systems

import (
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/world"
)

// DrawPlayer draws the player's sprite, or a plain box when it has none.
func DrawPlayer(_ *world.World, e *world.Entity, s world.Surface) {
	entry := e.Entry()
	r := components.Object.Get(entry).Rect()
	if tex := components.Sprite.Get(entry).Texture; tex != nil {
		s.DrawTexture(tex, r)
	} else {
		s.FillRect(r, cfg.White)
	}
	if cfg.C.Debug {
		s.StrokeRect(r, cfg.Green)
	}
}

func DrawBullet(_ *world.World, e *world.Entity, s world.Surface) {
	s.FillRect(hitbox(e), cfg.Yellow)
}

func DrawImpact(_ *world.World, e *world.Entity, s world.Surface) {
	data := components.Impact.Get(e.Entry())
	s.StrokeCircle(data.Origin.X, data.Origin.Y, data.Radius, cfg.Red)
}

func DrawBonus(_ *world.World, e *world.Entity, s world.Surface) {
	s.FillRect(hitbox(e), cfg.Blue)
}

func DrawSpike(_ *world.World, e *world.Entity, s world.Surface) {
	s.FillRect(hitbox(e), cfg.Red)
}

func DrawMovingBlock(_ *world.World, e *world.Entity, s world.Surface) {
	s.FillRect(hitbox(e), cfg.Black)
}

// DrawSpring fills the spring's solid. Debug mode outlines its three boxes.
func DrawSpring(_ *world.World, e *world.Entity, s world.Surface) {
	entry := e.Entry()
	solid := gamemath.RectOf(components.Solid.Get(entry).Object)
	s.FillRect(solid, cfg.Green)
	if !cfg.C.Debug {
		return
	}
	s.StrokeRect(solid, cfg.Green)
	s.StrokeRect(components.Spring.Get(entry).Launch, cfg.Yellow)
	s.StrokeRect(hitbox(e), cfg.Red)
}
