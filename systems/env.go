package systems

import (
	"github.com/automoto/roomrunner/level"
	"github.com/automoto/roomrunner/world"
	"go.uber.org/zap"
)

// Env is what behaviours need beyond the world itself.
type Env struct {
	Level *level.Level
	Log   *zap.Logger

	interactions map[world.Kind]Interaction
}

// Install registers the update and draw behaviour of every kind on w and
// returns the environment they share.
func Install(w *world.World, lvl *level.Level) *Env {
	env := &Env{
		Level: lvl,
		Log:   w.Logger(),
	}
	env.interactions = map[world.Kind]Interaction{
		world.KindBonus:  {OnTouch: env.touchBonus},
		world.KindSpike:  {OnTouch: env.touchSpike},
		world.KindSpring: {OnTouch: touchSpring, OnNotTouching: releaseSpring},
		world.KindImpact: {Touches: impactTouches, OnTouch: env.touchImpact},
	}

	w.Handle(world.KindPlayer, world.Behaviour{Update: env.UpdatePlayer, Draw: DrawPlayer})
	w.Handle(world.KindBullet, world.Behaviour{Update: UpdateBullet, Draw: DrawBullet})
	w.Handle(world.KindImpact, world.Behaviour{Draw: DrawImpact})
	w.Handle(world.KindSpring, world.Behaviour{Draw: DrawSpring})
	w.Handle(world.KindBonus, world.Behaviour{Draw: DrawBonus})
	w.Handle(world.KindSpike, world.Behaviour{Draw: DrawSpike})
	w.Handle(world.KindMovingBlock, world.Behaviour{Update: UpdateMovingBlock, Draw: DrawMovingBlock})
	return env
}
