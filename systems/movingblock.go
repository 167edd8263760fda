package systems

import (
	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/systems/factory"
	"github.com/automoto/roomrunner/world"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovingBlock advances the block along its current leg and turns it
// around at either end. The distance moved is left in the solid's Delta for
// whatever stands on it.
func UpdateMovingBlock(_ *world.World, e *world.Entity, dt float64) {
	entry := e.Entry()
	block := components.MovingBlock.Get(entry)
	solid := components.Solid.Get(entry)
	obj := solid.Object

	prevX := obj.X
	x, done := block.Tween.Update(float32(dt))
	obj.X = float64(x)
	obj.Update()

	if done {
		block.Forward = !block.Forward
		from, to := block.From, block.To
		if !block.Forward {
			from, to = to, from
		}
		block.Tween = factory.NewBlockTween(from, to)
	}

	solid.Delta = math.Vec2{X: obj.X - prevX}
}
