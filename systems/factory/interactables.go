package factory

import (
	"github.com/automoto/roomrunner/archetypes"
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

const tile = leveldata.TileUnit

// CreateBonus spawns an ammo pickup centred in the tile at (x, y).
func CreateBonus(w *world.World, x, y float64) *world.Entity {
	bonus := archetypes.Bonus.Spawn(w)

	size := cfg.Bonus.Size
	obj := resolv.NewObject(x+(tile-size)/2, y+(tile-size)/2, size, size)
	obj.Data = bonus
	components.Object.SetValue(bonus.Entry(), components.ObjectData{Object: obj})

	return bonus
}

// CreateSpike spawns a hazard strip on the floor of the tile at (x, y).
func CreateSpike(w *world.World, x, y float64) *world.Entity {
	spike := archetypes.Spike.Spawn(w)

	h := cfg.Spike.Height
	obj := resolv.NewObject(x, y+tile-h, tile, h)
	obj.Data = spike
	components.Object.SetValue(spike.Entry(), components.ObjectData{Object: obj})

	return spike
}

// CreateSpring spawns a spring standing on the floor of the tile at (x, y).
// It sticks half a tile out of its tile until something presses it down.
func CreateSpring(w *world.World, x, y float64) *world.Entity {
	spring := archetypes.Spring.Spawn(w)
	entry := spring.Entry()

	floor := y + tile
	solid := resolv.NewObject(x, floor-cfg.Spring.Height, tile, cfg.Spring.Height)
	solid.Data = spring
	activate := resolv.NewObject(x+1, floor-cfg.Spring.Height-SpringStripHeight, tile-2, SpringStripHeight)
	activate.Data = spring

	components.Object.SetValue(entry, components.ObjectData{Object: activate})
	components.Solid.SetValue(entry, components.SolidData{Object: solid})
	components.Spring.SetValue(entry, components.SpringData{
		Tile:   math.Vec2{X: x, Y: y},
		Launch: gamemath.Rect{
			X: x,
			Y: floor - cfg.Spring.CompressedHeight - 1,
			W: tile,
			H: 1,
		},
	})

	return spring
}

// SpringStripHeight is the height of the activation strip above a spring.
const SpringStripHeight = 2

// CreateMovingBlock spawns a block that shuttles right from the tile at
// (x, y) and back.
func CreateMovingBlock(w *world.World, x, y float64) *world.Entity {
	block := archetypes.MovingBlock.Spawn(w)
	entry := block.Entry()

	obj := resolv.NewObject(x, y, cfg.MovingBlock.Width, cfg.MovingBlock.Height)
	obj.Data = block
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Solid.SetValue(entry, components.SolidData{Object: obj})

	data := components.MovingBlockData{
		From:    x,
		To:      x + cfg.MovingBlock.Travel,
		Forward: true,
	}
	data.Tween = NewBlockTween(data.From, data.To)
	components.MovingBlock.SetValue(entry, data)

	return block
}
