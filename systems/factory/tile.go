package factory

import (
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/automoto/roomrunner/world"
	"go.uber.org/zap"
)

// SpawnTile builds the entity a spawner tile stands for.
func SpawnTile(w *world.World, sp leveldata.Spawner) *world.Entity {
	switch sp.Tile {
	case leveldata.TileSpring:
		return CreateSpring(w, sp.Pos.X, sp.Pos.Y)
	case leveldata.TileBonus:
		return CreateBonus(w, sp.Pos.X, sp.Pos.Y)
	case leveldata.TileSpike:
		return CreateSpike(w, sp.Pos.X, sp.Pos.Y)
	case leveldata.TileMovingBlock:
		return CreateMovingBlock(w, sp.Pos.X, sp.Pos.Y)
	}
	w.Logger().Warn("no entity for spawner tile", zap.Stringer("tile", sp.Tile))
	return nil
}
