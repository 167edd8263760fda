package systems

import (
	"image/color"

	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/level"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/tags"
	"github.com/automoto/roomrunner/world"
)

// DrawDebug outlines the collision geometry of the current room when debug
// drawing is on.
func DrawDebug(w *world.World, lvl *level.Level, s world.Surface) {
	if !cfg.C.Debug {
		return
	}

	view := lvl.CurrentRoomRectangle()
	s.StrokeRect(view, cfg.Fuchsia)

	// Static objects in the space, culled to the room
	for _, obj := range lvl.Space().Objects() {
		r := gamemath.RectOf(obj)
		if !r.Intersects(view) {
			continue
		}
		var c color.Color = cfg.LightBlue
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Gray
		}
		s.StrokeRect(r, c)
	}

	w.DynamicSolids().Each(func(e *world.Entity) {
		s.StrokeRect(gamemath.RectOf(components.Solid.Get(e.Entry()).Object), cfg.Yellow)
	})
}
