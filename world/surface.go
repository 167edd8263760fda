package world

import (
	"image/color"

	"github.com/automoto/roomrunner/shared/gamemath"
)

// Surface is where entities draw themselves, in world pixels. Textures are
// whatever the surface implementation hands out; the game core only stores
// them.
type Surface interface {
	FillRect(r gamemath.Rect, c color.Color)
	StrokeRect(r gamemath.Rect, c color.Color)
	StrokeCircle(x, y, radius float64, c color.Color)
	DrawTexture(texture any, r gamemath.Rect)
}
