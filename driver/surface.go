package driver

import (
	"image/color"

	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws world-space shapes onto a screen image, shifted so that the
// camera position lands on the top-left corner.
type Surface struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	op     ebiten.DrawImageOptions
}

func NewSurface(screen *ebiten.Image, camX, camY float64) *Surface {
	return &Surface{screen: screen, camX: camX, camY: camY}
}

func (s *Surface) FillRect(r gamemath.Rect, c color.Color) {
	vector.FillRect(s.screen, float32(r.X-s.camX), float32(r.Y-s.camY), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) StrokeRect(r gamemath.Rect, c color.Color) {
	vector.StrokeRect(s.screen, float32(r.X-s.camX), float32(r.Y-s.camY), float32(r.W), float32(r.H), 1, c, false)
}

func (s *Surface) StrokeCircle(x, y, radius float64, c color.Color) {
	vector.StrokeCircle(s.screen, float32(x-s.camX), float32(y-s.camY), float32(radius), 1, c, true)
}

// DrawTexture stretches an *ebiten.Image over r. Other texture types are
// ignored.
func (s *Surface) DrawTexture(texture any, r gamemath.Rect) {
	img, ok := texture.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	s.op.GeoM.Translate(r.X-s.camX, r.Y-s.camY)
	s.screen.DrawImage(img, &s.op)
}
