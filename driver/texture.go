package driver

import (
	cfg "github.com/automoto/roomrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerTexture draws the player's sprite: a white box with a dark outline.
func PlayerTexture() *ebiten.Image {
	w, h := int(cfg.Player.Width), int(cfg.Player.Height)
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.White)
	vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, cfg.Black, false)
	return img
}
