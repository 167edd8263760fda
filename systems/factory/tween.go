package factory

import (
	cfg "github.com/automoto/roomrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewBlockTween is one leg of a moving block's trip.
func NewBlockTween(from, to float64) *gween.Tween {
	return gween.New(float32(from), float32(to), float32(cfg.MovingBlock.Duration), ease.Linear)
}
