package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingBlockData drives a block back and forth between two x positions.
type MovingBlockData struct {
	Tween   *gween.Tween
	From    float64
	To      float64
	Forward bool
}

var MovingBlock = donburi.NewComponentType[MovingBlockData]()
