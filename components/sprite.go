package components

import "github.com/yohamta/donburi"

// SpriteData holds a texture handle. The game core never looks inside it;
// only the draw surface knows what it is.
type SpriteData struct {
	Texture any
}

var Sprite = donburi.NewComponentType[SpriteData]()
