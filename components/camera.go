package components

import "github.com/yohamta/donburi/features/math"

// CameraData positions the viewport's top-left corner in world pixels. The
// scene owns a single value; rooms snap it to their origin.
type CameraData struct {
	Position math.Vec2
}
