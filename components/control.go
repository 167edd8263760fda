package components

import (
	"github.com/automoto/roomrunner/input"
	"github.com/yohamta/donburi"
)

// ControlData binds an entity to the input polled for the current frame.
type ControlData struct {
	State input.State
}

var Control = donburi.NewComponentType[ControlData]()
