// Package input describes the per-frame input oracle the game reads. It is
// polled once per frame by a driver and never touches a device itself.
package input

// Action represents a logical game action
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionJump:      "Jump",
	ActionShoot:     "Shoot",
}

func (a Action) String() string {
	if a >= 0 && a < ActionCount {
		return actionNames[a]
	}
	return "Action(?)"
}

// State answers input queries for the current frame. The cursor is in world
// pixels.
type State interface {
	Down(a Action) bool
	Pressed(a Action) bool
	Cursor() (float64, float64)
}

// Snapshot stores the current and previous frame's held state for all
// actions. Pressed is computed on demand by comparing frames.
type Snapshot struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	CursorX  float64
	CursorY  float64
}

// Advance starts a new frame: current becomes previous and is cleared.
func (s *Snapshot) Advance() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
}

// Hold marks a as held this frame.
func (s *Snapshot) Hold(a Action) {
	s.Current[a] = true
}

func (s *Snapshot) Down(a Action) bool {
	return s.Current[a]
}

// Pressed reports whether a went down this frame.
func (s *Snapshot) Pressed(a Action) bool {
	return s.Current[a] && !s.Previous[a]
}

func (s *Snapshot) Cursor() (float64, float64) {
	return s.CursorX, s.CursorY
}

// Direction folds the move actions into -1, 0 or 1.
func Direction(s State) int {
	dir := 0
	if s.Down(ActionMoveLeft) {
		dir--
	}
	if s.Down(ActionMoveRight) {
		dir++
	}
	return dir
}

// None is a State with nothing held.
var None State = &Snapshot{}
