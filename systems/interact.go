package systems

import (
	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/world"
)

// Interaction is how one kind of interactable reacts to the player.
type Interaction struct {
	// Touches reports contact. Nil tests for a strict overlap of the two
	// hitboxes.
	Touches       func(e, player *world.Entity) bool
	OnTouch       func(w *world.World, e, player *world.Entity)
	OnNotTouching func(w *world.World, e, player *world.Entity)
}

// Dispatch tests every interactable against the player, in the order they
// joined the group. An interactable destroyed by an earlier callback is not
// visited.
func (env *Env) Dispatch(w *world.World, player *world.Entity) {
	w.Interactables().Iterate(func(e *world.Entity) {
		if e.Destroyed() || player.Destroyed() {
			return
		}
		in, ok := env.interactions[e.Kind()]
		if !ok {
			return
		}

		touches := in.Touches
		if touches == nil {
			touches = overlaps
		}
		switch {
		case touches(e, player):
			if in.OnTouch != nil {
				in.OnTouch(w, e, player)
			}
		case in.OnNotTouching != nil:
			in.OnNotTouching(w, e, player)
		}
	})
}

func overlaps(e, player *world.Entity) bool {
	return hitbox(e).Intersects(hitbox(player))
}

func hitbox(e *world.Entity) gamemath.Rect {
	return components.Object.Get(e.Entry()).Rect()
}
