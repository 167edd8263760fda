package archetypes

import (
	"slices"

	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/tags"
	"github.com/automoto/roomrunner/world"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(world.KindPlayer,
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Control,
		components.Sprite,
	)
	Bullet = newArchetype(world.KindBullet,
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	Impact = newArchetype(world.KindImpact,
		tags.Impact,
		tags.Interactable,
		components.Impact,
		components.Object,
	)
	Spring = newArchetype(world.KindSpring,
		tags.Spring,
		tags.Interactable,
		components.Spring,
		components.Object,
		components.Solid,
	)
	Bonus = newArchetype(world.KindBonus,
		tags.Bonus,
		tags.Interactable,
		components.Object,
	)
	Spike = newArchetype(world.KindSpike,
		tags.Spike,
		tags.Interactable,
		components.Object,
	)
	MovingBlock = newArchetype(world.KindMovingBlock,
		tags.MovingBlock,
		components.MovingBlock,
		components.Object,
		components.Solid,
	)
)

type archetype struct {
	kind       world.Kind
	components []donburi.IComponentType
}

func newArchetype(kind world.Kind, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		kind:       kind,
		components: cs,
	}
}

func (a *archetype) Kind() world.Kind { return a.kind }

// Spawn creates the entity and registers it with the world. Interactables
// also join the interactable registry.
func (a *archetype) Spawn(w *world.World, cs ...donburi.IComponentType) *world.Entity {
	e := w.Create(a.kind, slices.Concat(a.components, cs)...)
	w.Spawn(e)
	if e.Entry().HasComponent(tags.Interactable) {
		w.Join(w.Interactables(), e)
	}
	return e
}
