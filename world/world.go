// Package world owns every live entity: the donburi component store, the
// global registry that drives update and draw, typed groups, the scheduled
// callback queue, and the per-kind behaviour table.
package world

import (
	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/registry"
	"github.com/automoto/roomrunner/schedule"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Group is a typed, iteration-safe collection of entities.
type Group = registry.Registry[*Entity]

// GlobalID is the registry every spawned entity belongs to.
const GlobalID registry.ID = 0

// Behaviour is what a kind does each frame. A nil Update makes the kind
// static; a nil Draw falls back to the entity's sprite.
type Behaviour struct {
	Update func(w *World, e *Entity, dt float64)
	Draw   func(w *World, e *Entity, s Surface)
}

type World struct {
	store donburi.World
	log   *zap.Logger

	all           *Group
	groups        map[registry.ID]*Group
	nextGroup     registry.ID
	interactables *Group
	solids        *Group

	sched      *schedule.Scheduler
	behaviours [kindCount]Behaviour
}

// New creates an empty world. A nil logger discards diagnostics.
func New(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		store:  donburi.NewWorld(),
		log:    log,
		groups: make(map[registry.ID]*Group),
		sched:  schedule.New(),
	}
	w.all = registry.New[*Entity](GlobalID, "entities", log)
	w.interactables = w.NewGroup("interactables")
	w.solids = w.NewGroup("dynamic-solids")
	return w
}

func (w *World) Donburi() donburi.World { return w.store }
func (w *World) Logger() *zap.Logger    { return w.log }

// Entities is the global registry, in spawn order.
func (w *World) Entities() *Group { return w.all }

// Interactables holds entities tested against the player every frame.
func (w *World) Interactables() *Group { return w.interactables }

// DynamicSolids holds entities with a moving or resizing solid hitbox.
func (w *World) DynamicSolids() *Group { return w.solids }

// NewGroup creates a typed group. Destroy detaches entities from it.
func (w *World) NewGroup(name string) *Group {
	w.nextGroup++
	g := registry.New[*Entity](w.nextGroup, name, w.log)
	w.groups[g.ID()] = g
	return g
}

// Handle registers the behaviour of a kind, replacing any earlier one.
func (w *World) Handle(kind Kind, b Behaviour) {
	w.behaviours[kind] = b
}

// Create builds an entity of kind whose component data holds cs. The entity
// is not updated or drawn until it is spawned.
func (w *World) Create(kind Kind, cs ...donburi.IComponentType) *Entity {
	entry := w.store.Entry(w.store.Create(cs...))
	return &Entity{entry: entry, kind: kind}
}

// Spawn registers e into the global registry.
func (w *World) Spawn(e *Entity) {
	if e.destroyed {
		w.log.Warn("spawn of destroyed entity", zap.Stringer("entity", e))
		return
	}
	w.all.Add(e)
}

// Join adds e to a typed group.
func (w *World) Join(g *Group, e *Entity) {
	if e.destroyed {
		w.log.Warn("join of destroyed entity",
			zap.Stringer("entity", e),
			zap.String("group", g.Name()),
		)
		return
	}
	g.Add(e)
}

// Destroy removes e from every registry and releases its component data.
// Typed groups are left in the order e joined them, the global registry
// last. Destroying twice is a no-op.
func (w *World) Destroy(e *Entity) {
	if e.destroyed {
		return
	}
	e.destroyed = true

	for _, fn := range e.preDestroy {
		fn(e)
	}

	for _, id := range e.Registries() {
		if id == GlobalID {
			continue
		}
		if g, ok := w.groups[id]; ok {
			g.Remove(e)
		}
	}
	if _, ok := e.Slot(GlobalID); ok {
		w.all.Remove(e)
	}

	for _, fn := range e.postDestroy {
		fn(e)
	}

	w.release(e)
}

func (w *World) release(e *Entity) {
	entry := e.entry
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	if entry.HasComponent(components.Solid) {
		if obj := components.Solid.Get(entry).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	w.store.Remove(entry.Entity())
}

// UpdateAll runs one frame of every spawned entity. Entities destroyed or
// spawned by an update are observed by the rest of the same pass.
func (w *World) UpdateAll(dt float64) {
	w.all.Iterate(func(e *Entity) {
		if e.destroyed {
			return
		}
		if update := w.behaviours[e.kind].Update; update != nil {
			update(w, e, dt)
		}
	})
}

// DrawAll draws every spawned entity in spawn order.
func (w *World) DrawAll(s Surface) {
	w.all.Each(func(e *Entity) {
		if draw := w.behaviours[e.kind].Draw; draw != nil {
			draw(w, e, s)
			return
		}
		drawSprite(e, s)
	})
}

func drawSprite(e *Entity, s Surface) {
	entry := e.entry
	if !entry.HasComponent(components.Sprite) || !entry.HasComponent(components.Object) {
		return
	}
	tex := components.Sprite.Get(entry).Texture
	if tex == nil {
		return
	}
	s.DrawTexture(tex, components.Object.Get(entry).Rect())
}

// DestroyAll destroys entities from the head of the global registry until it
// is empty.
func (w *World) DestroyAll() {
	DestroyGroup(w, w.all)
}

// DestroyGroup destroys every member of g, first member first. A head that
// survives its own destruction is forced out so the loop always ends.
func DestroyGroup(w *World, g *Group) {
	for g.Len() > 0 {
		head := g.At(0)
		w.Destroy(head)
		if g.Len() > 0 && g.At(0) == head {
			w.log.Error("destroy left entity in place",
				zap.Stringer("entity", head),
				zap.String("group", g.Name()),
			)
			if !g.Remove(head) {
				return
			}
		}
	}
}

// Tick advances the scheduler by dt and fires every due callback.
func (w *World) Tick(dt float64) { w.sched.Tick(dt) }

// After fires fn once seconds of frame time have passed.
func (w *World) After(seconds float64, fn func()) schedule.Handle {
	return w.sched.After(seconds, fn)
}

func (w *World) Scheduler() *schedule.Scheduler { return w.sched }
