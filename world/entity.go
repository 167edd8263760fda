package world

import (
	"fmt"

	"github.com/automoto/roomrunner/registry"
	"github.com/yohamta/donburi"
)

// Kind is the closed set of entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindImpact
	KindSpring
	KindBonus
	KindSpike
	KindMovingBlock
	kindCount
)

var kindNames = [kindCount]string{
	KindPlayer:      "Player",
	KindBullet:      "Bullet",
	KindImpact:      "Impact",
	KindSpring:      "Spring",
	KindBonus:       "Bonus",
	KindSpike:       "Spike",
	KindMovingBlock: "MovingBlock",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entity is a handle on one live game object. Component data lives in the
// donburi world; the handle carries the registry slots and destroy hooks.
type Entity struct {
	registry.Membership

	entry     *donburi.Entry
	kind      Kind
	destroyed bool

	preDestroy  []func(*Entity)
	postDestroy []func(*Entity)
}

func (e *Entity) Entry() *donburi.Entry { return e.entry }
func (e *Entity) Kind() Kind            { return e.kind }
func (e *Entity) Destroyed() bool       { return e.destroyed }

// OnPreDestroy runs fn before the entity leaves its registries.
func (e *Entity) OnPreDestroy(fn func(*Entity)) {
	e.preDestroy = append(e.preDestroy, fn)
}

// OnPostDestroy runs fn after the entity has left every registry, before its
// component data is released.
func (e *Entity) OnPostDestroy(fn func(*Entity)) {
	e.postDestroy = append(e.postDestroy, fn)
}

func (e *Entity) String() string {
	if e.entry == nil {
		return e.kind.String()
	}
	return fmt.Sprintf("%s#%v", e.kind, e.entry.Entity())
}
