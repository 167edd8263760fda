// Package registry provides an ordered collection that stays consistent while
// it is being iterated and mutated at the same time.
//
// Every member records its own slot, so removal is O(1) to locate and O(n) to
// close the gap. Removing a member during Iterate never skips or repeats
// another member: each active pass keeps a cursor that is pulled back when a
// member at or before it disappears.
package registry

import (
	"go.uber.org/zap"
)

// Registry holds members in insertion order. Remove shifts later members
// down, so order is kept and every member's slot is rewritten to match.
type Registry[T Member] struct {
	id      ID
	name    string
	items   []T
	cursors []int
	log     *zap.Logger
}

// New creates an empty registry. A nil logger discards diagnostics.
func New[T Member](id ID, name string, log *zap.Logger) *Registry[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry[T]{
		id:   id,
		name: name,
		log:  log.With(zap.String("registry", name)),
	}
}

func (r *Registry[T]) ID() ID       { return r.id }
func (r *Registry[T]) Name() string { return r.name }
func (r *Registry[T]) Len() int     { return len(r.items) }

// At returns the member at position i.
func (r *Registry[T]) At(i int) T { return r.items[i] }

// Contains reports whether item's recorded slot points back at item.
func (r *Registry[T]) Contains(item T) bool {
	slot, ok := item.Slot(r.id)
	return ok && slot >= 0 && slot < len(r.items) && r.items[slot] == item
}

// Add appends item and records its slot.
func (r *Registry[T]) Add(item T) {
	if r.Contains(item) {
		r.log.Warn("add of item already present", zap.Int("len", len(r.items)))
		return
	}
	item.SetSlot(r.id, len(r.items))
	r.items = append(r.items, item)
}

// Remove takes item out of the registry and closes the gap. An item that is
// absent, or whose recorded slot is stale, is logged and left alone; this
// happens legitimately when destruction races across groups.
func (r *Registry[T]) Remove(item T) bool {
	slot, ok := item.Slot(r.id)
	if !ok {
		r.log.Warn("remove of item not in registry", zap.Int("len", len(r.items)))
		return false
	}
	if slot < 0 || slot >= len(r.items) || r.items[slot] != item {
		r.log.Warn("remove with stale slot",
			zap.Int("slot", slot),
			zap.Int("len", len(r.items)),
		)
		item.ClearSlot(r.id)
		return false
	}

	for i := range r.cursors {
		if slot <= r.cursors[i] {
			r.cursors[i]--
		}
	}

	copy(r.items[slot:], r.items[slot+1:])
	var zero T
	r.items[len(r.items)-1] = zero
	r.items = r.items[:len(r.items)-1]

	for i := slot; i < len(r.items); i++ {
		r.items[i].SetSlot(r.id, i)
	}
	item.ClearSlot(r.id)
	return true
}

// Iterate visits every member exactly once, in order, while tolerating
// removals and additions made by fn. Members added during the pass are
// visited in the same pass.
func (r *Registry[T]) Iterate(fn func(T)) {
	r.cursors = append(r.cursors, 0)
	depth := len(r.cursors) - 1
	defer func() { r.cursors = r.cursors[:depth] }()

	for r.cursors[depth] < len(r.items) {
		fn(r.items[r.cursors[depth]])
		r.cursors[depth]++
	}
}

// Each is a plain traversal for read-only passes such as drawing. fn must not
// add or remove members.
func (r *Registry[T]) Each(fn func(T)) {
	for _, item := range r.items {
		fn(item)
	}
}

// Clear drops every member without any other side effect.
func (r *Registry[T]) Clear() {
	for _, item := range r.items {
		item.ClearSlot(r.id)
	}
	clear(r.items)
	r.items = r.items[:0]
	for i := range r.cursors {
		r.cursors[i] = -1
	}
}
