package registry

// ID identifies one registry. Members key their slot indices by it.
type ID uint32

// Member is anything that can sit in a Registry. The registry stamps the
// member's slot on Add and keeps it current as earlier members are removed.
type Member interface {
	comparable
	Slot(id ID) (int, bool)
	SetSlot(id ID, slot int)
	ClearSlot(id ID)
}

// Membership records the slot an item holds in every registry it belongs to.
// Embed it to satisfy Member.
type Membership struct {
	slots map[ID]int
	order []ID
}

func (m *Membership) Slot(id ID) (int, bool) {
	slot, ok := m.slots[id]
	return slot, ok
}

func (m *Membership) SetSlot(id ID, slot int) {
	if m.slots == nil {
		m.slots = make(map[ID]int, 2)
	}
	if _, ok := m.slots[id]; !ok {
		m.order = append(m.order, id)
	}
	m.slots[id] = slot
}

func (m *Membership) ClearSlot(id ID) {
	if _, ok := m.slots[id]; !ok {
		return
	}
	delete(m.slots, id)
	for i, joined := range m.order {
		if joined == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Registries returns the registries this item belongs to, in the order it
// joined them.
func (m *Membership) Registries() []ID {
	out := make([]ID, len(m.order))
	copy(out, m.order)
	return out
}
