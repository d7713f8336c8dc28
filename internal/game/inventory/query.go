package inventory

// ID returns the container identifier.
func (c *Container) ID() string {
	return c.id
}

// Capacity returns the number of slots.
func (c *Container) Capacity() int {
	return len(c.slots)
}

// SlotCapacity returns the per-slot capacity the container was built with.
func (c *Container) SlotCapacity() int {
	return c.slotCapacity
}

// IsFull reports whether every slot is full.
func (c *Container) IsFull() bool {
	for _, s := range c.slots {
		if !s.IsFull() {
			return false
		}
	}
	return true
}

// Slot returns the slot at index.
func (c *Container) Slot(index int) (*Slot, bool) {
	if index < 0 || index >= len(c.slots) {
		return nil, false
	}
	return c.slots[index], true
}

// Slots returns every slot in container order.
//
// Postcondition: the returned slice is a copy; the slots themselves are shared.
func (c *Container) Slots() []*Slot {
	out := make([]*Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// SlotsOf returns the non-empty slots holding kind, in container order.
func (c *Container) SlotsOf(kind KindID) []*Slot {
	return c.slotsOf(kind)
}

func (c *Container) slotsOf(kind KindID) []*Slot {
	var out []*Slot
	for _, s := range c.slots {
		if s.holds(kind) {
			out = append(out, s)
		}
	}
	return out
}

// Amount returns the total units of kind across all slots.
func (c *Container) Amount(kind KindID) int {
	total := 0
	for _, s := range c.slots {
		if s.holds(kind) {
			total += s.Amount()
		}
	}
	return total
}

// Item returns the item in the first slot holding kind.
//
// Postcondition: ok is false iff no slot holds kind.
func (c *Container) Item(kind KindID) (*Item, bool) {
	for _, s := range c.slots {
		if s.holds(kind) {
			return s.item, true
		}
	}
	return nil, false
}

// HasItem is Item under the name callers use for presence checks.
func (c *Container) HasItem(kind KindID) (*Item, bool) {
	return c.Item(kind)
}

// Items returns the items of every non-empty slot in container order.
func (c *Container) Items() []*Item {
	var out []*Item
	for _, s := range c.slots {
		if s.item != nil {
			out = append(out, s.item)
		}
	}
	return out
}

// ItemsOf returns the items of kind in container order.
func (c *Container) ItemsOf(kind KindID) []*Item {
	var out []*Item
	for _, s := range c.slots {
		if s.holds(kind) {
			out = append(out, s.item)
		}
	}
	return out
}

// EquippedItems returns every held item flagged as equipped.
func (c *Container) EquippedItems() []*Item {
	var out []*Item
	for _, s := range c.slots {
		if s.item != nil && s.item.equipped {
			out = append(out, s.item)
		}
	}
	return out
}

// TotalWeight returns the sum of weight*amount over all non-empty slots.
// Kinds the provider cannot resolve weigh nothing.
//
// Postcondition: result >= 0.
func (c *Container) TotalWeight() float64 {
	var total float64
	for _, s := range c.slots {
		if s.item == nil {
			continue
		}
		if def, ok := c.kinds.Kind(s.item.kind); ok {
			total += def.Weight * float64(s.item.amount)
		}
	}
	return total
}
