package inventory

import (
	"errors"
	"fmt"
)

// ItemSnapshot is the persisted form of an Item.
type ItemSnapshot struct {
	ID       string `json:"id" yaml:"id"`
	Kind     KindID `json:"kind" yaml:"kind"`
	Amount   int    `json:"amount" yaml:"amount"`
	Equipped bool   `json:"equipped,omitempty" yaml:"equipped,omitempty"`
}

// SlotSnapshot is the persisted form of a Slot. Item is nil for an empty slot.
type SlotSnapshot struct {
	Index  int           `json:"index" yaml:"index"`
	Locked bool          `json:"locked,omitempty" yaml:"locked,omitempty"`
	Item   *ItemSnapshot `json:"item,omitempty" yaml:"item,omitempty"`
}

// Snapshot is a point-in-time copy of a Container's slots.
type Snapshot struct {
	ID           string         `json:"id" yaml:"id"`
	Capacity     int            `json:"capacity" yaml:"capacity"`
	SlotCapacity int            `json:"slot_capacity" yaml:"slot_capacity"`
	Slots        []SlotSnapshot `json:"slots" yaml:"slots"`
}

// Snapshot copies the container state.
//
// Postcondition: the result shares no memory with the container.
func (c *Container) Snapshot() Snapshot {
	snap := Snapshot{
		ID:           c.id,
		Capacity:     len(c.slots),
		SlotCapacity: c.slotCapacity,
		Slots:        make([]SlotSnapshot, len(c.slots)),
	}
	for i, s := range c.slots {
		ss := SlotSnapshot{Index: s.index, Locked: s.locked}
		if s.item != nil {
			ss.Item = &ItemSnapshot{
				ID:       s.item.id,
				Kind:     s.item.kind,
				Amount:   s.item.amount,
				Equipped: s.item.equipped,
			}
		}
		snap.Slots[i] = ss
	}
	return snap
}

// Restore rebuilds a Container from snap, resolving kinds against kinds.
// Restoring emits no notifications.
//
// Precondition: kinds non-nil.
// Postcondition: returns a Container whose Snapshot equals snap, or an error
// listing every slot that violates a container invariant.
func Restore(snap Snapshot, kinds KindProvider, opts ...Option) (*Container, error) {
	opts = append([]Option{WithID(snap.ID)}, opts...)
	c, err := NewContainer(snap.Capacity, snap.SlotCapacity, kinds, opts...)
	if err != nil {
		return nil, fmt.Errorf("restoring container %q: %w", snap.ID, err)
	}
	if len(snap.Slots) != snap.Capacity {
		return nil, fmt.Errorf("restoring container %q: %d slots for capacity %d", snap.ID, len(snap.Slots), snap.Capacity)
	}

	var errs []error
	for i, ss := range snap.Slots {
		if ss.Index != i {
			errs = append(errs, fmt.Errorf("slot %d: index %d out of order", i, ss.Index))
			continue
		}
		slot := c.slots[i]
		slot.locked = ss.Locked
		if ss.Item == nil {
			continue
		}
		if _, ok := kinds.Kind(ss.Item.Kind); !ok {
			errs = append(errs, fmt.Errorf("slot %d: unknown kind %q", i, ss.Item.Kind))
			continue
		}
		if ss.Item.Amount < 1 || ss.Item.Amount > snap.SlotCapacity {
			errs = append(errs, fmt.Errorf("slot %d: amount %d outside [1, %d]", i, ss.Item.Amount, snap.SlotCapacity))
			continue
		}
		if ss.Item.ID == "" {
			errs = append(errs, fmt.Errorf("slot %d: item ID must not be empty", i))
			continue
		}
		slot.setItem(&Item{
			id:       ss.Item.ID,
			kind:     ss.Item.Kind,
			amount:   ss.Item.Amount,
			equipped: ss.Item.Equipped,
		})
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("restoring container %q: %w", snap.ID, errors.Join(errs...))
	}
	return c, nil
}
