package inventory

import "github.com/google/uuid"

// Item is a mutable stack of a single kind. Once placed, an Item is owned by
// exactly one Slot.
type Item struct {
	id       string
	kind     KindID
	amount   int
	equipped bool
}

// NewItem creates an Item of the given kind carrying amount units.
//
// Precondition: kind is non-empty.
// Postcondition: the returned Item has a fresh ID and is not equipped.
func NewItem(kind KindID, amount int) *Item {
	return &Item{
		id:     uuid.New().String(),
		kind:   kind,
		amount: amount,
	}
}

// Clone returns an independent Item with the same kind and flags and the
// given amount.
//
// Postcondition: the clone has a new ID and shares no state with it.
func (it *Item) Clone(amount int) *Item {
	return &Item{
		id:       uuid.New().String(),
		kind:     it.kind,
		amount:   amount,
		equipped: it.equipped,
	}
}

// ID returns the stack's unique identifier.
func (it *Item) ID() string {
	return it.id
}

// Kind returns the stack's kind.
func (it *Item) Kind() KindID {
	return it.kind
}

// Amount returns the number of units in the stack.
func (it *Item) Amount() int {
	return it.amount
}

// Equipped reports whether the stack is flagged as equipped.
func (it *Item) Equipped() bool {
	return it.equipped
}

// SetEquipped sets the equipped flag on an item not yet placed. Items held by
// a container are flagged through Container.SetEquipped.
func (it *Item) SetEquipped(equipped bool) {
	it.equipped = equipped
}
