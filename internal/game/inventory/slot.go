package inventory

// Slot is a fixed-capacity cell holding at most one Item.
// Its mutators are unexported; a Container is the only writer.
type Slot struct {
	index    int
	capacity int
	item     *Item
	locked   bool
}

func newSlot(index, capacity int) *Slot {
	return &Slot{index: index, capacity: capacity}
}

// Index returns the slot's position within its container.
func (s *Slot) Index() int {
	return s.index
}

// Capacity returns the maximum number of units the slot can hold.
func (s *Slot) Capacity() int {
	return s.capacity
}

// Locked reports whether the slot refuses new items on the add path.
func (s *Slot) Locked() bool {
	return s.locked
}

// IsEmpty reports whether the slot holds no item.
func (s *Slot) IsEmpty() bool {
	return s.item == nil
}

// IsFull reports whether the slot holds an item whose amount has reached capacity.
func (s *Slot) IsFull() bool {
	return s.item != nil && s.item.amount >= s.capacity
}

// Amount returns the held amount, or 0 when empty.
func (s *Slot) Amount() int {
	if s.item == nil {
		return 0
	}
	return s.item.amount
}

// Kind returns the held item's kind; ok is false when the slot is empty.
func (s *Slot) Kind() (KindID, bool) {
	if s.item == nil {
		return "", false
	}
	return s.item.kind, true
}

// Item returns the held item, or nil when empty.
func (s *Slot) Item() *Item {
	return s.item
}

func (s *Slot) holds(kind KindID) bool {
	return s.item != nil && s.item.kind == kind
}

// setItem installs item. Precondition: the slot is empty.
func (s *Slot) setItem(item *Item) {
	s.item = item
}

func (s *Slot) clear() {
	s.item = nil
}

// setAmount rewrites the held amount, clearing the slot at zero or below.
func (s *Slot) setAmount(n int) {
	if s.item == nil {
		return
	}
	if n <= 0 {
		s.clear()
		return
	}
	s.item.amount = n
}
