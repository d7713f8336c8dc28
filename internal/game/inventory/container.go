package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotIndex is returned when an index does not address a slot of the container.
var ErrSlotIndex = errors.New("inventory: slot index out of range")

// ErrEmptySlot is returned when an operation needs an item but the slot is empty.
var ErrEmptySlot = errors.New("inventory: slot is empty")

// Option configures Container construction.
type Option func(*Container)

// WithID sets the container identifier. By default a random UUID is used.
func WithID(id string) Option {
	return func(c *Container) {
		c.id = id
	}
}

// WithLogger attaches a logger for debug tracing of slot mutations.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLockedSlots marks the given slot indices as locked at construction.
func WithLockedSlots(indices ...int) Option {
	return func(c *Container) {
		c.initialLocks = append(c.initialLocks, indices...)
	}
}

// WithListener subscribes ln before the container is returned.
func WithListener(ln Listener) Option {
	return func(c *Container) {
		if ln != nil {
			c.listeners.add(ln)
		}
	}
}

// Container is an ordered, fixed-size set of slots. Slot order never changes
// and decides every tie when choosing a slot.
//
// Container is not safe for concurrent use; callers sharing one must
// serialize access themselves.
type Container struct {
	id           string
	slotCapacity int
	slots        []*Slot
	kinds        KindProvider
	logger       *zap.Logger
	listeners    listeners
	initialLocks []int
}

// NewContainer creates a container of capacity empty slots, each able to hold
// slotCapacity units.
//
// Precondition: capacity >= 1, slotCapacity >= 1, kinds non-nil.
// Postcondition: len(Slots()) == capacity; every slot is empty and unlocked
// unless listed by WithLockedSlots.
func NewContainer(capacity, slotCapacity int, kinds KindProvider, opts ...Option) (*Container, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("inventory: capacity must be >= 1, got %d", capacity)
	}
	if slotCapacity < 1 {
		return nil, fmt.Errorf("inventory: slot capacity must be >= 1, got %d", slotCapacity)
	}
	if kinds == nil {
		return nil, errors.New("inventory: kind provider must not be nil")
	}

	c := &Container{
		id:           uuid.New().String(),
		slotCapacity: slotCapacity,
		slots:        make([]*Slot, capacity),
		kinds:        kinds,
		logger:       zap.NewNop(),
	}
	for i := range c.slots {
		c.slots[i] = newSlot(i, slotCapacity)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	for _, idx := range c.initialLocks {
		if idx < 0 || idx >= capacity {
			return nil, fmt.Errorf("inventory: locked slot %d: %w", idx, ErrSlotIndex)
		}
		c.slots[idx].locked = true
	}
	c.initialLocks = nil
	return c, nil
}

// Subscribe registers ln for change notifications and returns a function that
// removes it again.
func (c *Container) Subscribe(ln Listener) (unsubscribe func()) {
	id := c.listeners.add(ln)
	return func() { c.listeners.remove(id) }
}

// TryAdd places item into the container, filling an existing partial stack of
// the same kind before opening an empty slot, and spilling any remainder into
// further slots.
//
// Units already placed stay placed when the remainder cannot be; in that case
// TryAdd returns false and item.Amount() holds the unplaced remainder.
//
// Postcondition: returns true iff every unit of item was placed.
func (c *Container) TryAdd(sender Sender, item *Item) bool {
	if item == nil || item.amount <= 0 {
		return false
	}
	def, ok := c.kinds.Kind(item.kind)
	if !ok {
		c.logger.Warn("inventory: add of unknown kind rejected",
			zap.String("container", c.id),
			zap.String("sender", string(sender)),
			zap.String("kind", string(item.kind)),
		)
		return false
	}
	return c.tryAdd(sender, item, def)
}

func (c *Container) tryAdd(sender Sender, item *Item, def *KindDef) bool {
	for _, s := range c.slots {
		if s.holds(item.kind) && s.Amount() < stackLimit(s, def) {
			return c.tryAddToSlot(sender, s, item, def)
		}
	}
	for _, s := range c.slots {
		if s.IsEmpty() && !s.locked {
			return c.tryAddToSlot(sender, s, item, def)
		}
	}
	c.logger.Debug("inventory: no eligible slot",
		zap.String("container", c.id),
		zap.String("kind", string(item.kind)),
		zap.Int("remaining", item.amount),
	)
	return false
}

func (c *Container) tryAddToSlot(sender Sender, slot *Slot, item *Item, def *KindDef) bool {
	limit := stackLimit(slot, def)
	fits := slot.Amount()+item.amount <= limit
	amountToAdd := item.amount
	if !fits {
		amountToAdd = limit - slot.Amount()
	}
	amountLeft := item.amount - amountToAdd

	if slot.IsEmpty() {
		slot.setItem(item.Clone(amountToAdd))
	} else {
		slot.item.amount += amountToAdd
	}

	c.logger.Debug("inventory: slot filled",
		zap.String("container", c.id),
		zap.Int("slot", slot.index),
		zap.String("kind", string(item.kind)),
		zap.Int("added", amountToAdd),
		zap.Int("left", amountLeft),
	)
	c.listeners.added(sender, item, amountToAdd)
	c.listeners.stateChanged(sender)

	if amountLeft <= 0 {
		return true
	}
	item.amount = amountLeft
	return c.tryAdd(sender, item, def)
}

// stackLimit is the most units of def the slot may hold.
func stackLimit(s *Slot, def *KindDef) int {
	if def.MaxPerSlot < s.capacity {
		return def.MaxPerSlot
	}
	return s.capacity
}

// Remove takes up to amount units of kind out of the container, draining the
// last matching slot first. Removing more than is held empties every matching
// slot and is not an error.
func (c *Container) Remove(sender Sender, kind KindID, amount int) {
	if amount <= 0 {
		return
	}
	matching := c.slotsOf(kind)
	if len(matching) == 0 {
		return
	}

	remaining := amount
	for i := len(matching) - 1; i >= 0; i-- {
		slot := matching[i]
		if slot.Amount() >= remaining {
			slot.setAmount(slot.Amount() - remaining)
			c.logRemoved(slot, kind, remaining)
			c.listeners.removed(sender, kind, remaining)
			c.listeners.stateChanged(sender)
			return
		}

		drained := slot.Amount()
		remaining -= drained
		slot.clear()
		c.logRemoved(slot, kind, drained)
		c.listeners.removed(sender, kind, drained)
		c.listeners.stateChanged(sender)
	}

	c.logger.Debug("inventory: remove under-supplied",
		zap.String("container", c.id),
		zap.String("kind", string(kind)),
		zap.Int("requested", amount),
		zap.Int("missing", remaining),
	)
}

func (c *Container) logRemoved(slot *Slot, kind KindID, amount int) {
	c.logger.Debug("inventory: slot drained",
		zap.String("container", c.id),
		zap.Int("slot", slot.index),
		zap.String("kind", string(kind)),
		zap.Int("removed", amount),
		zap.Int("left", slot.Amount()),
	)
}

// Transfer moves the stack in from onto to, merging with a stack of the same
// kind or splitting when it does not fit. The room available is measured
// against from's capacity, not to's, and the kind's per-slot maximum is not
// consulted.
//
// Transfer does nothing when from is empty, to is full or locked, the kinds
// differ, from and to are the same slot, or either slot belongs to another
// container. It emits only state-changed notifications.
func (c *Container) Transfer(sender Sender, from, to *Slot) {
	if from == nil || to == nil || from == to || from.IsEmpty() {
		return
	}
	if !c.owns(from) || !c.owns(to) {
		c.logger.Warn("inventory: transfer with foreign slot rejected",
			zap.String("container", c.id),
			zap.String("sender", string(sender)),
			zap.Int("from", from.index),
			zap.Int("to", to.index),
		)
		return
	}
	if to.IsFull() || to.locked {
		return
	}
	if !to.IsEmpty() && from.item.kind != to.item.kind {
		return
	}

	capacity := from.capacity
	fits := from.Amount()+to.Amount() <= capacity
	amountToAdd := from.Amount()
	if !fits {
		amountToAdd = capacity - to.Amount()
	}
	if amountToAdd <= 0 {
		return
	}
	amountLeft := from.Amount() - amountToAdd

	if to.IsEmpty() {
		moved := from.item
		from.clear()
		moved.amount = 0
		to.setItem(moved)
		c.listeners.stateChanged(sender)
	}

	to.item.amount += amountToAdd
	if fits {
		from.clear()
	} else {
		from.item.amount = amountLeft
	}

	c.logger.Debug("inventory: transfer",
		zap.String("container", c.id),
		zap.Int("from", from.index),
		zap.Int("to", to.index),
		zap.Int("moved", amountToAdd),
		zap.Int("left", amountLeft),
	)
	c.listeners.stateChanged(sender)
}

func (c *Container) owns(s *Slot) bool {
	return s.index >= 0 && s.index < len(c.slots) && c.slots[s.index] == s
}

// TransferAt is Transfer addressed by slot index.
//
// Postcondition: returns ErrSlotIndex if either index is out of range.
func (c *Container) TransferAt(sender Sender, from, to int) error {
	src, ok := c.Slot(from)
	if !ok {
		return fmt.Errorf("transfer from %d: %w", from, ErrSlotIndex)
	}
	dst, ok := c.Slot(to)
	if !ok {
		return fmt.Errorf("transfer to %d: %w", to, ErrSlotIndex)
	}
	c.Transfer(sender, src, dst)
	return nil
}

// Lock marks the slot at index as unable to receive new items.
//
// Postcondition: emits a state-changed notification iff the flag changed.
func (c *Container) Lock(sender Sender, index int) error {
	return c.setLocked(sender, index, true)
}

// Unlock clears the locked flag of the slot at index.
//
// Postcondition: emits a state-changed notification iff the flag changed.
func (c *Container) Unlock(sender Sender, index int) error {
	return c.setLocked(sender, index, false)
}

func (c *Container) setLocked(sender Sender, index int, locked bool) error {
	s, ok := c.Slot(index)
	if !ok {
		return fmt.Errorf("lock %d: %w", index, ErrSlotIndex)
	}
	if s.locked == locked {
		return nil
	}
	s.locked = locked
	c.listeners.stateChanged(sender)
	return nil
}

// SetEquipped sets the equipped flag of the item held at index.
//
// Postcondition: returns ErrSlotIndex for a bad index and ErrEmptySlot when
// the slot holds nothing; emits a state-changed notification iff the flag
// changed.
func (c *Container) SetEquipped(sender Sender, index int, equipped bool) error {
	s, ok := c.Slot(index)
	if !ok {
		return fmt.Errorf("equip %d: %w", index, ErrSlotIndex)
	}
	if s.item == nil {
		return fmt.Errorf("equip %d: %w", index, ErrEmptySlot)
	}
	if s.item.equipped == equipped {
		return nil
	}
	s.item.equipped = equipped
	c.listeners.stateChanged(sender)
	return nil
}
