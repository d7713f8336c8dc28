package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

const (
	kindArrow  inventory.KindID = "arrow"
	kindPotion inventory.KindID = "potion"
	kindSword  inventory.KindID = "sword"
)

const testSender inventory.Sender = "tester"

func kindDef(id inventory.KindID, maxPerSlot int, weight float64) *inventory.KindDef {
	return &inventory.KindDef{
		ID:         id,
		Name:       string(id),
		Weight:     weight,
		MaxPerSlot: maxPerSlot,
	}
}

func makeCatalog(defs ...*inventory.KindDef) *inventory.Catalog {
	c := inventory.NewCatalog()
	for _, d := range defs {
		_ = c.Register(d)
	}
	return c
}

// defaultCatalog has arrows stacking to 10, potions to 5 and unstackable swords.
func defaultCatalog() *inventory.Catalog {
	return makeCatalog(
		kindDef(kindArrow, 10, 0.1),
		kindDef(kindPotion, 5, 0.5),
		kindDef(kindSword, 1, 3.0),
	)
}

func newContainer(t testing.TB, capacity, slotCapacity int, opts ...inventory.Option) *inventory.Container {
	t.Helper()
	c, err := inventory.NewContainer(capacity, slotCapacity, defaultCatalog(), opts...)
	require.NoError(t, err)
	return c
}

// slotState describes one slot for restoreContainer; a zero Kind means empty.
type slotState struct {
	Kind   inventory.KindID
	Amount int
	Locked bool
}

// restoreContainer builds a container in an arbitrary starting state.
func restoreContainer(t testing.TB, slotCapacity int, states ...slotState) *inventory.Container {
	t.Helper()
	snap := inventory.Snapshot{
		ID:           "fixture",
		Capacity:     len(states),
		SlotCapacity: slotCapacity,
		Slots:        make([]inventory.SlotSnapshot, len(states)),
	}
	for i, st := range states {
		ss := inventory.SlotSnapshot{Index: i, Locked: st.Locked}
		if st.Kind != "" {
			ss.Item = &inventory.ItemSnapshot{
				ID:     "item-" + string(st.Kind),
				Kind:   st.Kind,
				Amount: st.Amount,
			}
		}
		snap.Slots[i] = ss
	}
	c, err := inventory.Restore(snap, defaultCatalog())
	require.NoError(t, err)
	return c
}

// event is one recorded notification.
type event struct {
	Type   string
	Sender inventory.Sender
	Kind   inventory.KindID
	Amount int
}

// recorder captures every notification in delivery order.
type recorder struct {
	events []event
}

func (r *recorder) OnAdded(sender inventory.Sender, item *inventory.Item, amount int) {
	r.events = append(r.events, event{Type: "added", Sender: sender, Kind: item.Kind(), Amount: amount})
}

func (r *recorder) OnRemoved(sender inventory.Sender, kind inventory.KindID, amount int) {
	r.events = append(r.events, event{Type: "removed", Sender: sender, Kind: kind, Amount: amount})
}

func (r *recorder) OnStateChanged(sender inventory.Sender) {
	r.events = append(r.events, event{Type: "state", Sender: sender})
}

func (r *recorder) count(typ string) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) amounts(typ string) []int {
	var out []int
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e.Amount)
		}
	}
	return out
}

func slotAmounts(c *inventory.Container) []int {
	out := make([]int, c.Capacity())
	for i, s := range c.Slots() {
		out[i] = s.Amount()
	}
	return out
}
