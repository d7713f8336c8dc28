package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

func queryFixture(t *testing.T) *inventory.Container {
	t.Helper()
	return restoreContainer(t, 10,
		slotState{Kind: kindArrow, Amount: 4},
		slotState{},
		slotState{Kind: kindPotion, Amount: 2},
		slotState{Kind: kindArrow, Amount: 10},
		slotState{Kind: kindSword, Amount: 1},
	)
}

func TestAmount_SumsAcrossSlots(t *testing.T) {
	c := queryFixture(t)
	assert.Equal(t, 14, c.Amount(kindArrow))
	assert.Equal(t, 2, c.Amount(kindPotion))
	assert.Equal(t, 0, c.Amount("ghost"))
}

func TestItem_ReturnsFirstMatchingSlot(t *testing.T) {
	c := queryFixture(t)
	item, ok := c.Item(kindArrow)
	require.True(t, ok)
	assert.Same(t, c.Slots()[0].Item(), item)

	_, ok = c.Item("ghost")
	assert.False(t, ok, "empty slots never satisfy a kind lookup")

	same, ok := c.HasItem(kindArrow)
	require.True(t, ok)
	assert.Same(t, item, same)
}

func TestItems_SkipsEmptySlots(t *testing.T) {
	c := queryFixture(t)
	items := c.Items()
	require.Len(t, items, 4)
	kinds := make([]inventory.KindID, len(items))
	for i, it := range items {
		kinds[i] = it.Kind()
	}
	assert.Equal(t, []inventory.KindID{kindArrow, kindPotion, kindArrow, kindSword}, kinds)
}

func TestItemsOfAndSlotsOf(t *testing.T) {
	c := queryFixture(t)
	arrows := c.ItemsOf(kindArrow)
	require.Len(t, arrows, 2)
	assert.Equal(t, 4, arrows[0].Amount())
	assert.Equal(t, 10, arrows[1].Amount())

	slots := c.SlotsOf(kindArrow)
	require.Len(t, slots, 2)
	assert.Equal(t, 0, slots[0].Index())
	assert.Equal(t, 3, slots[1].Index())

	assert.Empty(t, c.SlotsOf("ghost"))
}

func TestSlot_Lookup(t *testing.T) {
	c := queryFixture(t)
	s, ok := c.Slot(2)
	require.True(t, ok)
	kind, ok := s.Kind()
	require.True(t, ok)
	assert.Equal(t, kindPotion, kind)

	_, ok = c.Slot(5)
	assert.False(t, ok)
	_, ok = c.Slot(-1)
	assert.False(t, ok)
}

func TestSlots_ReturnsCopy(t *testing.T) {
	c := queryFixture(t)
	slots := c.Slots()
	slots[0] = nil
	assert.NotNil(t, c.Slots()[0])
}

func TestEquippedItems(t *testing.T) {
	c := queryFixture(t)
	assert.Empty(t, c.EquippedItems())

	require.NoError(t, c.SetEquipped(testSender, c.SlotsOf(kindSword)[0].Index(), true))

	eq := c.EquippedItems()
	require.Len(t, eq, 1)
	assert.Equal(t, kindSword, eq[0].Kind())
}

func TestTotalWeight(t *testing.T) {
	c := queryFixture(t)
	want := 14*0.1 + 2*0.5 + 1*3.0
	assert.InDelta(t, want, c.TotalWeight(), 1e-9)
}

// mapKinds is a KindProvider whose entries tests may delete.
type mapKinds map[inventory.KindID]*inventory.KindDef

func (m mapKinds) Kind(id inventory.KindID) (*inventory.KindDef, bool) {
	d, ok := m[id]
	return d, ok
}

func TestTotalWeight_UnknownKindWeighsNothing(t *testing.T) {
	kinds := mapKinds{
		kindArrow:  kindDef(kindArrow, 10, 0.5),
		kindPotion: kindDef(kindPotion, 5, 2.0),
	}
	c, err := inventory.NewContainer(2, 10, kinds)
	require.NoError(t, err)
	require.True(t, c.TryAdd(testSender, inventory.NewItem(kindArrow, 3)))
	require.True(t, c.TryAdd(testSender, inventory.NewItem(kindPotion, 1)))

	delete(kinds, kindPotion)

	assert.InDelta(t, 1.5, c.TotalWeight(), 1e-9)
}

func TestIsFull(t *testing.T) {
	c := newContainer(t, 2, 10)
	assert.False(t, c.IsFull())
	require.True(t, c.TryAdd(testSender, inventory.NewItem(kindArrow, 15)))
	assert.False(t, c.IsFull())
	require.True(t, c.TryAdd(testSender, inventory.NewItem(kindArrow, 5)))
	assert.True(t, c.IsFull())
}

func TestIsFull_MaxPerSlotBelowCapacityIsNotFull(t *testing.T) {
	c := newContainer(t, 1, 10)
	require.True(t, c.TryAdd(testSender, inventory.NewItem(kindSword, 1)))
	assert.False(t, c.IsFull(), "fullness is measured against slot capacity")
	assert.False(t, c.TryAdd(testSender, inventory.NewItem(kindSword, 1)))
}
