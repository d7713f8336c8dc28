package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

var _ inventory.Listener = (*Manager)(nil)

// OnAdded calls on_added(sender, kind, amount, item_id).
func (m *Manager) OnAdded(sender inventory.Sender, item *inventory.Item, amount int) {
	m.CallHook(HookAdded, //nolint:errcheck
		lua.LString(sender),
		lua.LString(item.Kind()),
		lua.LNumber(amount),
		lua.LString(item.ID()),
	)
}

// OnRemoved calls on_removed(sender, kind, amount).
func (m *Manager) OnRemoved(sender inventory.Sender, kind inventory.KindID, amount int) {
	m.CallHook(HookRemoved, //nolint:errcheck
		lua.LString(sender),
		lua.LString(kind),
		lua.LNumber(amount),
	)
}

// OnStateChanged calls on_state_changed(sender).
func (m *Manager) OnStateChanged(sender inventory.Sender) {
	m.CallHook(HookStateChanged, lua.LString(sender)) //nolint:errcheck
}

// Bind points engine.inventory.amount at c.
//
// Precondition: c must be non-nil.
func (m *Manager) Bind(c *inventory.Container) {
	m.QueryAmount = func(kind string) int {
		return c.Amount(inventory.KindID(kind))
	}
}
