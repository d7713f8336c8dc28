package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Hook names called by the Manager's inventory.Listener methods.
const (
	HookAdded        = "on_added"
	HookRemoved      = "on_removed"
	HookStateChanged = "on_state_changed"
)

// Manager owns one sandboxed LState and dispatches hooks into it.
//
// The LState is single-threaded; mu serializes every load and call.
type Manager struct {
	mu     sync.Mutex
	state  *lua.LState
	cancel context.CancelFunc
	limit  int
	logger *zap.Logger

	// Injected after construction. nil = engine.inventory.amount returns 0.
	QueryAmount func(kind string) int
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil Manager; CallHook is a no-op until Load succeeds.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{logger: logger}
}

// Load creates a sandboxed VM, registers the engine.* modules, then executes
// every *.lua file in scriptDir in lexicographic order. A successful Load
// replaces any previously loaded VM.
//
// Precondition: scriptDir must be a readable directory; instLimit >= 0.
// Postcondition: Returns an error on read or Lua load failure and keeps the previous VM.
func (m *Manager) Load(scriptDir string, instLimit int) error {
	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	m.closeLocked()
	m.state = L
	m.cancel = cancel
	m.limit = instLimit
	m.mu.Unlock()

	m.logger.Info("scripting: scripts loaded",
		zap.String("dir", scriptDir),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// CallHook calls the named Lua global function with a fresh instruction
// budget. Returns (LNil, nil) if no VM is loaded or the hook is not defined.
// Lua runtime errors, including an exhausted budget, are logged at Warn level
// and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	L := m.state
	if L == nil {
		return lua.LNil, nil
	}

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	cancel := Budget(L, m.limit)
	defer cancel()

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// Loaded reports whether a VM is currently loaded.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state != nil
}

// Close releases the loaded VM. Subsequent CallHook calls are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

func (m *Manager) closeLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}
