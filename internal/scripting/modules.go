package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RegisterModules registers all engine.* Lua tables into L:
//
//	engine.log.debug(msg) / engine.log.info(msg) / engine.log.warn(msg)
//	engine.inventory.amount(kind) -> number
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()

	log := L.NewTable()
	L.SetField(log, "debug", L.NewFunction(m.luaLog(zap.DebugLevel)))
	L.SetField(log, "info", L.NewFunction(m.luaLog(zap.InfoLevel)))
	L.SetField(log, "warn", L.NewFunction(m.luaLog(zap.WarnLevel)))
	L.SetField(engine, "log", log)

	inv := L.NewTable()
	L.SetField(inv, "amount", L.NewFunction(m.luaAmount))
	L.SetField(engine, "inventory", inv)

	L.SetGlobal("engine", engine)
}

func (m *Manager) luaLog(level zapcore.Level) lua.LGFunction {
	return func(L *lua.LState) int {
		msg := L.CheckString(1)
		if ce := m.logger.Check(level, msg); ce != nil {
			ce.Write(zap.String("source", "lua"))
		}
		return 0
	}
}

func (m *Manager) luaAmount(L *lua.LState) int {
	kind := L.CheckString(1)
	n := 0
	if m.QueryAmount != nil {
		n = m.QueryAmount(kind)
	}
	L.Push(lua.LNumber(n))
	return 1
}
