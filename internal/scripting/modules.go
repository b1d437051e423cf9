package scripting

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the engine table: engine.log(msg) and engine.warn(msg)
// write to the manager's logger.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetFuncs(engine, map[string]lua.LGFunction{
		"log": func(L *lua.LState) int {
			m.logger.Info("script", zap.String("message", L.CheckString(1)))
			return 0
		},
		"warn": func(L *lua.LState) int {
			m.logger.Warn("script", zap.String("message", L.CheckString(1)))
			return 0
		},
	})
	L.SetGlobal("engine", engine)
}

// ToValue converts nil, bool, int, float64, string, []any, []map[string]any and
// map[string]any into Lua values. Slices become 1-indexed arrays.
func ToValue(L *lua.LState, v any) (lua.LValue, error) {
	switch x := v.(type) {
	case nil:
		return lua.LNil, nil
	case bool:
		return lua.LBool(x), nil
	case int:
		return lua.LNumber(x), nil
	case float64:
		return lua.LNumber(x), nil
	case string:
		return lua.LString(x), nil
	case []any:
		t := L.NewTable()
		for i, e := range x {
			lv, err := ToValue(L, e)
			if err != nil {
				return lua.LNil, err
			}
			t.RawSetInt(i+1, lv)
		}
		return t, nil
	case []map[string]any:
		t := L.NewTable()
		for i, e := range x {
			lv, err := ToValue(L, e)
			if err != nil {
				return lua.LNil, err
			}
			t.RawSetInt(i+1, lv)
		}
		return t, nil
	case map[string]any:
		t := L.NewTable()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lv, err := ToValue(L, x[k])
			if err != nil {
				return lua.LNil, err
			}
			t.RawSetString(k, lv)
		}
		return t, nil
	default:
		return lua.LNil, fmt.Errorf("unsupported value type %T", v)
	}
}

// FromValue converts a Lua scalar back to Go: nil, bool, float64 or string.
// Tables and functions convert to nil.
func FromValue(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LBool:
		return bool(x)
	case lua.LNumber:
		return float64(x)
	case lua.LString:
		return string(x)
	default:
		return nil
	}
}
