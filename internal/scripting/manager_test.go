package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/bossbattle/internal/scripting"
)

func newManager(t *testing.T, limit int) (*scripting.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	m := scripting.NewManager(limit, zap.New(core))
	t.Cleanup(m.Close)
	return m, logs
}

func TestCallHook_PassesTablesAndReturnsScalar(t *testing.T) {
	m, _ := newManager(t, 0)
	require.NoError(t, m.LoadString(`
function total_health(snap)
  local sum = snap.boss.health
  for _, h in ipairs(snap.heroes) do sum = sum + h.health end
  return sum
end`))

	got, err := m.CallHook("total_health", map[string]any{
		"boss":   map[string]any{"health": 100},
		"heroes": []map[string]any{{"health": 20}, {"health": 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(125), got)
	assert.True(t, m.HasHook("total_health"))
}

func TestCallHook_UndefinedHookIsNil(t *testing.T) {
	m, _ := newManager(t, 0)
	got, err := m.CallHook("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, m.HasHook("nope"))
}

func TestCallHook_RuntimeErrorIsLogged(t *testing.T) {
	m, logs := newManager(t, 0)
	require.NoError(t, m.LoadString(`function boom() error("kaboom") end`))

	got, err := m.CallHook("boom")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())
}

func TestCallHook_InstructionLimitStopsRunawayScript(t *testing.T) {
	m, logs := newManager(t, 1_000)
	require.NoError(t, m.LoadString(`function spin() while true do end end
function ok() return "fine" end`))

	got, err := m.CallHook("spin")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())

	got, err = m.CallHook("ok")
	require.NoError(t, err)
	assert.Equal(t, "fine", got, "each call gets a fresh budget")
}

func TestCallHook_UnsupportedArgument(t *testing.T) {
	m, _ := newManager(t, 0)
	require.NoError(t, m.LoadString(`function f(x) return x end`))
	_, err := m.CallHook("f", struct{}{})
	assert.Error(t, err)
}

func TestSandbox_DangerousGlobalsRemoved(t *testing.T) {
	m, _ := newManager(t, 0)
	require.NoError(t, m.LoadString(`function probe()
  return dofile == nil and loadfile == nil and load == nil and require == nil and os == nil and io == nil
end`))
	got, err := m.CallHook("probe")
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestEngineLog(t *testing.T) {
	m, logs := newManager(t, 0)
	require.NoError(t, m.LoadString(`engine.log("hello from lua")`))
	entries := logs.FilterMessage("script").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello from lua", entries[0].ContextMap()["message"])
}

func TestLoadDir_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lua"), []byte(`value = value .. "b"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte(`value = "a"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`not lua`), 0o644))

	m, _ := newManager(t, 0)
	require.NoError(t, m.LoadDir(dir))
	require.NoError(t, m.LoadString(`function get() return value end`))

	got, err := m.CallHook("get")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestLoadDir_Errors(t *testing.T) {
	m, _ := newManager(t, 0)
	assert.Error(t, m.LoadDir(filepath.Join(t.TempDir(), "missing")))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte(`this is not lua`), 0o644))
	assert.Error(t, m.LoadDir(dir))
}
