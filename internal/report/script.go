package report

import (
	"fmt"
	"io"

	"github.com/cory-johannsen/bossbattle/internal/game/combat"
)

const (
	hookRound    = "on_round"
	hookGameOver = "on_game_over"
)

// HookCaller is the subset of scripting.Manager the Script reporter needs.
type HookCaller interface {
	CallHook(hook string, args ...any) (any, error)
}

// Script passes snapshots to the Lua hooks on_round(snapshot) and
// on_game_over(outcome, snapshot). A string returned by a hook is written to
// out as its own line.
type Script struct {
	hooks HookCaller
	out   io.Writer
	err   error
}

// NewScript creates a Script reporter. out may be nil to discard hook output.
func NewScript(hooks HookCaller, out io.Writer) *Script {
	return &Script{hooks: hooks, out: out}
}

// Err returns the first hook or write error.
func (s *Script) Err() error { return s.err }

// Status calls on_round.
func (s *Script) Status(snap combat.Snapshot) {
	s.call(hookRound, SnapshotTable(snap))
}

// GameOver calls on_game_over.
func (s *Script) GameOver(o combat.Outcome, snap combat.Snapshot) {
	s.call(hookGameOver, o.String(), SnapshotTable(snap))
}

func (s *Script) call(hook string, args ...any) {
	if s.err != nil {
		return
	}
	ret, err := s.hooks.CallHook(hook, args...)
	if err != nil {
		s.err = err
		return
	}
	line, ok := ret.(string)
	if !ok || s.out == nil {
		return
	}
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.err = fmt.Errorf("writing hook output: %w", err)
	}
}

// SnapshotTable converts a snapshot into the nested maps handed to Lua.
func SnapshotTable(snap combat.Snapshot) map[string]any {
	heroes := make([]map[string]any, 0, len(snap.Heroes))
	for _, h := range snap.Heroes {
		heroes = append(heroes, map[string]any{
			"name":           h.Name,
			"health":         h.Health,
			"damage":         h.Damage,
			"ability":        string(h.Ability),
			"blocked_damage": h.BlockedDamage,
		})
	}
	events := make([]map[string]any, 0, len(snap.Events))
	for _, ev := range snap.Events {
		events = append(events, map[string]any{
			"kind":      ev.Kind.String(),
			"actor":     ev.Actor,
			"target":    ev.Target,
			"amount":    ev.Amount,
			"narrative": ev.Narrative,
		})
	}
	return map[string]any{
		"game_id": snap.GameID,
		"round":   snap.Round,
		"defence": string(snap.Defence),
		"boss": map[string]any{
			"name":   snap.Boss.Name,
			"health": snap.Boss.Health,
			"damage": snap.Boss.Damage,
		},
		"heroes": heroes,
		"events": events,
	}
}
