// Package report provides the status sinks that display a battle: plain or
// coloured text, structured logs, and Lua hooks.
package report

import "github.com/cory-johannsen/bossbattle/internal/game/combat"

// Multi fans every call out to each reporter in order.
type Multi []combat.Reporter

// Status forwards s to every reporter.
func (m Multi) Status(s combat.Snapshot) {
	for _, r := range m {
		r.Status(s)
	}
}

// GameOver forwards the outcome to every reporter.
func (m Multi) GameOver(o combat.Outcome, s combat.Snapshot) {
	for _, r := range m {
		r.GameOver(o, s)
	}
}
