package testutil

import "github.com/cory-johannsen/bossbattle/internal/game/combat"

// Recorder is a combat.Reporter that keeps everything it is given.
type Recorder struct {
	Statuses []combat.Snapshot
	Outcomes []combat.Outcome
	Final    []combat.Snapshot
}

// Status records s.
func (r *Recorder) Status(s combat.Snapshot) { r.Statuses = append(r.Statuses, s) }

// GameOver records the outcome and the final snapshot.
func (r *Recorder) GameOver(o combat.Outcome, s combat.Snapshot) {
	r.Outcomes = append(r.Outcomes, o)
	r.Final = append(r.Final, s)
}

// Rounds returns the round number of every recorded status, in order.
func (r *Recorder) Rounds() []int {
	out := make([]int, len(r.Statuses))
	for i, s := range r.Statuses {
		out[i] = s.Round
	}
	return out
}
