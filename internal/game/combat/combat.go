// Package combat runs a boss battle: the boss picks a defence and attacks,
// then each eligible hero attacks and activates its ability, and the game
// ends when one side has no health left.
package combat

// Outcome is the result of the termination check.
type Outcome int

const (
	// OutcomeOngoing means neither side has won yet.
	OutcomeOngoing Outcome = iota
	// OutcomeHeroesWin means the boss has no health left.
	OutcomeHeroesWin
	// OutcomeBossWins means every hero has no health left.
	OutcomeBossWins
	// OutcomeStalemate means the configured round cap was reached first.
	OutcomeStalemate
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeHeroesWin:
		return "heroes win"
	case OutcomeBossWins:
		return "boss wins"
	case OutcomeStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further round may be played.
func (o Outcome) Terminal() bool { return o != OutcomeOngoing }

// Phase is a step of the round state machine.
type Phase int

const (
	PhaseRoundStart Phase = iota
	PhaseBossDefenceChosen
	PhaseBossAttacked
	PhaseHeroesActing
	PhaseRoundComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRoundStart:
		return "round_start"
	case PhaseBossDefenceChosen:
		return "boss_defence_chosen"
	case PhaseBossAttacked:
		return "boss_attacked"
	case PhaseHeroesActing:
		return "heroes_acting"
	case PhaseRoundComplete:
		return "round_complete"
	default:
		return "unknown"
	}
}
