package combat

import "github.com/cory-johannsen/bossbattle/internal/game/entity"

// CheckOutcome evaluates the win/loss condition. The boss check takes
// precedence, so a round in which both sides fall is a heroes' win.
//
// Postcondition: Pure; repeated calls on the same state return the same Outcome.
func CheckOutcome(boss *entity.Boss, heroes []*entity.Hero) Outcome {
	if boss.Health() <= 0 {
		return OutcomeHeroesWin
	}
	for _, h := range heroes {
		if h.Health() > 0 {
			return OutcomeOngoing
		}
	}
	return OutcomeBossWins
}
