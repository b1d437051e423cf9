package combat

import (
	"fmt"

	"github.com/cory-johannsen/bossbattle/internal/game/dice"
	"github.com/cory-johannsen/bossbattle/internal/game/entity"
)

// BlockAmounts are the amounts a BlockDamageAndRevert hero may block.
var BlockAmounts = []int{5, 10}

// ChooseDefence samples one hero uniformly from the whole roster, dead or
// alive, and sets the boss's defence to that hero's ability.
//
// Precondition: heroes is non-empty.
// Postcondition: boss.Defence() equals the chosen hero's ability.
func ChooseDefence(boss *entity.Boss, heroes []*entity.Hero, src dice.Source) *entity.Hero {
	if len(heroes) == 0 {
		panic("combat: ChooseDefence precondition violated: empty hero roster")
	}
	chosen := heroes[src.Intn(len(heroes))]
	boss.SetDefence(chosen.Ability())
	return chosen
}

// BossAttack strikes every living hero for the boss's damage. A
// BlockDamageAndRevert hero the boss is not defending against blocks 5 or 10
// of it and remembers the amount for its ability.
//
// Postcondition: Every hero's health >= 0.
func BossAttack(boss *entity.Boss, heroes []*entity.Hero, src dice.Source, round int) []RoundEvent {
	var events []RoundEvent
	for _, h := range heroes {
		if !h.IsAlive() {
			continue
		}
		dmg := boss.Damage()
		if h.Ability() == entity.BlockDamageAndRevert && boss.Defence() != h.Ability() {
			blocked := BlockAmounts[src.Intn(len(BlockAmounts))]
			h.SetBlockedDamage(blocked)
			dmg -= blocked
			events = append(events, RoundEvent{
				Round:     round,
				Phase:     PhaseBossAttacked,
				Kind:      EventBlock,
				Actor:     h.Name(),
				Target:    boss.Name(),
				Amount:    blocked,
				Narrative: fmt.Sprintf("%s blocked %d of %s's attack", h.Name(), blocked, boss.Name()),
			})
		}
		h.ApplyDamage(dmg)
		events = append(events, RoundEvent{
			Round:     round,
			Phase:     PhaseBossAttacked,
			Kind:      EventBossAttack,
			Actor:     boss.Name(),
			Target:    h.Name(),
			Amount:    dmg,
			Narrative: fmt.Sprintf("%s hit %s for %d", boss.Name(), h.Name(), dmg),
		})
	}
	return events
}

// CanAct reports whether hero takes a turn: both sides alive and the boss not
// defending against the hero's ability.
func CanAct(boss *entity.Boss, hero *entity.Hero) bool {
	return hero.IsAlive() && boss.IsAlive() && boss.Defence() != hero.Ability()
}
