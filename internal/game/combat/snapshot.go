package combat

import "github.com/cory-johannsen/bossbattle/internal/game/entity"

// EntityView is a read-only copy of one combatant's state.
type EntityView struct {
	Name   string
	Health int
	Damage int
	// Ability is the hero's tag; empty for the boss.
	Ability       entity.Tag
	BlockedDamage int
}

// Snapshot is the state handed to reporters after each round.
// It shares no memory with the live game.
type Snapshot struct {
	GameID  string
	Round   int
	Boss    EntityView
	Defence entity.Tag
	Heroes  []EntityView
	// Events lists what happened during Round; nil for the pre-game snapshot.
	Events []RoundEvent
}

// TakeSnapshot copies boss and hero state.
func TakeSnapshot(gameID string, round int, boss *entity.Boss, heroes []*entity.Hero, events []RoundEvent) Snapshot {
	views := make([]EntityView, 0, len(heroes))
	for _, h := range heroes {
		views = append(views, EntityView{
			Name:          h.Name(),
			Health:        h.Health(),
			Damage:        h.Damage(),
			Ability:       h.Ability(),
			BlockedDamage: h.BlockedDamage(),
		})
	}
	var evs []RoundEvent
	if events != nil {
		evs = make([]RoundEvent, len(events))
		copy(evs, events)
	}
	return Snapshot{
		GameID:  gameID,
		Round:   round,
		Boss:    EntityView{Name: boss.Name(), Health: boss.Health(), Damage: boss.Damage()},
		Defence: boss.Defence(),
		Heroes:  views,
		Events:  evs,
	}
}
