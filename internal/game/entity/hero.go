package entity

import "fmt"

// Hero is an allied combatant with one fixed ability.
type Hero struct {
	Stats
	ability Tag

	// blockedDamage is written by the boss attack and read by the
	// BlockDamageAndRevert ability in the same round.
	blockedDamage int
	healPoints    int
}

// HeroOption configures ability-specific hero data.
type HeroOption func(*Hero)

// WithHealPoints sets the amount a Heal hero restores per activation.
func WithHealPoints(n int) HeroOption {
	return func(h *Hero) { h.healPoints = n }
}

// NewHero creates a hero carrying ability.
//
// Precondition: ability.Valid(); name and health as for NewStats.
func NewHero(name string, health, damage int, ability Tag, opts ...HeroOption) *Hero {
	if !ability.Valid() {
		panic(fmt.Sprintf("entity: NewHero precondition violated: unknown ability %q for %q", string(ability), name))
	}
	h := &Hero{Stats: NewStats(name, health, damage), ability: ability}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Ability returns the hero's immutable ability tag.
func (h *Hero) Ability() Tag { return h.ability }

// BlockedDamage returns the damage last blocked from the boss.
func (h *Hero) BlockedDamage() int { return h.blockedDamage }

// SetBlockedDamage records a block amount.
func (h *Hero) SetBlockedDamage(v int) { h.blockedDamage = v }

// HealPoints returns the per-activation heal amount; zero for non-Heal heroes.
func (h *Hero) HealPoints() int { return h.healPoints }
