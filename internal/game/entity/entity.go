// Package entity defines the combatants of a boss battle: the shared Stats
// every combatant carries, the Boss, and the Heroes with their ability tags.
package entity

import "fmt"

// Combatant is the capability set shared by the boss and every hero.
type Combatant interface {
	Name() string
	Health() int
	SetHealth(v int)
	Damage() int
	SetDamage(v int)
	IsAlive() bool
}

// Stats holds the attributes common to every combatant.
//
// Invariant: health >= 0 at every observation point.
type Stats struct {
	name   string
	health int
	damage int
}

// NewStats constructs Stats.
//
// Precondition: name is non-empty and health >= 0. Damage may have any sign.
func NewStats(name string, health, damage int) Stats {
	if name == "" {
		panic("entity: NewStats precondition violated: name must be non-empty")
	}
	if health < 0 {
		panic(fmt.Sprintf("entity: NewStats precondition violated: health %d < 0 for %q", health, name))
	}
	return Stats{name: name, health: health, damage: damage}
}

// Name returns the immutable display name.
func (s *Stats) Name() string { return s.name }

// Health returns current health.
func (s *Stats) Health() int { return s.health }

// SetHealth assigns health, clamping negative values to zero.
//
// Postcondition: Health() >= 0.
func (s *Stats) SetHealth(v int) {
	if v < 0 {
		v = 0
	}
	s.health = v
}

// Damage returns the current basic-attack damage.
func (s *Stats) Damage() int { return s.damage }

// SetDamage assigns damage without any bound.
func (s *Stats) SetDamage(v int) { s.damage = v }

// IsAlive reports whether health > 0.
func (s *Stats) IsAlive() bool { return s.health > 0 }

// ApplyDamage reduces health by amount through the clamp.
func (s *Stats) ApplyDamage(amount int) { s.SetHealth(s.health - amount) }

// Restore raises health by amount.
func (s *Stats) Restore(amount int) { s.SetHealth(s.health + amount) }

func (s *Stats) String() string {
	return fmt.Sprintf("%s health: %d damage: %d", s.name, s.health, s.damage)
}
