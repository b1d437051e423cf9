package entity

// Boss is the single adversary. Its defence names the ability tag whose
// holder loses its turn in the current round.
type Boss struct {
	Stats
	defence Tag
}

// NewBoss creates a Boss with no defence chosen.
//
// Precondition: see NewStats.
func NewBoss(name string, health, damage int) *Boss {
	return &Boss{Stats: NewStats(name, health, damage)}
}

// Defence returns the tag chosen for the current round, or NoTag before round 1.
func (b *Boss) Defence() Tag { return b.defence }

// SetDefence records the tag the boss defends against this round.
func (b *Boss) SetDefence(t Tag) { b.defence = t }

func (b *Boss) String() string {
	return "BOSS " + b.Stats.String() + " defence: " + b.defence.String()
}
