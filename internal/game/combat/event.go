package combat

// EventKind classifies a RoundEvent.
type EventKind int

const (
	EventDefence EventKind = iota
	EventBossAttack
	EventBlock
	EventHeroAttack
	EventAbility
	EventSkipped
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventDefence:
		return "defence"
	case EventBossAttack:
		return "boss_attack"
	case EventBlock:
		return "block"
	case EventHeroAttack:
		return "hero_attack"
	case EventAbility:
		return "ability"
	case EventSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// RoundEvent records one thing that happened during a round.
type RoundEvent struct {
	Round  int
	Phase  Phase
	Kind   EventKind
	Actor  string
	Target string
	// Amount is the damage, block or ability quantity involved; zero when not applicable.
	Amount    int
	Narrative string
}
