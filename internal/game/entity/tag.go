package entity

import "fmt"

// Tag identifies a hero's special ability. The set is closed.
type Tag string

// NoTag is the boss's defence before the first round.
const NoTag Tag = ""

const (
	Revival              Tag = "Revival"
	CriticalDamage       Tag = "CriticalDamage"
	Boost                Tag = "Boost"
	ChangeDamagePower    Tag = "ChangeDamagePower"
	Hack                 Tag = "Hack"
	BlockDamageAndRevert Tag = "BlockDamageAndRevert"
	Heal                 Tag = "Heal"
)

var allTags = []Tag{
	Revival,
	CriticalDamage,
	Boost,
	ChangeDamagePower,
	Hack,
	BlockDamageAndRevert,
	Heal,
}

// AllTags returns every ability tag in declaration order.
func AllTags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// Valid reports whether t is one of the closed set of ability tags.
func (t Tag) Valid() bool {
	for _, known := range allTags {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the tag name, or "none" for NoTag.
func (t Tag) String() string {
	if t == NoTag {
		return "none"
	}
	return string(t)
}

// ParseTag converts s into a Tag.
//
// Postcondition: Returns a valid Tag or an error naming the unknown value.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return NoTag, fmt.Errorf("unknown ability %q", s)
	}
	return t, nil
}
