package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/bossbattle/internal/game/entity"
)

var (
	_ entity.Combatant = (*entity.Boss)(nil)
	_ entity.Combatant = (*entity.Hero)(nil)
)

func TestSetHealth_ClampsNegativeToZero(t *testing.T) {
	b := entity.NewBoss("Dragon", 10, 5)
	b.SetHealth(-7)
	assert.Equal(t, 0, b.Health())
	assert.False(t, b.IsAlive())
}

func TestSetHealth_Property_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := entity.NewHero("Mario", rapid.IntRange(0, 1000).Draw(rt, "start"), 10, entity.Boost)
		for _, delta := range rapid.SliceOf(rapid.IntRange(-500, 500)).Draw(rt, "deltas") {
			h.SetHealth(h.Health() + delta)
			assert.GreaterOrEqual(rt, h.Health(), 0)
		}
	})
}

func TestApplyDamageAndRestore(t *testing.T) {
	h := entity.NewHero("Ben", 20, 5, entity.CriticalDamage)
	h.ApplyDamage(25)
	assert.Equal(t, 0, h.Health())
	h.Restore(15)
	assert.Equal(t, 15, h.Health())
}

func TestSetDamage_AllowsNegative(t *testing.T) {
	h := entity.NewHero("Decu", 10, 5, entity.ChangeDamagePower)
	h.SetDamage(-3)
	assert.Equal(t, -3, h.Damage())
}

func TestNewStats_Preconditions(t *testing.T) {
	assert.Panics(t, func() { entity.NewStats("", 1, 1) })
	assert.Panics(t, func() { entity.NewStats("x", -1, 1) })
	assert.NotPanics(t, func() { entity.NewStats("x", 0, -4) })
}

func TestNewHero_RejectsUnknownAbility(t *testing.T) {
	assert.Panics(t, func() { entity.NewHero("x", 1, 1, entity.Tag("Fly")) })
	assert.Panics(t, func() { entity.NewHero("x", 1, 1, entity.NoTag) })
}

func TestHero_AbilityData(t *testing.T) {
	medic := entity.NewHero("Aibolit", 2504, 5, entity.Heal, entity.WithHealPoints(15))
	assert.Equal(t, entity.Heal, medic.Ability())
	assert.Equal(t, 15, medic.HealPoints())

	berserk := entity.NewHero("Guts", 2601, 5, entity.BlockDamageAndRevert)
	assert.Equal(t, 0, berserk.BlockedDamage())
	berserk.SetBlockedDamage(10)
	assert.Equal(t, 10, berserk.BlockedDamage())
}

func TestBoss_String(t *testing.T) {
	b := entity.NewBoss("Dragon", 10000, 50)
	assert.Equal(t, "BOSS Dragon health: 10000 damage: 50 defence: none", b.String())
	b.SetDefence(entity.Hack)
	assert.Equal(t, entity.Hack, b.Defence())
	assert.Equal(t, "BOSS Dragon health: 10000 damage: 50 defence: Hack", b.String())
}

func TestHero_String(t *testing.T) {
	h := entity.NewHero("Merlin", 2903, 10, entity.Boost)
	assert.Equal(t, "Merlin health: 2903 damage: 10", h.String())
}

func TestParseTag(t *testing.T) {
	for _, tag := range entity.AllTags() {
		got, err := entity.ParseTag(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
	_, err := entity.ParseTag("Teleport")
	assert.Error(t, err)
}

func TestAllTags_ReturnsCopy(t *testing.T) {
	tags := entity.AllTags()
	require.Len(t, tags, 7)
	tags[0] = entity.NoTag
	assert.Equal(t, entity.Revival, entity.AllTags()[0])
}
