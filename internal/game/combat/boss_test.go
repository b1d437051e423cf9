package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/bossbattle/internal/game/combat"
	"github.com/cory-johannsen/bossbattle/internal/game/entity"
	"github.com/cory-johannsen/bossbattle/internal/testutil"
)

func TestChooseDefence_SamplesWholeRoster(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	alive := entity.NewHero("Mario", 50, 10, entity.CriticalDamage)
	dead := entity.NewHero("Witcher", 0, 0, entity.Revival)

	chosen := combat.ChooseDefence(boss, []*entity.Hero{alive, dead}, testutil.ConstSource(1))

	assert.Same(t, dead, chosen)
	assert.Equal(t, entity.Revival, boss.Defence())
}

func TestChooseDefence_PanicsOnEmptyRoster(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	assert.Panics(t, func() { combat.ChooseDefence(boss, nil, testutil.ConstSource(0)) })
}

func TestBossAttack_HitsOnlyLivingHeroes(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	boss.SetDefence(entity.Heal)
	a := entity.NewHero("Mario", 50, 10, entity.CriticalDamage)
	b := entity.NewHero("Ben", 0, 10, entity.CriticalDamage)
	c := entity.NewHero("Merlin", 15, 10, entity.Boost)

	events := combat.BossAttack(boss, []*entity.Hero{a, b, c}, testutil.ConstSource(0), 1)

	assert.Equal(t, 30, a.Health())
	assert.Equal(t, 0, b.Health())
	assert.Equal(t, 0, c.Health(), "health clamps at zero")
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, combat.EventBossAttack, ev.Kind)
		assert.Equal(t, 20, ev.Amount)
	}
}

func TestBossAttack_BlockWhenNotDefended(t *testing.T) {
	for draw, blocked := range []int{5, 10} {
		boss := entity.NewBoss("Dragon", 100, 20)
		boss.SetDefence(entity.Heal)
		guts := entity.NewHero("Guts", 50, 5, entity.BlockDamageAndRevert)

		events := combat.BossAttack(boss, []*entity.Hero{guts}, testutil.ConstSource(draw), 1)

		assert.Equal(t, blocked, guts.BlockedDamage())
		assert.Equal(t, 50-(20-blocked), guts.Health())
		require.Len(t, events, 2)
		assert.Equal(t, combat.EventBlock, events[0].Kind)
		assert.Equal(t, blocked, events[0].Amount)
	}
}

func TestBossAttack_NoBlockWhenDefended(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	boss.SetDefence(entity.BlockDamageAndRevert)
	guts := entity.NewHero("Guts", 50, 5, entity.BlockDamageAndRevert)
	guts.SetBlockedDamage(5)

	combat.BossAttack(boss, []*entity.Hero{guts}, testutil.NewSeqSource(), 1)

	assert.Equal(t, 30, guts.Health())
	assert.Equal(t, 5, guts.BlockedDamage(), "blocked damage is only rewritten when blocking")
}

func TestCanAct(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	h := entity.NewHero("Mario", 50, 10, entity.CriticalDamage)

	boss.SetDefence(entity.Boost)
	assert.True(t, combat.CanAct(boss, h))

	boss.SetDefence(entity.CriticalDamage)
	assert.False(t, combat.CanAct(boss, h))

	boss.SetDefence(entity.Boost)
	h.SetHealth(0)
	assert.False(t, combat.CanAct(boss, h))

	h.SetHealth(10)
	boss.SetHealth(0)
	assert.False(t, combat.CanAct(boss, h))
}

func TestCheckOutcome(t *testing.T) {
	boss := entity.NewBoss("Dragon", 100, 20)
	a := entity.NewHero("Mario", 50, 10, entity.CriticalDamage)
	b := entity.NewHero("Ben", 0, 10, entity.CriticalDamage)
	heroes := []*entity.Hero{a, b}

	assert.Equal(t, combat.OutcomeOngoing, combat.CheckOutcome(boss, heroes))

	a.SetHealth(0)
	assert.Equal(t, combat.OutcomeBossWins, combat.CheckOutcome(boss, heroes))

	boss.SetHealth(0)
	assert.Equal(t, combat.OutcomeHeroesWin, combat.CheckOutcome(boss, heroes))
	assert.Equal(t, combat.OutcomeHeroesWin, combat.CheckOutcome(boss, heroes))
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "heroes win", combat.OutcomeHeroesWin.String())
	assert.Equal(t, "boss wins", combat.OutcomeBossWins.String())
	assert.False(t, combat.OutcomeOngoing.Terminal())
	assert.True(t, combat.OutcomeStalemate.Terminal())
	assert.Equal(t, "heroes_acting", combat.PhaseHeroesActing.String())
	assert.Equal(t, "block", combat.EventBlock.String())
}
