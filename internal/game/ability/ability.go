// Package ability implements the hero special abilities as a closed table of
// effects keyed by entity.Tag.
package ability

import (
	"fmt"

	"github.com/cory-johannsen/bossbattle/internal/game/dice"
	"github.com/cory-johannsen/bossbattle/internal/game/entity"
)

const (
	// BoostAmount is the flat damage every hero gains per Boost activation.
	BoostAmount = 10
	// HackAmount is the health moved from the boss to a hero per Hack activation.
	HackAmount = 15
)

// CriticalMultiplier yields a uniform multiplier in [2, 5].
var CriticalMultiplier = dice.MustParse("1d4+1")

// ratio is an exact damage multiplier num/den.
type ratio struct{ num, den int }

func (r ratio) amplifies() bool { return r.num > r.den }

func (r ratio) String() string { return fmt.Sprintf("%g", float64(r.num)/float64(r.den)) }

// damagePowerRates are the ChangeDamagePower multipliers 1.2, 0.5, 0.3, 0.8 and 1.5.
var damagePowerRates = []ratio{{6, 5}, {1, 2}, {3, 10}, {4, 5}, {3, 2}}

// Context is everything an ability may read or mutate during one activation.
type Context struct {
	Self   *entity.Hero
	Boss   *entity.Boss
	Heroes []*entity.Hero
	// Round is the 1-based round number the activation happens in.
	Round int
	Src   dice.Source
}

// Result describes what an activation did.
type Result struct {
	Ability entity.Tag
	// Applied is false when the ability had nothing to do this activation.
	Applied bool
	// Amount is the primary quantity moved: damage dealt, health healed, etc.
	Amount int
	// Target names the hero affected, when the ability picks one.
	Target    string
	Narrative string
}

// Effect applies one ability.
type Effect func(ctx Context) Result

var effects = map[entity.Tag]Effect{
	entity.Revival:              revive,
	entity.CriticalDamage:       criticalHit,
	entity.Boost:                boost,
	entity.ChangeDamagePower:    changeDamagePower,
	entity.Hack:                 hack,
	entity.BlockDamageAndRevert: revertBlocked,
	entity.Heal:                 heal,
}

// Has reports whether an effect is registered for tag.
func Has(tag entity.Tag) bool {
	_, ok := effects[tag]
	return ok
}

// Activate dispatches the effect for ctx.Self's ability.
//
// Precondition: ctx.Self, ctx.Boss and ctx.Src are non-nil; ctx.Heroes contains ctx.Self.
// Postcondition: All mutations are applied before return.
func Activate(ctx Context) Result {
	if ctx.Self == nil || ctx.Boss == nil || ctx.Src == nil {
		panic("ability: Activate precondition violated: Self, Boss and Src must be non-nil")
	}
	fn, ok := effects[ctx.Self.Ability()]
	if !ok {
		panic(fmt.Sprintf("ability: no effect registered for %q", string(ctx.Self.Ability())))
	}
	res := fn(ctx)
	res.Ability = ctx.Self.Ability()
	return res
}

// revive hands the caster's whole health to the first fallen hero.
func revive(ctx Context) Result {
	for _, h := range ctx.Heroes {
		if h.Health() != 0 {
			continue
		}
		given := ctx.Self.Health()
		h.SetHealth(given)
		ctx.Self.SetHealth(0)
		return Result{
			Applied:   true,
			Amount:    given,
			Target:    h.Name(),
			Narrative: fmt.Sprintf("%s revived %s", ctx.Self.Name(), h.Name()),
		}
	}
	return Result{Narrative: fmt.Sprintf("%s found no one to revive", ctx.Self.Name())}
}

func criticalHit(ctx Context) Result {
	mult := dice.Roll(CriticalMultiplier, ctx.Src).Total()
	crit := ctx.Self.Damage() * mult
	ctx.Boss.ApplyDamage(crit)
	return Result{
		Applied:   true,
		Amount:    crit,
		Target:    ctx.Boss.Name(),
		Narrative: fmt.Sprintf("%s hit critically %d to boss", ctx.Self.Name(), crit),
	}
}

func boost(ctx Context) Result {
	for _, h := range ctx.Heroes {
		h.SetDamage(h.Damage() + BoostAmount)
	}
	return Result{
		Applied:   true,
		Amount:    BoostAmount,
		Narrative: fmt.Sprintf("%s boosted every hero's damage by %d", ctx.Self.Name(), BoostAmount),
	}
}

func changeDamagePower(ctx Context) Result {
	rate := damagePowerRates[ctx.Src.Intn(len(damagePowerRates))]
	dmg := floorDiv(ctx.Self.Damage()*rate.num, rate.den)
	ctx.Self.SetDamage(dmg)
	if !rate.amplifies() {
		return Result{
			Applied:   true,
			Amount:    dmg,
			Narrative: fmt.Sprintf("%s decreased damage (x%s)", ctx.Self.Name(), rate),
		}
	}
	ctx.Self.ApplyDamage(dmg)
	return Result{
		Applied:   true,
		Amount:    dmg,
		Narrative: fmt.Sprintf("%s increased damage (x%s) at a cost of %d health", ctx.Self.Name(), rate, dmg),
	}
}

// hack only fires on even game rounds, not on the caster's own turn count.
func hack(ctx Context) Result {
	if ctx.Round%2 != 0 {
		return Result{Narrative: fmt.Sprintf("%s is waiting for an even round", ctx.Self.Name())}
	}
	ctx.Boss.ApplyDamage(HackAmount)
	lucky := ctx.Heroes[ctx.Src.Intn(len(ctx.Heroes))]
	lucky.Restore(HackAmount)
	return Result{
		Applied:   true,
		Amount:    HackAmount,
		Target:    lucky.Name(),
		Narrative: fmt.Sprintf("%s stole %d boss health for %s", ctx.Self.Name(), HackAmount, lucky.Name()),
	}
}

func revertBlocked(ctx Context) Result {
	blocked := ctx.Self.BlockedDamage()
	ctx.Boss.ApplyDamage(blocked)
	return Result{
		Applied:   true,
		Amount:    blocked,
		Target:    ctx.Boss.Name(),
		Narrative: fmt.Sprintf("%s reverted %d to boss", ctx.Self.Name(), blocked),
	}
}

func heal(ctx Context) Result {
	healed := 0
	for _, h := range ctx.Heroes {
		if h == ctx.Self || !h.IsAlive() {
			continue
		}
		h.Restore(ctx.Self.HealPoints())
		healed++
	}
	return Result{
		Applied:   healed > 0,
		Amount:    ctx.Self.HealPoints(),
		Narrative: fmt.Sprintf("%s healed %d heroes for %d", ctx.Self.Name(), healed, ctx.Self.HealPoints()),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
