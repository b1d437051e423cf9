package combat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/bossbattle/internal/game/ability"
	"github.com/cory-johannsen/bossbattle/internal/game/dice"
	"github.com/cory-johannsen/bossbattle/internal/game/entity"
)

var (
	// ErrNoBoss is returned by NewGame when the boss is nil.
	ErrNoBoss = errors.New("combat: a game needs exactly one boss")
	// ErrEmptyRoster is returned by NewGame when no heroes are supplied.
	ErrEmptyRoster = errors.New("combat: a game needs at least one hero")
	// ErrGameOver is returned by PlayRound once the game has an outcome.
	ErrGameOver = errors.New("combat: game is over")
)

// Reporter receives read-only state. The engine never depends on what a
// Reporter does with it.
type Reporter interface {
	// Status is called once before round 1 and once after every round.
	Status(s Snapshot)
	// GameOver is called once when the game reaches a terminal outcome.
	GameOver(o Outcome, s Snapshot)
}

type nopReporter struct{}

func (nopReporter) Status(Snapshot)            {}
func (nopReporter) GameOver(Outcome, Snapshot) {}

// RoundResult summarises one PlayRound call.
type RoundResult struct {
	Round   int
	Events  []RoundEvent
	Outcome Outcome
}

// Game owns the roster for one battle. It is not safe for concurrent use;
// every phase runs synchronously on the caller's goroutine.
type Game struct {
	// ID identifies the game in logs and snapshots.
	ID string

	boss   *entity.Boss
	heroes []*entity.Hero

	round    int
	phase    Phase
	outcome  Outcome
	reported bool

	src        dice.Source
	reporter   Reporter
	logger     *zap.Logger
	maxRounds  int
	roundDelay time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets the randomness source. Defaults to dice.NewCryptoSource().
func WithSource(src dice.Source) Option { return func(g *Game) { g.src = src } }

// WithReporter sets the status sink.
func WithReporter(r Reporter) Option { return func(g *Game) { g.reporter = r } }

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option { return func(g *Game) { g.logger = l } }

// WithMaxRounds caps the number of rounds; 0 means no cap.
func WithMaxRounds(n int) Option { return func(g *Game) { g.maxRounds = n } }

// WithRoundDelay pauses Run between rounds.
func WithRoundDelay(d time.Duration) Option { return func(g *Game) { g.roundDelay = d } }

// NewGame creates a game over boss and heroes. Heroes act in slice order.
//
// Precondition: boss is non-nil and heroes is non-empty with no nil entries.
// Postcondition: Returns a Game at round 0 or ErrNoBoss / ErrEmptyRoster.
func NewGame(boss *entity.Boss, heroes []*entity.Hero, opts ...Option) (*Game, error) {
	if boss == nil {
		return nil, ErrNoBoss
	}
	if len(heroes) == 0 {
		return nil, ErrEmptyRoster
	}
	for i, h := range heroes {
		if h == nil {
			return nil, fmt.Errorf("combat: hero %d is nil", i)
		}
	}
	g := &Game{
		ID:       uuid.New().String(),
		boss:     boss,
		heroes:   heroes,
		src:      dice.NewCryptoSource(),
		reporter: nopReporter{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxRounds < 0 {
		return nil, fmt.Errorf("combat: max rounds must be >= 0, got %d", g.maxRounds)
	}
	g.logger = g.logger.With(zap.String("game_id", g.ID))
	g.outcome = CheckOutcome(boss, heroes)
	return g, nil
}

// Round returns the number of rounds started so far.
func (g *Game) Round() int { return g.round }

// Phase returns the phase the last round reached.
func (g *Game) Phase() Phase { return g.phase }

// Outcome returns the current termination state.
func (g *Game) Outcome() Outcome { return g.outcome }

// Boss returns the live boss.
func (g *Game) Boss() *entity.Boss { return g.boss }

// Heroes returns the live roster in acting order.
func (g *Game) Heroes() []*entity.Hero { return g.heroes }

// Snapshot copies the current state without events.
func (g *Game) Snapshot() Snapshot {
	return TakeSnapshot(g.ID, g.round, g.boss, g.heroes, nil)
}

// PlayRound runs one full round: defence choice, boss attack, hero turns,
// status report, termination check.
//
// Postcondition: Returns ErrGameOver without side effects once Outcome().Terminal().
func (g *Game) PlayRound() (RoundResult, error) {
	if g.outcome.Terminal() {
		return RoundResult{Round: g.round, Outcome: g.outcome}, ErrGameOver
	}

	g.phase = PhaseRoundStart
	g.round++
	round := g.round
	g.logger.Debug("round started", zap.Int("round", round))

	var events []RoundEvent

	g.phase = PhaseBossDefenceChosen
	chosen := ChooseDefence(g.boss, g.heroes, g.src)
	events = append(events, RoundEvent{
		Round:     round,
		Phase:     g.phase,
		Kind:      EventDefence,
		Actor:     g.boss.Name(),
		Target:    chosen.Name(),
		Narrative: fmt.Sprintf("%s defends against %s", g.boss.Name(), chosen.Ability()),
	})

	g.phase = PhaseBossAttacked
	events = append(events, BossAttack(g.boss, g.heroes, g.src, round)...)

	g.phase = PhaseHeroesActing
	for _, h := range g.heroes {
		events = append(events, g.heroTurn(h, round)...)
	}

	g.phase = PhaseRoundComplete
	snap := TakeSnapshot(g.ID, round, g.boss, g.heroes, events)
	g.reporter.Status(snap)

	g.outcome = CheckOutcome(g.boss, g.heroes)
	if !g.outcome.Terminal() && g.maxRounds > 0 && round >= g.maxRounds {
		g.outcome = OutcomeStalemate
	}
	g.logger.Debug("round complete",
		zap.Int("round", round),
		zap.Int("boss_health", g.boss.Health()),
		zap.Stringer("outcome", g.outcome),
	)
	if g.outcome.Terminal() {
		g.finish(snap)
	}

	return RoundResult{Round: round, Events: events, Outcome: g.outcome}, nil
}

func (g *Game) heroTurn(h *entity.Hero, round int) []RoundEvent {
	if !CanAct(g.boss, h) {
		if h.IsAlive() && g.boss.IsAlive() {
			return []RoundEvent{{
				Round:     round,
				Phase:     PhaseHeroesActing,
				Kind:      EventSkipped,
				Actor:     h.Name(),
				Narrative: fmt.Sprintf("%s is held off by %s's defence", h.Name(), g.boss.Name()),
			}}
		}
		return nil
	}

	dmg := h.Damage()
	g.boss.ApplyDamage(dmg)
	res := ability.Activate(ability.Context{
		Self:   h,
		Boss:   g.boss,
		Heroes: g.heroes,
		Round:  round,
		Src:    g.src,
	})
	return []RoundEvent{
		{
			Round:     round,
			Phase:     PhaseHeroesActing,
			Kind:      EventHeroAttack,
			Actor:     h.Name(),
			Target:    g.boss.Name(),
			Amount:    dmg,
			Narrative: fmt.Sprintf("%s hit %s for %d", h.Name(), g.boss.Name(), dmg),
		},
		{
			Round:     round,
			Phase:     PhaseHeroesActing,
			Kind:      EventAbility,
			Actor:     h.Name(),
			Target:    res.Target,
			Amount:    res.Amount,
			Narrative: res.Narrative,
		},
	}
}

func (g *Game) finish(snap Snapshot) {
	if g.reported {
		return
	}
	g.reported = true
	g.logger.Info("game over",
		zap.Stringer("outcome", g.outcome),
		zap.Int("rounds", g.round),
		zap.Int("boss_health", g.boss.Health()),
	)
	g.reporter.GameOver(g.outcome, snap)
}

// Run reports the opening state and plays rounds until the game ends.
// ctx is only checked between rounds; a round always completes.
//
// Postcondition: On a nil error the returned Outcome is terminal.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	if g.round == 0 {
		g.reporter.Status(g.Snapshot())
	}
	if g.outcome.Terminal() {
		g.finish(g.Snapshot())
		return g.outcome, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return g.outcome, err
		}
		res, err := g.PlayRound()
		if err != nil {
			return g.outcome, err
		}
		if res.Outcome.Terminal() {
			return res.Outcome, nil
		}
		if g.roundDelay > 0 {
			t := time.NewTimer(g.roundDelay)
			select {
			case <-ctx.Done():
				t.Stop()
				return g.outcome, ctx.Err()
			case <-t.C:
			}
		}
	}
}
