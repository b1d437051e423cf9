// Package main runs a boss battle from a roster file and prints each round.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/bossbattle/internal/config"
	"github.com/cory-johannsen/bossbattle/internal/game/combat"
	"github.com/cory-johannsen/bossbattle/internal/game/dice"
	"github.com/cory-johannsen/bossbattle/internal/game/roster"
	"github.com/cory-johannsen/bossbattle/internal/observability"
	"github.com/cory-johannsen/bossbattle/internal/report"
	"github.com/cory-johannsen/bossbattle/internal/scripting"
	"github.com/cory-johannsen/bossbattle/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and BOSSBATTLE_* env")
	rosterPath := flag.String("roster", "", "path to roster YAML; overrides game.roster_file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *rosterPath != "" {
		cfg.Game.RosterFile = *rosterPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	def, err := roster.LoadOrDefault(cfg.Game.RosterFile)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	boss, heroes := def.Build()
	logger.Info("roster loaded",
		zap.String("boss", boss.Name()),
		zap.Int("heroes", len(heroes)),
		zap.String("source", rosterSource(cfg.Game.RosterFile)),
	)

	text := report.NewText(os.Stdout, cfg.Report.Color)
	reporters := report.Multi{text, report.NewLog(logger)}

	var scriptMgr *scripting.Manager
	var scriptRep *report.Script
	if cfg.Report.ScriptDir != "" {
		scriptMgr = scripting.NewManager(cfg.Report.InstructionLimit, logger)
		if err := scriptMgr.LoadDir(cfg.Report.ScriptDir); err != nil {
			logger.Fatal("loading report scripts", zap.String("dir", cfg.Report.ScriptDir), zap.Error(err))
		}
		scriptRep = report.NewScript(scriptMgr, os.Stdout)
		reporters = append(reporters, scriptRep)
		logger.Info("report scripts loaded", zap.String("dir", cfg.Report.ScriptDir))
	}

	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	game, err := combat.NewGame(boss, heroes,
		combat.WithSource(roller),
		combat.WithReporter(reporters),
		combat.WithLogger(logger),
		combat.WithMaxRounds(cfg.Game.MaxRounds),
		combat.WithRoundDelay(cfg.Game.RoundDelay),
	)
	if err != nil {
		logger.Fatal("creating game", zap.Error(err))
	}

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("battle", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			outcome, err := game.Run(ctx)
			if errors.Is(err, context.Canceled) {
				logger.Info("battle interrupted",
					zap.String("game_id", game.ID),
					zap.Int("round", game.Round()),
				)
				return nil
			}
			if err != nil {
				return err
			}
			logger.Info("battle complete",
				zap.String("game_id", game.ID),
				zap.Stringer("outcome", outcome),
				zap.Int("rounds", game.Round()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
		StopFn: func() {
			if err := text.Err(); err != nil {
				logger.Warn("report output failed", zap.Error(err))
			}
			if scriptRep != nil && scriptRep.Err() != nil {
				logger.Warn("report script failed", zap.Error(scriptRep.Err()))
			}
			if scriptMgr != nil {
				scriptMgr.Close()
			}
		},
	})

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("battle error", zap.Error(err))
	}
}

func rosterSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
