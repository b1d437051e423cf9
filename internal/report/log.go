package report

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/bossbattle/internal/game/combat"
)

// Log emits one structured entry per snapshot.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a Log reporter.
//
// Precondition: logger must be non-nil.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

// Status logs, at debug level, boss state and the number of heroes still standing.
func (l *Log) Status(s combat.Snapshot) {
	alive := 0
	for _, h := range s.Heroes {
		if h.Health > 0 {
			alive++
		}
	}
	l.logger.Debug("round status",
		zap.String("game_id", s.GameID),
		zap.Int("round", s.Round),
		zap.Int("boss_health", s.Boss.Health),
		zap.Stringer("defence", s.Defence),
		zap.Int("heroes_alive", alive),
		zap.Int("events", len(s.Events)),
	)
}

// GameOver logs the outcome.
func (l *Log) GameOver(o combat.Outcome, s combat.Snapshot) {
	l.logger.Info("battle finished",
		zap.String("game_id", s.GameID),
		zap.Stringer("outcome", o),
		zap.Int("rounds", s.Round),
	)
}
