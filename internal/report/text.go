package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/bossbattle/internal/game/combat"
)

// Text writes human-readable round summaries to w.
type Text struct {
	w       io.Writer
	color   bool
	printer *message.Printer
	err     error
}

// NewText creates a Text reporter. Numbers are grouped in English style.
func NewText(w io.Writer, color bool) *Text {
	return &Text{w: w, color: color, printer: message.NewPrinter(language.English)}
}

// Err returns the first write error, if any. Later writes are skipped once
// an error has occurred.
func (t *Text) Err() error { return t.err }

func (t *Text) paint(color, s string) string {
	if !t.color {
		return s
	}
	return Colorize(color, s)
}

// Status prints the round header, its events, then the boss and hero lines.
func (t *Text) Status(s combat.Snapshot) {
	var b strings.Builder
	b.WriteString(t.paint(Bold, fmt.Sprintf("ROUND - %d ------------", s.Round)))
	b.WriteString("\n")
	for _, ev := range s.Events {
		if ev.Kind == combat.EventBossAttack {
			continue
		}
		b.WriteString(t.paint(Dim, "  * "+ev.Narrative))
		b.WriteString("\n")
	}
	b.WriteString(t.paint(Red, t.printer.Sprintf("BOSS %s health: %d damage: %d defence: %s",
		s.Boss.Name, s.Boss.Health, s.Boss.Damage, s.Defence)))
	b.WriteString("\n")
	for _, h := range s.Heroes {
		line := t.printer.Sprintf("%s health: %d damage: %d", h.Name, h.Health, h.Damage)
		switch {
		case h.Health == 0:
			line = t.paint(Dim, line)
		case h.Ability == s.Defence:
			line = t.paint(Yellow, line)
		default:
			line = t.paint(Green, line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	t.write(b.String())
}

// GameOver prints the winner.
func (t *Text) GameOver(o combat.Outcome, s combat.Snapshot) {
	var line string
	switch o {
	case combat.OutcomeHeroesWin:
		line = t.paint(BrightGreen, "Heroes won!!!")
	case combat.OutcomeBossWins:
		line = t.paint(BrightRed, "Boss won!!!")
	default:
		line = t.paint(Cyan, fmt.Sprintf("No winner after %d rounds (%s)", s.Round, o))
	}
	t.write(line + "\n")
}

func (t *Text) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.w, s); err != nil {
		t.err = fmt.Errorf("writing report: %w", err)
	}
}
