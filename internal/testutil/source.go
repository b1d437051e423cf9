// Package testutil provides deterministic random sources and reporting
// doubles shared by the engine's tests.
package testutil

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/cory-johannsen/bossbattle/internal/game/dice"
)

// SeqSource replays a fixed sequence of draws and panics when a value falls
// outside the requested range or the sequence runs out.
type SeqSource struct {
	vals []int
	next int
}

// NewSeqSource returns a source that yields vals in order.
//
// Postcondition: an empty vals yields a source that panics on the first draw,
// which asserts that no randomness is consumed.
func NewSeqSource(vals ...int) *SeqSource {
	return &SeqSource{vals: vals}
}

// Intn returns the next queued value.
//
// Precondition: the queued value must lie in [0, n).
func (s *SeqSource) Intn(n int) int {
	if s.next >= len(s.vals) {
		panic(fmt.Sprintf("testutil: SeqSource exhausted after %d draws", s.next))
	}
	v := s.vals[s.next]
	s.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: SeqSource value %d outside [0,%d)", v, n))
	}
	return v
}

// Remaining reports how many queued values have not been drawn.
func (s *SeqSource) Remaining() int { return len(s.vals) - s.next }

// ConstSource returns the same value for every draw.
type ConstSource int

// Intn returns the constant.
//
// Precondition: the constant must be less than n.
func (c ConstSource) Intn(n int) int {
	if int(c) >= n {
		panic(fmt.Sprintf("testutil: ConstSource %d outside [0,%d)", int(c), n))
	}
	return int(c)
}

// RapidSource draws every value from a property test's generator so rapid
// can shrink failing battles.
func RapidSource(t *rapid.T) dice.Source {
	return rapidSource{t: t}
}

type rapidSource struct{ t *rapid.T }

func (r rapidSource) Intn(n int) int { return rapid.IntRange(0, n-1).Draw(r.t, "draw") }
