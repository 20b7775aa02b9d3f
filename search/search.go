// Package search picks moves with iterative-deepening alpha-beta minimax.
//
// A Searcher borrows one game.State for the duration of a call: every move it
// applies is undone before the call returns, including when time runs out.
package search

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/alphabeta/eval"
	"github.com/alphabeta/game"
)

// Config is the structure to configure the search.
type Config struct {
	Timeout  time.Duration `json:"timeout"`   // budget shared by all depths of one Deepen call
	MaxDepth int           `json:"max_depth"` // deepest iteration Deepen will attempt
}

func DefaultConfig() Config {
	return Config{
		Timeout:  2500 * time.Millisecond,
		MaxDepth: 4,
	}
}

func (c Config) IsValid() bool {
	return c.Timeout >= 0 && c.MaxDepth >= 1
}

// errTimedOut unwinds the recursion once the deadline has passed.
var errTimedOut = errors.New("search timed out")

// Line is a root move with the score the search gave it.
type Line struct {
	Move  game.Move
	Score eval.Score
}

// Result is the outcome of a root search.
type Result struct {
	Move     game.Move
	Found    bool // false when the position has no legal move
	Score    eval.Score
	Depth    int
	Nodes    int
	TimedOut bool   // the depth was cut short by the deadline
	Lines    []Line // root moves in the order they were searched
}

// Searcher runs alpha-beta over a borrowed position.
type Searcher struct {
	Config
	state game.State
	log   zerolog.Logger
	now   func() time.Time

	deadline time.Time
	nodes    int
}

// New creates a Searcher over state.
func New(state game.State, conf Config, log zerolog.Logger) *Searcher {
	return &Searcher{
		Config: conf,
		state:  state,
		log:    log,
		now:    time.Now,
	}
}

// SetClock replaces the wall clock, mostly for tests.
func (s *Searcher) SetClock(now func() time.Time) { s.now = now }

// expired reports whether the deadline has passed. A zero deadline never expires.
func (s *Searcher) expired() bool {
	return !s.deadline.IsZero() && s.now().After(s.deadline)
}

// visit applies m, runs fn, and always undoes m afterwards.
func (s *Searcher) visit(m game.Move, fn func() (eval.Score, error)) (score eval.Score, err error) {
	if _, err = s.state.Apply(m); err != nil {
		return 0, errors.WithMessagef(err, "search: apply %v", m.UCI())
	}
	defer func() {
		if uerr := s.state.Undo(); uerr != nil {
			err = multierror.Append(err, errors.WithMessagef(uerr, "search: undo %v", m.UCI()))
		}
	}()
	return fn()
}
