// Package alphabeta plays chess with an iterative-deepening alpha-beta search.
//
// An Agent is the entry point: given a game.State it answers one move per turn,
// from the opening book when the game is still in a known line and from the
// search otherwise. An Arena lets two agents play a whole game.
package alphabeta

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/alphabeta/book"
	"github.com/alphabeta/logx"
)

// ErrNoMoves is returned by ChooseMove when the side to move has no legal move.
var ErrNoMoves = errors.New("no legal moves")

// New creates an Agent from a configuration.
func New(conf Config) (*Agent, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	var b *book.Book
	switch {
	case conf.NoBook:
		b = book.New(r)
	case conf.BookPath != "":
		var err error
		if b, err = book.LoadFile(conf.BookPath, r); err != nil {
			return nil, err
		}
	default:
		b = book.Default(r)
	}

	a := &Agent{
		Name: conf.Name,
		Book: b,
		conf: conf,
		rand: r,
	}
	if conf.Logger != nil {
		a.log = *conf.Logger
	} else {
		a.log = logx.NewLogger(conf.LogLevel)
	}
	a.log = a.log.With().Str("agent", conf.Name).Logger()
	return a, nil
}
