package alphabeta

import (
	"math/rand"
	"sync"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/alphabeta/book"
	"github.com/alphabeta/game"
	"github.com/alphabeta/search"
)

// An Agent is an AI player. One agent runs at most one search at a time.
type Agent struct {
	Name   string
	Player chess.Color
	Book   *book.Book

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	conf     Config
	rand     *rand.Rand
	log      zerolog.Logger
	last     search.Result
	fromBook bool
}

// ChooseMove returns the move to play in g, searching at most depth plies.
// g is borrowed for the call and left as it was found.
func (a *Agent) ChooseMove(g game.State, depth int) (game.Move, error) {
	a.Lock()
	defer a.Unlock()

	a.last, a.fromBook = search.Result{}, false
	legal := g.LegalMoves(game.Verbose())
	if len(legal) == 0 {
		return game.Move{}, ErrNoMoves
	}

	if g.FromStart() {
		if m, ok := a.Book.Lookup(g.History(), legal); ok {
			a.fromBook = true
			a.log.Debug().Stringer("move", m).Msg("book move")
			return m, nil
		}
	}

	s := search.New(g, a.conf.Search, a.log)
	res, err := s.Deepen(depth)
	if err != nil {
		return game.Move{}, err
	}
	a.last = res
	if !res.Found {
		return game.Move{}, ErrNoMoves
	}
	a.log.Info().
		Stringer("move", res.Move).
		Int("score", int(res.Score)).
		Int("depth", res.Depth).
		Msg("search move")
	return res.Move, nil
}

// Depth draws the search depth for the next turn from [MinDepth, MaxDepth].
func (a *Agent) Depth() int {
	a.Lock()
	defer a.Unlock()
	return a.conf.MinDepth + a.rand.Intn(a.conf.MaxDepth-a.conf.MinDepth+1)
}

// Last returns the search result behind the previous ChooseMove.
// It is the zero Result when that move came from the book.
func (a *Agent) Last() search.Result {
	a.Lock()
	defer a.Unlock()
	return a.last
}

// FromBook reports whether the previous move came from the opening book.
func (a *Agent) FromBook() bool {
	a.Lock()
	defer a.Unlock()
	return a.fromBook
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}
