package search

import (
	"time"

	"github.com/pkg/errors"

	"github.com/alphabeta/eval"
	"github.com/alphabeta/game"
)

// Root searches the current position to depth plies and returns the best move.
// The deadline is checked at every interior node; a zero deadline disables it.
// When time runs out the best move found so far is returned with TimedOut set.
func (s *Searcher) Root(depth int, deadline time.Time) (Result, error) {
	s.deadline = deadline
	s.nodes = 0

	maximizing := s.state.Turn() == game.White
	alpha, beta := -eval.Inf, eval.Inf

	retVal := Result{Depth: depth, Score: worst(maximizing)}
	moves := Order(s.state.LegalMoves(game.Verbose()))
	if len(moves) == 0 {
		retVal.Score = eval.Terminal(s.state)
		return retVal, nil
	}

	for _, m := range moves {
		m := m
		value, err := s.visit(m, func() (eval.Score, error) {
			return s.alphaBeta(depth-1, !maximizing, alpha, beta)
		})
		if errors.Cause(err) == errTimedOut {
			retVal.TimedOut = true
			break
		}
		if err != nil {
			return retVal, err
		}
		retVal.Lines = append(retVal.Lines, Line{Move: m, Score: value})

		if maximizing {
			if !retVal.Found || value > retVal.Score {
				retVal.Score, retVal.Move, retVal.Found = value, m, true
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if !retVal.Found || value < retVal.Score {
				retVal.Score, retVal.Move, retVal.Found = value, m, true
			}
			if value < beta {
				beta = value
			}
		}
		if beta <= alpha {
			break
		}
		if s.expired() {
			retVal.TimedOut = true
			break
		}
	}
	retVal.Nodes = s.nodes
	return retVal, nil
}

// alphaBeta is plain minimax with alpha-beta pruning. Both sides share the
// same (alpha, beta) window and scores stay in White's frame.
func (s *Searcher) alphaBeta(depth int, maximizing bool, alpha, beta eval.Score) (eval.Score, error) {
	s.nodes++
	if depth <= 0 || s.state.IsCheckmate() || s.state.IsDraw() {
		return eval.Terminal(s.state), nil
	}
	if s.expired() {
		return 0, errTimedOut
	}

	moves := Order(s.state.LegalMoves())
	best := worst(maximizing)
	for _, m := range moves {
		value, err := s.visit(m, func() (eval.Score, error) {
			return s.alphaBeta(depth-1, !maximizing, alpha, beta)
		})
		if err != nil {
			return 0, err
		}
		if maximizing {
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best, nil
}

func worst(maximizing bool) eval.Score {
	if maximizing {
		return -eval.Inf
	}
	return eval.Inf
}
