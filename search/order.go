package search

import (
	"golang.org/x/exp/slices"

	"github.com/notnil/chess"

	"github.com/alphabeta/eval"
	"github.com/alphabeta/game"
)

// MoveScore is the cheap ordering heuristic: the value of what is captured
// plus what a promotion gains over the pawn.
func MoveScore(m game.Move) eval.Score {
	var score eval.Score
	if m.IsCapture() {
		score += eval.SimpleValue(m.Captured)
	}
	if m.IsPromotion() {
		score += eval.SimpleValue(m.Promo) - eval.SimpleValue(chess.Pawn)
	}
	return score
}

// Order returns the moves sorted best first by MoveScore. Ties keep their
// original order. The input slice is left untouched.
func Order(moves []game.Move) []game.Move {
	retVal := make([]game.Move, len(moves))
	copy(retVal, moves)
	slices.SortStableFunc(retVal, func(a, b game.Move) bool {
		return MoveScore(a) > MoveScore(b)
	})
	return retVal
}
