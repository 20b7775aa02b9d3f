// Package eval scores chess positions with material and piece-square tables.
// Scores are always from White's point of view.
package eval

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/alphabeta/game"
)

// Score is measured in centipawns, positive when White is better.
type Score int

const (
	PawnValue   Score = 100
	KnightValue Score = 320
	BishopValue Score = 330
	RookValue   Score = 500
	QueenValue  Score = 900
	KingValue   Score = 20000

	// Inf bounds every reachable score; used for full alpha-beta windows.
	Inf Score = 1 << 30
)

func unknownPiece(t chess.PieceType) string {
	return fmt.Sprintf("eval: unknown piece type %d", int(t))
}

// Value returns the material value of a piece type.
func Value(t chess.PieceType) Score {
	switch t {
	case chess.Pawn:
		return PawnValue
	case chess.Knight:
		return KnightValue
	case chess.Bishop:
		return BishopValue
	case chess.Rook:
		return RookValue
	case chess.Queen:
		return QueenValue
	case chess.King:
		return KingValue
	}
	panic(unknownPiece(t))
}

// SimpleValue is the coarse pawn-unit scale used to rank moves.
// Unknown and empty types are worth nothing.
func SimpleValue(t chess.PieceType) Score {
	switch t {
	case chess.Pawn:
		return 1
	case chess.Knight, chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	}
	return 0
}

// Bonus returns the piece-square bonus of p standing on (rank, file).
// Black reads the tables mirrored vertically.
func Bonus(p game.Piece, rank, file int) Score {
	row := game.RowNum - 1 - rank
	if p.Color == game.Black {
		row = rank
	}
	return table(p.Type)[row][file]
}

// Evaluate sums material and position over the board, White minus Black.
// It panics on a piece type the rules engine should never produce.
func Evaluate(g game.Grid) Score {
	var total Score
	for r := 0; r < game.RowNum; r++ {
		for f := 0; f < game.ColNum; f++ {
			p := g[r][f]
			if p.Empty() {
				continue
			}
			v := Value(p.Type) + Bonus(p, r, f)
			if p.Color == game.White {
				total += v
			} else {
				total -= v
			}
		}
	}
	return total
}

// Terminal scores a leaf. A checkmated side loses its king on top of the board score.
func Terminal(s game.State) Score {
	score := Evaluate(s.Snapshot())
	if s.IsCheckmate() {
		if s.Turn() == game.White {
			return score - KingValue
		}
		return score + KingValue
	}
	return score
}
