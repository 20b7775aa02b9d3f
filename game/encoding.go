package game

import "github.com/notnil/chess"

// Piece is an optional {type, color} pair; the zero value is an empty square.
type Piece struct {
	Type  chess.PieceType
	Color Color
}

// Empty reports whether no piece stands on the square.
func (p Piece) Empty() bool { return p.Type == chess.NoPieceType }

// Grid is a board snapshot indexed [rank][file], rank 0 being the first rank.
type Grid [RowNum][ColNum]Piece

// At returns the piece on sq.
func (g Grid) At(sq chess.Square) Piece {
	return g[int(sq.Rank())][int(sq.File())]
}

// Mirror flips the board vertically and swaps the colors of every piece.
func (g Grid) Mirror() Grid {
	var m Grid
	for r := 0; r < RowNum; r++ {
		for f := 0; f < ColNum; f++ {
			p := g[r][f]
			if !p.Empty() {
				p.Color = p.Color.Other()
			}
			m[RowNum-1-r][f] = p
		}
	}
	return m
}

// Snap encodes a notnil board into a Grid.
func Snap(b *chess.Board) Grid {
	var g Grid
	for i := 0; i < RowNum*ColNum; i++ {
		sq := chess.Square(i)
		p := b.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		g[int(sq.Rank())][int(sq.File())] = Piece{Type: p.Type(), Color: p.Color()}
	}
	return g
}
