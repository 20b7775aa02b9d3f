package game

import (
	"fmt"

	"github.com/notnil/chess"
)

// Move is a chess move with the metadata the rules engine resolved for it.
type Move struct {
	From     chess.Square
	To       chess.Square
	Promo    chess.PieceType // NoPieceType unless the move promotes
	Piece    chess.PieceType // moving piece
	Captured chess.PieceType // NoPieceType unless the move captures
	Color    Color
	Check    bool
	SAN      string // only filled for verbose generation
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool { return m.Captured != chess.NoPieceType }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promo != chess.NoPieceType }

// Same reports whether two moves describe the same from/to/promotion.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promo == o.Promo
}

// UCI returns the move in long algebraic form, e.g. e7e8q.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promo.String()
	}
	return s
}

func (m Move) String() string {
	if m.SAN != "" {
		return m.SAN
	}
	return m.UCI()
}

func (m Move) Format(s fmt.State, c rune) {
	switch c {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "{%v %v->%v Promo: %v Captured: %v Check: %v}", m.Piece, m.From, m.To, m.Promo, m.Captured, m.Check)
			return
		}
		fallthrough
	default:
		fmt.Fprint(s, m.String())
	}
}

type moveOptions struct {
	from    chess.Square
	scoped  bool
	verbose bool
}

// MoveOption configures LegalMoves.
type MoveOption func(*moveOptions)

// From limits generation to moves starting on sq.
func From(sq chess.Square) MoveOption {
	return func(o *moveOptions) {
		o.from = sq
		o.scoped = true
	}
}

// Verbose fills in the SAN rendering of every generated move.
func Verbose() MoveOption {
	return func(o *moveOptions) { o.verbose = true }
}
