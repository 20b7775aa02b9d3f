package game

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

const (
	RowNum = 8
	ColNum = 8
)

var (
	// ErrIllegalMove is returned when a move is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNothingToUndo is returned by Undo when no move has been applied.
	ErrNothingToUndo = errors.New("no move to undo")
)

// State is a single mutable chess position that searches borrow.
// Every Apply must be paired with an Undo before the position is handed back.
type State interface {
	// These methods represent the game state
	Turn() Color                            // Turn returns the color to move next.
	MoveNumber() int                        // full move number, as in FEN.
	Snapshot() Grid                         // 8x8 copy of the board.
	History() []string                      // SAN of every move applied since construction.
	FromStart() bool                        // does History begin at the standard starting position?
	LegalMoves(opts ...MoveOption) []Move   // legal moves, optionally scoped or verbose.
	FEN() string                            // FEN of the current position.
	Outcome() (chess.Outcome, chess.Method) // result of the game so far.

	// Meta-game stuff
	Ended() (ended bool, winner Color) // has the game ended? if yes, then who's the winner?
	IsCheckmate() bool
	IsDraw() bool
	InCheck() bool

	// interactions
	Apply(m Move) (Move, error) // mutates the position in place and returns the resolved move.
	Undo() error                // reverts the most recent Apply.
	Reset()                     // undo everything back to the construction position.
}

// Color is the side of a piece or the side to move.
type Color = chess.Color

const (
	White   = chess.White
	Black   = chess.Black
	NoColor = chess.NoColor
)
