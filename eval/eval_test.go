package eval

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabeta/game"
)

var positions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/P6k/8/8/8/8/8/K7 w - - 0 1",
}

func snapshot(t *testing.T, fen string) game.Grid {
	t.Helper()
	g, err := game.FromFEN(fen)
	require.NoError(t, err)
	return g.Snapshot()
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	assert.Equal(t, Score(0), Evaluate(game.New().Snapshot()))
}

func TestEvaluateColorSymmetry(t *testing.T) {
	for _, fen := range positions {
		grid := snapshot(t, fen)
		assert.Equal(t, Evaluate(grid), -Evaluate(grid.Mirror()), fen)
	}
}

func TestEvaluateMaterialAndBonus(t *testing.T) {
	var grid game.Grid
	grid[3][4] = game.Piece{Type: chess.Pawn, Color: game.White} // e4
	assert.Equal(t, PawnValue+20, Evaluate(grid))

	grid[4][3] = game.Piece{Type: chess.Queen, Color: game.Black} // d5
	assert.Equal(t, PawnValue+20-(QueenValue+5), Evaluate(grid))

	// a white king on g1 and a black king on g8 both sit on their castled square
	wk := game.Piece{Type: chess.King, Color: game.White}
	bk := game.Piece{Type: chess.King, Color: game.Black}
	assert.Equal(t, Score(30), Bonus(wk, 0, 6))
	assert.Equal(t, Score(30), Bonus(bk, 7, 6))
}

func TestEvaluateUnknownPiecePanics(t *testing.T) {
	var grid game.Grid
	grid[0][0] = game.Piece{Type: chess.PieceType(42), Color: game.White}
	assert.Panics(t, func() { Evaluate(grid) })
}

func TestTerminalCheckmate(t *testing.T) {
	g, err := game.FromMoves("f3", "e5", "g4", "Qh4#")
	require.NoError(t, err)
	score := Terminal(g)
	assert.Equal(t, Evaluate(g.Snapshot())-KingValue, score)
	assert.Less(t, int(score), int(-KingValue/2))

	quiet, err := game.FromMoves("e4", "e5")
	require.NoError(t, err)
	assert.Equal(t, Evaluate(quiet.Snapshot()), Terminal(quiet))
}

func TestSimpleValue(t *testing.T) {
	tests := []struct {
		t    chess.PieceType
		want Score
	}{
		{chess.Pawn, 1},
		{chess.Knight, 3},
		{chess.Bishop, 3},
		{chess.Rook, 5},
		{chess.Queen, 9},
		{chess.King, 0},
		{chess.NoPieceType, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SimpleValue(tt.t), tt.t.String())
	}
}
