package search

import (
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabeta/eval"
	"github.com/alphabeta/game"
)

const backRankMate = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

func newSearcher(t *testing.T, g game.State) *Searcher {
	t.Helper()
	return New(g, DefaultConfig(), zerolog.Nop())
}

func mustFEN(t *testing.T, fen string) *game.Chess {
	t.Helper()
	g, err := game.FromFEN(fen)
	require.NoError(t, err)
	return g
}

// minimax is the unpruned reference the pruned search must agree with.
func minimax(t *testing.T, g game.State, depth int, maximizing bool) eval.Score {
	if depth <= 0 || g.IsCheckmate() || g.IsDraw() {
		return eval.Terminal(g)
	}
	best := worst(maximizing)
	for _, m := range g.LegalMoves() {
		_, err := g.Apply(m)
		require.NoError(t, err)
		v := minimax(t, g, depth-1, !maximizing)
		require.NoError(t, g.Undo())
		if maximizing && v > best || !maximizing && v < best {
			best = v
		}
	}
	return best
}

func TestRootDepthOneFromStart(t *testing.T) {
	g := game.New()
	res, err := newSearcher(t, g).Root(1, time.Time{})
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, eval.Score(50), res.Score)
	assert.Contains(t, []string{"Nc3", "Nf3"}, res.Move.SAN)
	assert.Equal(t, 20, res.Nodes)
	assert.Len(t, res.Lines, 20)
	assert.False(t, res.TimedOut)
}

func TestRootFindsMateInOne(t *testing.T) {
	for _, depth := range []int{1, 2, 3} {
		g := mustFEN(t, backRankMate)
		res, err := newSearcher(t, g).Root(depth, time.Time{})
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, chess.A1, res.Move.From, "depth %d", depth)
		assert.Equal(t, chess.A8, res.Move.To, "depth %d", depth)
		assert.Greater(t, int(res.Score), int(eval.KingValue/2))
	}
}

func TestRootBlackMinimizes(t *testing.T) {
	// mirror image of the back rank mate
	g := mustFEN(t, "r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	res, err := newSearcher(t, g).Root(1, time.Time{})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, chess.A1, res.Move.To)
	assert.Less(t, int(res.Score), int(-eval.KingValue/2))
}

func TestPruningMatchesMinimax(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{backRankMate, 3},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 3},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", 2},
		{"4k3/8/8/3q4/4P3/8/8/4K3 b - - 0 1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			maximizing := g.Turn() == game.White

			var want eval.Score
			if maximizing {
				want = -eval.Inf
			} else {
				want = eval.Inf
			}
			for _, m := range g.LegalMoves() {
				_, err := g.Apply(m)
				require.NoError(t, err)
				v := minimax(t, g, tt.depth-1, !maximizing)
				require.NoError(t, g.Undo())
				if maximizing && v > want || !maximizing && v < want {
					want = v
				}
			}

			res, err := newSearcher(t, g).Root(tt.depth, time.Time{})
			require.NoError(t, err)
			assert.Equal(t, want, res.Score)
		})
	}
}

func TestDeeperSearchNeverWorseForMover(t *testing.T) {
	shallow, err := newSearcher(t, mustFEN(t, backRankMate)).Root(1, time.Time{})
	require.NoError(t, err)
	deep, err := newSearcher(t, mustFEN(t, backRankMate)).Root(3, time.Time{})
	require.NoError(t, err)
	assert.LessOrEqual(t, int(shallow.Score), int(deep.Score))
}

func TestSearchLeavesPositionUntouched(t *testing.T) {
	g, err := game.FromMoves("e4", "e5", "Nf3", "Nc6")
	require.NoError(t, err)
	fen, grid, history := g.FEN(), g.Snapshot(), g.History()

	_, err = newSearcher(t, g).Root(3, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, fen, g.FEN())
	assert.Equal(t, grid, g.Snapshot())
	assert.Equal(t, history, g.History())

	// also when the search is cut short
	s := newSearcher(t, g)
	s.SetClock(steppingClock(time.Millisecond))
	res, err := s.Root(3, time.Unix(0, 0))
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.Equal(t, fen, g.FEN())
	assert.Equal(t, history, g.History())
}

func TestRootWithoutMoves(t *testing.T) {
	g, err := game.FromMoves("f3", "e5", "g4", "Qh4#")
	require.NoError(t, err)
	res, err := newSearcher(t, g).Root(2, time.Time{})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, eval.Terminal(g), res.Score)
	assert.Empty(t, res.Lines)

	stalemate := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res, err = newSearcher(t, stalemate).Root(2, time.Time{})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, eval.Evaluate(stalemate.Snapshot()), res.Score)
}
