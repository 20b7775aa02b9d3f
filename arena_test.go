package alphabeta

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabeta/game"
)

func TestArenaPlaysToMate(t *testing.T) {
	g, err := game.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	fen := g.FEN()

	white := newAgent(t, testConfig("white"))
	black := newAgent(t, testConfig("black"))
	arena := NewArena(g, white, black, 10, zerolog.Nop())

	rec, err := arena.Play()
	require.NoError(t, err)
	require.Len(t, rec.Moves, 1)
	assert.Equal(t, "Ra8#", rec.Moves[0])
	assert.Equal(t, chess.WhiteWon, rec.Outcome)
	assert.Equal(t, chess.Checkmate, rec.Method)
	assert.Equal(t, "1. Ra8# 1-0", rec.String())

	assert.Equal(t, float32(1), white.Wins)
	assert.Equal(t, float32(1), black.Loss)
	assert.Equal(t, chess.White, white.Player)
	assert.Equal(t, chess.Black, black.Player)
	assert.Equal(t, fen, arena.State().FEN(), "game is reset after play")

	stats := arena.Stats()
	assert.Equal(t, 1, stats.Searches)
	assert.Greater(t, stats.MeanNodes, 0.0)

	arena.Reset()
	assert.Zero(t, white.Wins)
	assert.Zero(t, black.Loss)
	assert.Equal(t, Stats{}, arena.Stats())
}

func TestArenaPlyLimit(t *testing.T) {
	white := newAgent(t, testConfig("white"))
	black := newAgent(t, testConfig("black"))
	arena := NewArena(game.New(), white, black, 4, zerolog.Nop())

	rec, err := arena.Play()
	require.NoError(t, err)
	assert.Len(t, rec.Moves, 4)
	assert.Equal(t, chess.NoOutcome, rec.Outcome)
	assert.Zero(t, white.Wins+white.Loss+white.Draw)
	assert.Empty(t, arena.State().History())
}
