package alphabeta

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/alphabeta/game"
)

// Arena lets two agents play each other on one game.
type Arena struct {
	game         game.State
	white, black *Agent
	maxPlies     int
	log          zerolog.Logger

	// per searched move, across all games played in this arena
	depths []float64
	nodes  []float64
}

// Record is a finished (or abandoned) game.
type Record struct {
	Moves   []string
	Outcome chess.Outcome
	Method  chess.Method
}

// Stats summarizes the searches run in an arena.
type Stats struct {
	Searches  int
	MeanDepth float64
	StdDepth  float64
	MeanNodes float64
}

// NewArena makes an arena. A maxPlies of 0 plays until the game ends.
func NewArena(g game.State, white, black *Agent, maxPlies int, log zerolog.Logger) *Arena {
	return &Arena{
		game:     g,
		white:    white,
		black:    black,
		maxPlies: maxPlies,
		log:      log,
	}
}

// Play plays one game from the arena's starting position, tallies the result
// on both agents, and resets the game afterwards.
func (a *Arena) Play() (Record, error) {
	a.white.Player = chess.White
	a.black.Player = chess.Black
	defer a.game.Reset()

	for ply := 0; ; ply++ {
		if ended, _ := a.game.Ended(); ended {
			break
		}
		if a.maxPlies > 0 && ply >= a.maxPlies {
			a.log.Info().Int("plies", ply).Msg("ply limit reached")
			break
		}

		agent := a.toMove()
		m, err := agent.ChooseMove(a.game, agent.Depth())
		if err != nil {
			return Record{}, errors.WithMessagef(err, "%s at ply %d", agent.Name, ply)
		}
		if _, err := a.game.Apply(m); err != nil {
			return Record{}, errors.WithMessagef(err, "%s at ply %d", agent.Name, ply)
		}
		if !agent.FromBook() {
			last := agent.Last()
			a.depths = append(a.depths, float64(last.Depth))
			a.nodes = append(a.nodes, float64(last.Nodes))
		}
		a.log.Debug().Int("ply", ply).Str("agent", agent.Name).Stringer("move", m).Msg("played")
	}

	outcome, method := a.game.Outcome()
	rec := Record{
		Moves:   a.game.History(),
		Outcome: outcome,
		Method:  method,
	}

	switch outcome {
	case chess.WhiteWon:
		a.white.Wins++
		a.black.Loss++
	case chess.BlackWon:
		a.black.Wins++
		a.white.Loss++
	case chess.Draw:
		a.white.Draw++
		a.black.Draw++
	}
	a.log.Info().Str("result", string(outcome)).Str("method", fmt.Sprint(method)).Int("plies", len(rec.Moves)).Msg("game over")
	return rec, nil
}

// Reset clears the win/loss/draw tallies and the search statistics.
func (a *Arena) Reset() {
	a.white.resetStats()
	a.black.resetStats()
	a.depths = a.depths[:0]
	a.nodes = a.nodes[:0]
}

// Stats summarizes every searched move played so far.
func (a *Arena) Stats() Stats {
	if len(a.depths) == 0 {
		return Stats{}
	}
	return Stats{
		Searches:  len(a.depths),
		MeanDepth: stat.Mean(a.depths, nil),
		StdDepth:  stat.StdDev(a.depths, nil),
		MeanNodes: stat.Mean(a.nodes, nil),
	}
}

// State of the game
func (a *Arena) State() game.State { return a.game }

func (a *Arena) toMove() *Agent {
	if a.game.Turn() == chess.White {
		return a.white
	}
	return a.black
}

// String renders the record as numbered movetext followed by the result.
func (r Record) String() string {
	var sb strings.Builder
	for i, m := range r.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m)
		sb.WriteByte(' ')
	}
	sb.WriteString(string(r.Outcome))
	return sb.String()
}
