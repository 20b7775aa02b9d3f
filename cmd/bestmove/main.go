package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chewxy/math32"
	_ "github.com/joho/godotenv/autoload"

	"github.com/alphabeta"
	"github.com/alphabeta/eval"
	"github.com/alphabeta/game"
	"github.com/alphabeta/logx"
	"github.com/alphabeta/search"
)

var (
	fen       = flag.String("fen", "", "position to search; empty is the starting position")
	moves     = flag.String("moves", "", "space separated SAN moves played from the starting position (ignored with -fen)")
	depth     = flag.Int("depth", 4, "maximum search depth")
	timeoutMs = flag.Int("timeout_ms", 2500, "search budget in milliseconds")
	noBook    = flag.Bool("no_book", false, "do not consult the opening book")
	dotPath   = flag.String("dot", "", "write the root search lines as a DOT graph to this file")
	logLevel  = flag.String("log_level", "info", "zerolog level")
)

// advantage maps a score to the fill of an evaluation bar, in percent for
// Black, clamped so neither side ever fills it completely.
func advantage(score eval.Score) float32 {
	pawns := float32(score) / float32(eval.PawnValue)
	pct := (20 - pawns) / 40 * 100
	return math32.Max(5, math32.Min(95, pct))
}

func main() {
	flag.Parse()
	log := logx.NewLogger(*logLevel)

	var (
		g   *game.Chess
		err error
	)
	switch {
	case *fen != "":
		g, err = game.FromFEN(*fen)
	default:
		g, err = game.FromMoves(strings.Fields(*moves)...)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("load position")
	}

	conf := alphabeta.DefaultConfig()
	conf.Name = "bestmove"
	conf.Search.Timeout = time.Duration(*timeoutMs) * time.Millisecond
	conf.Search.MaxDepth = *depth
	conf.MinDepth, conf.MaxDepth = 1, *depth
	conf.NoBook = *noBook
	conf.Logger = &log

	agent, err := alphabeta.New(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent")
	}

	m, err := agent.ChooseMove(g, *depth)
	if err != nil {
		fmt.Printf("error choosing move: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(g)
	if agent.FromBook() {
		fmt.Printf("best move %v (book)\n", m)
		return
	}
	res := agent.Last()
	fmt.Printf("best move %v score %d depth %d nodes %d\n", m, res.Score, res.Depth, res.Nodes)
	fmt.Printf("advantage bar %.0f%%\n", advantage(res.Score))

	if *dotPath != "" {
		graph, err := search.Graph(res)
		if err != nil {
			log.Fatal().Err(err).Msg("build graph")
		}
		if err := os.WriteFile(*dotPath, []byte(graph.String()), 0644); err != nil {
			log.Fatal().Err(err).Msg("write graph")
		}
	}
}
