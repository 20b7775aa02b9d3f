// This command lets two alpha-beta agents play each other and prints every
// game as numbered movetext.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/alphabeta"
	"github.com/alphabeta/game"
	"github.com/alphabeta/logx"
)

var (
	numGameFlag = flag.Int("num_game", envInt("ALPHABETA_NUM_GAME", 1), "number of game to play")
	maxPlies    = flag.Int("max_plies", envInt("ALPHABETA_MAX_PLIES", 200), "abandon a game after this many plies (0 = never)")
	minDepth    = flag.Int("min_depth", envInt("ALPHABETA_MIN_DEPTH", 3), "minimum search depth per move")
	maxDepth    = flag.Int("max_depth", envInt("ALPHABETA_MAX_DEPTH", 4), "maximum search depth per move")
	timeoutMs   = flag.Int("timeout_ms", envInt("ALPHABETA_TIMEOUT_MS", 2500), "search budget per move in milliseconds")
	bookPath    = flag.String("book", os.Getenv("ALPHABETA_BOOK"), "opening book file (.zst allowed); empty uses the built-in book")
	fen         = flag.String("fen", os.Getenv("ALPHABETA_FEN"), "starting position; empty is the standard one")
	seed        = flag.Int64("seed", int64(envInt("ALPHABETA_SEED", 0)), "random seed (0 = clock)")
	logLevel    = flag.String("log_level", envOr("ALPHABETA_LOG_LEVEL", "info"), "zerolog level")
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func main() {
	flag.Parse()
	log := logx.NewLogger(*logLevel)

	conf := alphabeta.DefaultConfig()
	conf.Search.Timeout = time.Duration(*timeoutMs) * time.Millisecond
	conf.Search.MaxDepth = *maxDepth
	conf.MinDepth = *minDepth
	conf.MaxDepth = *maxDepth
	conf.BookPath = *bookPath
	conf.Seed = *seed
	conf.Logger = &log

	whiteConf, blackConf := conf, conf
	whiteConf.Name = "white"
	blackConf.Name = "black"
	if *seed != 0 {
		blackConf.Seed = *seed + 1
	}
	white, err := alphabeta.New(whiteConf)
	if err != nil {
		log.Fatal().Err(err).Msg("create white agent")
	}
	black, err := alphabeta.New(blackConf)
	if err != nil {
		log.Fatal().Err(err).Msg("create black agent")
	}

	var g game.State = game.New()
	if *fen != "" {
		if g, err = game.FromFEN(*fen); err != nil {
			log.Fatal().Err(err).Msg("load position")
		}
	}

	arena := alphabeta.NewArena(g, white, black, *maxPlies, log)
	start := time.Now()
	for i := 0; i < *numGameFlag; i++ {
		rec, err := arena.Play()
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("play")
		}
		fmt.Println(rec)
	}

	stats := arena.Stats()
	log.Info().
		Float32("white_wins", white.Wins).
		Float32("black_wins", black.Wins).
		Float32("draws", white.Draw).
		Int("searches", stats.Searches).
		Float64("mean_depth", stats.MeanDepth).
		Float64("std_depth", stats.StdDepth).
		Float64("mean_nodes", stats.MeanNodes).
		Dur("took", time.Since(start)).
		Msg("done")
}
