package search

import (
	"time"
)

// Deepen runs Root at depth 1, 2, ... maxDepth under one shared deadline and
// returns the result of the deepest depth that completed. Depth 1 ignores the
// deadline so that a move is always produced when one exists.
func (s *Searcher) Deepen(maxDepth int) (Result, error) {
	if maxDepth < 1 {
		maxDepth = 1
	}
	if s.MaxDepth > 0 && maxDepth > s.MaxDepth {
		maxDepth = s.MaxDepth
	}
	start := s.now()
	deadline := start.Add(s.Timeout)

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		dl := deadline
		if depth == 1 {
			dl = time.Time{}
		}
		res, err := s.Root(depth, dl)
		if err != nil {
			return best, err
		}
		if res.TimedOut {
			s.log.Info().Int("depth", depth).Dur("elapsed", s.now().Sub(start)).Msg("reached time limit")
			break
		}
		best = res
		s.log.Debug().
			Int("depth", depth).
			Stringer("move", res.Move).
			Int("score", int(res.Score)).
			Int("nodes", res.Nodes).
			Msg("depth complete")
		if !res.Found {
			break
		}
	}
	return best, nil
}
