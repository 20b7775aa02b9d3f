package game

import "github.com/notnil/chess"

var (
	knightJumps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	orthogonal  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func onBoard(r, f int) bool { return r >= 0 && r < RowNum && f >= 0 && f < ColNum }

// kingSquare finds the king of color c. ok is false when there is none.
func (g *Grid) kingSquare(c Color) (r, f int, ok bool) {
	for r = 0; r < RowNum; r++ {
		for f = 0; f < ColNum; f++ {
			if p := g[r][f]; p.Type == chess.King && p.Color == c {
				return r, f, true
			}
		}
	}
	return 0, 0, false
}

// attacked reports whether any piece of color by attacks (r, f).
func (g *Grid) attacked(r, f int, by Color) bool {
	is := func(rr, ff int, types ...chess.PieceType) bool {
		if !onBoard(rr, ff) {
			return false
		}
		p := g[rr][ff]
		if p.Color != by {
			return false
		}
		for _, t := range types {
			if p.Type == t {
				return true
			}
		}
		return false
	}

	// pawns attack forward diagonally, so look backwards from the target
	dir := -1
	if by == Black {
		dir = 1
	}
	if is(r+dir, f-1, chess.Pawn) || is(r+dir, f+1, chess.Pawn) {
		return true
	}
	for _, j := range knightJumps {
		if is(r+j[0], f+j[1], chess.Knight) {
			return true
		}
	}
	for _, s := range kingSteps {
		if is(r+s[0], f+s[1], chess.King) {
			return true
		}
	}
	slide := func(dirs [4][2]int, types ...chess.PieceType) bool {
		for _, d := range dirs {
			rr, ff := r+d[0], f+d[1]
			for onBoard(rr, ff) {
				if !g[rr][ff].Empty() {
					if is(rr, ff, types...) {
						return true
					}
					break
				}
				rr, ff = rr+d[0], ff+d[1]
			}
		}
		return false
	}
	return slide(orthogonal, chess.Rook, chess.Queen) || slide(diagonal, chess.Bishop, chess.Queen)
}

// InCheck reports whether the king of color c is attacked.
func (g *Grid) InCheck(c Color) bool {
	r, f, ok := g.kingSquare(c)
	if !ok {
		return false
	}
	return g.attacked(r, f, c.Other())
}
