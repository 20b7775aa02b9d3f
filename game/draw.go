package game

import "github.com/notnil/chess"

const fiftyMovePlies = 100

func (g *Chess) drawMethod() chess.Method {
	if g.current.Status() == chess.Stalemate {
		return chess.Stalemate
	}
	grid := g.Snapshot()
	if insufficientMaterial(&grid) {
		return chess.InsufficientMaterial
	}
	if g.clock() >= fiftyMovePlies {
		return chess.FiftyMoveRule
	}
	if g.repetitions() >= 3 {
		return chess.ThreefoldRepetition
	}
	return chess.NoMethod
}

// repetitions counts how often the current position occurred. Only positions
// inside the half-move clock window can repeat.
func (g *Chess) repetitions() int {
	last := len(g.plies) - 1
	key := g.keyAt(last)
	n := 1
	window := g.clock()
	for i := last - 1; i >= -1 && window > 0; i, window = i-1, window-1 {
		if g.keyAt(i) == key {
			n++
		}
	}
	return n
}

// insufficientMaterial covers bare kings, a single minor piece, and any
// number of bishops all standing on one square color.
func insufficientMaterial(g *Grid) bool {
	var minors, bishops, light int
	for r := 0; r < RowNum; r++ {
		for f := 0; f < ColNum; f++ {
			switch g[r][f].Type {
			case chess.NoPieceType, chess.King:
			case chess.Knight:
				minors++
			case chess.Bishop:
				minors++
				bishops++
				if (r+f)%2 == 1 {
					light++
				}
			default:
				return false
			}
		}
	}
	if minors <= 1 {
		return true
	}
	return bishops == minors && (light == 0 || light == bishops)
}
