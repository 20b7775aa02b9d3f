package game

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// ply is one applied move together with what is needed to take it back.
type ply struct {
	prev  *chess.Position
	raw   *chess.Move
	move  Move
	san   string // filled lazily by History
	clock int    // half-move clock after the move
	key   string // repetition key after the move
}

var _ State = (*Chess)(nil)

// Chess is a State backed by notnil/chess positions.
// notnil positions are immutable, so applying a move pushes the successor
// and undoing pops it.
type Chess struct {
	root      *chess.Position
	rootClock int
	rootMove  int
	rootKey   string

	current *chess.Position
	plies   []ply
}

// New returns a game at the standard starting position.
func New() *Chess {
	return newChess(chess.NewGame().Position())
}

// FromFEN returns a game starting from the given FEN.
func FromFEN(fen string) (*Chess, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "parse FEN %q", fen)
	}
	return newChess(chess.NewGame(opt).Position()), nil
}

// FromMoves plays the SAN moves from the starting position.
func FromMoves(san ...string) (*Chess, error) {
	g := New()
	for _, s := range san {
		if err := g.Play(s); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newChess(pos *chess.Position) *Chess {
	fields := strings.Fields(pos.String())
	g := &Chess{
		root:     pos,
		current:  pos,
		rootKey:  repetitionKey(fields),
		rootMove: 1,
	}
	if len(fields) >= 6 {
		g.rootClock, _ = strconv.Atoi(fields[4])
		if n, err := strconv.Atoi(fields[5]); err == nil {
			g.rootMove = n
		}
	}
	return g
}

// repetitionKey keeps placement, side to move, castling and en passant.
func repetitionKey(fields []string) string {
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// Play applies a move written in SAN.
func (g *Chess) Play(san string) error {
	raw, err := chess.AlgebraicNotation{}.Decode(g.current, san)
	if err != nil {
		return errors.Wrapf(ErrIllegalMove, "%s: %v", san, err)
	}
	_, err = g.Apply(Move{From: raw.S1(), To: raw.S2(), Promo: raw.Promo(), SAN: san})
	return err
}

func resolve(pos *chess.Position, raw *chess.Move) Move {
	b := pos.Board()
	p := b.Piece(raw.S1())
	m := Move{
		From:  raw.S1(),
		To:    raw.S2(),
		Promo: raw.Promo(),
		Piece: p.Type(),
		Color: p.Color(),
		Check: raw.HasTag(chess.Check),
	}
	switch {
	case raw.HasTag(chess.EnPassant):
		m.Captured = chess.Pawn
	case raw.HasTag(chess.Capture):
		m.Captured = b.Piece(raw.S2()).Type()
	}
	return m
}

func (g *Chess) LegalMoves(opts ...MoveOption) []Move {
	var o moveOptions
	for _, opt := range opts {
		opt(&o)
	}
	valid := g.current.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, raw := range valid {
		if o.scoped && raw.S1() != o.from {
			continue
		}
		m := resolve(g.current, raw)
		if o.verbose {
			m.SAN = chess.AlgebraicNotation{}.Encode(g.current, raw)
		}
		moves = append(moves, m)
	}
	return moves
}

func (g *Chess) find(m Move) *chess.Move {
	for _, raw := range g.current.ValidMoves() {
		if raw.S1() == m.From && raw.S2() == m.To && raw.Promo() == m.Promo {
			return raw
		}
	}
	return nil
}

// Apply plays m. A move carrying SAN is treated as verbose and the resolved
// move gets its SAN recomputed from the position.
func (g *Chess) Apply(m Move) (Move, error) {
	raw := g.find(m)
	if raw == nil {
		return Move{}, errors.Wrapf(ErrIllegalMove, "%v in %q", m.UCI(), g.FEN())
	}
	resolved := resolve(g.current, raw)
	p := ply{prev: g.current, raw: raw}
	if m.SAN != "" {
		resolved.SAN = chess.AlgebraicNotation{}.Encode(g.current, raw)
		p.san = resolved.SAN
	}
	p.move = resolved

	p.clock = g.clock() + 1
	if resolved.Piece == chess.Pawn || resolved.IsCapture() {
		p.clock = 0
	}
	g.current = g.current.Update(raw)
	p.key = repetitionKey(strings.Fields(g.current.String()))
	g.plies = append(g.plies, p)
	return resolved, nil
}

func (g *Chess) Undo() error {
	n := len(g.plies)
	if n == 0 {
		return ErrNothingToUndo
	}
	g.current = g.plies[n-1].prev
	g.plies = g.plies[:n-1]
	return nil
}

func (g *Chess) Reset() {
	g.current = g.root
	g.plies = g.plies[:0]
}

func (g *Chess) Turn() Color { return g.current.Turn() }

func (g *Chess) FEN() string { return g.current.String() }

func (g *Chess) MoveNumber() int {
	n := len(g.plies)
	if g.root.Turn() == Black {
		n++
	}
	return g.rootMove + n/2
}

func (g *Chess) Snapshot() Grid { return Snap(g.current.Board()) }

func (g *Chess) History() []string {
	retVal := make([]string, len(g.plies))
	for i := range g.plies {
		p := &g.plies[i]
		if p.san == "" {
			p.san = chess.AlgebraicNotation{}.Encode(p.prev, p.raw)
		}
		retVal[i] = p.san
	}
	return retVal
}

var startKey = repetitionKey(strings.Fields(chess.NewGame().Position().String()))

func (g *Chess) FromStart() bool { return g.rootKey == startKey && g.rootMove == 1 }

// Moves returns the moves applied since construction.
func (g *Chess) Moves() []Move {
	retVal := make([]Move, len(g.plies))
	for i, p := range g.plies {
		retVal[i] = p.move
	}
	return retVal
}

func (g *Chess) IsCheckmate() bool { return g.current.Status() == chess.Checkmate }

func (g *Chess) IsDraw() bool { return g.drawMethod() != chess.NoMethod }

func (g *Chess) InCheck() bool {
	grid := g.Snapshot()
	return grid.InCheck(g.Turn())
}

func (g *Chess) Ended() (ended bool, winner Color) {
	if g.IsCheckmate() {
		return true, g.Turn().Other()
	}
	if g.IsDraw() {
		return true, NoColor
	}
	return false, NoColor
}

func (g *Chess) Outcome() (chess.Outcome, chess.Method) {
	if g.IsCheckmate() {
		if g.Turn() == White {
			return chess.BlackWon, chess.Checkmate
		}
		return chess.WhiteWon, chess.Checkmate
	}
	if method := g.drawMethod(); method != chess.NoMethod {
		return chess.Draw, method
	}
	return chess.NoOutcome, chess.NoMethod
}

// String draws the board.
func (g *Chess) String() string { return g.current.Board().Draw() }

func (g *Chess) clock() int {
	if n := len(g.plies); n > 0 {
		return g.plies[n-1].clock
	}
	return g.rootClock
}

func (g *Chess) keyAt(i int) string {
	if i < 0 {
		return g.rootKey
	}
	return g.plies[i].key
}
