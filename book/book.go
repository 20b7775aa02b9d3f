// Package book provides opening replies keyed by the moves played so far.
package book

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/alphabeta/game"
)

// Book maps a space-joined SAN history to candidate replies.
type Book struct {
	lines map[string][]string
	rand  *rand.Rand
}

// New creates an empty book drawing its choices from r.
func New(r *rand.Rand) *Book {
	return &Book{
		lines: make(map[string][]string),
		rand:  r,
	}
}

// Default returns the built-in book.
func Default(r *rand.Rand) *Book {
	b := New(r)
	b.Add("", "e4", "d4", "Nf3")
	b.Add("e4", "e5", "c5", "e6", "c6")
	b.Add("d4", "d5", "Nf6", "e6")
	b.Add("Nf3", "d5", "Nf6")
	return b
}

// Add registers replies after the given space-separated history.
func (b *Book) Add(history string, replies ...string) {
	key := Key(strings.Fields(history))
	for _, r := range replies {
		b.lines[key] = append(b.lines[key], normalize(r))
	}
}

// Len returns the number of known histories.
func (b *Book) Len() int { return len(b.lines) }

// Key joins a move history the way the book stores it.
func Key(history []string) string {
	parts := make([]string, len(history))
	for i, h := range history {
		parts[i] = normalize(h)
	}
	return strings.Join(parts, " ")
}

// normalize drops check and mate markers so "Bb5+" and "Bb5" compare equal.
func normalize(san string) string {
	return strings.TrimRight(san, "+#")
}

// Lookup returns a random book reply after history that is among legal.
// legal must carry SAN, as produced by verbose generation.
func (b *Book) Lookup(history []string, legal []game.Move) (game.Move, bool) {
	replies, ok := b.lines[Key(history)]
	if !ok {
		return game.Move{}, false
	}
	var candidates []game.Move
	for _, r := range replies {
		for _, m := range legal {
			if normalize(m.SAN) == r {
				candidates = append(candidates, m)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	return candidates[b.rand.Intn(len(candidates))], true
}

// Load adds lines read from r. Each line is "history<TAB>reply reply ...";
// an empty history means the starting position. Blank lines and lines
// starting with '#' are skipped.
func (b *Book) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return errors.Errorf("book line %d: missing tab separator", lineNum)
		}
		replies := strings.Fields(parts[1])
		if len(replies) == 0 {
			return errors.Errorf("book line %d: no replies", lineNum)
		}
		b.Add(parts[0], replies...)
	}
	return errors.WithStack(scanner.Err())
}

// LoadFile loads a book file. Files ending in .zst are zstd-compressed.
func LoadFile(path string, r *rand.Rand) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "open zstd book %s", path)
		}
		defer dec.Close()
		src = dec
	}

	b := New(r)
	if err := b.Load(src); err != nil {
		return nil, errors.WithMessagef(err, "load %s", path)
	}
	return b, nil
}
