package othello

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseBoard builds a board from a 64-symbol row-major description: 'b'
// for a black stone, 'w' for a white stone, anything else for an empty
// square. Index i describes the square (i%8, i/8). This is the diagnostic
// setup path for constructing arbitrary positions, bypassing capture
// rules entirely.
func ParseBoard(desc string) (Board, error) {
	var b Board
	if len(desc) != BoardSize*BoardSize {
		return b, errors.Errorf("othello: board description is %d symbols, want %d", len(desc), BoardSize*BoardSize)
	}
	for i, ch := range []byte(desc) {
		switch ch {
		case 'b':
			b.taken.set(i)
			b.black.set(i)
		case 'w':
			b.taken.set(i)
		}
	}
	return b, nil
}

// ApplyChecked is the validating counterpart of Apply for externally
// supplied moves: it reports an explicit error instead of silently
// ignoring an illegal move. Pass is accepted only when the color truly
// has no concrete move.
func (b *Board) ApplyChecked(m Move, c Color) error {
	if !b.IsLegalMove(m, c) {
		return errors.Errorf("othello: illegal move %s for %s", m, c)
	}
	b.Apply(m, c)
	return nil
}

// Description returns the 64-symbol row-major form of the board, with '-'
// for empty squares. It round-trips through ParseBoard.
func (b Board) Description() string {
	buf := make([]byte, BoardSize*BoardSize)
	for i := range buf {
		switch {
		case b.black.test(i):
			buf[i] = 'b'
		case b.taken.test(i):
			buf[i] = 'w'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}

// String renders the board one rank per line, for logs and test failures.
func (b Board) String() string {
	var sb strings.Builder
	desc := b.Description()
	for y := 0; y < BoardSize; y++ {
		sb.WriteString(desc[y*BoardSize : (y+1)*BoardSize])
		sb.WriteByte('\n')
	}
	return sb.String()
}
