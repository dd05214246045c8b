package othello

import "math/bits"

// BoardSize is the edge length of the board.
const BoardSize = 8

// Color identifies which player owns a stone.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Bitboard is a 64-bit occupancy set, one bit per square, indexed x + 8*y.
type Bitboard uint64

func (bb Bitboard) test(sq int) bool { return bb&(1<<uint(sq)) != 0 }

func (bb *Bitboard) set(sq int) { *bb |= 1 << uint(sq) }

func (bb *Bitboard) clear(sq int) { *bb &^= 1 << uint(sq) }

// Board represents one othello position with two bitboards: the squares
// holding a stone of either color, and the subset of those held by black.
// Board is a plain value; copying one yields a fully independent position.
type Board struct {
	taken Bitboard
	black Bitboard
}

// NewBoard returns a board in the standard initial setup: black on d5 and
// e4, white on d4 and e5.
func NewBoard() Board {
	var b Board
	b.Set(White, 3, 3)
	b.Set(White, 4, 4)
	b.Set(Black, 4, 3)
	b.Set(Black, 3, 4)
	return b
}

func square(x, y int) int { return x + BoardSize*y }

func onBoard(x, y int) bool {
	return 0 <= x && x < BoardSize && 0 <= y && y < BoardSize
}

// The eight ray directions a capture line can run along.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Occupied reports whether the square holds a stone of either color.
// Coordinates must be in range.
func (b Board) Occupied(x, y int) bool {
	return b.taken.test(square(x, y))
}

// Get reports whether the square holds a stone of the given color.
func (b Board) Get(c Color, x, y int) bool {
	sq := square(x, y)
	return b.taken.test(sq) && b.black.test(sq) == (c == Black)
}

// Set places a stone of the given color, overwriting any prior occupant.
// It performs no capture; normal play goes through Apply.
func (b *Board) Set(c Color, x, y int) {
	sq := square(x, y)
	b.taken.set(sq)
	if c == Black {
		b.black.set(sq)
	} else {
		b.black.clear(sq)
	}
}

// IsLegalMove reports whether the move is legal for the given color. Pass
// is legal exactly when the color has no concrete move. A concrete move is
// legal when its square is empty and at least one ray direction holds a
// run of opposing stones terminated by a same-color stone.
func (b Board) IsLegalMove(m Move, c Color) bool {
	if m.IsPass() {
		return !b.HasLegalMoves(c)
	}

	mx, my := int(m.X), int(m.Y)
	if b.Occupied(mx, my) {
		return false
	}

	other := c.Other()
	for _, d := range directions {
		x, y := mx+d[0], my+d[1]
		if !onBoard(x, y) || !b.Get(other, x, y) {
			continue
		}
		for onBoard(x, y) && b.Get(other, x, y) {
			x += d[0]
			y += d[1]
		}
		if onBoard(x, y) && b.Get(c, x, y) {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether the color has any legal concrete move.
func (b Board) HasLegalMoves(c Color) bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.IsLegalMove(NewMove(x, y), c) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether the game is over: neither color has a legal
// concrete move.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMoves(Black) && !b.HasLegalMoves(White)
}

// Apply mutates the board to reflect the move: the stone is placed and
// every outflanked run is flipped. Pass is a no-op, as is an illegal move;
// callers on the fast path are expected to have validated the move already.
// External callers should prefer ApplyChecked.
func (b *Board) Apply(m Move, c Color) {
	if m.IsPass() || !b.IsLegalMove(m, c) {
		return
	}

	mx, my := int(m.X), int(m.Y)
	other := c.Other()
	for _, d := range directions {
		x, y := mx+d[0], my+d[1]
		for onBoard(x, y) && b.Get(other, x, y) {
			x += d[0]
			y += d[1]
		}
		if !onBoard(x, y) || !b.Get(c, x, y) {
			continue
		}
		x, y = mx+d[0], my+d[1]
		for b.Get(other, x, y) {
			b.Set(c, x, y)
			x += d[0]
			y += d[1]
		}
	}
	b.Set(c, mx, my)
}

// Clone returns an independent copy of the board. Board is a value type,
// so plain assignment works just as well; Clone exists for call sites that
// want the copy to be explicit.
func (b Board) Clone() Board {
	return b
}

// CountStones returns the number of stones of the given color on the board.
func (b Board) CountStones(c Color) int {
	if c == Black {
		return bits.OnesCount64(uint64(b.black))
	}
	return bits.OnesCount64(uint64(b.taken)) - bits.OnesCount64(uint64(b.black))
}
