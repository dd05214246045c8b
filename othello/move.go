package othello

import "fmt"

// Move is a single stone placement. The zero coordinates are a real
// square, so the distinguished Pass value below stands in for "no move".
type Move struct {
	X, Y int8
}

// Pass is the move a player makes when no concrete move is available. It
// also serves as the "no move yet" value at the agent boundary.
var Pass = Move{-1, -1}

// NewMove constructs a concrete move at (x, y).
func NewMove(x, y int) Move {
	return Move{X: int8(x), Y: int8(y)}
}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool {
	return m.X < 0 || m.Y < 0
}

// String renders the move in algebraic coordinates (e.g. "c4"), or "pass".
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(m.X), '1'+byte(m.Y))
}
