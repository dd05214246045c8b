package engine

import (
	"github.com/pkg/errors"

	"github.com/cryptopi/qwerty-othello/othello"
)

// EvalMode selects the board evaluation formula.
type EvalMode uint8

const (
	// Positional weighs each occupied square by its class. This is the
	// production evaluation.
	Positional EvalMode = iota
	// StoneDiff scores the raw stone-count differential. Used as the
	// diagnostic evaluation when validating the search.
	StoneDiff
)

func (m EvalMode) String() string {
	switch m {
	case Positional:
		return "positional"
	case StoneDiff:
		return "stonediff"
	default:
		return "unknown"
	}
}

// ParseEvalMode converts the configuration spelling of an eval mode.
func ParseEvalMode(s string) (EvalMode, error) {
	switch s {
	case "positional":
		return Positional, nil
	case "stonediff":
		return StoneDiff, nil
	default:
		return Positional, errors.Errorf("engine: unknown eval mode %q", s)
	}
}

// SquareClass partitions the board squares by their strategic value.
// Corners are stable, the squares touching a corner give the corner away.
type SquareClass uint8

const (
	Corner SquareClass = iota
	Edge
	NextToCorner
	DiagonalToCorner
	Other
)

// Square-class weights for the positional evaluation.
const (
	cornerWeight           = 3
	edgeWeight             = 2
	nextToCornerWeight     = -2
	diagonalToCornerWeight = -3
	otherWeight            = 1
)

// ClassifySquare returns the class of the square at (x, y). Pure function
// of the coordinates; corner-adjacent classes take precedence over Edge.
func ClassifySquare(x, y int) SquareClass {
	const last = othello.BoardSize - 1

	xEdge := x == 0 || x == last
	yEdge := y == 0 || y == last
	xNear := x == 1 || x == last-1
	yNear := y == 1 || y == last-1

	switch {
	case xEdge && yEdge:
		return Corner
	case xNear && yNear:
		return DiagonalToCorner
	case (xEdge && yNear) || (xNear && yEdge):
		return NextToCorner
	case xEdge || yEdge:
		return Edge
	default:
		return Other
	}
}

func classWeight(cl SquareClass) int {
	switch cl {
	case Corner:
		return cornerWeight
	case Edge:
		return edgeWeight
	case NextToCorner:
		return nextToCornerWeight
	case DiagonalToCorner:
		return diagonalToCornerWeight
	default:
		return otherWeight
	}
}

// Evaluate returns the desirability of the position for the given side.
//
// Both modes are zero-sum by construction:
//
//	Evaluate(b, c, mode) == -Evaluate(b, c.Other(), mode)
//
// The search's per-ply negation is only sound because of this symmetry, so
// any new evaluation term must preserve it.
func Evaluate(b othello.Board, side othello.Color, mode EvalMode) int {
	if mode == StoneDiff {
		return b.CountStones(side) - b.CountStones(side.Other())
	}

	total := 0
	for x := 0; x < othello.BoardSize; x++ {
		for y := 0; y < othello.BoardSize; y++ {
			if !b.Occupied(x, y) {
				continue
			}
			w := classWeight(ClassifySquare(x, y))
			if !b.Get(side, x, y) {
				w = -w
			}
			total += w
		}
	}
	return total
}
