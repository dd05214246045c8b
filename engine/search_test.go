package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopi/qwerty-othello/othello"
)

// minimaxRef is an independent full-width minimax used to validate the
// pruned negamax: leaves score for the root color, maximizing levels use
// strictly-greater updates and minimizing levels strictly-smaller, both
// scanning in row-major order so ties resolve identically.
func minimaxRef(b othello.Board, root, side othello.Color, depth int, mode EvalMode) (int, othello.Move) {
	if depth == 0 || !b.HasLegalMoves(side) {
		return Evaluate(b, root, mode), othello.Pass
	}

	maximizing := side == root
	best := othello.Pass
	bestVal := 0
	first := true
	for x := 0; x < othello.BoardSize; x++ {
		for y := 0; y < othello.BoardSize; y++ {
			m := othello.NewMove(x, y)
			if !b.IsLegalMove(m, side) {
				continue
			}
			child := b
			child.Apply(m, side)
			v, _ := minimaxRef(child, root, side.Other(), depth-1, mode)
			if first || (maximizing && v > bestVal) || (!maximizing && v < bestVal) {
				bestVal, best, first = v, m, false
			}
		}
	}
	return bestVal, best
}

// firstLegalGame plays n plies by always choosing the first legal move,
// producing a deterministic midgame position.
func firstLegalGame(n int) othello.Board {
	b := othello.NewBoard()
	side := othello.Black
	for i := 0; i < n; i++ {
		played := false
		for x := 0; x < othello.BoardSize && !played; x++ {
			for y := 0; y < othello.BoardSize && !played; y++ {
				if m := othello.NewMove(x, y); b.IsLegalMove(m, side) {
					b.Apply(m, side)
					played = true
				}
			}
		}
		side = side.Other()
	}
	return b
}

func parseBoard(t *testing.T, rows ...string) othello.Board {
	t.Helper()
	b, err := othello.ParseBoard(strings.Join(rows, ""))
	require.NoError(t, err)
	return b
}

func TestNegamaxMatchesMinimax(t *testing.T) {
	positions := map[string]othello.Board{
		"initial":   othello.NewBoard(),
		"midgame6":  firstLegalGame(6),
		"midgame11": firstLegalGame(11),
	}

	for name, b := range positions {
		for _, mode := range []EvalMode{StoneDiff, Positional} {
			for _, side := range []othello.Color{othello.Black, othello.White} {
				for _, depth := range []int{1, 2, 3} {
					wantVal, wantMove := minimaxRef(b, side, side, depth, mode)

					s := NewSearch(depth, mode)
					gotMove, gotVal := s.BestMove(b, side)

					assert.Equalf(t, wantVal, gotVal,
						"%s: value diverged (%s, %s, depth %d)", name, side, mode, depth)
					assert.Equalf(t, wantMove, gotMove,
						"%s: move diverged (%s, %s, depth %d)", name, side, mode, depth)
				}
			}
		}
	}
}

func TestOpeningDepthOneDiagnostic(t *testing.T) {
	// All four opening moves flip exactly one stone, so they tie at a
	// differential of 3 and the first in row-major order must win.
	s := NewSearch(1, StoneDiff)
	move, value := s.BestMove(othello.NewBoard(), othello.Black)

	assert.Equal(t, othello.NewMove(2, 3), move)
	assert.Equal(t, 3, value)
}

func TestSearchReturnsPassWhenNoMoves(t *testing.T) {
	b := parseBoard(t,
		"wb------",
		"--------", "--------", "--------",
		"--------", "--------", "--------", "--------",
	)
	require.False(t, b.HasLegalMoves(othello.Black))

	s := NewSearch(DefaultDepth, Positional)
	move, value := s.BestMove(b, othello.Black)

	assert.True(t, move.IsPass())
	assert.Equal(t, Evaluate(b, othello.Black, Positional), value)
}

func TestSearchCountsNodes(t *testing.T) {
	b := othello.NewBoard()

	shallow := NewSearch(1, Positional)
	shallow.BestMove(b, othello.Black)
	require.NotZero(t, shallow.Nodes())

	deep := NewSearch(4, Positional)
	deep.BestMove(b, othello.Black)
	assert.Greater(t, deep.Nodes(), shallow.Nodes())
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	b := othello.NewBoard()
	before := b.Description()

	NewSearch(5, Positional).BestMove(b, othello.Black)
	assert.Equal(t, before, b.Description())
}
