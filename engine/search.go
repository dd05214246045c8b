package engine

import (
	"math"

	"github.com/cryptopi/qwerty-othello/othello"
)

// DefaultDepth is the ply limit used by agents in normal play.
const DefaultDepth = 7

// Full search window. Alpha leaves one unit of headroom so the window can
// be negated without overflowing.
const (
	alphaMin = math.MinInt + 1
	betaMax  = math.MaxInt
)

// Search is one configured search engine: fixed-depth negamax with
// fail-hard alpha-beta pruning. The search is single-threaded and purely
// recursive; every branch works on its own board copy, so nothing is
// shared between sibling lines.
type Search struct {
	Depth int
	Mode  EvalMode

	nodes uint64
}

// NewSearch returns a search engine with the given ply limit and
// evaluation mode.
func NewSearch(depth int, mode EvalMode) *Search {
	return &Search{Depth: depth, Mode: mode}
}

// Nodes returns the number of nodes expanded by the last BestMove call.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// BestMove searches the position to the configured depth and returns the
// best move for the side to play together with its negamax value. The
// returned move is Pass exactly when the side has no legal move.
func (s *Search) BestMove(b othello.Board, side othello.Color) (othello.Move, int) {
	s.nodes = 0
	value, move := s.negamax(b, side, s.Depth, alphaMin, betaMax)
	return move, value
}

// negamax returns the value of the position from the side to move's
// perspective, along with the move realizing it. Leaves are evaluated for
// the side to move; the zero-sum invariant of Evaluate is what makes this
// interchangeable with a fixed-perspective evaluation and is required for
// the per-ply negation to be sound.
func (s *Search) negamax(b othello.Board, side othello.Color, depth, alpha, beta int) (int, othello.Move) {
	s.nodes++

	if depth == 0 || !b.HasLegalMoves(side) {
		return Evaluate(b, side, s.Mode), othello.Pass
	}

	best := othello.Pass
	for x := 0; x < othello.BoardSize; x++ {
		for y := 0; y < othello.BoardSize; y++ {
			m := othello.NewMove(x, y)
			if !b.IsLegalMove(m, side) {
				continue
			}

			child := b
			child.Apply(m, side)
			v, _ := s.negamax(child, side.Other(), depth-1, -beta, -alpha)
			v = -v

			// Strictly greater, so the first move found in row-major
			// order wins ties.
			if v > alpha {
				alpha, best = v, m
				if v > beta {
					return beta, m // fail-hard cutoff
				}
			}
		}
	}
	return alpha, best
}
