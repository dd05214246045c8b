package engine

import (
	"github.com/pkg/errors"

	"github.com/cryptopi/qwerty-othello/othello"
)

// Agent plays one side of a game. It owns the persistent board holding
// the true game position, applies the opponent's reported moves to it,
// and searches for its own.
type Agent struct {
	board  othello.Board
	side   othello.Color
	search *Search
}

// NewAgent returns an agent playing the given color from the standard
// initial position, searching at DefaultDepth with the positional
// evaluation.
func NewAgent(side othello.Color) *Agent {
	return &Agent{
		board:  othello.NewBoard(),
		side:   side,
		search: NewSearch(DefaultDepth, Positional),
	}
}

// SetSearch replaces the agent's search parameters. Handy for fast
// shallow games and for the diagnostic stone-differential evaluation.
func (a *Agent) SetSearch(depth int, mode EvalMode) {
	a.search = NewSearch(depth, mode)
}

// SetBoard replaces the agent's position. Diagnostic path for starting
// play from a constructed position.
func (a *Agent) SetBoard(b othello.Board) {
	a.board = b
}

// Board returns a copy of the agent's current position.
func (a *Agent) Board() othello.Board {
	return a.board
}

// Side returns the color the agent plays.
func (a *Agent) Side() othello.Color {
	return a.side
}

// DoMove computes the agent's next move given the opponent's last move.
// A Pass opponent move means the opponent had nothing to report (first
// move of the game, or the opponent passed). The opponent move comes from
// outside the engine, so it goes through the checked apply path and an
// illegal move is reported instead of silently corrupting the position.
//
// msLeft is the remaining game time in milliseconds, -1 meaning no limit.
// The fixed-depth search has no deadline awareness and does not consult
// it.
func (a *Agent) DoMove(opponent othello.Move, msLeft int) (othello.Move, error) {
	_ = msLeft

	if !opponent.IsPass() {
		if err := a.board.ApplyChecked(opponent, a.side.Other()); err != nil {
			return othello.Pass, errors.Wrap(err, "opponent move")
		}
	}

	move, _ := a.search.BestMove(a.board, a.side)
	if !move.IsPass() {
		// Already validated by the search's move scan.
		a.board.Apply(move, a.side)
	}
	return move, nil
}
