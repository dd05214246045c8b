// Package arena runs self-play matches between two engine agents,
// relaying moves between them and keeping its own master board so a
// misbehaving agent cannot corrupt the result.
package arena

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/cryptopi/qwerty-othello/engine"
	"github.com/cryptopi/qwerty-othello/othello"
)

// Options configures an arena.
type Options struct {
	// Depth and Mode are the search parameters both agents play with.
	Depth int
	Mode  engine.EvalMode
	// RandomPlies opens each game with that many uniformly random legal
	// half-moves before the agents take over, for variety across a batch.
	RandomPlies int
	// Concurrency bounds the number of games in flight during Run.
	Concurrency int

	Logger zerolog.Logger
}

// Result records the outcome of one game.
type Result struct {
	Winner othello.Color
	Draw   bool
	Black  int // final black stone count
	White  int // final white stone count
	Moves  int // concrete moves played by the agents
	Final  othello.Board
}

// Margin returns the stone differential from the winner's perspective.
func (r Result) Margin() int {
	return engine.Max(r.Black, r.White) - engine.Min(r.Black, r.White)
}

// Arena plays games between two identically configured agents.
type Arena struct {
	opts Options
	log  zerolog.Logger
}

// New returns an arena with the given options, filling in defaults for
// zero values.
func New(opts Options) *Arena {
	if opts.Depth <= 0 {
		opts.Depth = engine.DefaultDepth
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Arena{opts: opts, log: opts.Logger}
}

// randomOpening plays up to n random legal half-moves on the board,
// starting with black, and returns the color to move next. A side with
// no legal move passes, and the pass counts against n like any other
// half-move.
func randomOpening(b *othello.Board, n int) othello.Color {
	side := othello.Black
	for i := 0; i < n; i++ {
		var legal []othello.Move
		for x := 0; x < othello.BoardSize; x++ {
			for y := 0; y < othello.BoardSize; y++ {
				if m := othello.NewMove(x, y); b.IsLegalMove(m, side) {
					legal = append(legal, m)
				}
			}
		}
		if len(legal) == 0 {
			if b.IsTerminal() {
				break
			}
			side = side.Other()
			continue
		}
		b.Apply(legal[frand.Intn(len(legal))], side)
		side = side.Other()
	}
	return side
}

// PlayGame runs a single game between two fresh agents and returns the
// result. The arena validates every returned move against its master
// board, so an illegal agent move surfaces as an error rather than a
// corrupted game.
func (a *Arena) PlayGame() (Result, error) {
	master := othello.NewBoard()
	toMove := othello.Black
	if a.opts.RandomPlies > 0 {
		toMove = randomOpening(&master, a.opts.RandomPlies)
	}

	agents := [2]*engine.Agent{
		othello.Black: engine.NewAgent(othello.Black),
		othello.White: engine.NewAgent(othello.White),
	}
	for _, ag := range agents {
		ag.SetSearch(a.opts.Depth, a.opts.Mode)
		ag.SetBoard(master)
	}

	var res Result
	last := othello.Pass
	passes := 0
	for passes < 2 && !master.IsTerminal() {
		ag := agents[toMove]
		move, err := ag.DoMove(last, -1)
		if err != nil {
			return Result{}, errors.Wrapf(err, "%s agent", toMove)
		}

		if move.IsPass() {
			if master.HasLegalMoves(toMove) {
				return Result{}, errors.Errorf("arena: %s passed with legal moves available", toMove)
			}
			passes++
		} else {
			if err := master.ApplyChecked(move, toMove); err != nil {
				return Result{}, errors.Wrapf(err, "%s agent", toMove)
			}
			passes = 0
			res.Moves++
		}

		a.log.Debug().
			Stringer("side", ag.Side()).
			Stringer("move", move).
			Msg("move played")

		last = move
		toMove = toMove.Other()
	}

	res.Black = master.CountStones(othello.Black)
	res.White = master.CountStones(othello.White)
	res.Final = master
	switch {
	case res.Black > res.White:
		res.Winner = othello.Black
	case res.White > res.Black:
		res.Winner = othello.White
	default:
		res.Draw = true
	}
	return res, nil
}

// Run plays n games, at most Concurrency of them in flight at once, and
// returns the successful results sorted by decreasing margin. A failed
// game does not cancel the batch; the failures come back aggregated.
func (a *Arena) Run(n int) ([]Result, error) {
	results := make([]Result, n)
	errs := make([]error, n)

	var g errgroup.Group
	g.SetLimit(a.opts.Concurrency)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			res, err := a.PlayGame()
			if err != nil {
				errs[i] = errors.Wrapf(err, "game %d", i)
				return nil
			}
			results[i] = res

			ev := a.log.Info().
				Int("game", i).
				Int("black", res.Black).
				Int("white", res.White).
				Int("moves", res.Moves)
			if res.Draw {
				ev.Msg("draw")
			} else {
				ev.Stringer("winner", res.Winner).Msg("game finished")
			}
			return nil
		})
	}
	_ = g.Wait()

	var merr error
	ok := results[:0]
	for i := range results {
		if errs[i] != nil {
			merr = multierror.Append(merr, errs[i])
			continue
		}
		ok = append(ok, results[i])
	}

	slices.SortStableFunc(ok, func(x, y Result) bool {
		return x.Margin() > y.Margin()
	})
	return ok, merr
}
