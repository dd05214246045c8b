package arena

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopi/qwerty-othello/engine"
	"github.com/cryptopi/qwerty-othello/othello"
)

func newTestArena(opts Options) *Arena {
	opts.Logger = zerolog.Nop()
	return New(opts)
}

func TestPlayGame(t *testing.T) {
	a := newTestArena(Options{Depth: 2, Mode: engine.Positional})

	res, err := a.PlayGame()
	require.NoError(t, err)

	total := res.Black + res.White
	assert.LessOrEqual(t, total, othello.BoardSize*othello.BoardSize)
	assert.GreaterOrEqual(t, total, 4)
	assert.Greater(t, res.Moves, 0)
	assert.True(t, res.Final.IsTerminal())
	assert.Equal(t, res.Black, res.Final.CountStones(othello.Black))
	assert.Equal(t, res.White, res.Final.CountStones(othello.White))
	if res.Draw {
		assert.Equal(t, res.Black, res.White)
	} else {
		winner, loser := res.Black, res.White
		if res.Winner == othello.White {
			winner, loser = res.White, res.Black
		}
		assert.Greater(t, winner, loser)
	}
}

func TestPlayGameDeterministicWithoutRandomness(t *testing.T) {
	a := newTestArena(Options{Depth: 1, Mode: engine.StoneDiff})

	first, err := a.PlayGame()
	require.NoError(t, err)
	second, err := a.PlayGame()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRandomOpeningKeepsBoardPlayable(t *testing.T) {
	a := newTestArena(Options{Depth: 1, Mode: engine.Positional, RandomPlies: 6})

	for i := 0; i < 5; i++ {
		res, err := a.PlayGame()
		require.NoError(t, err)
		assert.True(t, res.Final.IsTerminal())
	}
}

func TestRunBatch(t *testing.T) {
	a := newTestArena(Options{
		Depth:       1,
		Mode:        engine.Positional,
		RandomPlies: 4,
		Concurrency: 2,
	})

	results, err := a.Run(4)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, res := range results {
		assert.True(t, res.Final.IsTerminal())
		total := res.Black + res.White
		assert.LessOrEqual(t, total, othello.BoardSize*othello.BoardSize)
		assert.GreaterOrEqual(t, total, 4)
	}

	// Sorted by decreasing margin.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Margin(), results[i].Margin())
	}
}

func TestRunSortsByMargin(t *testing.T) {
	// Identical shallow games tie on margin; a batch must still come back
	// ordered and stable under the sort.
	a := newTestArena(Options{Depth: 1, Mode: engine.StoneDiff, Concurrency: 2})

	results, err := a.Run(3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Margin(), results[i].Margin())
		assert.Equal(t, results[0], results[i], "deterministic games must be identical")
	}
}

func TestMargin(t *testing.T) {
	r := Result{Black: 40, White: 24}
	assert.Equal(t, 16, r.Margin())
	r = Result{Black: 10, White: 30}
	assert.Equal(t, 20, r.Margin())
}
