package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptopi/qwerty-othello/arena"
	"github.com/cryptopi/qwerty-othello/boardsvg"
	"github.com/cryptopi/qwerty-othello/config"
	"github.com/cryptopi/qwerty-othello/engine"
	"github.com/cryptopi/qwerty-othello/othello"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	games := flag.Int("games", cfg.Arena.Games, "Number of self-play games")
	depth := flag.Int("depth", cfg.Search.Depth, "Search depth in plies")
	mode := flag.String("mode", cfg.Search.Mode, "Evaluation mode: positional or stonediff")
	conc := flag.Int("conc", cfg.Arena.Concurrency, "Games in flight at once")
	randPlies := flag.Int("randplies", cfg.Arena.RandomPlies, "Random opening half-moves per game")
	svgDir := flag.String("svgdir", cfg.Output.SVGDir, "Directory for final-position SVG diagrams (optional)")
	saveCfg := flag.Bool("saveconfig", false, "Write the effective settings to the XDG config file and exit")
	verbose := flag.Bool("v", false, "Per-move debug logging")
	flag.Parse()

	evalMode, err := engine.ParseEvalMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *games < 1 || *depth < 1 || *conc < 1 {
		fmt.Fprintln(os.Stderr, "-games, -depth and -conc must be >= 1")
		os.Exit(2)
	}

	if *saveCfg {
		cfg.Search.Depth = *depth
		cfg.Search.Mode = *mode
		cfg.Arena.Games = *games
		cfg.Arena.Concurrency = *conc
		cfg.Arena.RandomPlies = *randPlies
		cfg.Output.SVGDir = *svgDir
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	a := arena.New(arena.Options{
		Depth:       *depth,
		Mode:        evalMode,
		RandomPlies: *randPlies,
		Concurrency: *conc,
		Logger:      logger,
	})

	start := time.Now()
	results, err := a.Run(*games)
	if err != nil {
		logger.Error().Err(err).Msg("some games failed")
	}

	var blackWins, whiteWins, draws int
	for _, r := range results {
		switch {
		case r.Draw:
			draws++
		case r.Winner == othello.Black:
			blackWins++
		default:
			whiteWins++
		}
	}

	fmt.Printf("games %d \tblack %d \twhite %d \tdraws %d \ttime %s\n",
		len(results), blackWins, whiteWins, draws, time.Since(start))
	if len(results) > 0 {
		// Results come back sorted by margin.
		fmt.Printf("widest margin %d stones, narrowest %d\n",
			results[0].Margin(), results[len(results)-1].Margin())
	}

	if *svgDir != "" {
		if err := writeDiagrams(*svgDir, results); err != nil {
			fmt.Fprintf(os.Stderr, "writing diagrams: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeDiagrams(dir string, results []arena.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, r := range results {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("game_%03d.svg", i)))
		if err != nil {
			return err
		}
		boardsvg.Write(f, r.Final)
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
