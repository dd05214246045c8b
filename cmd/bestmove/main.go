package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cryptopi/qwerty-othello/boardsvg"
	"github.com/cryptopi/qwerty-othello/engine"
	"github.com/cryptopi/qwerty-othello/othello"
)

func main() {
	board := flag.String("board", othello.NewBoard().Description(),
		"64-symbol row-major position ('b' black, 'w' white, other empty; defaults to the initial position)")
	side := flag.String("side", "b", "Side to move: b or w")
	depth := flag.Int("depth", engine.DefaultDepth, "Search depth in plies")
	mode := flag.String("mode", "positional", "Evaluation mode: positional or stonediff")
	svgOut := flag.String("svg", "", "Write the position as an SVG diagram to this file")
	flag.Parse()

	b, err := othello.ParseBoard(*board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var color othello.Color
	switch *side {
	case "b":
		color = othello.Black
	case "w":
		color = othello.White
	default:
		fmt.Fprintln(os.Stderr, "-side must be b or w")
		os.Exit(2)
	}

	evalMode, err := engine.ParseEvalMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "-depth must be >= 1")
		os.Exit(2)
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *svgOut, err)
			os.Exit(1)
		}
		boardsvg.Write(f, b)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing %s: %v\n", *svgOut, err)
			os.Exit(1)
		}
	}

	search := engine.NewSearch(*depth, evalMode)
	start := time.Now()
	move, value := search.BestMove(b, color)
	elapsed := time.Since(start)

	// Single line: Move Value Nodes Time
	fmt.Printf("%s \t%d \t%d \t%s\n", move, value, search.Nodes(), elapsed)
}
