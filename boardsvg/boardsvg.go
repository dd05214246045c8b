// Package boardsvg renders othello positions as SVG diagrams for the
// command-line tools.
package boardsvg

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/cryptopi/qwerty-othello/othello"
)

const (
	cellSize  = 48
	discR     = cellSize/2 - 5
	boardSpan = cellSize * othello.BoardSize
)

const (
	boardStyle = "fill:#2e7d32"
	gridStyle  = "stroke:#1b5e20;stroke-width:2"
	blackStyle = "fill:#111111;stroke:#000000"
	whiteStyle = "fill:#fafafa;stroke:#555555"
)

// Write renders the board as an SVG diagram. Squares are drawn with x
// growing rightwards and y growing downwards, matching the row-major
// board description order.
func Write(w io.Writer, b othello.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSpan, boardSpan)
	canvas.Rect(0, 0, boardSpan, boardSpan, boardStyle)

	for i := 0; i <= othello.BoardSize; i++ {
		canvas.Line(i*cellSize, 0, i*cellSize, boardSpan, gridStyle)
		canvas.Line(0, i*cellSize, boardSpan, i*cellSize, gridStyle)
	}

	for x := 0; x < othello.BoardSize; x++ {
		for y := 0; y < othello.BoardSize; y++ {
			if !b.Occupied(x, y) {
				continue
			}
			style := whiteStyle
			if b.Get(othello.Black, x, y) {
				style = blackStyle
			}
			cx := x*cellSize + cellSize/2
			cy := y*cellSize + cellSize/2
			canvas.Circle(cx, cy, discR, style)
		}
	}

	canvas.End()
}
