package chess

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// debugboard.go provides the debug-only board visualization spec.md §6
// allows, external to the core move-generation path: a printable ASCII
// board grounded in the teacher's board.go Draw(), plus an SVG renderer for
// richer debugging/documentation output, using the teacher's svgo
// dependency that its core package never exercised directly.

// String renders the board as ranks 8 down to 1, files a through h,
// matching spec.md §6's "printable ASCII ranks 8→1".
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.mailbox[sq]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String())
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%d\n", rank+1)
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

const svgSquareSize = 60

// svgLightSquare and svgDarkSquare are the classic lichess.org-style board
// colors.
const (
	svgLightSquare = "#f0d9b5"
	svgDarkSquare  = "#b58863"
)

// WriteSVG renders the board as an 8x8 SVG diagram to w, with piece letters
// centered on each square. No coordinate labels are drawn.
// It's a debugging/documentation aid, not part of the core move-generation
// surface.
func (b *Board) WriteSVG(w io.Writer) {
	const boardPx = svgSquareSize * 8
	canvas := svg.New(w)
	canvas.Start(boardPx, boardPx)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * svgSquareSize
			y := (7 - rank) * svgSquareSize
			color := svgLightSquare
			if (rank+file)%2 == 0 {
				color = svgDarkSquare
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, "fill:"+color)
			sq := Square(rank*8 + file)
			if p := b.mailbox[sq]; p != NoPiece {
				canvas.Text(x+svgSquareSize/2, y+svgSquareSize/2+8, p.String(),
					"text-anchor:middle;font-size:28px;font-family:sans-serif")
			}
		}
	}
	canvas.End()
}
