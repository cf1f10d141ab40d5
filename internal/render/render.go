// Package render draws boards, move sets and captured-piece tables as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// Theme holds the terminal attributes used for each kind of cell.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	SquareHigh  color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Label       color.Attribute
}

// DefaultTheme returns the standard colour scheme.
func DefaultTheme() Theme {
	return Theme{
		SquareLight: color.BgWhite,
		SquareDark:  color.BgHiBlack,
		SquareHigh:  color.BgCyan,
		White:       color.FgHiWhite,
		Black:       color.FgRed,
		Label:       color.FgYellow,
	}
}

// Renderer writes text views of a game to W. With Colour false the output
// is plain ASCII.
type Renderer struct {
	W      io.Writer
	Colour bool
	Theme  Theme
}

// New returns a Renderer using the default theme.
func New(w io.Writer, colour bool) *Renderer {
	return &Renderer{W: w, Colour: colour, Theme: DefaultTheme()}
}

const separator = "---+---+---+---+---+---+---+---+---+"

// Board draws the board with rank 8 at the top.
func (r *Renderer) Board(b *chess.Board) {
	r.grid(b, nil)
}

// Moves draws the board with the given targets highlighted. Empty targets
// are marked with '*'.
func (r *Renderer) Moves(b *chess.Board, targets chess.PositionSet) {
	if targets == nil {
		targets = chess.NewPositionSet()
	}
	r.grid(b, targets)
}

func (r *Renderer) grid(b *chess.Board, targets chess.PositionSet) {
	var sb strings.Builder
	r.header(&sb)
	for row := 0; row < chess.BoardSize; row++ {
		label := fmt.Sprintf(" %c |", chess.RankBase+chess.BoardSize-1-row)
		sb.WriteString(r.paint(label, r.Theme.Label))
		for col := 0; col < chess.BoardSize; col++ {
			piece, _ := b.Get(row, col)
			pos := chess.Pos(row, col)
			sb.WriteString(r.cell(piece, pos, targets.Contains(pos)))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(separator + "\n")
	fmt.Fprint(r.W, sb.String())
}

func (r *Renderer) header(sb *strings.Builder) {
	var h strings.Builder
	h.WriteString("   |")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&h, " %c |", chess.ColBase+col)
	}
	sb.WriteString(r.paint(h.String(), r.Theme.Label))
	sb.WriteByte('\n')
	sb.WriteString(separator + "\n")
}

// cell renders one three-character square.
func (r *Renderer) cell(piece *chess.Piece, pos chess.Position, highlight bool) string {
	text := "   "
	switch {
	case piece != nil:
		text = " " + string(piece.Letter()) + " "
	case highlight:
		text = " * "
	}
	if !r.Colour {
		return text
	}

	bg := r.Theme.SquareLight
	if (pos.Row+pos.Column)%2 == 1 {
		bg = r.Theme.SquareDark
	}
	if highlight {
		bg = r.Theme.SquareHigh
	}
	attrs := []color.Attribute{bg}
	if piece != nil {
		if piece.Colour() == chess.White {
			attrs = append(attrs, r.Theme.White, color.Bold)
		} else {
			attrs = append(attrs, r.Theme.Black, color.Bold)
		}
	}
	return r.paint(text, attrs...)
}

// paint applies attrs when colour output is on. Colour is forced so the
// result does not depend on whether W is a terminal.
func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	if !r.Colour {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Captured prints the pieces each side has lost, one pair per line.
func (r *Renderer) Captured(white, black []*chess.Piece) {
	fmt.Fprintf(r.W, "%s %s\n", r.paint(fmt.Sprintf("%-8s", "White"), r.Theme.Label), r.paint("Black", r.Theme.Label))
	n := len(white)
	if len(black) > n {
		n = len(black)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(r.W, "%-8s %s\n", kindAt(white, i), kindAt(black, i))
	}
	fmt.Fprintf(r.W, "%d lost   %d lost\n", len(white), len(black))
}

func kindAt(pieces []*chess.Piece, i int) string {
	if i >= len(pieces) {
		return ""
	}
	return pieces[i].Kind().String()
}
