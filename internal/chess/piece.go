package chess

import "fmt"

// Piece is a chess piece on (or captured from) a Board. Colour and Kind are
// fixed at construction. The position is a copy of the square the piece
// occupies and is only ever changed by the Board that owns it, so that
// board.Get(p.Position()) == p holds for every piece on the board.
type Piece struct {
	colour   Colour
	kind     Kind
	position Position
}

// NewPiece creates a piece of the given colour and kind. The position is
// recorded when the piece is placed on a board.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{colour: colour, kind: kind}
}

// Colour returns the piece's colour.
func (p *Piece) Colour() Colour { return p.colour }

// Kind returns the piece's kind.
func (p *Piece) Kind() Kind { return p.kind }

// Position returns the square the piece was last placed on.
func (p *Piece) Position() Position { return p.position }

// Letter returns the SAN letter, upper case for White and lower case for
// Black, as in FEN.
func (p *Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String describes the piece, e.g. "White Knight at g1".
func (p *Piece) String() string {
	if p == nil {
		return "empty square"
	}
	return fmt.Sprintf("%s %s at %s", p.colour, p.kind, p.position)
}
