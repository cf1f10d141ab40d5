package chess

import "fmt"

// Move records one applied move: where the piece came from, where it went,
// and what it captured. Captured is the occupant of End before the move
// (nil if the square was empty). The Board owns the pieces; a Move only
// keeps references so that an undo can put them back.
type Move struct {
	Start    Position
	End      Position
	Piece    *Piece
	Captured *Piece
}

// IsCapture returns true if this move took a piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil
}

// String returns the move in long algebraic form, e.g. "Ng1-f3" or "e4xd5".
func (m Move) String() string {
	var prefix string
	if m.Piece != nil && m.Piece.Kind() != Pawn {
		prefix = string(m.Piece.Kind().Letter())
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%s%s%s%s", prefix, m.Start, sep, m.End)
}
