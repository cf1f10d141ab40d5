package chess

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Board is an 8x8 grid of optional pieces and the sole owner of the pieces
// placed on it.
//
// Invariant: at most one piece per square, and every piece on the board
// reports the square it sits on from Position(). Move, ForceSet and Place
// are the only mutators and each keeps the invariant.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at (row, column), nil for an empty square, or
// ErrOutOfRange when the coordinates are off the grid.
func (b *Board) Get(row, column int) (*Piece, error) {
	if !InRange(row, column) {
		return nil, errors.ErrOutOfRange
	}
	return b.squares[row][column], nil
}

// At is Get for a Position.
func (b *Board) At(pos Position) (*Piece, error) {
	return b.Get(pos.Row, pos.Column)
}

// Move relocates p to (row, column) and returns the piece that occupied the
// destination, if any. The destination must be on the board; otherwise
// ErrOutOfRange is returned and nothing changes. No rule checking is done.
func (b *Board) Move(p *Piece, row, column int) (*Piece, error) {
	if !InRange(row, column) {
		return nil, errors.ErrOutOfRange
	}
	if from := p.position; InRange(from.Row, from.Column) && b.squares[from.Row][from.Column] == p {
		b.squares[from.Row][from.Column] = nil
	}
	previous := b.squares[row][column]
	b.squares[row][column] = p
	p.position = Position{Row: row, Column: column}
	return previous, nil
}

// ForceSet assigns p (which may be nil) to pos without touching any other
// square. It exists to restore both squares of an undone move.
func (b *Board) ForceSet(p *Piece, pos Position) error {
	if !pos.InRange() {
		return errors.ErrOutOfRange
	}
	b.squares[pos.Row][pos.Column] = p
	if p != nil {
		p.position = pos
	}
	return nil
}

// Place puts a new piece on an empty square. It is used to set up positions.
func (b *Board) Place(p *Piece, pos Position) error {
	if !pos.InRange() {
		return errors.ErrOutOfRange
	}
	if occupant := b.squares[pos.Row][pos.Column]; occupant != nil {
		return fmt.Errorf("%s holds %s: %w", pos, occupant, errors.ErrSquareOccupied)
	}
	b.squares[pos.Row][pos.Column] = p
	p.position = pos
	return nil
}

// SetupInitialPosition clears the board and places the 32 pieces of the
// standard starting position, White on rows 6-7 and Black on rows 0-1.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for col := 0; col < BoardSize; col++ {
			b.placeNew(NewPiece(colour, backRank[col]), BackRow(colour), col)
			b.placeNew(NewPiece(colour, Pawn), PawnRow(colour), col)
		}
	}
}

func (b *Board) placeNew(p *Piece, row, column int) {
	b.squares[row][column] = p
	p.position = Position{Row: row, Column: column}
}

// Pieces returns every piece on the board in row-major order.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]*Piece{}
}

// Snapshot captures the occupant of every square. Two snapshots compare
// equal only if every square holds the same piece (by identity).
type Snapshot [BoardSize][BoardSize]*Piece

// Snapshot returns the current occupancy.
func (b *Board) Snapshot() Snapshot {
	return Snapshot(b.squares)
}
