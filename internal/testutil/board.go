package testutil

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// Sq parses an algebraic square, failing the test on malformed input.
func Sq(t *testing.T, name string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return p
}

// Squares builds a PositionSet from algebraic square names.
func Squares(t *testing.T, names ...string) chess.PositionSet {
	t.Helper()
	s := make(chess.PositionSet, len(names))
	for _, n := range names {
		s.Add(Sq(t, n))
	}
	return s
}

// SetupBoard returns a board holding the described pieces. Each
// description is a FEN piece letter followed by a square: "Ke1" is a White king
// on e1, "rd8" a Black rook on d8.
func SetupBoard(t *testing.T, pieces ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, desc := range pieces {
		PlacePiece(t, b, desc)
	}
	return b
}

// PlacePiece adds one piece described as in SetupBoard and returns it.
func PlacePiece(t *testing.T, b *chess.Board, desc string) *chess.Piece {
	t.Helper()
	if len(desc) != 3 {
		t.Fatalf("bad piece description %q", desc)
	}
	letter := desc[0]
	colour := chess.White
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		letter -= 'a' - 'A'
	}
	kind := chess.NumKinds
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		if k.Letter() == letter {
			kind = k
		}
	}
	if kind == chess.NumKinds {
		t.Fatalf("bad piece letter in %q", desc)
	}

	p := chess.NewPiece(colour, kind)
	if err := b.Place(p, Sq(t, desc[1:])); err != nil {
		t.Fatalf("Place(%q): %v", desc, err)
	}
	return p
}
