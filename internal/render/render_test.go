package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestBoard_Plain(t *testing.T) {
	t.Parallel()
	b := chess.NewBoard()
	b.SetupInitialPosition()

	var buf bytes.Buffer
	New(&buf, false).Board(b)

	want := strings.Join([]string{
		"   | a | b | c | d | e | f | g | h |",
		separator,
		" 8 | r | n | b | q | k | b | n | r |",
		" 7 | p | p | p | p | p | p | p | p |",
		" 6 |   |   |   |   |   |   |   |   |",
		" 5 |   |   |   |   |   |   |   |   |",
		" 4 |   |   |   |   |   |   |   |   |",
		" 3 |   |   |   |   |   |   |   |   |",
		" 2 | P | P | P | P | P | P | P | P |",
		" 1 | R | N | B | Q | K | B | N | R |",
		separator,
	}, "\n") + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestMoves_Plain(t *testing.T) {
	t.Parallel()
	b := testutil.SetupBoard(t, "Ra1", "pa3")
	targets := testutil.Squares(t, "a2", "a3", "b1")

	var buf bytes.Buffer
	New(&buf, false).Moves(b, targets)

	lines := strings.Split(buf.String(), "\n")
	tests := []struct {
		line int
		want string
	}{
		{7, " 3 | p |   |   |   |   |   |   |   |"},
		{8, " 2 | * |   |   |   |   |   |   |   |"},
		{9, " 1 | R | * |   |   |   |   |   |   |"},
	}
	for _, tt := range tests {
		if got := lines[tt.line]; got != tt.want {
			t.Errorf("line %d = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMoves_NilSet(t *testing.T) {
	t.Parallel()
	b := testutil.SetupBoard(t, "Ke1")

	var withNil, plain bytes.Buffer
	New(&withNil, false).Moves(b, nil)
	New(&plain, false).Board(b)

	testutil.AssertEqual(t, withNil.String(), plain.String())
}

func TestBoard_Colour(t *testing.T) {
	t.Parallel()
	b := testutil.SetupBoard(t, "Ke1", "ke8")

	var buf bytes.Buffer
	New(&buf, true).Board(b)
	out := buf.String()

	testutil.AssertContains(t, out, "\x1b[")
	testutil.AssertContains(t, out, " K ")
	testutil.AssertContains(t, out, " k ")
}

func TestCaptured(t *testing.T) {
	t.Parallel()
	white := []*chess.Piece{chess.NewPiece(chess.White, chess.Knight)}
	black := []*chess.Piece{
		chess.NewPiece(chess.Black, chess.Pawn),
		chess.NewPiece(chess.Black, chess.Queen),
	}

	var buf bytes.Buffer
	New(&buf, false).Captured(white, black)

	want := "White    Black\n" +
		"Knight   Pawn\n" +
		"         Queen\n" +
		"1 lost   2 lost\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestCaptured_Empty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false).Captured(nil, nil)
	testutil.AssertEqual(t, buf.String(), "White    Black\n0 lost   0 lost\n")
}
