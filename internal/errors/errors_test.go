package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrSquareOccupied", ErrSquareOccupied, ErrSquareOccupied},
		{"ErrEmptyHistory", ErrEmptyHistory, ErrEmptyHistory},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrOutOfRange, ErrNoPiece) {
		t.Error("errors.Is(ErrOutOfRange, ErrNoPiece) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Start: "e2",
				End:   "e5",
				Ply:   7,
			},
			contains: []string{"ply 7", "e2-e5", "illegal move"},
		},
		{
			name:     "start square only",
			err:      &MoveError{Err: ErrNoPiece, Start: "d4"},
			contains: []string{"square d4", "no piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrEmptyHistory},
			contains: []string{"no moves to undo"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrOutOfRange, Start: "e2", End: "e9"}

	if !errors.Is(moveErr, ErrOutOfRange) {
		t.Error("errors.Is(moveErr, ErrOutOfRange) = false, want true")
	}

	wrapped := fmt.Errorf("attempt failed: %w", moveErr)
	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, &MoveError) = false, want true")
	}
	if extracted.End != "e9" {
		t.Errorf("extracted.End = %q, want %q", extracted.End, "e9")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "expected and got",
			err: &ParseError{
				Err:      ErrInvalidSquare,
				Input:    "e2 to z9",
				Column:   7,
				Expected: "square",
				Got:      "z9",
			},
			want: `"e2 to z9":7: expected square, got z9: invalid square`,
		},
		{
			name: "bare error",
			err:  &ParseError{Err: ErrInvalidSquare},
			want: "invalid square",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}

	err := Wrapf(ErrInvalidFEN, "loading %s", "start position")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("errors.Is(Wrapf(...), ErrInvalidFEN) = false, want true")
	}
	if !strings.HasPrefix(err.Error(), "loading start position: ") {
		t.Errorf("Wrapf() = %q, want prefix %q", err.Error(), "loading start position: ")
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestIsAs(t *testing.T) {
	err := Wrap(&MoveError{Err: ErrIllegalMove, Start: "e2", End: "e5"}, "attempt")

	if !Is(err, ErrIllegalMove) {
		t.Errorf("Is(%v, ErrIllegalMove) = false, want true", err)
	}
	if Is(err, ErrNoPiece) {
		t.Errorf("Is(%v, ErrNoPiece) = true, want false", err)
	}

	var me *MoveError
	if !As(err, &me) {
		t.Fatalf("As(%v, *MoveError) = false, want true", err)
	}
	if me.Start != "e2" {
		t.Errorf("MoveError.Start = %q, want e2", me.Start)
	}
}
