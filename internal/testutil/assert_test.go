package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSquares_Success(t *testing.T) {
	AssertSquares(t, Squares(t, "e4", "e3"), []string{"e3", "e4"})
	AssertSquares(t, Squares(t), nil)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertNotContains(t, "hello world", "foo")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"string", []interface{}{"msg"}, "msg"},
		{"non-string", []interface{}{42}, "42"},
		{"format", []interface{}{"value %d of %s", 1, "x"}, "value 1 of x"},
		{"non-string first with args", []interface{}{42, "x"}, "42"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSetupBoard(t *testing.T) {
	b := SetupBoard(t, "Ke1", "rd8", "pa7")
	pieces := b.Pieces()
	if len(pieces) != 3 {
		t.Fatalf("len(Pieces()) = %d, want 3", len(pieces))
	}

	got := make([]string, len(pieces))
	for i, p := range pieces {
		got[i] = p.String()
	}
	AssertEqual(t, got, []string{"Black Rook at d8", "Black Pawn at a7", "White King at e1"})
}
