package chess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Position is a (row, column) coordinate. It is a value type and can be
// used as a map key. Only positions with both coordinates in 0..7 are on
// the board.
type Position struct {
	Row    int
	Column int
}

// Pos is shorthand for Position{Row: row, Column: column}.
func Pos(row, column int) Position {
	return Position{Row: row, Column: column}
}

// InRange reports whether the position lies on the 8x8 grid.
func (p Position) InRange() bool {
	return InRange(p.Row, p.Column)
}

// InRange reports whether (row, column) lies on the 8x8 grid.
func InRange(row, column int) bool {
	return row >= 0 && row < BoardSize && column >= 0 && column < BoardSize
}

// Offset returns the position dr rows and dc columns away.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Column: p.Column + dc}
}

// String returns the algebraic name of the square ("e4"), or "(row, col)"
// for positions off the board.
func (p Position) String() string {
	if !p.InRange() {
		return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
	}
	return string([]byte{byte(ColBase + p.Column), byte(RankBase + BoardSize - 1 - p.Row)})
}

// ParseSquare converts an algebraic square such as "e2" to a Position.
// File letters may be upper or lower case.
func ParseSquare(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	rank := s[1]
	if col < ColBase || col > LastCol || rank < RankBase || rank > LastRank {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Position{
		Row:    BoardSize - 1 - int(rank-RankBase),
		Column: int(col - ColBase),
	}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

// NewPositionSet returns a set holding the given positions.
func NewPositionSet(positions ...Position) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s.Add(p)
	}
	return s
}

// Add inserts p into the set.
func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	return len(s)
}

// Union adds every position of other to s.
func (s PositionSet) Union(other PositionSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Sorted returns the positions in row-major order.
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// String lists the squares in row-major order, e.g. "[e3 e4]".
func (s PositionSet) String() string {
	sorted := s.Sorted()
	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
