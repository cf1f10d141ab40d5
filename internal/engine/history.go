package engine

import (
	"sync"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// History is the stack of moves applied to a board, most recent last.
// It is used both for the user's undo and for the provisional moves made
// while testing for check, so every trial move is taken back through the
// same Push/Undo pair.
type History struct {
	mu    sync.Mutex
	board *chess.Board
	moves []chess.Move
}

// NewHistory creates an empty history bound to board.
func NewHistory(board *chess.Board) *History {
	return &History{board: board}
}

// Push records a move. It does not touch the board.
func (h *History) Push(m chess.Move) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.moves = append(h.moves, m)
}

// Pop removes and returns the most recent move, or ErrEmptyHistory.
func (h *History) Pop() (chess.Move, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pop()
}

func (h *History) pop() (chess.Move, error) {
	n := len(h.moves)
	if n == 0 {
		return chess.Move{}, errors.ErrEmptyHistory
	}
	m := h.moves[n-1]
	h.moves[n-1] = chess.Move{}
	h.moves = h.moves[:n-1]
	return m, nil
}

// Undo pops the most recent move and restores the exact prior occupants of
// its start and end squares. An undone move cannot be redone.
func (h *History) Undo() (chess.Move, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, err := h.pop()
	if err != nil {
		return m, err
	}
	if err := h.board.ForceSet(m.Piece, m.Start); err != nil {
		return m, errors.Wrapf(err, "restoring %s", m.Start)
	}
	if err := h.board.ForceSet(m.Captured, m.End); err != nil {
		return m, errors.Wrapf(err, "restoring %s", m.End)
	}
	return m, nil
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.moves)
}

// Last returns the most recent move without removing it.
func (h *History) Last() (chess.Move, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.moves) == 0 {
		return chess.Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// Moves returns a copy of the recorded moves, oldest first.
func (h *History) Moves() []chess.Move {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]chess.Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Captured returns the pieces of the given colour taken so far, in the
// order they were captured.
func (h *History) Captured(colour chess.Colour) []*chess.Piece {
	h.mu.Lock()
	defer h.mu.Unlock()
	var taken []*chess.Piece
	for _, m := range h.moves {
		if m.Captured != nil && m.Captured.Colour() == colour {
			taken = append(taken, m.Captured)
		}
	}
	return taken
}
