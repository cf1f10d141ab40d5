package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/hashing"
)

// Status is the outcome of a move attempt.
type Status int

const (
	OK          Status = iota // move committed, turn passed to the opponent
	NullMove                  // no piece on the start square
	InvalidMove               // a square is off the board, or the piece cannot reach end
	WrongColour               // the piece belongs to the side not on move
	IntoCheck                 // the move would leave the mover's king attacked; rolled back
	Checkmate                 // the side to move is checkmated; no move was tried
)

// String returns the name of the status.
func (s Status) String() string {
	names := []string{"OK", "NullMove", "InvalidMove", "WrongColour", "IntoCheck", "Checkmate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Err returns nil for OK and otherwise an error wrapping the sentinel that
// best describes the rejection.
func (s Status) Err() error {
	switch s {
	case OK:
		return nil
	case NullMove:
		return errors.ErrNoPiece
	case Checkmate:
		return fmt.Errorf("game over (%s): %w", s, errors.ErrIllegalMove)
	default:
		return fmt.Errorf("%s: %w", s, errors.ErrIllegalMove)
	}
}

// Controller runs one game: it owns the board and its move history and
// tracks whose turn it is. It is not safe for concurrent use.
type Controller struct {
	id      uuid.UUID
	cfg     *config.Config
	board   *chess.Board
	history *History
	toMove  chess.Colour
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	fen string
	id  uuid.UUID
}

// WithFEN starts the game from the given position instead of the one in
// the configuration.
func WithFEN(fen string) Option {
	return func(o *controllerOptions) {
		o.fen = fen
	}
}

// WithID fixes the game identifier used in log lines.
func WithID(id uuid.UUID) Option {
	return func(o *controllerOptions) {
		o.id = id
	}
}

// NewController creates a game. The starting position is taken from
// WithFEN, then cfg.StartFEN, then the standard position. A nil cfg uses
// config.NewConfig().
func NewController(cfg *config.Config, opts ...Option) (*Controller, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	o := controllerOptions{fen: cfg.StartFEN}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	c := &Controller{id: o.id, cfg: cfg}
	if o.fen == "" {
		c.board = NewInitialBoard()
		c.toMove = chess.White
	} else {
		board, toMove, err := NewBoardFromFEN(o.fen)
		if err != nil {
			return nil, errors.Wrapf(err, "start position %q", o.fen)
		}
		c.board = board
		c.toMove = toMove
	}
	c.history = NewHistory(c.board)

	c.logf(config.Events, "new game, %s to move: %s", c.toMove, c.FEN())
	return c, nil
}

// ID returns the game identifier.
func (c *Controller) ID() uuid.UUID { return c.id }

// Board returns the board for read-only use by renderers.
func (c *Controller) Board() *chess.Board { return c.board }

// History returns the move history.
func (c *Controller) History() *History { return c.history }

// ToMove returns the side to move.
func (c *Controller) ToMove() chess.Colour { return c.toMove }

// Ply returns the number the next committed move will have (1-based).
func (c *Controller) Ply() int { return c.history.Len() + 1 }

// FEN returns the current position as a FEN string.
func (c *Controller) FEN() string { return BoardToFEN(c.board, c.toMove) }

// Fingerprint returns the Zobrist key of the current position.
func (c *Controller) Fingerprint() uint64 { return hashing.Zobrist(c.board, c.toMove) }

// AttemptMove tries to move the piece on start to end for the side to move.
// Any status other than OK leaves the board, the history and the turn as
// they were. A stalemated side gets no special status: every move it tries
// is rejected by the ordinary checks.
func (c *Controller) AttemptMove(start, end chess.Position) Status {
	mover := c.toMove

	if c.IsCheckmate(mover) {
		return Checkmate
	}

	piece, err := c.board.At(start)
	if err != nil {
		return c.reject(InvalidMove, start, end)
	}
	if piece == nil {
		return c.reject(NullMove, start, end)
	}
	if piece.Colour() != mover {
		return c.reject(WrongColour, start, end)
	}
	if !end.InRange() || !Moves(c.board, piece).Contains(end) {
		return c.reject(InvalidMove, start, end)
	}

	move := c.apply(piece, end)
	if c.IsInCheck(mover) {
		c.takeBack()
		return c.reject(IntoCheck, start, end)
	}

	c.toMove = mover.Opposite()
	c.logf(config.Events, "ply %d: %s %s", c.history.Len(), mover, move)
	if c.cfg.Verbosity >= config.Events && c.IsInCheck(c.toMove) {
		c.logf(config.Events, "%s is in check", c.toMove)
	}
	return OK
}

// reject logs a refused move and returns its status.
func (c *Controller) reject(s Status, start, end chess.Position) Status {
	if c.cfg.Verbosity >= config.Scanning {
		err := &errors.MoveError{Err: s.Err(), Start: start.String(), End: end.String(), Ply: c.Ply()}
		c.logf(config.Scanning, "rejected: %v", err)
	}
	return s
}

// apply records and performs a move without any legality checks.
func (c *Controller) apply(piece *chess.Piece, end chess.Position) chess.Move {
	captured, _ := c.board.At(end)
	move := chess.Move{Start: piece.Position(), End: end, Piece: piece, Captured: captured}
	c.history.Push(move)
	// end has been range checked by the caller.
	_, _ = c.board.Move(piece, end.Row, end.Column)
	return move
}

// takeBack undoes the move just made by apply.
func (c *Controller) takeBack() {
	if _, err := c.history.Undo(); err != nil {
		// Only reachable if apply was not called first.
		c.logf(config.Events, "take back failed: %v", err)
	}
}

// Undo takes back the most recent committed move and returns the turn to
// the side that made it. It returns ErrEmptyHistory when there is nothing
// to undo.
func (c *Controller) Undo() (chess.Move, error) {
	move, err := c.history.Undo()
	if err != nil {
		return move, err
	}
	c.toMove = move.Piece.Colour()
	c.logf(config.Events, "undo %s, %s to move", move, c.toMove)
	return move, nil
}

// Skip passes the turn to the other side without moving. A side in check
// may not pass, since the opponent could then take its king.
func (c *Controller) Skip() error {
	if c.IsInCheck(c.toMove) {
		return fmt.Errorf("%s is in check: %w", c.toMove, errors.ErrIllegalMove)
	}
	c.toMove = c.toMove.Opposite()
	c.logf(config.Events, "turn skipped, %s to move", c.toMove)
	return nil
}

// IsInCheck reports whether colour's king stands on a square the opponent's
// pieces can reach. A side without a king is never in check.
func (c *Controller) IsInCheck(colour chess.Colour) bool {
	king := findKing(c.board, colour)
	if king == nil {
		return false
	}
	return AllValidMoves(c.board, colour.Opposite()).Contains(king.Position())
}

// IsCheckmate reports whether colour is in check and no move of any of its
// pieces gets the king out of check. Every trial move is undone, so the
// board and history are unchanged afterwards.
func (c *Controller) IsCheckmate(colour chess.Colour) bool {
	return c.IsInCheck(colour) && !c.hasLegalMove(colour)
}

// IsStalemate reports whether colour is not in check but has no legal move.
func (c *Controller) IsStalemate(colour chess.Colour) bool {
	return !c.IsInCheck(colour) && !c.hasLegalMove(colour)
}

// LegalMoves returns the targets of the piece on pos that do not leave its
// own king attacked.
func (c *Controller) LegalMoves(pos chess.Position) (chess.PositionSet, error) {
	piece, err := c.board.At(pos)
	if err != nil {
		return nil, &errors.MoveError{Err: err, Start: pos.String()}
	}
	if piece == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, Start: pos.String()}
	}

	legal := make(chess.PositionSet)
	for _, target := range Moves(c.board, piece).Sorted() {
		if c.escapesCheck(piece, target) {
			legal.Add(target)
		}
	}
	return legal, nil
}

// hasLegalMove tries every pseudo-legal move of colour until one leaves its
// king safe.
func (c *Controller) hasLegalMove(colour chess.Colour) bool {
	var before uint64
	if c.cfg.Verbosity >= config.Scanning {
		before = c.Fingerprint()
	}

	found := false
scan:
	for _, piece := range piecesOf(c.board, colour) {
		for _, target := range Moves(c.board, piece).Sorted() {
			if c.escapesCheck(piece, target) {
				found = true
				break scan
			}
		}
	}

	if c.cfg.Verbosity >= config.Scanning {
		if after := c.Fingerprint(); after != before {
			c.logf(config.Scanning, "trial scan for %s changed the position: %x -> %x", colour, before, after)
		}
	}
	return found
}

// escapesCheck provisionally plays piece to target, tests whether its own
// king is attacked, and takes the move back.
func (c *Controller) escapesCheck(piece *chess.Piece, target chess.Position) bool {
	c.apply(piece, target)
	inCheck := c.IsInCheck(piece.Colour())
	c.takeBack()
	return !inCheck
}

// logf writes a diagnostic line tagged with the game id.
func (c *Controller) logf(level int, format string, args ...interface{}) {
	c.cfg.Logf(level, "[%s] "+format, append([]interface{}{c.id.String()[:8]}, args...)...)
}
