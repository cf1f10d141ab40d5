// commands.go - Command parsing and the interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/render"
)

// commandKind identifies what a line of input asks for.
type commandKind int

const (
	cmdMove commandKind = iota
	cmdInspect
	cmdMoves
	cmdAvailable
	cmdUndo
	cmdPrint
	cmdStat
	cmdFEN
	cmdSkip
	cmdHelp
	cmdExit
)

// command is one parsed line of input.
type command struct {
	kind  commandKind
	start chess.Position
	end   chess.Position
}

// keywords maps single-word commands to their kind.
var keywords = map[string]commandKind{
	"available": cmdAvailable,
	"undo":      cmdUndo,
	"print":     cmdPrint,
	"stat":      cmdStat,
	"fen":       cmdFEN,
	"skip":      cmdSkip,
	"help":      cmdHelp,
	"exit":      cmdExit,
	"quit":      cmdExit,
}

const helpText = `Commands:
  e2 to e4   move a piece (also e2e4 or e2-e4)
  e2         show what stands on a square
  moves e2   show where the piece on e2 may move
  available  show every square the side to move can reach
  undo       take back the last move
  print      draw the board
  stat       list captured pieces
  fen        show the position as FEN
  skip       pass the turn
  help       show this text
  exit       leave the game
`

// parseCommand turns a line of input into a command. Input is case
// insensitive and surrounding space is ignored.
func parseCommand(line string) (command, error) {
	input := strings.ToLower(strings.TrimSpace(line))
	fields := strings.Fields(input)

	if len(fields) == 0 {
		return command{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: line, Expected: "a command"}
	}

	if kind, ok := keywords[fields[0]]; ok && len(fields) == 1 {
		return command{kind: kind}, nil
	}

	switch {
	case len(fields) == 2 && fields[0] == "moves":
		pos, err := parseSquareField(line, input, fields[1])
		return command{kind: cmdMoves, start: pos}, err

	case len(fields) == 3 && fields[1] == "to":
		return parseMove(line, input, fields[0], fields[2])

	case len(fields) == 2:
		return parseMove(line, input, fields[0], fields[1])

	case len(fields) == 1 && len(fields[0]) == 2:
		pos, err := parseSquareField(line, input, fields[0])
		return command{kind: cmdInspect, start: pos}, err

	case len(fields) == 1 && len(fields[0]) == 4:
		return parseMove(line, input, fields[0][:2], fields[0][2:])

	case len(fields) == 1 && len(fields[0]) == 5 && fields[0][2] == '-':
		return parseMove(line, input, fields[0][:2], fields[0][3:])
	}

	return command{}, &errors.ParseError{
		Err:      errors.ErrInvalidSquare,
		Input:    line,
		Column:   strings.Index(input, fields[0]) + 1,
		Expected: "a move or command",
		Got:      fields[0],
	}
}

// parseMove builds a move command from two square names.
func parseMove(line, input, from, to string) (command, error) {
	start, err := parseSquareField(line, input, from)
	if err != nil {
		return command{}, err
	}
	end, err := parseSquareField(line, input, to)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdMove, start: start, end: end}, nil
}

// parseSquareField parses one square and reports where it sits in the line.
func parseSquareField(line, input, field string) (chess.Position, error) {
	pos, err := chess.ParseSquare(field)
	if err != nil {
		return pos, &errors.ParseError{
			Err:      err,
			Input:    line,
			Column:   strings.Index(input, field) + 1,
			Expected: "a square a1-h8",
			Got:      field,
		}
	}
	return pos, nil
}

// session runs the read-eval-print loop for one game.
type session struct {
	ctrl *engine.Controller
	cfg  *config.Config
	out  io.Writer
	r    *render.Renderer
}

func newSession(ctrl *engine.Controller, cfg *config.Config) *session {
	return &session{
		ctrl: ctrl,
		cfg:  cfg,
		out:  cfg.OutputFile,
		r:    render.New(cfg.OutputFile, cfg.Display.UseColour),
	}
}

// Run reads commands from in until exit or end of input.
func (s *session) Run(in io.Reader) error {
	fmt.Fprintln(s.out, strings.Repeat("-", 5)+"CHESS"+strings.Repeat("-", 5))
	if s.cfg.Display.ShowBoard {
		s.r.Board(s.ctrl.Board())
	}

	scanner := bufio.NewScanner(in)
	for {
		if s.cfg.Display.Prompt {
			fmt.Fprintf(s.out, "%s's turn.\n> ", s.ctrl.ToMove())
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			s.cfg.Logf(config.Scanning, "[input] %v", err)
			fmt.Fprintln(s.out, "Invalid input. Try Again!")
			continue
		}
		if s.execute(cmd) {
			return nil
		}
	}
}

// execute carries out one command and reports whether the loop should end.
func (s *session) execute(cmd command) bool {
	board := s.ctrl.Board()

	switch cmd.kind {
	case cmdMove:
		s.move(cmd.start, cmd.end)
	case cmdInspect:
		piece, _ := board.At(cmd.start)
		fmt.Fprintln(s.out, piece)
	case cmdMoves:
		targets, err := s.ctrl.LegalMoves(cmd.start)
		if err != nil {
			fmt.Fprintf(s.out, "No moves: %v\n", err)
			return false
		}
		s.r.Moves(board, targets)
	case cmdAvailable:
		s.r.Moves(board, engine.AllValidMoves(board, s.ctrl.ToMove()))
	case cmdUndo:
		m, err := s.ctrl.Undo()
		if errors.Is(err, errors.ErrEmptyHistory) {
			fmt.Fprintln(s.out, "Nothing to undo.")
			return false
		}
		if err != nil {
			fmt.Fprintf(s.out, "Undo failed: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Took back %s.\n", m)
		s.showBoard()
	case cmdPrint:
		s.r.Board(board)
	case cmdStat:
		h := s.ctrl.History()
		s.r.Captured(h.Captured(chess.White), h.Captured(chess.Black))
	case cmdFEN:
		fmt.Fprintln(s.out, s.ctrl.FEN())
	case cmdSkip:
		if err := s.ctrl.Skip(); err != nil {
			fmt.Fprintf(s.out, "You can't skip your turn: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Turn passed to %s.\n", s.ctrl.ToMove())
	case cmdHelp:
		fmt.Fprint(s.out, helpText)
	case cmdExit:
		return true
	}
	return false
}

// move attempts a move and reports the outcome to the players.
func (s *session) move(start, end chess.Position) {
	mover := s.ctrl.ToMove()

	switch s.ctrl.AttemptMove(start, end) {
	case engine.OK:
		s.showBoard()
		s.announce(mover)
	case engine.NullMove:
		fmt.Fprintln(s.out, "You can't move something at that position, because there's nothing there!")
	case engine.WrongColour:
		fmt.Fprintln(s.out, "You can't move a piece that's not your current color.")
	case engine.InvalidMove:
		fmt.Fprintln(s.out, "You can't move that piece there. These are your valid moves with that piece:")
		if targets, err := s.ctrl.LegalMoves(start); err == nil {
			s.r.Moves(s.ctrl.Board(), targets)
		}
	case engine.IntoCheck:
		fmt.Fprintln(s.out, "You can't make that move, it would leave your king in check.")
	case engine.Checkmate:
		fmt.Fprintf(s.out, "Checkmate. %s wins. Type undo to take back, or exit.\n", mover.Opposite())
	}
}

// announce reports check, checkmate or stalemate after mover's move.
func (s *session) announce(mover chess.Colour) {
	opponent := mover.Opposite()
	switch {
	case s.ctrl.IsCheckmate(opponent):
		fmt.Fprintf(s.out, "Checkmate! %s wins.\n", mover)
	case s.ctrl.IsStalemate(opponent):
		fmt.Fprintln(s.out, "Stalemate! The game is drawn.")
	case s.cfg.Display.ShowCheck && s.ctrl.IsInCheck(opponent):
		fmt.Fprintf(s.out, "Check: %s is in check.\n", opponent)
	}
}

func (s *session) showBoard() {
	if s.cfg.Display.ShowBoard {
		s.r.Board(s.ctrl.Board())
	}
}
