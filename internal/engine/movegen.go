package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// direction is a (row, column) step.
type direction [2]int

var (
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs      = append(append([]direction{}, straightDirs...), diagonalDirs...)
	knightJumps  = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// generator computes the pseudo-legal targets of a piece of one kind.
type generator func(board *chess.Board, piece *chess.Piece, moves chess.PositionSet)

// generators is the move generation dispatch table, indexed by kind.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// Moves returns the pseudo-legal target squares of piece: the squares its
// movement pattern reaches given the current occupancy, without regard to
// whether the move would expose its own king. The set is computed afresh
// on every call.
func Moves(board *chess.Board, piece *chess.Piece) chess.PositionSet {
	moves := make(chess.PositionSet)
	if piece == nil || piece.Kind() < 0 || piece.Kind() >= chess.NumKinds {
		return moves
	}
	generators[piece.Kind()](board, piece, moves)
	return moves
}

// squareClass is the result of probing a square from a moving piece.
type squareClass int

const (
	squareEmpty squareClass = iota
	squareOff
	squareFriend
	squareEnemy
)

// classify reports what piece would find at pos.
func classify(board *chess.Board, piece *chess.Piece, pos chess.Position) squareClass {
	occupant, err := board.At(pos)
	switch {
	case err != nil:
		return squareOff
	case occupant == nil:
		return squareEmpty
	case occupant.Colour() == piece.Colour():
		return squareFriend
	default:
		return squareEnemy
	}
}

// addMove records pos as a target if piece may land there and reports
// whether a ray through pos may continue.
func addMove(board *chess.Board, piece *chess.Piece, pos chess.Position, moves chess.PositionSet) bool {
	switch classify(board, piece, pos) {
	case squareEmpty:
		moves.Add(pos)
		return true
	case squareEnemy:
		moves.Add(pos)
		return false
	default:
		return false
	}
}

// castRays steps outward along each direction until blocked or off the board.
func castRays(board *chess.Board, piece *chess.Piece, dirs []direction, moves chess.PositionSet) {
	from := piece.Position()
	for _, dir := range dirs {
		pos := from.Offset(dir[0], dir[1])
		for addMove(board, piece, pos, moves) {
			pos = pos.Offset(dir[0], dir[1])
		}
	}
}

// stepOnce classifies the single square at each offset.
func stepOnce(board *chess.Board, piece *chess.Piece, offsets []direction, moves chess.PositionSet) {
	from := piece.Position()
	for _, off := range offsets {
		addMove(board, piece, from.Offset(off[0], off[1]), moves)
	}
}

func rookMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	castRays(board, piece, straightDirs, moves)
}

func bishopMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	castRays(board, piece, diagonalDirs, moves)
}

func queenMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	castRays(board, piece, allDirs, moves)
}

func knightMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	stepOnce(board, piece, knightJumps, moves)
}

func kingMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	stepOnce(board, piece, allDirs, moves)
}

// pawnMoves generates single and double pushes and diagonal captures.
// There is no en passant and no promotion.
func pawnMoves(board *chess.Board, piece *chess.Piece, moves chess.PositionSet) {
	colour := piece.Colour()
	dir := chess.Forward(colour)
	from := piece.Position()

	one := from.Offset(dir, 0)
	if classify(board, piece, one) == squareEmpty {
		moves.Add(one)
		if from.Row == chess.PawnRow(colour) {
			two := from.Offset(2*dir, 0)
			if classify(board, piece, two) == squareEmpty {
				moves.Add(two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		target := from.Offset(dir, dc)
		if classify(board, piece, target) == squareEnemy {
			moves.Add(target)
		}
	}
}
