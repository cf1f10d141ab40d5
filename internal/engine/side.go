package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// AllValidMoves returns the union of the pseudo-legal targets of every
// piece of the given colour. For the opponent of the side to move this is
// the set of attacked squares used for check detection.
func AllValidMoves(board *chess.Board, colour chess.Colour) chess.PositionSet {
	all := make(chess.PositionSet)
	for _, p := range board.Pieces() {
		if p.Colour() == colour {
			all.Union(Moves(board, p))
		}
	}
	return all
}

// FindPieces returns every piece of the given colour and kind on the board,
// in row-major order.
func FindPieces(board *chess.Board, colour chess.Colour, kind chess.Kind) []*chess.Piece {
	var found []*chess.Piece
	for _, p := range board.Pieces() {
		if p.Colour() == colour && p.Kind() == kind {
			found = append(found, p)
		}
	}
	return found
}

// piecesOf returns every piece of the given colour on the board.
func piecesOf(board *chess.Board, colour chess.Colour) []*chess.Piece {
	var found []*chess.Piece
	for _, p := range board.Pieces() {
		if p.Colour() == colour {
			found = append(found, p)
		}
	}
	return found
}

// findKing returns the king of the given colour, or nil if there is none.
func findKing(board *chess.Board, colour chess.Colour) *chess.Piece {
	kings := FindPieces(board, colour, chess.King)
	if len(kings) == 0 {
		return nil
	}
	return kings[0]
}
