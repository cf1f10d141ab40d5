// Package hashing provides position fingerprints for termchess boards.
package hashing

import "github.com/lgbarn/termchess-go/internal/chess"

// zobristSeed fixes the key table so fingerprints are stable across runs.
const zobristSeed = 0x5eed_c0de_2021_0001

var (
	// pieceKeys[colour][kind][row][column]
	pieceKeys   [2][chess.NumKinds][chess.BoardSize][chess.BoardSize]uint64
	whiteToMove uint64
)

func init() {
	state := uint64(zobristSeed)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for r := range pieceKeys[c][k] {
				for col := range pieceKeys[c][k][r] {
					pieceKeys[c][k][r][col] = splitmix64(&state)
				}
			}
		}
	}
	whiteToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Zobrist returns the Zobrist key of the occupancy of board with toMove to
// play. Equal positions always hash equal; a difference in any square or in
// the side to move changes the key with overwhelming probability.
func Zobrist(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		pos := p.Position()
		hash ^= pieceKeys[p.Colour()][p.Kind()][pos.Row][pos.Column]
	}
	if toMove == chess.White {
		hash ^= whiteToMove
	}
	return hash
}
