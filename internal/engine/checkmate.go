package engine

import "github.com/ZinoviiZ/chesskit/internal/chess"

// isCheckmate reports whether colour is in check with no move, by any of
// its pieces, that escapes the check. It brute-forces the single ply: every
// piece, every coordinate in its legal-destination set, simulated on a
// fresh clone. A simulation that passes check resolution is an escape.
func isCheckmate(colour chess.Colour, b *Board) bool {
	if !b.inCheck[colour] {
		return false
	}
	for _, p := range b.pieces[colour] {
		for to := range FindAttackingRegion(p, b) {
			if _, err := simulateMove(p, to, b); err == nil {
				return false
			}
		}
	}
	return true
}
