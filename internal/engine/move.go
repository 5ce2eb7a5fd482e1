package engine

import (
	"github.com/ZinoviiZ/chesskit/internal/chess"
	"github.com/ZinoviiZ/chesskit/internal/errors"
)

// ApplyMove validates and applies a move for player, returning the next
// board. It checks, in order: both coordinates in range, a piece at the
// origin, the piece owned by player, and the destination free of friendly
// occupancy, then delegates to the piece's own movement rules. On any
// failure b is untouched and the returned error wraps the rejection reason
// with the attempted move.
func ApplyMove(b *Board, player chess.Colour, m chess.Move) (*Board, error) {
	if !m.From.InRange() || !m.To.InRange() {
		return nil, moveError(errors.ErrOutOfBounds, player, m)
	}
	origin := b.at(m.From)
	if origin.Empty() {
		return nil, moveError(errors.ErrEmptyOrigin, player, m)
	}
	if origin.Piece.Colour != player {
		return nil, moveError(errors.ErrWrongMover, player, m)
	}
	if dest := b.at(m.To); dest.Occupied && dest.Piece.Colour == origin.Piece.Colour {
		return nil, moveError(errors.ErrFriendlyFire, player, m)
	}

	next, err := movePiece(origin.Piece, m.To, b)
	if err != nil {
		return nil, moveError(err, player, m)
	}
	return next, nil
}

// movePiece applies the piece's own movement rules and evaluates the full
// derived state of the resulting board, including its checkmate flag.
func movePiece(p chess.Piece, to chess.Coord, b *Board) (*Board, error) {
	next, err := simulateMove(p, to, b)
	if err != nil {
		return nil, err
	}
	next.mate = isCheckmate(p.Colour.Opposite(), next)
	return next, nil
}

// simulateMove validates the destination against the piece's
// legal-destination set, builds the successor position and enforces the
// check-resolution rule. Only the mover's own king gates the move: a move
// that leaves it in check fails with ErrUnresolvedCheck, one that newly
// exposes it fails with ErrSelfExposedCheck, and checks delivered to the
// opponent are never restricted. The successor's checkmate flag is left
// unevaluated; the checkmate search probes positions through this function,
// and the flag of a hypothetical position is never observed.
func simulateMove(p chess.Piece, to chess.Coord, b *Board) (*Board, error) {
	if !FindAttackingRegion(p, b).Has(to) {
		return nil, errors.ErrUnreachableDestination
	}

	next := b.successor(p, to)

	wasInCheck := b.inCheck[p.Colour]
	nowInCheck := next.inCheck[p.Colour]
	switch {
	case wasInCheck && nowInCheck:
		return nil, errors.ErrUnresolvedCheck
	case !wasInCheck && nowInCheck:
		return nil, errors.ErrSelfExposedCheck
	}
	return next, nil
}

func moveError(err error, player chess.Colour, m chess.Move) error {
	return &errors.MoveError{Err: err, Player: player, From: m.From, To: m.To}
}
