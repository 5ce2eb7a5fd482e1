// Package errors provides sentinel errors and error types for the rule
// engine. It defines the rejection reasons a move can fail with and a
// structured error type that preserves context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"

	"github.com/ZinoviiZ/chesskit/internal/chess"
)

// Sentinel errors for the move rejection reasons. All of them are
// recoverable: a rejected move leaves the board it was attempted on
// untouched.
var (
	// ErrOutOfBounds indicates an origin or destination outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptyOrigin indicates a move starting from an empty square.
	ErrEmptyOrigin = errors.New("no piece at origin")

	// ErrWrongMover indicates a player moving the opponent's piece.
	ErrWrongMover = errors.New("piece belongs to the opponent")

	// ErrFriendlyFire indicates a destination occupied by the mover's own piece.
	ErrFriendlyFire = errors.New("destination holds a friendly piece")

	// ErrUnreachableDestination indicates a destination the piece cannot reach.
	ErrUnreachableDestination = errors.New("destination not reachable")

	// ErrUnresolvedCheck indicates a move that leaves the mover's king in check.
	ErrUnresolvedCheck = errors.New("king remains in check")

	// ErrSelfExposedCheck indicates a move that puts the mover's own king in check.
	ErrSelfExposedCheck = errors.New("move exposes own king to check")
)

// MoveError wraps a rejection reason with the move that caused it. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error        // The underlying rejection reason
	Player chess.Colour // The player who attempted the move
	From   chess.Coord  // Origin square
	To     chess.Coord  // Destination square
}

// Error returns a formatted error message including the move context.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s%s: %v", e.Player, e.From, e.To, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
