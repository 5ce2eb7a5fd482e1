package main

import (
	"fmt"

	"github.com/ZinoviiZ/chesskit/internal/chess"
)

// parseMove parses long algebraic move input such as "e2e4".
func parseMove(s string) (chess.Move, error) {
	if len(s) != 4 {
		return chess.Move{}, fmt.Errorf("want a move like e2e4, got %q", s)
	}
	from, err := chess.ParseCoord(s[:2])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := chess.ParseCoord(s[2:])
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

// mirrorMove maps a move issued from the second player's perspective into
// White-oriented coordinates, using the rank-only mirror.
func mirrorMove(m chess.Move) chess.Move {
	return chess.Move{From: m.From.ReversedByY(), To: m.To.ReversedByY()}
}
