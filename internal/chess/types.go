// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank direction this colour's pawns advance in:
// +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank this colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// Kind identifies a piece's movement rules.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece on the board, tagged with its kind, colour and position.
type Piece struct {
	Kind   Kind
	Colour Colour
	Coord  Coord
}

// Square is one cell of the board: either empty or holding a piece.
type Square struct {
	Piece    Piece
	Occupied bool
}

// OccupiedBy returns a square holding the given piece.
func OccupiedBy(p Piece) Square {
	return Square{Piece: p, Occupied: true}
}

// Empty reports whether the square holds no piece.
func (s Square) Empty() bool {
	return !s.Occupied
}

// Move is a request to move the piece at From to To.
type Move struct {
	From Coord
	To   Coord
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
