package chess

import "fmt"

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Coord is a position on the board. X is the file (0='a'..7='h') and Y the
// rank (0=rank 1..7=rank 8), both seen from White's side. Coordinates carry
// no bounds checking of their own; bounds are enforced at board lookup.
type Coord struct {
	X int
	Y int
}

// Left returns the coordinate one file towards 'a'.
func (c Coord) Left() Coord { return Coord{c.X - 1, c.Y} }

// Right returns the coordinate one file towards 'h'.
func (c Coord) Right() Coord { return Coord{c.X + 1, c.Y} }

// Up returns the coordinate one rank towards rank 8.
func (c Coord) Up() Coord { return Coord{c.X, c.Y + 1} }

// Down returns the coordinate one rank towards rank 1.
func (c Coord) Down() Coord { return Coord{c.X, c.Y - 1} }

// UpLeft returns the coordinate shifted one step diagonally up-left.
func (c Coord) UpLeft() Coord { return Coord{c.X - 1, c.Y + 1} }

// UpRight returns the coordinate shifted one step diagonally up-right.
func (c Coord) UpRight() Coord { return Coord{c.X + 1, c.Y + 1} }

// DownLeft returns the coordinate shifted one step diagonally down-left.
func (c Coord) DownLeft() Coord { return Coord{c.X - 1, c.Y - 1} }

// DownRight returns the coordinate shifted one step diagonally down-right.
func (c Coord) DownRight() Coord { return Coord{c.X + 1, c.Y - 1} }

// Reversed mirrors the coordinate through the centre of the board.
func (c Coord) Reversed() Coord {
	return Coord{BoardSize - 1 - c.X, BoardSize - 1 - c.Y}
}

// ReversedByY mirrors only the rank. Drivers use it to normalize moves
// issued from the second player's perspective before submitting them.
func (c Coord) ReversedByY() Coord {
	return Coord{c.X, BoardSize - 1 - c.Y}
}

// InRange reports whether both axes lie on the board.
func (c Coord) InRange() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// String returns the coordinate in algebraic form, e.g. "e4". Off-board
// coordinates are rendered as "(x,y)".
func (c Coord) String() string {
	if !c.InRange() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string([]byte{byte('a' + c.X), byte('1' + c.Y)})
}

// ParseCoord parses a coordinate in algebraic form, e.g. "e4".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("invalid square %q", s)
	}
	return Coord{int(s[0] - 'a'), int(s[1] - '1')}, nil
}

// CoordSet is a set of board coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet returns a set holding the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// AddAll inserts every coordinate of other into the set.
func (s CoordSet) AddAll(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int {
	return len(s)
}
