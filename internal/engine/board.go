package engine

import (
	"strings"

	"github.com/ZinoviiZ/chesskit/internal/chess"
	"github.com/ZinoviiZ/chesskit/internal/errors"
)

// Board is an immutable snapshot of a position. Every field is derived once
// at construction and never mutated afterwards; applying a move produces a
// brand-new Board.
type Board struct {
	squares   [chess.BoardSize][chess.BoardSize]chess.Square
	lastMover chess.Colour

	pieces  map[chess.Colour][]chess.Piece
	control map[chess.Colour]chess.CoordSet
	inCheck map[chess.Colour]bool
	mate    bool
}

// backRank is the piece order on each colour's home rank, file a to h.
var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewInitialBoard returns the standard starting position, with White about
// to move.
func NewInitialBoard() *Board {
	pieces := make([]chess.Piece, 0, 32)
	for x := 0; x < chess.BoardSize; x++ {
		pieces = append(pieces,
			chess.Piece{Kind: backRank[x], Colour: chess.White, Coord: chess.Coord{X: x, Y: 0}},
			chess.Piece{Kind: chess.Pawn, Colour: chess.White, Coord: chess.Coord{X: x, Y: 1}},
			chess.Piece{Kind: chess.Pawn, Colour: chess.Black, Coord: chess.Coord{X: x, Y: 6}},
			chess.Piece{Kind: backRank[x], Colour: chess.Black, Coord: chess.Coord{X: x, Y: 7}},
		)
	}
	return NewBoard(pieces, chess.Black)
}

// NewBoard builds a position from an arbitrary piece placement. lastMover is
// the colour that made the previous move; the checkmate flag is evaluated
// for its opponent, the colour about to move. Behaviour is undefined when a
// colour has more than one king.
func NewBoard(pieces []chess.Piece, lastMover chess.Colour) *Board {
	b := newPosition(pieces, lastMover)
	b.mate = isCheckmate(lastMover.Opposite(), b)
	return b
}

// newPosition derives every aggregate field except the checkmate flag. The
// checkmate search simulates candidate moves through this constructor, so
// the mate evaluation itself must stay out of it.
func newPosition(pieces []chess.Piece, lastMover chess.Colour) *Board {
	b := &Board{
		lastMover: lastMover,
		pieces:    make(map[chess.Colour][]chess.Piece, 2),
		control: map[chess.Colour]chess.CoordSet{
			chess.White: chess.NewCoordSet(),
			chess.Black: chess.NewCoordSet(),
		},
		inCheck: make(map[chess.Colour]bool, 2),
	}

	for _, p := range pieces {
		b.squares[p.Coord.X][p.Coord.Y] = chess.OccupiedBy(p)
		b.pieces[p.Colour] = append(b.pieces[p.Colour], p)
	}

	for colour, owned := range b.pieces {
		for _, p := range owned {
			b.control[colour].AddAll(FindAttackingRegion(p, b))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king, ok := b.king(colour)
		b.inCheck[colour] = ok && b.control[colour.Opposite()].Has(king.Coord)
	}

	return b
}

// successor builds the position after moving p to dest: the origin emptied,
// the destination holding the piece re-tagged with its new coordinate, and
// any enemy piece on the destination removed. The checkmate flag of the
// returned board is not evaluated.
func (b *Board) successor(p chess.Piece, to chess.Coord) *Board {
	pieces := make([]chess.Piece, 0, len(b.pieces[chess.White])+len(b.pieces[chess.Black]))
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, q := range b.pieces[colour] {
			if q.Coord == p.Coord || q.Coord == to {
				continue
			}
			pieces = append(pieces, q)
		}
	}
	pieces = append(pieces, chess.Piece{Kind: p.Kind, Colour: p.Colour, Coord: to})
	return newPosition(pieces, p.Colour)
}

// at returns the square at c. The coordinate must be in range.
func (b *Board) at(c chess.Coord) chess.Square {
	return b.squares[c.X][c.Y]
}

// At returns the square at c, or ErrOutOfBounds when either axis lies
// outside the board.
func (b *Board) At(c chess.Coord) (chess.Square, error) {
	if !c.InRange() {
		return chess.Square{}, errors.Wrapf(errors.ErrOutOfBounds, "square %s", c)
	}
	return b.at(c), nil
}

// EnemyOrEmptyAt reports whether the square at c is empty or holds a piece
// of the opposite colour. It is false only for same-colour occupancy; pawn
// diagonal gating relies on this predicate, so a diagonal step onto an
// empty square is permitted.
func (b *Board) EnemyOrEmptyAt(c chess.Coord, colour chess.Colour) bool {
	sq := b.at(c)
	return sq.Empty() || sq.Piece.Colour != colour
}

// king returns colour's king, if present.
func (b *Board) king(colour chess.Colour) (chess.Piece, bool) {
	for _, p := range b.pieces[colour] {
		if p.Kind == chess.King {
			return p, true
		}
	}
	return chess.Piece{}, false
}

// LastMover returns the colour that made the move producing this board.
func (b *Board) LastMover() chess.Colour {
	return b.lastMover
}

// InCheck reports whether colour's king stands inside the opposing control
// region.
func (b *Board) InCheck(colour chess.Colour) bool {
	return b.inCheck[colour]
}

// IsCheckmate reports whether the colour about to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.mate
}

// PiecesOf returns colour's pieces.
func (b *Board) PiecesOf(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), b.pieces[colour]...)
}

// ControlRegion returns the union of the legal-destination sets of colour's
// pieces.
func (b *Board) ControlRegion(colour chess.Colour) chess.CoordSet {
	out := chess.NewCoordSet()
	out.AddAll(b.control[colour])
	return out
}

// String renders the board as an ASCII grid, rank 8 at the top, White
// pieces uppercase and Black lowercase.
func (b *Board) String() string {
	var sb strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		sb.WriteByte(byte('1' + y))
		for x := 0; x < chess.BoardSize; x++ {
			sb.WriteByte(' ')
			sq := b.squares[x][y]
			switch {
			case sq.Empty():
				sb.WriteByte('.')
			case sq.Piece.Colour == chess.White:
				sb.WriteByte(sq.Piece.Kind.Letter())
			default:
				sb.WriteByte(sq.Piece.Kind.Letter() + 'a' - 'A')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
