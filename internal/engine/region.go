// Package engine implements the chess rule engine: per-piece attacking
// regions, the immutable board aggregate with its derived check and
// checkmate state, and move validation.
package engine

import "github.com/ZinoviiZ/chesskit/internal/chess"

// regionFunc computes the squares a piece threatens on the given board.
type regionFunc func(p chess.Piece, b *Board) chess.CoordSet

// regionFuncs dispatches region computation by piece kind.
var regionFuncs = map[chess.Kind]regionFunc{
	chess.Pawn:   pawnRegion,
	chess.Knight: knightRegion,
	chess.Bishop: bishopRegion,
	chess.Rook:   rookRegion,
	chess.Queen:  queenRegion,
	chess.King:   kingRegion,
}

// AttackingRegion returns the coordinates the piece threatens under its
// movement rules, independent of check resolution. Off-board squares and
// squares holding a same-colour piece are never included.
func AttackingRegion(p chess.Piece, b *Board) chess.CoordSet {
	return regionFuncs[p.Kind](p, b)
}

// FindAttackingRegion returns the piece's legal-destination set: the
// attacking region with same-colour occupancy excluded.
func FindAttackingRegion(p chess.Piece, b *Board) chess.CoordSet {
	region := AttackingRegion(p, b)
	out := make(chess.CoordSet, len(region))
	for c := range region {
		if sq := b.at(c); sq.Occupied && sq.Piece.Colour == p.Colour {
			continue
		}
		out.Add(c)
	}
	return out
}

// pawnRegion computes a pawn's region: one square forward onto an empty
// square, two forward from the colour's starting rank, and the two
// diagonal-forward squares gated by the enemy-or-empty predicate.
func pawnRegion(p chess.Piece, b *Board) chess.CoordSet {
	region := chess.NewCoordSet()

	var forward, diagLeft, diagRight chess.Coord
	if p.Colour == chess.White {
		forward = p.Coord.Up()
		diagLeft = p.Coord.UpLeft()
		diagRight = p.Coord.UpRight()
	} else {
		forward = p.Coord.Down()
		diagLeft = p.Coord.DownLeft()
		diagRight = p.Coord.DownRight()
	}

	if forward.InRange() && b.at(forward).Empty() {
		region.Add(forward)
		if p.Coord.Y == p.Colour.PawnRank() {
			double := chess.Coord{X: p.Coord.X, Y: p.Coord.Y + 2*p.Colour.Forward()}
			if double.InRange() && b.at(double).Empty() {
				region.Add(double)
			}
		}
	}

	for _, diag := range []chess.Coord{diagLeft, diagRight} {
		if diag.InRange() && b.EnemyOrEmptyAt(diag, p.Colour) {
			region.Add(diag)
		}
	}

	return region
}

// knightOffsets are the 8 fixed L-shaped jumps.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

func knightRegion(p chess.Piece, b *Board) chess.CoordSet {
	return offsetRegion(p, b, knightOffsets[:])
}

// kingOffsets are the 8 adjacent squares.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func kingRegion(p chess.Piece, b *Board) chess.CoordSet {
	return offsetRegion(p, b, kingOffsets[:])
}

// offsetRegion collects the fixed-offset targets that are on the board and
// not occupied by a same-colour piece.
func offsetRegion(p chess.Piece, b *Board, offsets [][2]int) chess.CoordSet {
	region := chess.NewCoordSet()
	for _, off := range offsets {
		c := chess.Coord{X: p.Coord.X + off[0], Y: p.Coord.Y + off[1]}
		if !c.InRange() {
			continue
		}
		if sq := b.at(c); sq.Occupied && sq.Piece.Colour == p.Colour {
			continue
		}
		region.Add(c)
	}
	return region
}

// straightDirs and diagonalDirs are the unit deltas for sliding pieces.
var (
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func rookRegion(p chess.Piece, b *Board) chess.CoordSet {
	return rayRegion(p, b, straightDirs[:])
}

func bishopRegion(p chess.Piece, b *Board) chess.CoordSet {
	return rayRegion(p, b, diagonalDirs[:])
}

func queenRegion(p chess.Piece, b *Board) chess.CoordSet {
	region := rayRegion(p, b, straightDirs[:])
	region.AddAll(rayRegion(p, b, diagonalDirs[:]))
	return region
}

// rayRegion walks each direction until the board edge or a blocking piece.
// The first blocking square is included only when it holds an enemy.
func rayRegion(p chess.Piece, b *Board, dirs [][2]int) chess.CoordSet {
	region := chess.NewCoordSet()
	for _, dir := range dirs {
		c := chess.Coord{X: p.Coord.X + dir[0], Y: p.Coord.Y + dir[1]}
		for c.InRange() {
			sq := b.at(c)
			if sq.Occupied {
				if sq.Piece.Colour != p.Colour {
					region.Add(c)
				}
				break
			}
			region.Add(c)
			c = chess.Coord{X: c.X + dir[0], Y: c.Y + dir[1]}
		}
	}
	return region
}
