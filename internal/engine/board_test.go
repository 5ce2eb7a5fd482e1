package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/ZinoviiZ/chesskit/internal/chess"
	cerr "github.com/ZinoviiZ/chesskit/internal/errors"
)

// pc builds a piece for test positions.
func pc(k chess.Kind, colour chess.Colour, x, y int) chess.Piece {
	return chess.Piece{Kind: k, Colour: colour, Coord: chess.Coord{X: x, Y: y}}
}

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	t.Run("piece counts", func(t *testing.T) {
		if got := len(b.PiecesOf(chess.White)); got != 16 {
			t.Errorf("White pieces = %d, want 16", got)
		}
		if got := len(b.PiecesOf(chess.Black)); got != 16 {
			t.Errorf("Black pieces = %d, want 16", got)
		}
	})

	t.Run("key squares", func(t *testing.T) {
		tests := []struct {
			coord  chess.Coord
			kind   chess.Kind
			colour chess.Colour
		}{
			{chess.Coord{X: 4, Y: 0}, chess.King, chess.White},
			{chess.Coord{X: 3, Y: 0}, chess.Queen, chess.White},
			{chess.Coord{X: 4, Y: 7}, chess.King, chess.Black},
			{chess.Coord{X: 0, Y: 0}, chess.Rook, chess.White},
			{chess.Coord{X: 6, Y: 6}, chess.Pawn, chess.Black},
		}
		for _, tt := range tests {
			sq, err := b.At(tt.coord)
			if err != nil {
				t.Fatalf("At(%v) error: %v", tt.coord, err)
			}
			if sq.Empty() || sq.Piece.Kind != tt.kind || sq.Piece.Colour != tt.colour {
				t.Errorf("At(%v) = %+v, want %v %v", tt.coord, sq, tt.colour, tt.kind)
			}
		}
	})

	t.Run("centre empty", func(t *testing.T) {
		for y := 2; y <= 5; y++ {
			for x := 0; x < chess.BoardSize; x++ {
				sq, err := b.At(chess.Coord{X: x, Y: y})
				if err != nil {
					t.Fatal(err)
				}
				if !sq.Empty() {
					t.Errorf("At(%v) occupied, want empty", chess.Coord{X: x, Y: y})
				}
			}
		}
	})

	t.Run("derived state", func(t *testing.T) {
		if b.InCheck(chess.White) || b.InCheck(chess.Black) {
			t.Error("initial board reports check")
		}
		if b.IsCheckmate() {
			t.Error("initial board reports checkmate")
		}
		if b.LastMover() != chess.Black {
			t.Errorf("LastMover() = %v, want Black (White to move)", b.LastMover())
		}
	})
}

func TestBoardAtOutOfRange(t *testing.T) {
	b := NewInitialBoard()

	for _, c := range []chess.Coord{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 8, Y: 0}, {X: 0, Y: 8}} {
		_, err := b.At(c)
		if !errors.Is(err, cerr.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestEnemyOrEmptyAt(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		coord  chess.Coord
		colour chess.Colour
		want   bool
	}{
		{chess.Coord{X: 4, Y: 1}, chess.White, false}, // own pawn
		{chess.Coord{X: 4, Y: 1}, chess.Black, true},  // enemy pawn
		{chess.Coord{X: 4, Y: 3}, chess.White, true},  // empty
		{chess.Coord{X: 4, Y: 3}, chess.Black, true},  // empty
	}

	for _, tt := range tests {
		if got := b.EnemyOrEmptyAt(tt.coord, tt.colour); got != tt.want {
			t.Errorf("EnemyOrEmptyAt(%v, %v) = %v, want %v", tt.coord, tt.colour, got, tt.want)
		}
	}
}

// The initial control regions are exactly ranks 3 and 4: every pawn push,
// double push and loose diagonal, plus the knight targets, and nothing from
// the blocked back-rank pieces.
func TestInitialControlRegion(t *testing.T) {
	b := NewInitialBoard()

	control := b.ControlRegion(chess.White)
	if control.Len() != 16 {
		t.Errorf("White control region size = %d, want 16", control.Len())
	}
	for x := 0; x < chess.BoardSize; x++ {
		for _, y := range []int{2, 3} {
			if !control.Has(chess.Coord{X: x, Y: y}) {
				t.Errorf("White control region missing %v", chess.Coord{X: x, Y: y})
			}
		}
	}

	control = b.ControlRegion(chess.Black)
	for x := 0; x < chess.BoardSize; x++ {
		for _, y := range []int{4, 5} {
			if !control.Has(chess.Coord{X: x, Y: y}) {
				t.Errorf("Black control region missing %v", chess.Coord{X: x, Y: y})
			}
		}
	}
}

func TestBoardImmutability(t *testing.T) {
	b := NewInitialBoard()
	m := chess.Move{From: chess.Coord{X: 4, Y: 1}, To: chess.Coord{X: 4, Y: 3}}

	next, err := ApplyMove(b, chess.White, m)
	if err != nil {
		t.Fatalf("ApplyMove(e2e4) error: %v", err)
	}
	if next == b {
		t.Fatal("ApplyMove returned the same board")
	}

	sq, _ := b.At(m.From)
	if sq.Empty() || sq.Piece.Kind != chess.Pawn {
		t.Error("origin of the predecessor board was disturbed")
	}
	sq, _ = b.At(m.To)
	if !sq.Empty() {
		t.Error("destination of the predecessor board was disturbed")
	}
}

func TestReadOnlyQueriesIdempotent(t *testing.T) {
	b := NewInitialBoard()
	p := b.PiecesOf(chess.White)[0]

	first := FindAttackingRegion(p, b)
	second := FindAttackingRegion(p, b)
	if first.Len() != second.Len() {
		t.Error("FindAttackingRegion not idempotent")
	}
	for c := range first {
		if !second.Has(c) {
			t.Errorf("second evaluation missing %v", c)
		}
	}

	if b.InCheck(chess.White) != b.InCheck(chess.White) || b.IsCheckmate() != b.IsCheckmate() {
		t.Error("check queries not idempotent")
	}
}

func TestBoardString(t *testing.T) {
	s := NewInitialBoard().String()

	if !strings.Contains(s, "1 R N B Q K B N R") {
		t.Errorf("rendering missing White back rank:\n%s", s)
	}
	if !strings.Contains(s, "8 r n b q k b n r") {
		t.Errorf("rendering missing Black back rank:\n%s", s)
	}
	if !strings.Contains(s, "a b c d e f g h") {
		t.Errorf("rendering missing file legend:\n%s", s)
	}
}
