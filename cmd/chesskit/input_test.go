package main

import (
	"testing"

	"github.com/ZinoviiZ/chesskit/internal/chess"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    chess.Move
		wantErr bool
	}{
		{"e2e4", chess.Move{From: chess.Coord{X: 4, Y: 1}, To: chess.Coord{X: 4, Y: 3}}, false},
		{"a1h8", chess.Move{From: chess.Coord{X: 0, Y: 0}, To: chess.Coord{X: 7, Y: 7}}, false},
		{"", chess.Move{}, true},
		{"e2", chess.Move{}, true},
		{"e2e4x", chess.Move{}, true},
		{"i2e4", chess.Move{}, true},
		{"e2e9", chess.Move{}, true},
		{"E2E4", chess.Move{}, true},
	}

	for _, tt := range tests {
		got, err := parseMove(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMove(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMove(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMove(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// A Black player entering moves from their own perspective has both
// coordinates mirrored through the rank-only mirror.
func TestMirrorMove(t *testing.T) {
	m, err := parseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}

	mirrored := mirrorMove(m)
	want := chess.Move{From: chess.Coord{X: 4, Y: 6}, To: chess.Coord{X: 4, Y: 4}}
	if mirrored != want {
		t.Errorf("mirrorMove(e2e4) = %v, want %v (e7e5)", mirrored, want)
	}

	if back := mirrorMove(mirrored); back != m {
		t.Errorf("mirrorMove is not an involution: %v", back)
	}
}
