// Package storage provides persistent storage for board snapshots, backed
// by BadgerDB. It fulfils the persistence collaborator contract around the
// rule engine: save a board under a key, load it back later.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/ZinoviiZ/chesskit/internal/chess"
	"github.com/ZinoviiZ/chesskit/internal/engine"
)

// ErrNotFound indicates that no board is stored under the requested key.
var ErrNotFound = errors.New("no board stored under key")

// ErrInvalidSnapshot indicates a stored value that does not describe a
// valid position.
var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// pieceSnapshot is the serializable representation of a piece.
type pieceSnapshot struct {
	Kind   chess.Kind   `json:"kind"`
	Colour chess.Colour `json:"colour"`
	X      int          `json:"x"`
	Y      int          `json:"y"`
}

// boardSnapshot is the serializable representation of a position. The
// derived board state is not stored; it is re-derived on load.
type boardSnapshot struct {
	Pieces    []pieceSnapshot `json:"pieces"`
	LastMover chess.Colour    `json:"lastMover"`
}

// Store wraps BadgerDB for persistent board storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard stores a snapshot of the board under key.
func (s *Store) SaveBoard(key string, b *engine.Board) error {
	snap := boardSnapshot{LastMover: b.LastMover()}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.PiecesOf(colour) {
			snap.Pieces = append(snap.Pieces, pieceSnapshot{
				Kind:   p.Kind,
				Colour: p.Colour,
				X:      p.Coord.X,
				Y:      p.Coord.Y,
			})
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// LoadBoard loads the board stored under key and rebuilds its derived
// state. Returns ErrNotFound when the key is absent and ErrInvalidSnapshot
// when the stored value holds an off-board coordinate, an unknown kind or
// an unknown colour.
func (s *Store) LoadBoard(key string) (*engine.Board, error) {
	var snap boardSnapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}

	pieces := make([]chess.Piece, 0, len(snap.Pieces))
	for _, p := range snap.Pieces {
		c := chess.Coord{X: p.X, Y: p.Y}
		if !c.InRange() {
			return nil, fmt.Errorf("%w: piece off the board at (%d,%d)", ErrInvalidSnapshot, p.X, p.Y)
		}
		if p.Kind < chess.Pawn || p.Kind >= chess.NumKinds {
			return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidSnapshot, p.Kind)
		}
		if p.Colour != chess.White && p.Colour != chess.Black {
			return nil, fmt.Errorf("%w: unknown colour %d", ErrInvalidSnapshot, p.Colour)
		}
		pieces = append(pieces, chess.Piece{
			Kind:   p.Kind,
			Colour: p.Colour,
			Coord:  c,
		})
	}
	return engine.NewBoard(pieces, snap.LastMover), nil
}
