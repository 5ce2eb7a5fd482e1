// chesskit is a two-player console chess game built on the chesskit rule
// engine. It reads moves from stdin in long algebraic form ("e2e4"),
// alternating colours, and can save and resume games through BadgerDB.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ZinoviiZ/chesskit/internal/chess"
	"github.com/ZinoviiZ/chesskit/internal/engine"
	"github.com/ZinoviiZ/chesskit/internal/storage"
)

const savedGameKey = "current"

var (
	mirror = flag.Bool("mirror", false, "Black enters moves from their own perspective")
	dbDir  = flag.String("db", "", "database directory for save/load (empty: platform default)")
	noDB   = flag.Bool("no-db", false, "disable persistence entirely")
	resume = flag.Bool("resume", false, "resume the saved game at startup")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chesskit: ")

	board := engine.NewInitialBoard()

	var store *storage.Store
	if !*noDB {
		dir := *dbDir
		if dir == "" {
			var err error
			dir, err = storage.DefaultDir()
			if err != nil {
				log.Fatalf("resolving database directory: %v", err)
			}
		}
		var err error
		store, err = storage.Open(dir)
		if err != nil {
			log.Fatalf("opening database: %v", err)
		}
		defer store.Close()

		if *resume {
			loaded, err := store.LoadBoard(savedGameKey)
			if err != nil {
				log.Fatalf("loading saved game: %v", err)
			}
			board = loaded
		}
	} else if *resume {
		log.Fatal("-resume needs persistence; drop -no-db")
	}

	run(board, store, bufio.NewScanner(os.Stdin), os.Stdout)
}

// run drives the turn loop: render, prompt the colour to move, apply the
// move or report why it was rejected. A rejected move keeps the turn with
// the same colour; checkmate ends the loop.
func run(board *engine.Board, store *storage.Store, in *bufio.Scanner, out io.Writer) {
	turn := board.LastMover().Opposite()

	for {
		fmt.Fprintln(out, board)

		if board.IsCheckmate() {
			fmt.Fprintf(out, "checkmate, %s wins\n", turn.Opposite())
			return
		}
		if board.InCheck(turn) {
			fmt.Fprintf(out, "%s is in check\n", turn)
		}

		fmt.Fprintf(out, "%s> ", turn)
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())

		switch {
		case line == "":
			continue

		case line == "quit":
			return

		case line == "save":
			if store == nil {
				fmt.Fprintln(out, "persistence is disabled")
				continue
			}
			if err := store.SaveBoard(savedGameKey, board); err != nil {
				fmt.Fprintf(out, "save failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "saved")

		case strings.HasPrefix(line, "moves "):
			printMoves(out, board, turn, strings.TrimPrefix(line, "moves "))

		default:
			m, err := parseMove(line)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if *mirror && turn == chess.Black {
				m = mirrorMove(m)
			}
			next, err := engine.ApplyMove(board, turn, m)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			board = next
			turn = turn.Opposite()
		}
	}
}

// printMoves prints the legal-destination set of the piece on the named
// square, sorted for stable output.
func printMoves(out io.Writer, board *engine.Board, turn chess.Colour, square string) {
	c, err := chess.ParseCoord(square)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if *mirror && turn == chess.Black {
		c = c.ReversedByY()
	}
	sq, err := board.At(c)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if sq.Empty() {
		fmt.Fprintf(out, "no piece on %s\n", c)
		return
	}

	// Under -mirror the destinations go back through the rank-only mirror,
	// so Black reads squares in the same orientation they type them.
	var dests []string
	for d := range engine.FindAttackingRegion(sq.Piece, board) {
		if *mirror && turn == chess.Black {
			d = d.ReversedByY()
		}
		dests = append(dests, d.String())
	}
	sort.Strings(dests)
	fmt.Fprintf(out, "%s %s: %s\n", sq.Piece.Colour, sq.Piece.Kind, strings.Join(dests, " "))
}
