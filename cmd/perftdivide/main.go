// Command perftdivide runs a per-move perft breakdown from a FEN position,
// for localizing move-generation bugs against a reference engine's
// divide output. Grounded in _examples/treepeck-chego/internal/perft.go's
// debugging-only perft driver and its flag-based cli/cli.go entry point,
// adapted to this package's FEN parser and packed Move type.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/tsukinihoeru/bitboard-move-generation"
)

func main() {
	fen := flag.String("fen", chess.StartingFEN, "FEN position to search from")
	depth := flag.Int("depth", 4, "perft depth")
	flag.Parse()

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perftdivide: %v", err)
	}
	if err := board.CheckConsistency(); err != nil {
		log.Fatalf("perftdivide: inconsistent starting position: %v", err)
	}

	divide := board.PerftDivide(*depth)
	moves := make([]string, 0, len(divide))
	for mv := range divide {
		moves = append(moves, mv)
	}
	sort.Strings(moves)

	var total uint64
	for _, mv := range moves {
		count := divide[mv]
		total += count
		fmt.Fprintf(os.Stdout, "%s: %d\n", mv, count)
	}
	fmt.Fprintf(os.Stdout, "\nMoves: %d\nNodes: %d\n", len(moves), total)
}
