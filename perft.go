package chess

// perft.go implements the recursive move-count self-verification spec.md
// §8 uses to validate move generation: generate pseudolegal moves, make
// each one, skip it if it left the mover in check, recurse, unmake.
// Grounded in the teacher's engine.go perft loop and
// _examples/treepeck-chego/internal/perft.go's divide variant, adapted to
// the packed Move type and bounded move buffer.

// Perft counts the number of leaf positions reachable in exactly depth
// plies from the current position, filtering out moves that leave the
// mover in check.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	if depth == 1 {
		var count uint64
		for _, mv := range buf[:n] {
			if b.Make(mv) {
				count++
			}
			b.Unmake()
		}
		return count
	}
	var count uint64
	for _, mv := range buf[:n] {
		if b.Make(mv) {
			count += b.Perft(depth - 1)
		}
		b.Unmake()
	}
	return count
}

// PerftDivide returns, for each legal move from the current position, the
// perft count of the subtree it leads to at depth-1. Used by cmd/perftdivide
// to localize move-generation bugs against a reference engine's per-move
// breakdown.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	results := make(map[string]uint64)
	if depth < 1 {
		return results
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	for _, mv := range buf[:n] {
		if !b.Make(mv) {
			b.Unmake()
			continue
		}
		results[mv.String()] = b.Perft(depth - 1)
		b.Unmake()
	}
	return results
}
