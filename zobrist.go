package chess

// zobrist.go builds the Zobrist key tables spec.md §4.4 calls for, and seeds
// them with a self-contained deterministic generator rather than pulling in
// math/rand, so the same keys come out on every platform and Go version.
// Grounded in _examples/treepeck-chego/zobrist.go's init-time key table
// construction, with the splitmix64 state-advance itself grounded in the
// PRNG contract spec.md §4 pins (seed 1070372).

// splitmix64 is a small, fast, well-known generator; used here purely as a
// deterministic key source, not for any security property.
type splitmix64 struct {
	state uint64
}

func newSplitmix64(seed uint64) *splitmix64 {
	return &splitmix64{state: seed}
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

const zobristSeed = 1070372

var (
	// zobristPieceSquare[p][sq] is keyed by the packed Piece code (4..15);
	// entries 0..3 are unused but present so the index is direct.
	zobristPieceSquare [16][64]uint64
	zobristCastling    [16]uint64
	zobristColor       uint64
	// zobristEnPassant is indexed directly by the raw ep-target square value
	// (spec.md §4.4: "ep_squares[40], indexed by raw ep-target square
	// value"). ep_target holds the landing square of the double push itself
	// (not the skipped square), so the only values ever indexed are squares
	// 24..39 (ranks 4 and 5) — all under 40, so no offset is needed. When
	// there is no target (NoSquare) no en-passant key is mixed in.
	zobristEnPassant [40]uint64
)

func init() {
	rng := newSplitmix64(zobristSeed)
	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[p][sq] = rng.next()
		}
	}
	for c := 0; c < 16; c++ {
		zobristCastling[c] = rng.next()
	}
	zobristColor = rng.next()
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
}

// epKey returns the Zobrist key for en-passant target square sq.
func epKey(sq Square) uint64 {
	return zobristEnPassant[sq]
}
