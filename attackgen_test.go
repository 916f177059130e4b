package chess

import (
	"math/rand"
	"testing"

	"github.com/tsukinihoeru/bitboard-move-generation/internal/asmgen"
)

// TestAttackGenAgainstAsmgenReference cross-checks the split reverse/mirror
// Hyperbola Quintessence formulation this package uses against the
// single-reverse (bits.Reverse64) formulation in internal/asmgen, over
// random occupancies. Both are valid derivations of the same algorithm
// (see bitops.go); disagreement here means one of them has a bug.
func TestAttackGenAgainstAsmgenReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 2000; trial++ {
		occ := rng.Uint64()
		sq := Square(rng.Intn(64))
		occ |= occupySquare[sq]

		gotRook := rookAttacks(sq, occ)
		gotBishop := bishopAttacks(sq, occ)
		wantOrtho, wantDiag := asmgen.QueenAttacks(occ, int(sq))

		if gotRook != wantOrtho {
			t.Fatalf("trial %d sq=%s: rookAttacks=%064b want %064b", trial, sq, gotRook, wantOrtho)
		}
		if gotBishop != wantDiag {
			t.Fatalf("trial %d sq=%s: bishopAttacks=%064b want %064b", trial, sq, gotBishop, wantDiag)
		}
	}
}
