package asmgen

import "testing"

func TestQueenAttacksAgainstKnownSquare(t *testing.T) {
	sq := 27 // d4, rank-major: rank 3, file 3
	occ := bbForSquare(sq)
	ortho, diag := QueenAttacks(occ, sq)
	wantOrtho := (bbRank4 | bbFileD) &^ occ
	wantDiag := (bbDiagonals[sq] | bbAntiDiagonals[sq]) &^ occ
	if ortho != wantOrtho {
		t.Errorf("empty board except slider itself should attack its whole rank and file, got %064b want %064b", ortho, wantOrtho)
	}
	if diag != wantDiag {
		t.Errorf("empty board except slider itself should attack both whole diagonals, got %064b want %064b", diag, wantDiag)
	}
}

func TestHVAttackBlockedByAdjacentOccupant(t *testing.T) {
	sq := 27 // d4
	occ := bbForSquare(sq) | bbForSquare(28) // blocker at e4, same rank
	got := hvAttack(occ, sq)
	if got&bbForSquare(28) == 0 {
		t.Errorf("expected attack to reach the adjacent blocker at e4")
	}
	if got&bbForSquare(29) != 0 {
		t.Errorf("attack should not reach past the blocker at e4")
	}
}
