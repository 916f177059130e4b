package chess

import "testing"

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	if n != 20 {
		t.Errorf("expected 20 pseudolegal moves from the starting position, got %d", n)
	}
}

func TestGenerateMovesNoDuplicates(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	seen := make(map[Move]bool, n)
	for _, mv := range buf[:n] {
		if seen[mv] {
			t.Errorf("duplicate move emitted: %s (flag %d)", mv, mv.Flag())
		}
		seen[mv] = true
	}
}

func TestCastlingRequiresEmptyPath(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	foundKingside, foundQueenside := false, false
	for _, mv := range buf[:n] {
		if mv.Flag() == FlagCastleKingside && mv.From() == 4 {
			foundKingside = true
		}
		if mv.Flag() == FlagCastleQueenside && mv.From() == 4 {
			foundQueenside = true
		}
	}
	if !foundKingside || !foundQueenside {
		t.Errorf("expected both white castles available with clear paths and rights")
	}
}

func TestCastlingBlockedByOccupant(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/RN2K2R w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	for _, mv := range buf[:n] {
		if mv.Flag() == FlagCastleQueenside && mv.From() == 4 {
			t.Errorf("queenside castle should be blocked by the knight on b1")
		}
	}
}

func TestEnPassantOnlyImmediatelyAfterDoublePush(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	mv := NewMove(12, 28, FlagDoublePawnPush) // e2e4
	b.Make(mv)
	if b.EnPassantTarget() != 28 {
		t.Fatalf("expected ep target e4 (28, the landing square), got %v", b.EnPassantTarget())
	}
	b.Make(NewMove(51, 35, FlagDoublePawnPush)) // d7d5, unrelated push
	if b.EnPassantTarget() == 28 {
		t.Errorf("ep target should have moved on, not stuck on the prior push")
	}
	b.Unmake()
	b.Unmake()
}

// TestEnPassantCaptureDestinationAndVictim exercises an actual en-passant
// capture: the capturing pawn's destination is the skipped square
// (ep_target ± 8), not ep_target itself, and the square cleared is the
// double-pushed pawn sitting on ep_target.
func TestEnPassantCaptureDestinationAndVictim(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e4")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.EnPassantTarget() != 28 {
		t.Fatalf("expected ep target e4 (28), got %v", b.EnPassantTarget())
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	var epMove Move
	found := false
	for _, mv := range buf[:n] {
		if mv.Flag() == FlagEnPassant {
			epMove = mv
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an en-passant capture to be generated")
	}
	if epMove.To() != 20 {
		t.Errorf("en-passant destination = %v, want e3 (20)", epMove.To())
	}
	b.Make(epMove)
	if b.PieceAt(28) != NoPiece {
		t.Errorf("expected the double-pushed pawn on e4 (28) to be captured")
	}
	if b.PieceAt(20) != NewPiece(Black, Pawn) {
		t.Errorf("expected the capturing black pawn to land on e3 (20)")
	}
	b.Unmake()
	if b.PieceAt(28) != NewPiece(White, Pawn) {
		t.Errorf("Unmake should restore the captured white pawn to e4 (28)")
	}
}

func TestPawnPromotionEmitsAllFourPieces(t *testing.T) {
	b, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	seen := map[PieceType]bool{}
	for _, mv := range buf[:n] {
		if mv.IsPromotion() {
			seen[mv.PromotionType()] = true
		}
	}
	for _, pt := range []PieceType{Bishop, Knight, Rook, Queen} {
		if !seen[pt] {
			t.Errorf("missing promotion to %s", pt)
		}
	}
}
