package chess

import "testing"

func TestParseFENStartingPositionRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	got := b.ToFEN()
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got != want {
		t.Errorf("round-trip mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestParseFENTolerantOfMissingCounters(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/8/8/8/K6k w - -")
	if err != nil {
		t.Fatalf("ParseFEN without move counters: %v", err)
	}
	if b.PieceAt(0) != NewPiece(White, King) {
		t.Errorf("expected white king on a1")
	}
	if b.PieceAt(7) != NewPiece(Black, King) {
		t.Errorf("expected black king on h1")
	}
	if b.CastleRights() != 0 {
		t.Errorf("expected no castling rights, got %04b", b.CastleRights())
	}
}

func TestParseFENEnPassantTarget(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d5")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want, _ := ParseSquare("d5")
	if b.EnPassantTarget() != want {
		t.Errorf("expected ep target d5, got %v", b.EnPassantTarget())
	}
}

func TestParseFENRejectsMalformedPlacement(t *testing.T) {
	_, err := ParseFEN("not-a-board w - -")
	if err == nil {
		t.Errorf("expected an error for malformed placement")
	}
}
