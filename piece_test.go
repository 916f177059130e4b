package chess

import "testing"

func TestPiecePacking(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for _, pt := range allPieceTypes {
			p := NewPiece(c, pt)
			if p.Color() != c {
				t.Errorf("NewPiece(%v, %v).Color() = %v, want %v", c, pt, p.Color(), c)
			}
			if p.Type() != pt {
				t.Errorf("NewPiece(%v, %v).Type() = %v, want %v", c, pt, p.Type(), pt)
			}
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Errorf("White.Other() != Black")
	}
	if Black.Other() != White {
		t.Errorf("Black.Other() != White")
	}
}

func TestPieceString(t *testing.T) {
	if got := NewPiece(White, Knight).String(); got != "N" {
		t.Errorf("White knight String() = %q, want %q", got, "N")
	}
	if got := NewPiece(Black, Knight).String(); got != "n" {
		t.Errorf("Black knight String() = %q, want %q", got, "n")
	}
	if got := NoPiece.String(); got != "." {
		t.Errorf("NoPiece.String() = %q, want %q", got, ".")
	}
}

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	cases := []struct {
		alg string
		sq  Square
	}{
		{"a1", 0},
		{"h1", 7},
		{"a8", 56},
		{"h8", 63},
		{"e4", 28},
	}
	for _, c := range cases {
		sq, ok := ParseSquare(c.alg)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", c.alg)
		}
		if sq != c.sq {
			t.Errorf("ParseSquare(%q) = %d, want %d", c.alg, sq, c.sq)
		}
		if got := sq.String(); got != c.alg {
			t.Errorf("Square(%d).String() = %q, want %q", sq, got, c.alg)
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "i1", "a9", "a0", "aa", "e44"} {
		if _, ok := ParseSquare(bad); ok {
			t.Errorf("ParseSquare(%q) unexpectedly succeeded", bad)
		}
	}
}

func TestNoSquareStringIsDash(t *testing.T) {
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q, want %q", got, "-")
	}
}
