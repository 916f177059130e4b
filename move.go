package chess

import "fmt"

// Move is the 16-bit packed move encoding from spec.md §3:
// bits [15:10]=source, [9:4]=destination, [3:0]=flag.
type Move uint16

// Flag values. The promotion-to-piece assignment (Bishop, Knight, Rook,
// Queen, in that order for flags 8..11) is an implementation choice: spec.md
// leaves the order ambiguous ("Open questions") as long as the class can be
// recovered from the flag with a single subtraction and make/unmake agree.
// This order lines the subtraction up with the PieceType numbering in
// piece.go (Bishop=3 .. Queen=6), so flag-5 (quiet) / flag-9 (capture) both
// yield the right class directly.
const (
	FlagQuiet          = 0
	FlagDoublePawnPush = 1
	FlagCastleKingside = 2
	FlagCastleQueenside = 3
	FlagCapture        = 4
	FlagEnPassant      = 5
	FlagPromoBishop       = 8
	FlagPromoKnight       = 9
	FlagPromoRook         = 10
	FlagPromoQueen        = 11
	FlagPromoBishopCap    = 12
	FlagPromoKnightCap    = 13
	FlagPromoRookCap      = 14
	FlagPromoQueenCap     = 15
)

// promoOrder is the order promotion flags 8..11 (and 12..15) enumerate
// pieces in, used both by MoveGen when emitting promotions and by the flag
// decoding helpers below.
var promoOrder = [4]PieceType{Bishop, Knight, Rook, Queen}

// NewMove packs a source, destination, and flag into a Move.
func NewMove(from, to Square, flag uint8) Move {
	return Move(uint16(from)<<10 | uint16(to)<<4 | uint16(flag&0xF))
}

// From returns the source square.
func (m Move) From() Square { return Square(m >> 10 & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> 4 & 0x3F) }

// Flag returns the raw 4-bit flag.
func (m Move) Flag() uint8 { return uint8(m & 0xF) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag()&0x8 != 0 }

// IsCapture reports whether the move removes an enemy piece (including
// en-passant and capturing promotions).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || (f&0x8 != 0 && f&0x4 != 0)
}

// PromotionType returns the piece class a promotion move produces. Only
// valid when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	f := m.Flag()
	if f&0x4 != 0 {
		return promoOrder[f-FlagPromoBishopCap]
	}
	return promoOrder[f-FlagPromoBishop]
}

// String renders the move in UCI-style long algebraic notation, e.g.
// "e2e4" or "a7a8q". This is a caller-facing convenience, not used
// internally by move generation or make/unmake.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}

// ParseMove decodes a UCI-style move string ("e2e4", "a7a8q") against the
// side to move's pseudolegal moves, so the flag bits (capture, en-passant,
// castling, promotion) are filled in correctly rather than guessed. Callers
// that already have a flag-correct Move (e.g. from GenerateMoves) should use
// it directly instead of round-tripping through a string.
func (b *Board) ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("chess: invalid move string %q", s)
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return 0, fmt.Errorf("chess: invalid source square in %q", s)
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return 0, fmt.Errorf("chess: invalid destination square in %q", s)
	}
	var promo PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return 0, fmt.Errorf("chess: invalid promotion letter in %q", s)
		}
	}
	var buf [MaxMoves]Move
	n := b.GenerateMoves(&buf)
	for _, mv := range buf[:n] {
		if mv.From() != from || mv.To() != to {
			continue
		}
		if promo != 0 && (!mv.IsPromotion() || mv.PromotionType() != promo) {
			continue
		}
		if promo == 0 && mv.IsPromotion() {
			continue
		}
		return mv, nil
	}
	return 0, fmt.Errorf("chess: %q is not a pseudolegal move in this position", s)
}
