package chess

import (
	"fmt"
	"math/bits"
)

// MaxMoves bounds the pseudolegal moves any single position can generate;
// 256 is the conventional safety margin used throughout the corpus (no
// legal chess position comes close to it).
const MaxMoves = 256

// maxGameLength bounds the make/unmake state stack. spec.md §5 requires at
// least 400 frames; games running longer than that are outside scope.
const maxGameLength = 400

// Castle rights bits, packed into a single nibble: bit 3 white kingside,
// bit 2 white queenside, bit 1 black kingside, bit 0 black queenside.
const (
	CastleBQ uint8 = 1 << iota
	CastleBK
	CastleWQ
	CastleWK
)

// stateFrame holds everything Unmake needs to undo a move that the mailbox
// and bitboards alone can't reconstruct: captured piece, prior castling
// rights, prior en-passant target, and the prior hash.
type stateFrame struct {
	captured     Piece
	castleRights uint8
	epTarget     Square
	halfmove     int
	hash         uint64
	move         Move
}

// Board is a bitboard-backed chess position, mirrored by a mailbox array for
// O(1) piece lookup. bb[0] and bb[1] are the White/Black occupancy
// bitboards; bb[2..7] are indexed directly by PieceType (Pawn..King) and
// hold the occupancy of that class across both colors.
type Board struct {
	bb           [8]uint64
	mailbox      [64]Piece
	sideToMove   Color
	castleRights uint8
	epTarget     Square
	halfmove     int
	fullmove     int
	hash         uint64
	stack        [maxGameLength]stateFrame
	ply          int
}

// NewEmptyBoard returns a Board with no pieces placed, White to move, no
// castling rights, and no en-passant target. Callers typically populate it
// via a FEN parse (see fen.go) rather than by hand.
func NewEmptyBoard() *Board {
	b := &Board{epTarget: NoSquare}
	return b
}

// occAll returns the full board occupancy.
func (b *Board) occAll() uint64 { return b.bb[White] | b.bb[Black] }

// occColor returns the occupancy of a single color.
func (b *Board) occColor(c Color) uint64 { return b.bb[c] }

// occType returns the occupancy of a single piece class, across both colors.
func (b *Board) occType(t PieceType) uint64 { return b.bb[t] }

// PieceAt returns the piece occupying sq, or NoPiece if it's empty.
func (b *Board) PieceAt(sq Square) Piece { return b.mailbox[sq] }

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastleRights returns the raw castling-rights nibble.
func (b *Board) CastleRights() uint8 { return b.castleRights }

// EnPassantTarget returns the current en-passant target square, or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.epTarget }

// Hash returns the current Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// addPiece places p on sq, updating bitboards, mailbox, and hash. sq must be
// empty.
func (b *Board) addPiece(p Piece, sq Square) {
	bit := occupySquare[sq]
	b.bb[p.Color()] |= bit
	b.bb[p.Type()] |= bit
	b.mailbox[sq] = p
	b.hash ^= zobristPieceSquare[p][sq]
}

// removePiece clears sq, which must hold p.
func (b *Board) removePiece(p Piece, sq Square) {
	bit := ^occupySquare[sq]
	b.bb[p.Color()] &= bit
	b.bb[p.Type()] &= bit
	b.mailbox[sq] = NoPiece
	b.hash ^= zobristPieceSquare[p][sq]
}

// movePiece relocates p from one empty-after square to another, a cheaper
// combination of removePiece+addPiece that touches each bitboard word once.
func (b *Board) movePiece(p Piece, from, to Square) {
	mask := occupySquare[from] | occupySquare[to]
	b.bb[p.Color()] ^= mask
	b.bb[p.Type()] ^= mask
	b.mailbox[from] = NoPiece
	b.mailbox[to] = p
	b.hash ^= zobristPieceSquare[p][from] ^ zobristPieceSquare[p][to]
}

// placeRaw and clearRaw and relocateRaw mirror addPiece/removePiece/
// movePiece but skip the hash update. Unmake uses these: it restores the
// hash in one shot from the saved frame rather than replaying deltas, so
// touching the hash again here would double-apply them.
func (b *Board) placeRaw(p Piece, sq Square) {
	bit := occupySquare[sq]
	b.bb[p.Color()] |= bit
	b.bb[p.Type()] |= bit
	b.mailbox[sq] = p
}

func (b *Board) clearRaw(p Piece, sq Square) {
	bit := ^occupySquare[sq]
	b.bb[p.Color()] &= bit
	b.bb[p.Type()] &= bit
	b.mailbox[sq] = NoPiece
}

func (b *Board) relocateRaw(p Piece, from, to Square) {
	mask := occupySquare[from] | occupySquare[to]
	b.bb[p.Color()] ^= mask
	b.bb[p.Type()] ^= mask
	b.mailbox[from] = NoPiece
	b.mailbox[to] = p
}

// CheckConsistency re-derives the mailbox and per-class bitboards from
// scratch and reports whether they agree with the incrementally maintained
// state. It's a debug/test aid (spec.md §8's mailbox/bitboard coherence
// invariant), not called on any hot path.
func (b *Board) CheckConsistency() error {
	var wantMailbox [64]Piece
	for sq := Square(0); sq < 64; sq++ {
		for c := 0; c < 2; c++ {
			if b.bb[c]&occupySquare[sq] == 0 {
				continue
			}
			for _, t := range allPieceTypes {
				if b.bb[t]&occupySquare[sq] != 0 {
					wantMailbox[sq] = NewPiece(Color(c), t)
				}
			}
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		if b.mailbox[sq] != wantMailbox[sq] {
			return fmt.Errorf("chess: mailbox/bitboard mismatch at %s: mailbox=%s bitboards=%s",
				sq, b.mailbox[sq], wantMailbox[sq])
		}
	}
	if b.occColor(White)&b.occColor(Black) != 0 {
		return fmt.Errorf("chess: white/black occupancy overlap")
	}
	if bits.OnesCount64(b.occType(King)&b.occColor(White)) != 1 ||
		bits.OnesCount64(b.occType(King)&b.occColor(Black)) != 1 {
		return fmt.Errorf("chess: must have exactly one king per side")
	}
	return nil
}
