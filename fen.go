package chess

import (
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Board from a forgiving rendition of FEN, per spec.md §6:
// the piece-placement field is strict (8 rank groups separated by '/',
// digits for empty runs, PNBRQK/pnbrqk for pieces), but everything after it
// is read as a loose bag of whitespace-separated tokens — single-character
// castling letters and 'w'/'b' are recognized wherever they appear, an
// algebraic square on rank 4 or 5 sets the en-passant target (the square of
// the pawn that just double-pushed; squares on other ranks are ignored), and
// halfmove/fullmove counters are optional. Grounded in dragontoothmg's util.go ParseFen,
// generalized to the tolerant-token reading spec.md calls for in place of
// its strict six-field split.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, errInvalidFEN("empty FEN")
	}
	b := NewEmptyBoard()
	if err := b.loadPlacement(fields[0]); err != nil {
		return nil, err
	}

	b.sideToMove = White
	b.castleRights = 0
	b.halfmove = 0
	b.fullmove = 1

	counters := 0
	for _, tok := range fields[1:] {
		switch tok {
		case "w":
			b.sideToMove = White
		case "b":
			b.sideToMove = Black
		case "-":
			// explicit "no rights"/"no ep target" placeholder; ignored since
			// absence of the relevant letters already means the same thing.
		default:
			if sq, ok := ParseSquare(tok); ok {
				if sq >= 24 && sq < 40 {
					b.epTarget = sq
				}
				continue
			}
			if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
				if counters == 0 {
					b.halfmove = n
				} else {
					b.fullmove = n
				}
				counters++
				continue
			}
			for _, r := range tok {
				switch r {
				case 'K':
					b.castleRights |= CastleWK
				case 'Q':
					b.castleRights |= CastleWQ
				case 'k':
					b.castleRights |= CastleBK
				case 'q':
					b.castleRights |= CastleBQ
				}
			}
		}
	}

	b.hash = 0
	for sq := Square(0); sq < 64; sq++ {
		if p := b.mailbox[sq]; p != NoPiece {
			b.hash ^= zobristPieceSquare[p][sq]
		}
	}
	b.hash ^= zobristCastling[b.castleRights]
	if b.sideToMove == Black {
		b.hash ^= zobristColor
	}
	if b.epTarget != NoSquare {
		b.hash ^= epKey(b.epTarget)
	}
	return b, nil
}

func (b *Board) loadPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errInvalidFEN("placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			c := White
			pt := pieceTypeFromLetter(r)
			if r >= 'a' && r <= 'z' {
				c = Black
			}
			if pt == 0 {
				return errInvalidFEN("unknown piece letter")
			}
			if file > 7 {
				return errInvalidFEN("rank overflows 8 files")
			}
			sq := Square(rank*8 + file)
			b.placeRaw(NewPiece(c, pt), sq)
			file++
		}
	}
	return nil
}

func pieceTypeFromLetter(r rune) PieceType {
	switch r | 0x20 {
	case 'p':
		return Pawn
	case 'b':
		return Bishop
	case 'n':
		return Knight
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	}
	return 0
}

type fenError string

func (e fenError) Error() string { return "chess: invalid FEN: " + string(e) }

func errInvalidFEN(msg string) error { return fenError(msg) }

// ToFEN serializes the position back to FEN. Castling letters are emitted
// in the conventional KQkq order; '-' stands in for absent rights or an
// absent en-passant target.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.mailbox[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	rights := ""
	if b.castleRights&CastleWK != 0 {
		rights += "K"
	}
	if b.castleRights&CastleWQ != 0 {
		rights += "Q"
	}
	if b.castleRights&CastleBK != 0 {
		rights += "k"
	}
	if b.castleRights&CastleBQ != 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(b.epTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
