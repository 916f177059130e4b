package chess

// makeunmake.go implements incremental make/unmake over the bounded state
// stack, per spec.md §4.6-4.7: castling-rights invalidation on king/rook
// moves or captures of a corner rook, capture/en-passant/castle side
// effects, and incremental Zobrist maintenance. Grounded in the teacher's
// engine.go apply/undo pair, generalized from its struct-diff approach to
// the packed Move + stateFrame-stack approach spec.md calls for.

// castleRightMask[sq] clears the castling right that touching sq (as either
// mover or capture victim) invalidates; squares that don't matter map to
// the all-rights mask (no-op on AND).
var castleRightMask [64]uint8

func init() {
	full := CastleWK | CastleWQ | CastleBK | CastleBQ
	for sq := 0; sq < 64; sq++ {
		castleRightMask[sq] = full
	}
	castleRightMask[0] &^= CastleWQ  // a1 rook
	castleRightMask[7] &^= CastleWK  // h1 rook
	castleRightMask[4] &^= CastleWK | CastleWQ // e1 king
	castleRightMask[56] &^= CastleBQ // a8 rook
	castleRightMask[63] &^= CastleBK // h8 rook
	castleRightMask[60] &^= CastleBK | CastleBQ // e8 king
}

// Make applies mv to the position, pushing enough state to undo it, and
// reports whether it was legal (the side that just moved is not left in
// check). Illegal moves are still applied to the stack/board; callers must
// call Unmake regardless of the returned bool, matching the
// generate-make-test-unmake loop spec.md §4.7 and §8 describe for perft.
func (b *Board) Make(mv Move) bool {
	us := b.sideToMove
	them := us.Other()
	from, to, flag := mv.From(), mv.To(), mv.Flag()
	mover := b.mailbox[from]

	frame := stateFrame{
		captured:     NoPiece,
		castleRights: b.castleRights,
		epTarget:     b.epTarget,
		halfmove:     b.halfmove,
		hash:         b.hash,
		move:         mv,
	}

	if b.epTarget != NoSquare {
		b.hash ^= epKey(b.epTarget)
	}
	b.epTarget = NoSquare

	switch flag {
	case FlagEnPassant:
		capSq := Square(int(to) - pawnPushOffset(us))
		frame.captured = b.mailbox[capSq]
		b.removePiece(frame.captured, capSq)
		b.movePiece(mover, from, to)
	case FlagCastleKingside, FlagCastleQueenside:
		b.movePiece(mover, from, to)
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := b.mailbox[rookFrom]
		b.movePiece(rook, rookFrom, rookTo)
	default:
		if flag == FlagCapture || (flag&0x8 != 0 && flag&0x4 != 0) {
			frame.captured = b.mailbox[to]
			b.removePiece(frame.captured, to)
		}
		b.removePiece(mover, from)
		if mv.IsPromotion() {
			b.addPiece(NewPiece(us, mv.PromotionType()), to)
		} else {
			b.addPiece(mover, to)
		}
		if flag == FlagDoublePawnPush {
			b.epTarget = to
			b.hash ^= epKey(b.epTarget)
		}
	}

	b.hash ^= zobristCastling[b.castleRights]
	b.castleRights &= castleRightMask[from] & castleRightMask[to]
	b.hash ^= zobristCastling[b.castleRights]

	if mover.Type() == Pawn || frame.captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}

	b.sideToMove = them
	b.hash ^= zobristColor

	b.stack[b.ply] = frame
	b.ply++

	return !b.inCheck(us)
}

// Unmake reverses the most recent Make call.
func (b *Board) Unmake() {
	b.ply--
	frame := b.stack[b.ply]
	b.stack[b.ply] = stateFrame{}
	mv := frame.move
	from, to, flag := mv.From(), mv.To(), mv.Flag()

	them := b.sideToMove
	us := them.Other()
	b.sideToMove = us
	b.fullmove -= boolToInt(us == Black)
	b.halfmove = frame.halfmove
	b.epTarget = frame.epTarget
	b.castleRights = frame.castleRights
	b.hash = frame.hash

	switch flag {
	case FlagEnPassant:
		mover := b.mailbox[to]
		b.relocateRaw(mover, to, from)
		capSq := Square(int(to) - pawnPushOffset(us))
		b.placeRaw(frame.captured, capSq)
	case FlagCastleKingside, FlagCastleQueenside:
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := b.mailbox[rookTo]
		b.relocateRaw(rook, rookTo, rookFrom)
		king := b.mailbox[to]
		b.relocateRaw(king, to, from)
	default:
		if mv.IsPromotion() {
			b.clearRaw(b.mailbox[to], to)
			b.placeRaw(NewPiece(us, Pawn), from)
		} else {
			mover := b.mailbox[to]
			b.relocateRaw(mover, to, from)
		}
		if frame.captured != NoPiece {
			b.placeRaw(frame.captured, to)
		}
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// castleRookSquares returns the rook's from/to squares for a castle move of
// the given color and side flag.
func castleRookSquares(c Color, flag uint8) (Square, Square) {
	if c == White {
		if flag == FlagCastleKingside {
			return 7, 5
		}
		return 0, 3
	}
	if flag == FlagCastleKingside {
		return 63, 61
	}
	return 56, 59
}
