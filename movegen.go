package chess

// movegen.go implements pseudolegal move generation per spec.md §4.5:
// moves that obey piece-movement rules but may leave the mover's own king
// in check. Legality is enforced after the fact by Make's in-check retest
// (see makeunmake.go), the same pseudolegal-then-filter structure the
// teacher's engine.go used, generalized to the packed Move encoding and
// a deterministic emission order: pawns, castles, knights, king, bishops,
// rooks, queens. Pawn moves are not grouped by kind: each pawn in turn
// (ascending source square) emits its push, double push, captures and
// promotions, then en passant. Within every piece kind, moves are ordered by
// ascending source square, then ascending destination square.

// GenerateMoves fills buf with every pseudolegal move in the current
// position and returns the count written. buf must have capacity
// MaxMoves.
func (b *Board) GenerateMoves(buf *[MaxMoves]Move) int {
	n := 0
	us := b.sideToMove
	them := us.Other()
	occ := b.occAll()
	ownOcc := b.occColor(us)
	enemyOcc := b.occColor(them)

	n = b.genPawnMoves(buf, n, us, occ, enemyOcc)
	n = b.genCastles(buf, n, us, occ)
	n = b.genLeaperMoves(buf, n, us, ownOcc, knightAttacks, Knight)
	n = b.genLeaperMoves(buf, n, us, ownOcc, kingAttacks, King)
	n = b.genSliderMoves(buf, n, us, ownOcc, occ, Bishop)
	n = b.genSliderMoves(buf, n, us, ownOcc, occ, Rook)
	n = b.genSliderMoves(buf, n, us, ownOcc, occ, Queen)
	return n
}

// GenerateCaptures fills buf with captures, en-passant captures, and
// capturing promotions only — the subset perft divides often use to prune
// quiescence search; grounded in the same category loop as GenerateMoves.
func (b *Board) GenerateCaptures(buf *[MaxMoves]Move) int {
	n := 0
	us := b.sideToMove
	them := us.Other()
	occ := b.occAll()
	enemyOcc := b.occColor(them)

	n = b.genPawnCaptures(buf, n, us, enemyOcc)
	n = b.genLeaperCaptures(buf, n, us, enemyOcc, knightAttacks, Knight)
	n = b.genLeaperCaptures(buf, n, us, enemyOcc, kingAttacks, King)
	n = b.genSliderCaptures(buf, n, us, enemyOcc, occ, Bishop)
	n = b.genSliderCaptures(buf, n, us, enemyOcc, occ, Rook)
	n = b.genSliderCaptures(buf, n, us, enemyOcc, occ, Queen)
	return n
}

func pawnPushOffset(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

func (b *Board) genPawnMoves(buf *[MaxMoves]Move, n int, us Color, occ, enemyOcc uint64) int {
	pawns := b.occType(Pawn) & b.occColor(us)
	push := pawnPushOffset(us)
	startRank := 1
	if us == Black {
		startRank = 6
	}
	promoRank := 7
	if us == Black {
		promoRank = 0
	}
	for p := pawns; p != 0; {
		from := Square(popLSB(&p))
		to1 := int(from) + push
		if occ&occupySquare[to1] == 0 {
			if to1/8 == promoRank {
				n = b.emitPromotions(buf, n, from, Square(to1), false)
			} else {
				buf[n] = NewMove(from, Square(to1), FlagQuiet)
				n++
				if int(from.Rank()) == startRank {
					to2 := to1 + push
					if occ&occupySquare[to2] == 0 {
						buf[n] = NewMove(from, Square(to2), FlagDoublePawnPush)
						n++
					}
				}
			}
		}
		atks := pawnAttacks[us][from] & enemyOcc
		for a := atks; a != 0; {
			to := Square(popLSB(&a))
			if int(to.Rank()) == promoRank {
				n = b.emitPromotions(buf, n, from, to, true)
			} else {
				buf[n] = NewMove(from, to, FlagCapture)
				n++
			}
		}
		if b.epTarget != NoSquare {
			epDest := Square(int(b.epTarget) + push)
			if pawnAttacks[us][from]&occupySquare[epDest] != 0 {
				buf[n] = NewMove(from, epDest, FlagEnPassant)
				n++
			}
		}
	}
	return n
}

func (b *Board) genPawnCaptures(buf *[MaxMoves]Move, n int, us Color, enemyOcc uint64) int {
	pawns := b.occType(Pawn) & b.occColor(us)
	push := pawnPushOffset(us)
	promoRank := 7
	if us == Black {
		promoRank = 0
	}
	for p := pawns; p != 0; {
		from := Square(popLSB(&p))
		atks := pawnAttacks[us][from] & enemyOcc
		for a := atks; a != 0; {
			to := Square(popLSB(&a))
			if int(to.Rank()) == promoRank {
				n = b.emitPromotions(buf, n, from, to, true)
			} else {
				buf[n] = NewMove(from, to, FlagCapture)
				n++
			}
		}
		if b.epTarget != NoSquare {
			epDest := Square(int(b.epTarget) + push)
			if pawnAttacks[us][from]&occupySquare[epDest] != 0 {
				buf[n] = NewMove(from, epDest, FlagEnPassant)
				n++
			}
		}
	}
	return n
}

// emitPromotions appends the four under/over-promotion moves for a pawn
// reaching the back rank, in promoOrder, optionally as captures.
func (b *Board) emitPromotions(buf *[MaxMoves]Move, n int, from, to Square, capture bool) int {
	base := uint8(FlagPromoBishop)
	if capture {
		base = FlagPromoBishopCap
	}
	for i := range promoOrder {
		buf[n] = NewMove(from, to, base+uint8(i))
		n++
	}
	return n
}

func (b *Board) genLeaperMoves(buf *[MaxMoves]Move, n int, us Color, ownOcc uint64, table [64]uint64, t PieceType) int {
	pieces := b.occType(t) & b.occColor(us)
	enemyOcc := b.occAll() &^ ownOcc
	for p := pieces; p != 0; {
		from := Square(popLSB(&p))
		targets := table[from] &^ ownOcc
		for tg := targets; tg != 0; {
			to := Square(popLSB(&tg))
			if enemyOcc&occupySquare[to] != 0 {
				buf[n] = NewMove(from, to, FlagCapture)
			} else {
				buf[n] = NewMove(from, to, FlagQuiet)
			}
			n++
		}
	}
	return n
}

func (b *Board) genLeaperCaptures(buf *[MaxMoves]Move, n int, us Color, enemyOcc uint64, table [64]uint64, t PieceType) int {
	pieces := b.occType(t) & b.occColor(us)
	for p := pieces; p != 0; {
		from := Square(popLSB(&p))
		targets := table[from] & enemyOcc
		for tg := targets; tg != 0; {
			to := Square(popLSB(&tg))
			buf[n] = NewMove(from, to, FlagCapture)
			n++
		}
	}
	return n
}

func sliderAttacksFor(t PieceType, sq Square, occ uint64) uint64 {
	switch t {
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	default:
		return queenAttacks(sq, occ)
	}
}

func (b *Board) genSliderMoves(buf *[MaxMoves]Move, n int, us Color, ownOcc, occ uint64, t PieceType) int {
	pieces := b.occType(t) & b.occColor(us)
	enemyOcc := occ &^ ownOcc
	for p := pieces; p != 0; {
		from := Square(popLSB(&p))
		targets := sliderAttacksFor(t, from, occ) &^ ownOcc
		for tg := targets; tg != 0; {
			to := Square(popLSB(&tg))
			if enemyOcc&occupySquare[to] != 0 {
				buf[n] = NewMove(from, to, FlagCapture)
			} else {
				buf[n] = NewMove(from, to, FlagQuiet)
			}
			n++
		}
	}
	return n
}

func (b *Board) genSliderCaptures(buf *[MaxMoves]Move, n int, us Color, enemyOcc, occ uint64, t PieceType) int {
	pieces := b.occType(t) & b.occColor(us)
	for p := pieces; p != 0; {
		from := Square(popLSB(&p))
		targets := sliderAttacksFor(t, from, occ) & enemyOcc
		for tg := targets; tg != 0; {
			to := Square(popLSB(&tg))
			buf[n] = NewMove(from, to, FlagCapture)
			n++
		}
	}
	return n
}

// attackedBy reports whether any piece of color by attacks sq, given the
// occupancy occ to use for slider rays. occ is passed explicitly so callers
// probing king safety mid-move can exclude the king itself from the
// blocker set.
func (b *Board) attackedBy(sq Square, by Color, occ uint64) bool {
	theirs := b.occColor(by)
	if knightAttacks[sq]&b.occType(Knight)&theirs != 0 {
		return true
	}
	if kingAttacks[sq]&b.occType(King)&theirs != 0 {
		return true
	}
	if pawnAttacks[by.Other()][sq]&b.occType(Pawn)&theirs != 0 {
		return true
	}
	diagSliders := (b.occType(Bishop) | b.occType(Queen)) & theirs
	if bishopAttacks(sq, occ)&diagSliders != 0 {
		return true
	}
	orthoSliders := (b.occType(Rook) | b.occType(Queen)) & theirs
	if rookAttacks(sq, occ)&orthoSliders != 0 {
		return true
	}
	return false
}

// inCheck reports whether c's king is currently attacked.
func (b *Board) inCheck(c Color) bool {
	kingSq := Square(lsbIndex(b.occType(King) & b.occColor(c)))
	return b.attackedBy(kingSq, c.Other(), b.occAll())
}

func (b *Board) genCastles(buf *[MaxMoves]Move, n int, us Color, occ uint64) int {
	them := us.Other()
	if us == White {
		if b.castleRights&CastleWK != 0 &&
			occ&(occupySquare[5]|occupySquare[6]) == 0 &&
			!b.attackedBy(4, them, occ) && !b.attackedBy(5, them, occ) && !b.attackedBy(6, them, occ) {
			buf[n] = NewMove(4, 6, FlagCastleKingside)
			n++
		}
		if b.castleRights&CastleWQ != 0 &&
			occ&(occupySquare[1]|occupySquare[2]|occupySquare[3]) == 0 &&
			!b.attackedBy(4, them, occ) && !b.attackedBy(3, them, occ) && !b.attackedBy(2, them, occ) {
			buf[n] = NewMove(4, 2, FlagCastleQueenside)
			n++
		}
	} else {
		if b.castleRights&CastleBK != 0 &&
			occ&(occupySquare[61]|occupySquare[62]) == 0 &&
			!b.attackedBy(60, them, occ) && !b.attackedBy(61, them, occ) && !b.attackedBy(62, them, occ) {
			buf[n] = NewMove(60, 62, FlagCastleKingside)
			n++
		}
		if b.castleRights&CastleBQ != 0 &&
			occ&(occupySquare[57]|occupySquare[58]|occupySquare[59]) == 0 &&
			!b.attackedBy(60, them, occ) && !b.attackedBy(59, them, occ) && !b.attackedBy(58, them, occ) {
			buf[n] = NewMove(60, 58, FlagCastleQueenside)
			n++
		}
	}
	return n
}
