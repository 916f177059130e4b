package chess

// attackgen.go computes sliding-piece attacks with Hyperbola Quintessence,
// per spec.md §4.3. Grounded in the teacher's bitflip/chessdata.go
// (linearAttack/diaAttack/hvAttack), generalized into the two-variant form
// spec.md requires: a reverse()-based formula for lines that run across
// multiple bytes (file, diagonal, antidiagonal — at most one bit per byte,
// so byte-swap is order-reversing across the line) and a mirror()-based
// formula for the rank, which lives entirely inside one byte (where
// byte-swap is a no-op on bit order and only an intra-byte bit reversal
// reverses it). See bitops.go for why each primitive is order-reversing on
// its respective line shape.

// rayAttacksReverse computes the Hyperbola Quintessence ray along a line
// mask that spans multiple bytes (file, diagonal, or antidiagonal), given
// the slider's single-bit occupancy square and the board's full occupancy.
func rayAttacksReverse(sq Square, mask, occ uint64) uint64 {
	s := occupySquare[sq]
	o := occ & mask
	forward := o - 2*s
	backward := reverse(reverse(o) - 2*reverse(s))
	return (forward ^ backward) & mask
}

// rayAttacksMirror computes the Hyperbola Quintessence ray along the rank
// line mask, which lies entirely within one byte.
func rayAttacksMirror(sq Square, mask, occ uint64) uint64 {
	s := occupySquare[sq]
	o := occ & mask
	forward := o - 2*s
	backward := mirror(mirror(o) - 2*mirror(s))
	return (forward ^ backward) & mask
}

// bishopAttacks returns the diagonal+antidiagonal attack set for a bishop
// on sq given full-board occupancy occ. The result may include own pieces;
// callers mask those out.
func bishopAttacks(sq Square, occ uint64) uint64 {
	diag := rayAttacksReverse(sq, diagonalMasks[squareToDiag[sq]], occ)
	antidiag := rayAttacksReverse(sq, antidiagMasks[squareToAntidiag[sq]], occ)
	return diag | antidiag
}

// rookAttacks returns the file+rank attack set for a rook on sq.
func rookAttacks(sq Square, occ uint64) uint64 {
	file := rayAttacksReverse(sq, fileMasks[squareToFile[sq]], occ)
	rank := rayAttacksMirror(sq, rankMasks[squareToRank[sq]], occ)
	return file | rank
}

// queenAttacks returns the union of bishop and rook attacks for sq.
func queenAttacks(sq Square, occ uint64) uint64 {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}
