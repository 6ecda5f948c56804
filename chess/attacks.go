package chess

// Precomputed attack tables, filled once at package init and read-only
// afterwards.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // capture squares only, not pushes

	rookRays   [64][4]Bitboard // N, S, E, W from each square, exclusive
	bishopRays [64][4]Bitboard // NE, NW, SE, SW
)

func init() {
	initLeaperTables()
	initRayTables()
}

type direction struct {
	df, dr int
}

var knightDeltas = [8]direction{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8]direction{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirs = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4]direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq & 7
		rank := sq >> 3

		for _, d := range knightDeltas {
			f, r := file+d.df, rank+d.dr
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				knightAttacks[sq] = knightAttacks[sq].Set(Square(r*8 + f))
			}
		}

		for _, d := range kingDeltas {
			f, r := file+d.df, rank+d.dr
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				kingAttacks[sq] = kingAttacks[sq].Set(Square(r*8 + f))
			}
		}

		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			if r := rank + 1; r <= 7 {
				pawnAttacks[White][sq] = pawnAttacks[White][sq].Set(Square(r*8 + f))
			}
			if r := rank - 1; r >= 0 {
				pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Set(Square(r*8 + f))
			}
		}
	}
}

func initRayTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq & 7
		rank := sq >> 3
		for dir, d := range rookDirs {
			f, r := file+d.df, rank+d.dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				rookRays[sq][dir] = rookRays[sq][dir].Set(Square(r*8 + f))
				f += d.df
				r += d.dr
			}
		}
		for dir, d := range bishopDirs {
			f, r := file+d.df, rank+d.dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				bishopRays[sq][dir] = bishopRays[sq][dir].Set(Square(r*8 + f))
				f += d.df
				r += d.dr
			}
		}
	}
}

// rookAttacks returns rook attack squares from sq given an occupancy.
// Each ray is truncated at its first blocker; the blocker square itself
// stays in the mask so callers can classify it as capture or own piece.
func rookAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard

	// N and E rays grow toward higher bits; first blocker is the LSB.
	for _, dir := range [2]int{0, 2} {
		ray := rookRays[sq][dir]
		if blockers := ray & occ; blockers != 0 {
			ray ^= rookRays[blockers.LSB()][dir]
		}
		attacks |= ray
	}
	// S and W rays grow toward lower bits; first blocker is the MSB.
	for _, dir := range [2]int{1, 3} {
		ray := rookRays[sq][dir]
		if blockers := ray & occ; blockers != 0 {
			ray ^= rookRays[blockers.MSB()][dir]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacks returns bishop attack squares from sq given an occupancy.
func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard

	for _, dir := range [2]int{0, 1} { // NE, NW
		ray := bishopRays[sq][dir]
		if blockers := ray & occ; blockers != 0 {
			ray ^= bishopRays[blockers.LSB()][dir]
		}
		attacks |= ray
	}
	for _, dir := range [2]int{2, 3} { // SE, SW
		ray := bishopRays[sq][dir]
		if blockers := ray & occ; blockers != 0 {
			ray ^= bishopRays[blockers.MSB()][dir]
		}
		attacks |= ray
	}
	return attacks
}

// queenAttacks returns combined rook and bishop attacks.
func queenAttacks(sq Square, occ Bitboard) Bitboard {
	return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
}

// IsSquareAttacked reports whether sq is attacked by any piece of the
// given side. Checks the cheap table lookups first (pawn, knight,
// king), then the slider rays, short-circuiting on the first attacker.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	if pawnAttacks[by.Other()][sq]&b.bitboards[PieceFromType(by, PieceTypePawn)] != 0 {
		return true
	}
	if knightAttacks[sq]&b.bitboards[PieceFromType(by, PieceTypeKnight)] != 0 {
		return true
	}
	if kingAttacks[sq]&b.bitboards[PieceFromType(by, PieceTypeKing)] != 0 {
		return true
	}

	bishops := b.bitboards[PieceFromType(by, PieceTypeBishop)]
	queens := b.bitboards[PieceFromType(by, PieceTypeQueen)]
	if bq := bishops | queens; bq != 0 && bishopAttacks(sq, b.occupied)&bq != 0 {
		return true
	}

	rooks := b.bitboards[PieceFromType(by, PieceTypeRook)]
	if rq := rooks | queens; rq != 0 && rookAttacks(sq, b.occupied)&rq != 0 {
		return true
	}
	return false
}
