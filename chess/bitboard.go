package chess

import "math/bits"

// Bitboard is a 64-bit board set, one bit per square.
// Bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8 (LERF mapping).
type Bitboard uint64

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << uint(sq)
}

// Set returns the bitboard with the bit at sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << uint(sq))
}

// Clear returns the bitboard with the bit at sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << uint(sq))
}

// IsSet reports whether the bit at sq is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<uint(sq)) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square, or NoSquare if the board is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare if the board is empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square. Callers must check
// emptiness first; on an empty board it returns NoSquare and leaves the
// board unchanged. Iterating a bitboard is repeated PopLSB until empty:
//
//	for bb != 0 {
//		sq := bb.PopLSB()
//		...
//	}
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}
