package chess

import "math/rand"

// Zobrist key tables for pieces, castling, en passant file, and side
// to move. Filled once at init from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece     [15][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0x5EEDBEEF))

	for p := range zobristPiece {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist hashes the current position. Two boards hash equal
// exactly when their placement, side to move, castling rights, and
// en-passant file agree; the clocks are not part of the key.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for _, p := range allPieces {
		for bb := b.bitboards[p]; bb != 0; {
			sq := bb.PopLSB()
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}
