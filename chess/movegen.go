package chess

// promotionOrder lists promotion choices in emission order.
var promotionOrder = [4]PieceType{
	PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight,
}

// GeneratePseudoLegalMoves emits every geometrically valid move for the
// side to move, ignoring whether the king is left in check. Emission
// order is fixed: pawns, knights, bishops, rooks, queens, king, then
// castling, each piece group in ascending square order.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 64)
	us := b.sideToMove
	own := b.occupancy[us]

	b.genPawnMoves(&moves, us)
	b.genLeaperMoves(&moves, PieceFromType(us, PieceTypeKnight), &knightAttacks, own)
	b.genSliderMoves(&moves, PieceFromType(us, PieceTypeBishop), own)
	b.genSliderMoves(&moves, PieceFromType(us, PieceTypeRook), own)
	b.genSliderMoves(&moves, PieceFromType(us, PieceTypeQueen), own)
	b.genLeaperMoves(&moves, PieceFromType(us, PieceTypeKing), &kingAttacks, own)
	b.genCastlingMoves(&moves, us)
	return moves
}

// GenerateLegalMoves filters pseudo-legal moves by applying each one,
// rejecting those that leave the mover's king attacked, and undoing.
// Simple by intent: no pin detection, perft is the regression oracle.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.sideToMove
	for _, m := range pseudo {
		if !b.ApplyMove(m) {
			continue
		}
		if !b.InCheck(mover) {
			legal = append(legal, m)
		}
		b.UndoMove()
	}
	return legal
}

func (b *Board) genPawnMoves(moves *[]Move, us Color) {
	pawn := PieceFromType(us, PieceTypePawn)
	enemy := b.occupancy[us.Other()]

	forward := Square(8)
	startRank, promoRank := 1, 7
	if us == Black {
		forward = -8
		startRank, promoRank = 6, 0
	}

	for bb := b.bitboards[pawn]; bb != 0; {
		from := bb.PopLSB()

		to := from + forward
		if to >= 0 && to < 64 && !b.occupied.IsSet(to) {
			if to.Rank() == promoRank {
				for _, pt := range promotionOrder {
					*moves = append(*moves, NewMove(from, to, pawn, NoPiece, PieceFromType(us, pt), FlagNone))
				}
			} else {
				*moves = append(*moves, NewMove(from, to, pawn, NoPiece, NoPiece, FlagNone))
				if from.Rank() == startRank {
					to2 := to + forward
					if !b.occupied.IsSet(to2) {
						*moves = append(*moves, NewMove(from, to2, pawn, NoPiece, NoPiece, FlagDoublePush))
					}
				}
			}
		}

		for attacks := pawnAttacks[us][from] & enemy; attacks != 0; {
			to := attacks.PopLSB()
			captured := b.PieceAt(to)
			if to.Rank() == promoRank {
				for _, pt := range promotionOrder {
					*moves = append(*moves, NewMove(from, to, pawn, captured, PieceFromType(us, pt), FlagNone))
				}
			} else {
				*moves = append(*moves, NewMove(from, to, pawn, captured, NoPiece, FlagNone))
			}
		}

		if ep := b.enPassantSquare; ep != NoSquare && pawnAttacks[us][from].IsSet(ep) {
			capturedPawn := PieceFromType(us.Other(), PieceTypePawn)
			*moves = append(*moves, NewMove(from, ep, pawn, capturedPawn, NoPiece, FlagEnPassant))
		}
	}
}

func (b *Board) genLeaperMoves(moves *[]Move, piece Piece, table *[64]Bitboard, own Bitboard) {
	for bb := b.bitboards[piece]; bb != 0; {
		from := bb.PopLSB()
		for targets := table[from] &^ own; targets != 0; {
			to := targets.PopLSB()
			*moves = append(*moves, NewMove(from, to, piece, b.PieceAt(to), NoPiece, FlagNone))
		}
	}
}

func (b *Board) genSliderMoves(moves *[]Move, piece Piece, own Bitboard) {
	for bb := b.bitboards[piece]; bb != 0; {
		from := bb.PopLSB()
		var attacks Bitboard
		switch piece.Type() {
		case PieceTypeBishop:
			attacks = bishopAttacks(from, b.occupied)
		case PieceTypeRook:
			attacks = rookAttacks(from, b.occupied)
		case PieceTypeQueen:
			attacks = queenAttacks(from, b.occupied)
		}
		for targets := attacks &^ own; targets != 0; {
			to := targets.PopLSB()
			*moves = append(*moves, NewMove(from, to, piece, b.PieceAt(to), NoPiece, FlagNone))
		}
	}
}

// genCastlingMoves emits king-side then queen-side castling when the
// rights survive, the king and rook sit on their home squares, the
// squares between are empty, and none of the king's start, transit, or
// landing squares is attacked.
func (b *Board) genCastlingMoves(moves *[]Move, us Color) {
	them := us.Other()
	king := PieceFromType(us, PieceTypeKing)
	rook := PieceFromType(us, PieceTypeRook)

	kingHome, kingSideRight, queenSideRight := E1, CastlingWhiteK, CastlingWhiteQ
	if us == Black {
		kingHome, kingSideRight, queenSideRight = E8, CastlingBlackK, CastlingBlackQ
	}
	if !b.bitboards[king].IsSet(kingHome) {
		return
	}

	if b.castlingRights&kingSideRight != 0 {
		f, g, h := kingHome+1, kingHome+2, kingHome+3
		if b.bitboards[rook].IsSet(h) &&
			!b.occupied.IsSet(f) && !b.occupied.IsSet(g) &&
			!b.IsSquareAttacked(kingHome, them) &&
			!b.IsSquareAttacked(f, them) &&
			!b.IsSquareAttacked(g, them) {
			*moves = append(*moves, NewMove(kingHome, g, king, NoPiece, NoPiece, FlagCastle))
		}
	}

	if b.castlingRights&queenSideRight != 0 {
		d, c, bsq, a := kingHome-1, kingHome-2, kingHome-3, kingHome-4
		if b.bitboards[rook].IsSet(a) &&
			!b.occupied.IsSet(d) && !b.occupied.IsSet(c) && !b.occupied.IsSet(bsq) &&
			!b.IsSquareAttacked(kingHome, them) &&
			!b.IsSquareAttacked(d, them) &&
			!b.IsSquareAttacked(c, them) {
			*moves = append(*moves, NewMove(kingHome, c, king, NoPiece, NoPiece, FlagCastle))
		}
	}
}
