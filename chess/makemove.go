package chess

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned when a move notation matches no legal move
// in the current position.
var ErrIllegalMove = errors.New("illegal move")

// undoState captures what a move destroys: the resolved captured piece
// and the scalars that rights/clock updates overwrite. Everything else
// is reconstructible from the move itself.
type undoState struct {
	move           Move
	captured       Piece
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
}

// ApplyMove validates and applies a pseudo-legal move, pushing an undo
// record. It returns false, with the board untouched, when the move
// does not fit the position: wrong piece or side at the origin, own
// piece on the destination, a stale en-passant flag, or a castle flag
// on a non-king. Legality with respect to check is not examined here;
// that is GenerateLegalMoves' job.
func (b *Board) ApplyMove(m Move) bool {
	from := m.From()
	to := m.To()
	piece := m.MovedPiece()
	mover := b.sideToMove

	if piece == NoPiece || !b.bitboards[piece].IsSet(from) {
		return false
	}
	if piece.Color() != mover {
		return false
	}

	captureSq := to
	captured := b.PieceAt(to)
	switch m.Flags() {
	case FlagEnPassant:
		if b.enPassantSquare != to || captured != NoPiece {
			return false
		}
		if mover == White {
			captureSq = to - 8
		} else {
			captureSq = to + 8
		}
		captured = b.PieceAt(captureSq)
		if captured.Type() != PieceTypePawn || captured.Color() != mover.Other() {
			return false
		}
	case FlagCastle:
		if piece.Type() != PieceTypeKing {
			return false
		}
		if captured != NoPiece {
			return false
		}
	default:
		if captured != NoPiece && captured.Color() == mover {
			return false
		}
	}

	b.history = append(b.history, undoState{
		move:           m,
		captured:       captured,
		castlingRights: b.castlingRights,
		enPassant:      b.enPassantSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	})

	b.bitboards[piece] = b.bitboards[piece].Clear(from)
	if captured != NoPiece {
		b.bitboards[captured] = b.bitboards[captured].Clear(captureSq)
	}
	placed := piece
	if promo := m.PromotionPiece(); promo != NoPiece {
		placed = promo
	}
	b.bitboards[placed] = b.bitboards[placed].Set(to)

	if m.Flags() == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rook := PieceFromType(mover, PieceTypeRook)
		b.bitboards[rook] = b.bitboards[rook].Clear(rookFrom).Set(rookTo)
	}

	b.updateCastlingRights(piece, from, captured, captureSq)

	if m.Flags() == FlagDoublePush {
		if mover == White {
			b.enPassantSquare = from + 8
		} else {
			b.enPassantSquare = from - 8
		}
	} else {
		b.enPassantSquare = NoSquare
	}

	if piece.Type() == PieceTypePawn || captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = mover.Other()
	b.recomputeOccupancy()
	return true
}

// UndoMove reverses the most recently applied move. Returns false when
// no history exists. It is the exact inverse of ApplyMove for every
// path ApplyMove commits.
func (b *Board) UndoMove() bool {
	n := len(b.history)
	if n == 0 {
		return false
	}
	st := b.history[n-1]
	b.history = b.history[:n-1]

	m := st.move
	from := m.From()
	to := m.To()
	piece := m.MovedPiece()
	mover := b.sideToMove.Other()

	if promo := m.PromotionPiece(); promo != NoPiece {
		b.bitboards[promo] = b.bitboards[promo].Clear(to)
	} else {
		b.bitboards[piece] = b.bitboards[piece].Clear(to)
	}
	b.bitboards[piece] = b.bitboards[piece].Set(from)

	if m.Flags() == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rook := PieceFromType(mover, PieceTypeRook)
		b.bitboards[rook] = b.bitboards[rook].Clear(rookTo).Set(rookFrom)
	}

	if st.captured != NoPiece {
		captureSq := to
		if m.Flags() == FlagEnPassant {
			if mover == White {
				captureSq = to - 8
			} else {
				captureSq = to + 8
			}
		}
		b.bitboards[st.captured] = b.bitboards[st.captured].Set(captureSq)
	}

	b.castlingRights = st.castlingRights
	b.enPassantSquare = st.enPassant
	b.halfmoveClock = st.halfmoveClock
	b.fullmoveNumber = st.fullmoveNumber
	b.sideToMove = mover
	b.recomputeOccupancy()
	return true
}

// castleRookSquares maps a castling king destination to the rook's
// origin and destination.
func castleRookSquares(kingTo Square) (rookFrom, rookTo Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	return NoSquare, NoSquare
}

// updateCastlingRights clears rights after a king or rook leaves its
// home square, or after a capture lands on an opponent rook home.
// Rights only ever shrink; undo restores them from the saved record.
func (b *Board) updateCastlingRights(piece Piece, from Square, captured Piece, captureSq Square) {
	switch piece {
	case WhiteKing:
		b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		b.castlingRights &^= CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		switch from {
		case H1:
			b.castlingRights &^= CastlingWhiteK
		case A1:
			b.castlingRights &^= CastlingWhiteQ
		}
	case BlackRook:
		switch from {
		case H8:
			b.castlingRights &^= CastlingBlackK
		case A8:
			b.castlingRights &^= CastlingBlackQ
		}
	}

	if captured.Type() == PieceTypeRook {
		switch captureSq {
		case H1:
			b.castlingRights &^= CastlingWhiteK
		case A1:
			b.castlingRights &^= CastlingWhiteQ
		case H8:
			b.castlingRights &^= CastlingBlackK
		case A8:
			b.castlingRights &^= CastlingBlackQ
		}
	}
}

// ApplyMoveUCI applies the legal move matching a coordinate notation
// such as "e2e4" or "e7e8q". It returns an error describing a malformed
// notation, or ErrIllegalMove when no legal move matches; the board is
// unchanged on error.
func (b *Board) ApplyMoveUCI(notation string) error {
	if len(notation) != 4 && len(notation) != 5 {
		return fmt.Errorf("invalid move notation %q", notation)
	}
	if _, ok := SquareFromName(notation[:2]); !ok {
		return fmt.Errorf("invalid move notation %q", notation)
	}
	if _, ok := SquareFromName(notation[2:4]); !ok {
		return fmt.Errorf("invalid move notation %q", notation)
	}
	if len(notation) == 5 {
		switch notation[4] {
		case 'n', 'b', 'r', 'q':
		default:
			return fmt.Errorf("invalid move notation %q", notation)
		}
	}

	for _, m := range b.GenerateLegalMoves() {
		if m.String() == notation {
			if !b.ApplyMove(m) {
				return ErrIllegalMove
			}
			return nil
		}
	}
	return ErrIllegalMove
}
