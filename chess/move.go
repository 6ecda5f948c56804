package chess

// Move encodes a chess move in a 32-bit value.
type Move uint32

// NoMove is the zero Move; a real move always carries a piece code.
const NoMove Move = 0

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// Move flags. A move is at most one of castle, en passant, or double
// pawn push; promotion is indicated by a non-zero promotion piece.
const (
	FlagNone       = 0
	FlagCastle     = 1
	FlagEnPassant  = 2
	FlagDoublePush = 3
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the captured piece code (NoPiece if none). For
// en-passant captures this is the opposing pawn even though the
// destination square itself is empty.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (NoPiece if none).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// Flags returns the special move flag.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool { return m.Flags() == FlagCastle }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEnPassant }

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m.Flags() == FlagDoublePush }

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// String produces the coordinate notation of the move (e.g. "e2e4",
// "e7e8q").
func (m Move) String() string {
	buf := []byte{
		'a' + byte(m.From().File()), '1' + byte(m.From().Rank()),
		'a' + byte(m.To().File()), '1' + byte(m.To().Rank()),
	}
	if promo := m.PromotionPiece(); promo != NoPiece {
		buf = append(buf, promoChar(promo.Type()))
	}
	return string(buf)
}

// promoChar maps a promotion piece type to its lowercase notation letter.
func promoChar(pt PieceType) byte {
	switch pt {
	case PieceTypeKnight:
		return 'n'
	case PieceTypeBishop:
		return 'b'
	case PieceTypeRook:
		return 'r'
	case PieceTypeQueen:
		return 'q'
	}
	return '?'
}
