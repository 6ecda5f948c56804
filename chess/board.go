package chess

import "strings"

// Piece identifies a colored piece.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// allPieces lists the twelve concrete piece codes in scan order,
// white before black, pawn through king.
var allPieces = [12]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// PieceType is a colorless piece kind used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side into a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square represents a board position (0-63), or NoSquare.
type Square int

const NoSquare Square = -1

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// File returns the file index 0-7 (a-h).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index 0-7 (1-8).
func (sq Square) Rank() int { return int(sq) >> 3 }

// String returns the algebraic name ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// SquareFromName parses an algebraic square name like "e4".
func SquareFromName(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// Board holds a full position: twelve piece bitboards indexed by Piece
// code, the derived occupancy aggregates, game-state scalars, and the
// undo history for reversible move application. There is no per-square
// piece array; square contents are implicit in which bitboard holds a
// given bit.
type Board struct {
	bitboards [15]Bitboard // indexed by Piece code; slots 0, 7, 8 unused

	// Derived from the piece bitboards after every mutation, never
	// written independently.
	occupancy [2]Bitboard // occupancy[White], occupancy[Black]
	occupied  Bitboard

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square // NoSquare when no double push preceded

	halfmoveClock  int
	fullmoveNumber int

	history []undoState
}

// recomputeOccupancy rebuilds the aggregate masks from the twelve
// primary bitboards.
func (b *Board) recomputeOccupancy() {
	var white, black Bitboard
	for pt := WhitePawn; pt <= WhiteKing; pt++ {
		white |= b.bitboards[pt]
		black |= b.bitboards[pt|8]
	}
	b.occupancy[White] = white
	b.occupancy[Black] = black
	b.occupied = white | black
}

// PieceAt returns the piece on sq, scanning the twelve bitboards.
// Returns NoPiece for an empty square.
func (b *Board) PieceAt(sq Square) Piece {
	bit := SquareBB(sq)
	if b.occupied&bit == 0 {
		return NoPiece
	}
	for _, p := range allPieces {
		if b.bitboards[p]&bit != 0 {
			return p
		}
	}
	return NoPiece
}

// PieceBitboard returns the bitboard for one piece code.
func (b *Board) PieceBitboard(p Piece) Bitboard { return b.bitboards[p] }

// Occupied returns the all-pieces occupancy mask.
func (b *Board) Occupied() Bitboard { return b.occupied }

// OccupiedBy returns the occupancy mask for one side.
func (b *Board) OccupiedBy(c Color) Bitboard { return b.occupancy[c] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the remaining castling permissions.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns plies since the last capture or pawn advance.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// HistoryLen returns the number of applied moves that can be undone.
func (b *Board) HistoryLen() int { return len(b.history) }

// KingSquare returns the king square for a side, or NoSquare if the
// position has no such king.
func (b *Board) KingSquare(c Color) Square {
	return b.bitboards[PieceFromType(c, PieceTypeKing)].LSB()
}

// InCheck reports whether the given side's king is attacked. A missing
// king counts as in check so malformed positions fail closed.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return true
	}
	return b.IsSquareAttacked(ksq, c.Other())
}

// HasLegalMoves reports whether the side to move has at least one
// legal move.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GeneratePseudoLegalMoves() {
		if !b.ApplyMove(m) {
			continue
		}
		safe := !b.InCheck(b.sideToMove.Other())
		b.UndoMove()
		if safe {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// Position status values as reported by Status.
const (
	StatusOngoing   = "ongoing"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
)

// Status classifies the position for the side to move.
func (b *Board) Status() string {
	if b.HasLegalMoves() {
		return StatusOngoing
	}
	if b.InCheck(b.sideToMove) {
		return StatusCheckmate
	}
	return StatusStalemate
}

// String renders the board as an ASCII grid, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.PieceAt(sq)
			sb.WriteByte(' ')
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(pieceChar(p))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// Validate checks internal consistency: no square held by two piece
// bitboards, and the aggregates matching the primaries. Used by tests
// after make/unmake cycles.
func (b *Board) Validate() bool {
	var white, black Bitboard
	var seen Bitboard
	for _, p := range allPieces {
		bb := b.bitboards[p]
		if seen&bb != 0 {
			return false
		}
		seen |= bb
		if p.Color() == White {
			white |= bb
		} else {
			black |= bb
		}
	}
	if b.occupancy[White] != white || b.occupancy[Black] != black {
		return false
	}
	if b.occupied != (white | black) {
		return false
	}
	if b.enPassantSquare != NoSquare {
		rank := b.enPassantSquare.Rank()
		if rank != 2 && rank != 5 {
			return false
		}
	}
	return true
}
