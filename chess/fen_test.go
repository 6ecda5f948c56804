package chess_test

import (
	"strings"
	"testing"

	"github.com/Vedang-P/chess-engine/chess"
)

func TestParseFEN_StartPos(t *testing.T) {
	b := mustParse(t, chess.FENStartPos)

	if got := b.SideToMove(); got != chess.White {
		t.Fatalf("side to move = %v, want White", got)
	}
	wantRights := chess.CastlingWhiteK | chess.CastlingWhiteQ | chess.CastlingBlackK | chess.CastlingBlackQ
	if got := b.CastlingRights(); got != wantRights {
		t.Fatalf("castling rights = %b, want %b", got, wantRights)
	}
	if got := b.EnPassantSquare(); got != chess.NoSquare {
		t.Fatalf("en passant square = %v, want NoSquare", got)
	}
	if got := b.HalfmoveClock(); got != 0 {
		t.Fatalf("halfmove clock = %d, want 0", got)
	}
	if got := b.FullmoveNumber(); got != 1 {
		t.Fatalf("fullmove number = %d, want 1", got)
	}
	if got := b.PieceBitboard(chess.WhitePawn).PopCount(); got != 8 {
		t.Fatalf("white pawn count = %d, want 8", got)
	}
	if got := b.Occupied().PopCount(); got != 32 {
		t.Fatalf("occupied count = %d, want 32", got)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		chess.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R b K - 13 37",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		if got := b.ToFEN(); got != fen {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, fen)
		}
	}
}

func TestParseFEN_Errors(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too short", "rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"unknown piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"halfmove not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
	}
	for _, c := range cases {
		b, err := chess.ParseFEN(c.fen)
		if err == nil {
			t.Fatalf("%s: ParseFEN(%q) accepted, want error", c.name, c.fen)
		}
		if b != nil {
			t.Fatalf("%s: ParseFEN returned a board alongside an error", c.name)
		}
		if !strings.HasPrefix(err.Error(), "invalid FEN") {
			t.Fatalf("%s: error %q missing invalid FEN prefix", c.name, err)
		}
	}
}
