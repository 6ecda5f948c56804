package bench

import (
	"testing"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

func benchSearch(b *testing.B, fen string, depth int) {
	board, err := chess.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	var eng engine.SearchEngine
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Search(board, depth, 600000, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, chess.FENStartPos, 3)
}

func BenchmarkSearch_Initial_D4(b *testing.B) {
	benchSearch(b, chess.FENStartPos, 4)
}

func BenchmarkSearch_Kiwipete_D3(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchSearch(b, fen, 3)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	board, err := chess.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(board)
	}
}
