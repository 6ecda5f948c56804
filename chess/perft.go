package chess

import "fmt"

// Perft counts leaf nodes of the legal move tree to the given depth.
// Depth 0 is a single leaf; depth 1 short-circuits to the legal move
// count to skip one redundant generation layer.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.ApplyMove(m)
		nodes += Perft(b, depth-1)
		b.UndoMove()
	}
	return nodes
}

// PerftDivide maps each root move's notation to its subtree leaf count.
// Depth must be at least 1. Iterate keys in sorted order for
// deterministic output against reference tables.
func PerftDivide(b *Board, depth int) (map[string]uint64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft divide depth must be >= 1, got %d", depth)
	}
	div := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		b.ApplyMove(m)
		div[m.String()] = Perft(b, depth-1)
		b.UndoMove()
	}
	return div, nil
}
