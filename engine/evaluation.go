package engine

import "github.com/Vedang-P/chess-engine/chess"

// pieceTypeValues holds material values in centipawns, indexed by
// colorless piece type.
var pieceTypeValues = [7]int{0, 100, 320, 330, 500, 900, 0}

// centerBonus rewards central control. Indexed by square for White;
// Black squares are mirrored vertically (sq ^ 56) so one table serves
// both colors.
var centerBonus = [64]int{
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 5, 10, 10, 10, 10, 5, 0,
	5, 10, 15, 20, 20, 15, 10, 5,
	5, 10, 20, 25, 25, 20, 10, 5,
	5, 10, 20, 25, 25, 20, 10, 5,
	5, 10, 15, 20, 20, 15, 10, 5,
	0, 5, 10, 10, 10, 10, 5, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
}

// Evaluate scores the position in centipawns from the side to move's
// perspective: material plus the center table, white minus black,
// negated when Black is to play.
func Evaluate(b *chess.Board) int {
	white, black := 0, 0
	for pt := chess.PieceTypePawn; pt <= chess.PieceTypeKing; pt++ {
		base := pieceTypeValues[pt]

		for bb := b.PieceBitboard(chess.PieceFromType(chess.White, pt)); bb != 0; {
			sq := bb.PopLSB()
			white += base + centerBonus[sq]
		}
		for bb := b.PieceBitboard(chess.PieceFromType(chess.Black, pt)); bb != 0; {
			sq := bb.PopLSB()
			black += base + centerBonus[sq^56]
		}
	}

	score := white - black
	if b.SideToMove() == chess.Black {
		return -score
	}
	return score
}

// mateScore bounds every reachable evaluation. Mate scores count plies
// from the search root so nearer mates compare higher.
const mateScore = 100000

// TerminalScore scores a position where the side to move has no legal
// moves: checkmate from the mated side's view, or zero for stalemate.
func TerminalScore(inCheck bool, ply int) int {
	if inCheck {
		return -mateScore + ply
	}
	return 0
}
