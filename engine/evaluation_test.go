package engine_test

import (
	"testing"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

func mustParse(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestEvaluate_StartPosBalanced(t *testing.T) {
	b := mustParse(t, chess.FENStartPos)
	if got := engine.Evaluate(b); got != 0 {
		t.Fatalf("startpos eval = %d, want 0", got)
	}
}

func TestEvaluate_Material(t *testing.T) {
	// Queen on a1 collects no center bonus and the kings cancel, so the
	// score is the bare material edge.
	b := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if got := engine.Evaluate(b); got != 900 {
		t.Fatalf("eval = %d, want 900", got)
	}
}

func TestEvaluate_SideToMovePerspective(t *testing.T) {
	white := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	black := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	if w, b := engine.Evaluate(white), engine.Evaluate(black); w != -b {
		t.Fatalf("perspective flip broken: white sees %d, black sees %d", w, b)
	}
	if got := engine.Evaluate(black); got != -900 {
		t.Fatalf("black to move eval = %d, want -900", got)
	}
}

func TestEvaluate_MirrorSymmetry(t *testing.T) {
	// Color-flipping the position and the side to move must keep the
	// score, since each side now holds the other's edge.
	a := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	b := mustParse(t, "q3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if ea, eb := engine.Evaluate(a), engine.Evaluate(b); ea != eb {
		t.Fatalf("mirror eval mismatch: %d vs %d", ea, eb)
	}
}

func TestEvaluate_CenterBonus(t *testing.T) {
	corner := mustParse(t, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	center := mustParse(t, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	if got := engine.Evaluate(corner); got != 320 {
		t.Fatalf("knight on a1 eval = %d, want 320", got)
	}
	if got := engine.Evaluate(center); got != 345 {
		t.Fatalf("knight on d4 eval = %d, want 345", got)
	}
}

func TestTerminalScore(t *testing.T) {
	if got := engine.TerminalScore(true, 0); got != -100000 {
		t.Fatalf("mate at root = %d, want -100000", got)
	}
	if got := engine.TerminalScore(true, 3); got != -99997 {
		t.Fatalf("mate at ply 3 = %d, want -99997", got)
	}
	if got := engine.TerminalScore(false, 7); got != 0 {
		t.Fatalf("stalemate = %d, want 0", got)
	}
	// Nearer mates must rank worse for the mated side.
	if engine.TerminalScore(true, 1) >= engine.TerminalScore(true, 5) {
		t.Fatalf("mate distance ordering inverted")
	}
}
