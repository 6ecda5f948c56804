package engine_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

func TestMakeSnapshot_CapsCandidates(t *testing.T) {
	var eng engine.SearchEngine
	b := mustParse(t, chess.FENStartPos)

	res, err := eng.Search(b, 2, 60000, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Candidates) != 20 {
		t.Fatalf("candidates = %d, want 20", len(res.Candidates))
	}

	snap := engine.MakeSnapshot(res)
	if len(snap.Candidates) != 10 {
		t.Fatalf("snapshot candidates = %d, want capped at 10", len(snap.Candidates))
	}
	// The cap keeps the head of the sorted list.
	for i, c := range snap.Candidates {
		if c.Move != res.Candidates[i].Move.String() || c.Score != res.Candidates[i].Score {
			t.Fatalf("snapshot candidate %d = %+v, want %s/%d", i, c, res.Candidates[i].Move, res.Candidates[i].Score)
		}
	}
	if snap.BestMove == nil || *snap.BestMove != res.BestMove.String() {
		t.Fatalf("snapshot best move = %v, want %s", snap.BestMove, res.BestMove)
	}
	if len(snap.PV) != len(res.PV) {
		t.Fatalf("snapshot pv = %v, want %d entries", snap.PV, len(res.PV))
	}
}

func TestMakeSnapshot_TerminalPosition(t *testing.T) {
	var eng engine.SearchEngine
	b := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	res, err := eng.Search(b, 2, 60000, nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := engine.MakeSnapshot(res)
	if snap.BestMove != nil {
		t.Errorf("best move = %q in a mated position, want nil", *snap.BestMove)
	}
	if snap.PV == nil || snap.Candidates == nil {
		t.Errorf("pv and candidates must be empty slices, got %v / %v", snap.PV, snap.Candidates)
	}

	// Over the wire a terminal snapshot carries null and empty arrays,
	// never missing keys.
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	for _, want := range []string{`"best_move":null`, `"pv":[]`, `"candidates":[]`, `"score":-100000`} {
		if !strings.Contains(s, want) {
			t.Errorf("marshaled snapshot missing %s: %s", want, s)
		}
	}
}

func TestMoveStrings(t *testing.T) {
	if got := engine.MoveStrings(nil); got == nil || len(got) != 0 {
		t.Fatalf("MoveStrings(nil) = %v, want empty non-nil slice", got)
	}
	m := chess.NewMove(chess.E2, chess.E4, chess.WhitePawn, chess.NoPiece, chess.NoPiece, chess.FlagDoublePush)
	got := engine.MoveStrings([]chess.Move{m})
	if len(got) != 1 || got[0] != "e2e4" {
		t.Fatalf("MoveStrings = %v, want [e2e4]", got)
	}
}

func TestRecorder(t *testing.T) {
	var eng engine.SearchEngine
	var rec engine.Recorder
	b := mustParse(t, chess.FENStartPos)

	res, err := eng.Search(b, 3, 60000, rec.Record)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Snapshots) != 3 {
		t.Fatalf("snapshots = %d, want one per depth", len(rec.Snapshots))
	}
	for i, snap := range rec.Snapshots {
		if snap.Depth != i+1 {
			t.Errorf("snapshot %d depth = %d, want %d", i, snap.Depth, i+1)
		}
	}
	last := rec.Snapshots[len(rec.Snapshots)-1]
	if last.BestMove == nil || *last.BestMove != res.BestMove.String() {
		t.Fatalf("final snapshot best move = %v, want %s", last.BestMove, res.BestMove)
	}
	if last.Nodes != res.Nodes {
		t.Fatalf("final snapshot nodes = %d, want %d", last.Nodes, res.Nodes)
	}
}
