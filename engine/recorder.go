package engine

import "github.com/Vedang-P/chess-engine/chess"

// maxSnapshotCandidates caps the candidate list carried in snapshots
// and API payloads.
const maxSnapshotCandidates = 10

// SnapshotCandidate is the wire form of a scored root move.
type SnapshotCandidate struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// Snapshot is the wire form of one completed search iteration. Moves
// are rendered as UCI strings and BestMove is nil for terminal
// positions so it marshals as JSON null.
type Snapshot struct {
	Depth      int                 `json:"depth"`
	Score      int                 `json:"score"`
	BestMove   *string             `json:"best_move"`
	PV         []string            `json:"pv"`
	Nodes      int64               `json:"nodes"`
	NPS        int64               `json:"nps"`
	ElapsedMS  float64             `json:"elapsed_ms"`
	Candidates []SnapshotCandidate `json:"candidates"`
}

// MakeSnapshot converts a SearchResult into its wire form, keeping at
// most maxSnapshotCandidates candidates.
func MakeSnapshot(r SearchResult) Snapshot {
	n := len(r.Candidates)
	if n > maxSnapshotCandidates {
		n = maxSnapshotCandidates
	}
	candidates := make([]SnapshotCandidate, 0, n)
	for _, c := range r.Candidates[:n] {
		candidates = append(candidates, SnapshotCandidate{Move: c.Move.String(), Score: c.Score})
	}

	snap := Snapshot{
		Depth:      r.Depth,
		Score:      r.Score,
		PV:         MoveStrings(r.PV),
		Nodes:      r.Nodes,
		NPS:        r.NPS,
		ElapsedMS:  r.ElapsedMS,
		Candidates: candidates,
	}
	if r.BestMove != chess.NoMove {
		uci := r.BestMove.String()
		snap.BestMove = &uci
	}
	return snap
}

// MoveStrings renders a line of moves as UCI strings. The result is
// never nil so it marshals as a JSON array.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

// Recorder collects one Snapshot per completed iteration. Pass Record
// as the onIteration callback to Search.
type Recorder struct {
	Snapshots []Snapshot
}

// Record appends the snapshot of a completed iteration.
func (r *Recorder) Record(res SearchResult) {
	r.Snapshots = append(r.Snapshots, MakeSnapshot(res))
}
