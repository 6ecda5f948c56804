package engine

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/Vedang-P/chess-engine/chess"
)

// Candidate pairs a root move with the score the search assigned it.
type Candidate struct {
	Move  chess.Move
	Score int
}

// SearchResult reports the deepest completed iteration of a search.
// BestMove is NoMove when the root position has no legal moves.
type SearchResult struct {
	BestMove   chess.Move
	Score      int
	Depth      int
	PV         []chess.Move
	Nodes      int64
	NPS        int64
	ElapsedMS  float64
	Candidates []Candidate
}

// errDeadline aborts the iteration in progress once the time budget is
// spent; Search falls back to the last completed depth.
var errDeadline = errors.New("search deadline exceeded")

// SearchEngine runs iterative-deepening negamax searches. The zero
// value is ready to use. A SearchEngine must not run concurrent
// searches.
type SearchEngine struct {
	nodes    int64
	deadline time.Time
}

// Search iterates from depth 1 through maxDepth, stopping once
// timeLimitMS milliseconds have elapsed. An iteration interrupted by
// the deadline is discarded wholesale, so the result always comes from
// a fully searched depth. onIteration, when non-nil, runs after every
// completed depth with that depth's result. Node and time counters are
// cumulative across iterations.
func (e *SearchEngine) Search(b *chess.Board, maxDepth, timeLimitMS int, onIteration func(SearchResult)) (SearchResult, error) {
	if maxDepth < 1 {
		return SearchResult{}, fmt.Errorf("max depth must be >= 1, got %d", maxDepth)
	}

	start := time.Now()
	e.nodes = 0
	e.deadline = start.Add(time.Duration(timeLimitMS) * time.Millisecond)

	var best SearchResult
	completed := false
	for depth := 1; depth <= maxDepth; depth++ {
		score, move, pv, candidates, err := e.searchRoot(b, depth)
		if err != nil {
			break
		}
		elapsed := time.Since(start)
		best = SearchResult{
			BestMove:   move,
			Score:      score,
			Depth:      depth,
			PV:         pv,
			Nodes:      e.nodes,
			NPS:        nodesPerSecond(e.nodes, elapsed),
			ElapsedMS:  elapsed.Seconds() * 1000,
			Candidates: candidates,
		}
		completed = true
		if onIteration != nil {
			onIteration(best)
		}
	}

	if !completed {
		elapsed := time.Since(start)
		best = SearchResult{
			BestMove:   chess.NoMove,
			PV:         []chess.Move{},
			Nodes:      e.nodes,
			NPS:        nodesPerSecond(e.nodes, elapsed),
			ElapsedMS:  elapsed.Seconds() * 1000,
			Candidates: []Candidate{},
		}
	}
	return best, nil
}

// searchRoot searches every root move to the given depth. Unlike the
// inner nodes it never cuts off, so each root move receives a true
// score and the candidate list covers the whole move set.
func (e *SearchEngine) searchRoot(b *chess.Board, depth int) (int, chess.Move, []chess.Move, []Candidate, error) {
	if !time.Now().Before(e.deadline) {
		return 0, chess.NoMove, nil, nil, errDeadline
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		score := TerminalScore(b.InCheck(b.SideToMove()), 0)
		return score, chess.NoMove, []chess.Move{}, []Candidate{}, nil
	}

	alpha, beta := -mateScore, mateScore
	bestScore := -mateScore
	bestMove := chess.NoMove
	var bestPV []chess.Move
	candidates := make([]Candidate, 0, len(moves))

	for _, m := range orderMoves(moves) {
		if !time.Now().Before(e.deadline) {
			return 0, chess.NoMove, nil, nil, errDeadline
		}

		b.ApplyMove(m)
		childScore, childLine, err := e.negamax(b, depth-1, -beta, -alpha, 1)
		b.UndoMove()
		if err != nil {
			return 0, chess.NoMove, nil, nil, err
		}

		score := -childScore
		candidates = append(candidates, Candidate{Move: m, Score: score})
		if score > bestScore {
			bestScore = score
			bestMove = m
			bestPV = append([]chess.Move{m}, childLine...)
		}
		if score > alpha {
			alpha = score
		}
	}

	slices.SortStableFunc(candidates, func(x, y Candidate) int {
		return cmp.Compare(y.Score, x.Score)
	})
	return bestScore, bestMove, bestPV, candidates, nil
}

// negamax returns the score of the position from the side to move's
// perspective along with the best line found. The board is always
// restored before an error propagates, so a deadline abort leaves the
// root position untouched.
func (e *SearchEngine) negamax(b *chess.Board, depth, alpha, beta, ply int) (int, []chess.Move, error) {
	if !time.Now().Before(e.deadline) {
		return 0, nil, errDeadline
	}
	e.nodes++

	if depth == 0 {
		return Evaluate(b), nil, nil
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return TerminalScore(b.InCheck(b.SideToMove()), ply), nil, nil
	}

	bestScore := -mateScore
	var bestLine []chess.Move
	for _, m := range orderMoves(moves) {
		b.ApplyMove(m)
		childScore, childLine, err := e.negamax(b, depth-1, -beta, -alpha, ply+1)
		b.UndoMove()
		if err != nil {
			return 0, nil, err
		}

		score := -childScore
		if score > bestScore {
			bestScore = score
			bestLine = append([]chess.Move{m}, childLine...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, bestLine, nil
}

// moveOrderKey biases captures, promotions and castles toward the
// front of the move list. Keys are additive so a promoting capture
// outranks either alone.
func moveOrderKey(m chess.Move) int {
	key := 0
	if m.IsCapture() {
		key += 10000
	}
	if m.IsPromotion() {
		key += 8000
	}
	if m.IsCastle() {
		key += 100
	}
	return key
}

// orderMoves returns a copy of moves sorted by descending order key.
// The sort is stable, so moves with equal keys keep generation order
// and repeated searches stay deterministic.
func orderMoves(moves []chess.Move) []chess.Move {
	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(a, b chess.Move) int {
		return moveOrderKey(b) - moveOrderKey(a)
	})
	return ordered
}

func nodesPerSecond(nodes int64, elapsed time.Duration) int64 {
	secs := elapsed.Seconds()
	if secs < 1e-9 {
		secs = 1e-9
	}
	return int64(float64(nodes) / secs)
}
