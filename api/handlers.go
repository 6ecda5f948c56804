package api

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
	"github.com/Vedang-P/chess-engine/storage"
)

// analyzeRequest is the POST /analyze body. Nil fields take the
// documented defaults; explicit values are validated against bounds.
type analyzeRequest struct {
	FEN         string `json:"fen"`
	MaxDepth    *int   `json:"max_depth"`
	TimeLimitMS *int   `json:"time_limit_ms"`
}

// analyzeResponse extends the search snapshot with a static evaluation
// of the request position, in pawns and in centipawns.
type analyzeResponse struct {
	engine.Snapshot
	PositionEval   float64 `json:"position_eval"`
	PositionEvalCP int     `json:"position_eval_cp"`
}

// perftRequest is the POST /perft body.
type perftRequest struct {
	FEN    string `json:"fen"`
	Depth  *int   `json:"depth"`
	Divide bool   `json:"divide"`
}

// legalMovesRequest is the POST /legal-moves body.
type legalMovesRequest struct {
	FEN string `json:"fen"`
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fen := req.FEN
	if fen == "" {
		fen = chess.FENStartPos
	}
	maxDepth := 5
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}
	timeLimitMS := 3000
	if req.TimeLimitMS != nil {
		timeLimitMS = *req.TimeLimitMS
	}

	if maxDepth < 1 || maxDepth > 10 {
		writeError(w, http.StatusBadRequest, "max_depth must be between 1 and 10")
		return
	}
	if timeLimitMS < 50 || timeLimitMS > 120000 {
		writeError(w, http.StatusBadRequest, "time_limit_ms must be between 50 and 120000")
		return
	}

	board, err := chess.ParseFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var eng engine.SearchEngine
	result, err := eng.Search(board, maxDepth, timeLimitMS, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	evalCP := engine.Evaluate(board)
	snap := engine.MakeSnapshot(result)
	snap.ElapsedMS = round2(snap.ElapsedMS)

	// History is best effort; a failed write degrades to a log line
	// rather than failing the analysis.
	if h.store != nil {
		rec := storage.AnalysisRecord{
			FEN:         fen,
			Depth:       result.Depth,
			TimeLimitMS: timeLimitMS,
			BestMove:    snap.BestMove,
			Score:       result.Score,
			Nodes:       result.Nodes,
			NPS:         result.NPS,
			ElapsedMS:   snap.ElapsedMS,
			PV:          snap.PV,
		}
		if err := h.store.SaveAnalysis(board.ComputeZobrist(), rec); err != nil {
			h.log.Error().Err(err).Str("rid", GetRequestID(r.Context())).Msg("save analysis")
		}
	}

	writeJSON(w, analyzeResponse{
		Snapshot:       snap,
		PositionEval:   float64(evalCP) / 100,
		PositionEvalCP: evalCP,
	})
}

func (h *Handler) perft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req perftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fen := req.FEN
	if fen == "" {
		fen = chess.FENStartPos
	}
	depth := 3
	if req.Depth != nil {
		depth = *req.Depth
	}
	if depth < 1 || depth > 6 {
		writeError(w, http.StatusBadRequest, "depth must be between 1 and 6")
		return
	}

	board, err := chess.ParseFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Divide {
		divide, err := chess.PerftDivide(board, depth)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, map[string]any{"divide": divide})
		return
	}
	writeJSON(w, map[string]any{"nodes": chess.Perft(board, depth)})
}

func (h *Handler) legalMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req legalMovesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fen := req.FEN
	if fen == "" {
		fen = chess.FENStartPos
	}
	board, err := chess.ParseFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	moves := board.GenerateLegalMoves()
	evalCP := engine.Evaluate(board)

	writeJSON(w, map[string]any{
		"moves":            engine.MoveStrings(moves),
		"count":            len(moves),
		"status":           board.Status(),
		"position_eval":    float64(evalCP) / 100,
		"position_eval_cp": evalCP,
	})
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "analysis history not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fen := r.URL.Query().Get("fen")
	if fen == "" {
		fen = chess.FENStartPos
	}
	board, err := chess.ParseFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := h.store.Analyses(board.ComputeZobrist(), limit)
	if err != nil {
		h.log.Error().Err(err).Str("rid", GetRequestID(r.Context())).Msg("load history")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, map[string]any{
		"fen":      fen,
		"count":    len(records),
		"analyses": records,
	})
}

// decodeJSON decodes a request body, treating an empty body as an
// empty object so every field falls back to its default.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}

func round2(ms float64) float64 {
	return math.Round(ms*100) / 100
}
