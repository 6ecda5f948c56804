package api

import (
	"golang.org/x/net/websocket"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

// wsSearchRequest is one search order on the telemetry socket. Nil
// fields take the same defaults as POST /analyze.
type wsSearchRequest struct {
	FEN         string `json:"fen"`
	MaxDepth    *int   `json:"max_depth"`
	TimeLimitMS *int   `json:"time_limit_ms"`
}

type wsIterationMsg struct {
	Type string `json:"type"`
	engine.Snapshot
}

type wsCompleteMsg struct {
	Type      string   `json:"type"`
	Depth     int      `json:"depth"`
	Score     int      `json:"score"`
	Nodes     int64    `json:"nodes"`
	NPS       int64    `json:"nps"`
	ElapsedMS float64  `json:"elapsed_ms"`
	PV        []string `json:"pv"`
	BestMove  *string  `json:"best_move"`
}

type wsErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// searchWS streams per-depth telemetry. Each JSON message on the
// socket starts one search; iteration messages stream as depths
// complete, then a single complete (or error) message ends the burst
// and the socket waits for the next request.
func (h *Handler) searchWS(ws *websocket.Conn) {
	defer ws.Close()

	for {
		var req wsSearchRequest
		if err := websocket.JSON.Receive(ws, &req); err != nil {
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

		board, err := chess.ParseFEN(fen)
		if err != nil {
			if err := websocket.JSON.Send(ws, wsErrorMsg{Type: "error", Message: err.Error()}); err != nil {
				return
			}
			continue
		}

		// The search runs on its own goroutine and the socket loop
		// drains events in order; closing the channel marks the end
		// of the stream. The unbuffered channel back-pressures the
		// search so iterations are never dropped.
		events := make(chan any)
		go func() {
			defer close(events)

			var eng engine.SearchEngine
			result, err := eng.Search(board, maxDepth, timeLimitMS, func(res engine.SearchResult) {
				snap := engine.MakeSnapshot(res)
				snap.ElapsedMS = round2(snap.ElapsedMS)
				events <- wsIterationMsg{Type: "iteration", Snapshot: snap}
			})
			if err != nil {
				events <- wsErrorMsg{Type: "error", Message: err.Error()}
				return
			}

			snap := engine.MakeSnapshot(result)
			events <- wsCompleteMsg{
				Type:      "complete",
				Depth:     snap.Depth,
				Score:     snap.Score,
				Nodes:     snap.Nodes,
				NPS:       snap.NPS,
				ElapsedMS: round2(snap.ElapsedMS),
				PV:        snap.PV,
				BestMove:  snap.BestMove,
			}
		}()

		for msg := range events {
			if err := websocket.JSON.Send(ws, msg); err != nil {
				// Drain so the searcher can finish and exit.
				for range events {
				}
				return
			}
		}
	}
}
