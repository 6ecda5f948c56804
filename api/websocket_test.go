package api_test

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"
)

func dialSearchWS(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srvURL, "http") + "/ws/search"
	ws, err := websocket.Dial(wsURL, "", srvURL+"/")
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readMsg(t *testing.T, ws *websocket.Conn) map[string]any {
	t.Helper()
	if err := ws.SetReadDeadline(time.Now().Add(30 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg map[string]any
	if err := websocket.JSON.Receive(ws, &msg); err != nil {
		t.Fatalf("receive: %v", err)
	}
	return msg
}

// collectBurst reads messages until a complete or error message and
// returns the iterations alongside the terminator.
func collectBurst(t *testing.T, ws *websocket.Conn) ([]map[string]any, map[string]any) {
	t.Helper()
	var iterations []map[string]any
	for {
		msg := readMsg(t, ws)
		switch msg["type"] {
		case "iteration":
			iterations = append(iterations, msg)
		case "complete", "error":
			return iterations, msg
		default:
			t.Fatalf("unexpected message type %v: %v", msg["type"], msg)
		}
	}
}

func TestSearchWS_Stream(t *testing.T) {
	srv := newTestServer(t, nil)
	ws := dialSearchWS(t, srv.URL)

	req := map[string]any{"max_depth": 2, "time_limit_ms": 30000}
	if err := websocket.JSON.Send(ws, req); err != nil {
		t.Fatal(err)
	}

	iterations, final := collectBurst(t, ws)
	if final["type"] != "complete" {
		t.Fatalf("terminator = %v, want complete", final)
	}
	if len(iterations) != 2 {
		t.Fatalf("iterations = %d, want one per depth", len(iterations))
	}
	for i, it := range iterations {
		if depth := it["depth"].(float64); depth != float64(i+1) {
			t.Errorf("iteration %d depth = %v", i, depth)
		}
		cands, ok := it["candidates"].([]any)
		if !ok || len(cands) == 0 || len(cands) > 10 {
			t.Errorf("iteration %d candidates = %v", i, it["candidates"])
		}
		if _, ok := it["best_move"].(string); !ok {
			t.Errorf("iteration %d best_move = %v", i, it["best_move"])
		}
	}

	if _, ok := final["candidates"]; ok {
		t.Errorf("complete message carries candidates: %v", final)
	}
	if best, ok := final["best_move"].(string); !ok || len(best) < 4 {
		t.Errorf("complete best_move = %v", final["best_move"])
	}
	if depth := final["depth"].(float64); depth != 2 {
		t.Errorf("complete depth = %v, want 2", depth)
	}
	if _, ok := final["pv"].([]any); !ok {
		t.Errorf("complete pv = %v", final["pv"])
	}
}

func TestSearchWS_MultipleRequests(t *testing.T) {
	srv := newTestServer(t, nil)
	ws := dialSearchWS(t, srv.URL)

	for i := 0; i < 2; i++ {
		req := map[string]any{"max_depth": 1, "time_limit_ms": 30000}
		if err := websocket.JSON.Send(ws, req); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		iterations, final := collectBurst(t, ws)
		if final["type"] != "complete" {
			t.Fatalf("request %d terminator = %v", i, final)
		}
		if len(iterations) != 1 {
			t.Fatalf("request %d iterations = %d, want 1", i, len(iterations))
		}
	}
}

func TestSearchWS_BadFEN(t *testing.T) {
	srv := newTestServer(t, nil)
	ws := dialSearchWS(t, srv.URL)

	if err := websocket.JSON.Send(ws, map[string]any{"fen": "junk"}); err != nil {
		t.Fatal(err)
	}
	msg := readMsg(t, ws)
	if msg["type"] != "error" {
		t.Fatalf("message = %v, want an error", msg)
	}
	if m, _ := msg["message"].(string); !strings.Contains(m, "invalid FEN") {
		t.Errorf("error message = %q", m)
	}

	// The socket stays open for the next request.
	if err := websocket.JSON.Send(ws, map[string]any{"max_depth": 1, "time_limit_ms": 30000}); err != nil {
		t.Fatal(err)
	}
	_, final := collectBurst(t, ws)
	if final["type"] != "complete" {
		t.Fatalf("terminator after error = %v, want complete", final)
	}
}

func TestSearchWS_TerminalPosition(t *testing.T) {
	srv := newTestServer(t, nil)
	ws := dialSearchWS(t, srv.URL)

	req := map[string]any{
		"fen":           "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"max_depth":     1,
		"time_limit_ms": 30000,
	}
	if err := websocket.JSON.Send(ws, req); err != nil {
		t.Fatal(err)
	}
	_, final := collectBurst(t, ws)
	if final["type"] != "complete" {
		t.Fatalf("terminator = %v, want complete", final)
	}
	if final["best_move"] != nil {
		t.Errorf("best_move = %v in a mated position, want null", final["best_move"])
	}
	if score := final["score"].(float64); score != -100000 {
		t.Errorf("score = %v, want -100000", score)
	}
}
