// Package api exposes the engine over HTTP and WebSocket: analysis,
// perft and legal-move endpoints plus a live search telemetry socket.
package api

import (
	"net/http"
	"net/http/pprof"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Vedang-P/chess-engine/storage"
)

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewRouter builds the HTTP router. store is optional; when nil the
// history endpoint reports unavailable and analyses are not persisted.
func NewRouter(log zerolog.Logger, store *storage.Store) http.Handler {
	h := &Handler{store: store, log: log}

	if store != nil {
		log.Info().Msg("analysis history enabled")
	} else {
		log.Info().Msg("analysis history disabled - run with -db to enable")
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(h.root))
	mux.Handle("/health", http.HandlerFunc(h.health))
	mux.Handle("/analyze", http.HandlerFunc(h.analyze))
	mux.Handle("/perft", http.HandlerFunc(h.perft))
	mux.Handle("/legal-moves", http.HandlerFunc(h.legalMoves))
	mux.Handle("/history", http.HandlerFunc(h.history))
	mux.Handle("/ws/search", websocket.Handler(h.searchWS))

	// pprof endpoints
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return CORS(RequestID(AccessLog(log, mux)))
}
