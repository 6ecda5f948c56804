package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Vedang-P/chess-engine/api"
	"github.com/Vedang-P/chess-engine/storage"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	dbDir := flag.String("db", "", "BadgerDB directory for analysis history (empty disables persistence)")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := run(log, *addr, *dbDir); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(log zerolog.Logger, addr, dbDir string) error {
	var store *storage.Store
	if dbDir != "" {
		s, err := storage.Open(dbDir)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		store = s
		defer store.Close()
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewRouter(log, store),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
