package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-share/internal/config"
	"github.com/robalobadob/wordle-share/internal/httpserver"
	"github.com/robalobadob/wordle-share/internal/metrics"
	"github.com/robalobadob/wordle-share/internal/share"
	"github.com/robalobadob/wordle-share/internal/store"
	"github.com/robalobadob/wordle-share/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogging(cfg.Logging)

	list, err := words.Load(cfg.Game.AnswersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	var sealer *share.Sealer
	if cfg.Game.ShareSecret != "" {
		sealer = share.NewSealer(cfg.Game.ShareSecret, cfg.Game.ShareTTL)
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, metrics.New("wordle", mem.Len), httpserver.Options{
		Words:          list,
		Sealer:         sealer,
		ShareBaseURL:   cfg.Game.ShareBaseURL,
		DailySalt:      cfg.Game.DailySalt,
		ClientOrigin:   cfg.Server.ClientOrigin,
		HandlerTimeout: cfg.Server.HandlerTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go store.RunSweeper(ctx, mem, cfg.Game.SweepEvery, cfg.Game.SessionTTL)

	hs := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", hs.Addr).Int("answers", list.Len()).Bool("sealedLinks", sealer != nil).Msg("starting wordle-share")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func setupLogging(c config.LoggingConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
