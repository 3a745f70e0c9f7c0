package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/api"
	"github.com/arash/truth-or-dare-bot/internal/config"
	"github.com/arash/truth-or-dare-bot/internal/events"
	"github.com/arash/truth-or-dare-bot/internal/repository/sqlite"
	"github.com/arash/truth-or-dare-bot/internal/seed"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Open the embedded store and create missing tables
	db, err := sqlite.NewConnection(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}

	gateway := store.New(db)

	if err := seed.EnsureDefaults(context.Background(), gateway); err != nil {
		log.Fatal().Err(err).Msg("failed to seed prompt bank")
	}

	services := service.NewServices(gateway, cfg)

	// Background reaper for idle sessions
	sweeper := store.NewSweeper(gateway, cfg.SweepInterval, cfg.GameTimeout)
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start session sweeper")
	}

	// Session event feed
	hub := events.NewHub()
	go hub.Run()

	router := api.NewRouter(services, hub)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if err := sweeper.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop sweeper")
	}
	hub.Stop()

	log.Info().Msg("server stopped")
}
