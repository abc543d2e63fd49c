package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/api"
	"github.com/urmzd/kodakam/pkg/camera"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/db"
	"github.com/urmzd/kodakam/pkg/device/schema"

	_ "github.com/urmzd/kodakam/docs"
)

// @title           Kodakam API
// @version         1.0
// @description     REST API for the Kodak smart-home camera HTTP control protocol

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/kodakam/kodakam.db)")
	profile := flag.String("profile", "", "Profile to load (default: active profile)")
	addrOverride := flag.String("addr", "", "Listen address, overrides the profile setting")
	debug := flag.Bool("debug", false, "Log every camera request")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	if err := database.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	cfg, err := database.ProfileConfig(ctx, *profile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	opts := controllerOptions(cfg)
	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("api_address", cfg.APIAddress()).
		Dur("request_timeout", opts.RequestTimeout).
		Int("sweep_concurrency", opts.SweepConcurrency).
		Msg("Configuration loaded")

	controller := camera.NewController(opts)
	router := api.NewRouter(controller, catalog.Default(), schema.NewValidator())

	addr := cfg.APIAddress()
	if *addrOverride != "" {
		addr = *addrOverride
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	log.Info().Str("address", addr).Msg("Starting API server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func controllerOptions(cfg *db.Config) camera.Options {
	if cfg.Camera == nil {
		return camera.Options{}
	}
	return camera.Options{
		RequestTimeout:   cfg.Camera.RequestTimeout(),
		SweepConcurrency: cfg.Camera.SweepConcurrency,
		Port:             cfg.Camera.CameraPort,
	}
}
