package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/camera"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/db"
	"github.com/urmzd/kodakam/pkg/device/schema"
	kodakmcp "github.com/urmzd/kodakam/pkg/mcp"
)

func main() {
	// stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/kodakam/kodakam.db)")
	profile := flag.String("profile", "", "Profile to load (default: active profile)")
	flag.Parse()

	ctx := context.Background()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if err := database.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	cfg, err := database.ProfileConfig(ctx, *profile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	opts := camera.Options{}
	if cfg.Camera != nil {
		opts.RequestTimeout = cfg.Camera.RequestTimeout()
		opts.SweepConcurrency = cfg.Camera.SweepConcurrency
		opts.Port = cfg.Camera.CameraPort
	}

	mcpServer := kodakmcp.NewServer(camera.NewController(opts), catalog.Default(), schema.NewValidator())

	log.Info().Str("profile", cfg.Profile.Name).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
