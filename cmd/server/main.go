package main

import (
	"github.com/carewell/hospital-system/internal/api"
	"github.com/carewell/hospital-system/internal/infrastructure/config"
	"github.com/carewell/hospital-system/internal/infrastructure/db/sqlite"
	"github.com/carewell/hospital-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Open(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open store")
	}

	e, err := api.NewRouter(db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
