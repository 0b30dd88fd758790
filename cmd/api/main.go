package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/velora-studio/salon-scheduler/internal/config"
	dbpkg "github.com/velora-studio/salon-scheduler/internal/db"
	"github.com/velora-studio/salon-scheduler/internal/routes"
	"github.com/velora-studio/salon-scheduler/internal/timezone"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()

	if !timezone.IsValid(cfg.SalonTimezone) {
		logger.Fatal().Str("timezone", cfg.SalonTimezone).Msg("invalid salon timezone")
	}

	db := dbpkg.NewDB(cfg, logger)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
