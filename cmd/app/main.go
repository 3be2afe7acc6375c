package main

import (
	"rentdesk/config"
	"rentdesk/di"
	"rentdesk/helper"
	"rentdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Rental Desk API
// @version 1.0
// @description Back office for an equipment rental desk: customer intake, equipment and rental tracking, and the listings behind the agent pages.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
