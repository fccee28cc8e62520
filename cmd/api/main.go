package main

import (
	"os"

	"github.com/berk/parentportal/internal/pkg/logger"
	"github.com/berk/parentportal/internal/server"
)

// @title Parent Portal API
// @version 1.0
// @description Backend API serving the school parent portal mobile application

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:4002
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown completes
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
