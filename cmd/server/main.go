// Package main provides the tide prediction HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"go.ngs.io/tidecore/internal/adapter/store"
	"go.ngs.io/tidecore/internal/adapter/store/csv"
	httpHandler "go.ngs.io/tidecore/internal/http"
	"go.ngs.io/tidecore/internal/usecase"
)

const version = "1.0.0"

// Config holds the server configuration, read from the environment.
type Config struct {
	Port    string `default:"8080"`
	DataDir string `default:"./data" split_words:"true"`
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tidecore version %s\n", version)
		return
	}

	var cfg Config
	if err := envconfig.Process("tidecore", &cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := zapLogger.Sugar()

	logger.Infow("Starting tide prediction server",
		"version", version,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
	)

	var loader store.ConstituentLoader = csv.NewConstituentStore(cfg.DataDir)
	if stations, err := loader.ListStations(); err != nil {
		logger.Warnw("Could not list stations at startup", "error", err)
	} else {
		logger.Infow("Station data loaded", "stations", len(stations))
	}

	predictionUC := usecase.NewPredictionUseCase(loader)
	equilibriumUC := usecase.NewEquilibriumUseCase()

	router := httpHandler.SetupRouter(predictionUC, equilibriumUC)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Infow("Server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		logger.Fatalw("Failed to start server", "error", err)
	}
}
