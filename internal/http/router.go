package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.ngs.io/tidecore/internal/metrics"
	"go.ngs.io/tidecore/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(predictionUC *usecase.PredictionUseCase, equilibriumUC *usecase.EquilibriumUseCase) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(metrics.LatencyMiddleware())

	// Create handler.
	handler := NewHandler(predictionUC, equilibriumUC)

	// API v1 routes.
	v1 := router.Group("/v1")
	// Tide predictions.
	tides := v1.Group("/tides")
	tides.GET("/predictions", handler.GetPredictions)
	tides.GET("/equilibrium", handler.GetEquilibrium)

	// Constituent catalog and stations.
	v1.GET("/constituents", handler.GetConstituents)
	v1.GET("/stations", handler.GetStations)

	// Health check and metrics.
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
