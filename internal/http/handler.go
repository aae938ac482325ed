package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/tidecore/internal/usecase"
)

// Handler handles HTTP requests for tide predictions.
type Handler struct {
	predictionUC  *usecase.PredictionUseCase
	equilibriumUC *usecase.EquilibriumUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(predictionUC *usecase.PredictionUseCase, equilibriumUC *usecase.EquilibriumUseCase) *Handler {
	return &Handler{
		predictionUC:  predictionUC,
		equilibriumUC: equilibriumUC,
	}
}

// GetPredictions handles GET /v1/tides/predictions.
func (h *Handler) GetPredictions(c *gin.Context) {
	req := usecase.PredictionRequest{
		StationID:   c.Query("station_id"),
		Datum:       c.Query("datum"),
		Corrections: c.Query("corrections"),
	}

	if v := c.Query("infer_minor"); v != "" {
		inferMinor, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid infer_minor: %v", err)})
			return
		}
		req.InferMinor = inferMinor
	}

	if v := c.Query("allow_default_corrections"); v != "" {
		allowDefault, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid allow_default_corrections: %v", err)})
			return
		}
		req.AllowDefaultCorrections = allowDefault
	}

	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}
	req.Start = start
	req.End = end

	interval, ok := parseInterval(c)
	if !ok {
		return
	}
	req.Interval = interval

	response, err := h.predictionUC.Execute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetEquilibrium handles GET /v1/tides/equilibrium.
func (h *Handler) GetEquilibrium(c *gin.Context) {
	latStr := c.Query("lat")
	if latStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat parameter is required"})
		return
	}
	var lats []float64
	for _, field := range strings.Split(latStr, ",") {
		lat, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
			return
		}
		lats = append(lats, lat)
	}

	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}
	interval, ok := parseInterval(c)
	if !ok {
		return
	}

	response, err := h.equilibriumUC.Execute(usecase.EquilibriumRequest{
		Start:     start,
		End:       end,
		Interval:  interval,
		Latitudes: lats,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetStations handles GET /v1/stations.
func (h *Handler) GetStations(c *gin.Context) {
	stations, err := h.predictionUC.ListStations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stations": stations,
		"count":    len(stations),
	})
}

// GetConstituents handles GET /v1/constituents.
func (h *Handler) GetConstituents(c *gin.Context) {
	constituents := h.predictionUC.GetAllConstituents()
	c.JSON(http.StatusOK, gin.H{
		"constituents": constituents,
		"count":        len(constituents),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func parseTimeRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start parameter is required"})
		return
	}
	if endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end parameter is required"})
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid start time (expected RFC3339): %v", err)})
		return
	}
	end, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid end time (expected RFC3339): %v", err)})
		return
	}
	return start.UTC(), end.UTC(), true
}

func parseInterval(c *gin.Context) (time.Duration, bool) {
	intervalStr := c.Query("interval")
	if intervalStr == "" {
		intervalStr = "10m"
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid interval: %v", err)})
		return 0, false
	}
	return interval, true
}
