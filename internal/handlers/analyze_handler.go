package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"transaction-analytics-backend/internal/metrics"
	"transaction-analytics-backend/internal/models"
	service "transaction-analytics-backend/internal/services/analysis"
)

type AnalyzeHandler struct {
	service *service.Service
	log     zerolog.Logger
}

func NewAnalyzeHandler(s *service.Service, log zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{service: s, log: log}
}

// Analyze scores a batch of transactions and returns per-transaction
// results plus the full analytics object. Parse failures are the only
// caller-visible errors; they never leave a partial result behind.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	start := time.Now()
	status := http.StatusOK
	defer func() {
		metrics.RequestsTotal.WithLabelValues("/analyze", c.Request.Method, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues("/analyze").Observe(time.Since(start).Seconds())
	}()

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status = http.StatusBadRequest
		c.JSON(status, gin.H{"error": "Failed to parse request: " + err.Error()})
		return
	}

	if req.Transactions == nil {
		status = http.StatusBadRequest
		c.JSON(status, gin.H{"error": "Invalid payload: 'transactions' field required"})
		return
	}

	datasetID := req.DatasetID
	if datasetID == "" {
		datasetID = "unknown"
	}

	resp, err := h.service.Analyze(datasetID, req.Transactions)
	if err != nil {
		status = http.StatusBadRequest
		h.log.Warn().Err(err).Str("dataset_id", datasetID).Msg("batch rejected")
		c.JSON(status, gin.H{"error": "Failed to parse request: " + err.Error()})
		return
	}

	metrics.BatchSize.Observe(float64(len(resp.Results)))
	if resp.Analytics != nil {
		metrics.HighRiskTotal.Add(float64(resp.Analytics.RiskDistribution.High))
	}

	c.JSON(status, resp)
}

// Health reports liveness for monitoring.
func (h *AnalyzeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "analytics-engine",
	})
}
