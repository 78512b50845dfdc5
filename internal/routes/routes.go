package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	handler "transaction-analytics-backend/internal/handlers"
	service "transaction-analytics-backend/internal/services/analysis"
)

func RegisterRoutes(r *gin.Engine, log zerolog.Logger) {
	analysisService := service.NewService(log)
	analyzeHandler := handler.NewAnalyzeHandler(analysisService, log)

	r.GET("/health", analyzeHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/analyze", analyzeHandler.Analyze)
}
