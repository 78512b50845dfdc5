package main

import (
	"time"

	"transaction-analytics-backend/internal/config"
	"transaction-analytics-backend/internal/logger"
	"transaction-analytics-backend/internal/middleware"
	"transaction-analytics-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on system env")
	}

	cfg := config.Load()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, log)

	log.Info().Str("port", cfg.Port).Msg("starting analytics engine")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
