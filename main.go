package main

import (
	"log/slog"
	"os"

	"blogapi/config"
	"blogapi/database"
	"blogapi/routes"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Mini Blog API
// @version 1.0
// @description CRUD API over users, posts and comments.

// @host localhost:8080
// @BasePath /

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Error loading .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := utils.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	r := routes.NewRouter(db, cfg, logger)

	logger.Info("Server starting", "port", cfg.Port)
	logger.Info("Swagger docs available", "url", "http://localhost:"+cfg.Port+"/swagger/index.html")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
