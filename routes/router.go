package routes

import (
	"log/slog"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires middleware, controllers and routes around db.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.Metrics())

	SetupRoutes(r,
		controllers.NewUserController(db),
		controllers.NewPostController(db),
		controllers.NewCommentController(db),
	)
	return r
}
