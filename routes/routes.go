package routes

import (
	"net/http"

	"blogapi/controllers"
	_ "blogapi/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine, userController *controllers.UserController, postController *controllers.PostController, commentController *controllers.CommentController) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Mini Blog API!")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/user", userController.CreateUser)
	r.GET("/users", userController.GetUsers)

	user := r.Group("/user/:id")
	{
		user.GET("", userController.GetUser)
		user.PUT("", userController.UpdateUser)
		user.DELETE("", userController.DeleteUser)
	}

	r.POST("/post", postController.CreatePost)

	post := r.Group("/post/:id")
	{
		post.GET("", postController.GetPost)
		post.PUT("", postController.UpdatePost)
		post.DELETE("", postController.DeletePost)

		post.POST("/comments", commentController.CreateComment)
		post.GET("/comments", commentController.GetComments)
	}
}
