package controllers

import (
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
	}
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "New post"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := pc.postService.CreatePost(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "Blog post created successfully!")
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := pathID(c, "Post")
	if !ok {
		return
	}

	post, err := pc.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post.Response())
}

// UpdatePost godoc
// @Summary Update a post
// @Description user_id must match the post's owner.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body models.UpdatePostRequest true "Acting user and fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 403 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "Post")
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := pc.postService.UpdatePost(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Post updated successfully!")
}

// DeletePost godoc
// @Summary Delete a post and its comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "Post")
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Post deleted successfully!")
}
