package controllers

import (
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(db),
	}
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param comment body models.CreateCommentRequest true "New comment"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "Post")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := cc.commentService.CreateComment(c.Request.Context(), postID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "Comment added successfully!")
}

// GetComments godoc
// @Summary List a post's comments
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.CommentResponse
// @Failure 404 {object} models.MessageResponse
// @Router /post/{id}/comments [get]
func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := pathID(c, "Post")
	if !ok {
		return
	}

	comments, err := cc.commentService.GetPostComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, comments[i].Response())
	}
	c.JSON(http.StatusOK, out)
}
