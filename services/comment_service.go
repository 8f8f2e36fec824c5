package services

import (
	"context"
	"strings"

	"blogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment checks the post, then the author, then the content, in that
// order, before writing anything.
func (s *CommentService) CreateComment(ctx context.Context, postID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		Content: strings.TrimSpace(req.Content),
		PostID:  postID,
		UserID:  req.UserID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := postExists(tx, postID); err != nil {
			return err
		}
		if req.UserID == 0 {
			return models.NewNotFoundError("User not found")
		}
		if err := tx.Select("id").First(&models.User{}, req.UserID).Error; err != nil {
			return lookupError(err, "User not found")
		}
		if comment.Content == "" {
			return models.NewValidationError("Content is required")
		}
		return writeError(tx.Omit(clause.Associations).Create(comment).Error, "Comment already exists")
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) GetPostComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := postExists(tx, postID); err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func postExists(tx *gorm.DB, postID uint) error {
	if err := tx.Select("id").First(&models.Post{}, postID).Error; err != nil {
		return lookupError(err, "Post not found")
	}
	return nil
}
