package services

import (
	"context"
	"strings"
	"time"

	"blogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *PostService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" || req.UserID == 0 {
		return nil, models.NewValidationError("Incomplete data sent")
	}

	post := &models.Post{
		Title:      title,
		Content:    content,
		UserID:     req.UserID,
		DatePosted: s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, req.UserID).Error; err != nil {
			return lookupError(err, "user not found!")
		}
		return writeError(tx.Omit(clause.Associations).Create(post).Error, "Post already exists")
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, lookupError(err, "Post not found")
	}
	return &post, nil
}

// UpdatePost applies a partial update after checking that req.UserID owns
// the post.
func (s *PostService) UpdatePost(ctx context.Context, id uint, req *models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return lookupError(err, "Post not found")
		}

		if req.UserID == nil {
			return models.NewValidationError("user_id is required")
		}
		if *req.UserID != post.UserID {
			return models.NewForbiddenError("You can only update your own posts!")
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return models.NewValidationError("Title cannot be empty")
			}
			post.Title = title
		}
		if req.Content != nil {
			content := strings.TrimSpace(*req.Content)
			if content == "" {
				return models.NewValidationError("Content cannot be empty")
			}
			post.Content = content
		}

		return tx.Select("title", "content", "updated_at").Updates(&post).Error
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes the post and the comments attached to it.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return lookupError(err, "Post not found")
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
