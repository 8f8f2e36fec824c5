package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      Post      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"-"`
}

type CreateCommentRequest struct {
	Content string `json:"content" example:"nice"`
	UserID  uint   `json:"user_id" example:"1"`
}

type CommentResponse struct {
	Content string `json:"content"`
	UserID  uint   `json:"user_id"`
}

func (c *Comment) Response() CommentResponse {
	return CommentResponse{Content: c.Content, UserID: c.UserID}
}

type MessageResponse struct {
	Message string `json:"message"`
}
