package models

import (
	"time"
)

type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	DatePosted time.Time `json:"date_posted" gorm:"not null"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UpdatedAt  time.Time `json:"-"`
}

type CreatePostRequest struct {
	Title   string `json:"title" example:"Hello"`
	Content string `json:"content" example:"First post"`
	UserID  uint   `json:"user_id" example:"1"`
}

// UpdatePostRequest carries the acting user for the ownership check;
// nil Title or Content leaves the stored value untouched.
type UpdatePostRequest struct {
	UserID  *uint   `json:"user_id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PostResponse struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}

func (p *Post) Response() PostResponse {
	return PostResponse{Title: p.Title, Content: p.Content, DatePosted: p.DatePosted}
}
