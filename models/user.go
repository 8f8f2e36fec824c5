package models

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email     *string   `json:"email" gorm:"size:120;uniqueIndex"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type CreateUserRequest struct {
	Username string  `json:"username" example:"alice"`
	Email    *string `json:"email" example:"alice@example.com"`
}

// UpdateUserRequest uses pointers so omitted fields keep their stored value.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

type UserResponse struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (u *User) Response() UserResponse {
	return UserResponse{Username: u.Username, Email: u.Email}
}

// NormalizeEmail treats a blank email the same as an absent one so that the
// unique index only ever sees real addresses.
func NormalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
