package services

import (
	"context"
	"strings"

	"blogapi/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}

	user := &models.User{
		Username: username,
		Email:    models.NormalizeEmail(req.Email),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, 0, user.Username, user.Email); err != nil {
			return err
		}
		return writeError(tx.Create(user).Error, "User already exists")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, lookupError(err, "User not found")
	}
	return &user, nil
}

// UpdateUser overwrites only the fields present in req. A new username or
// email must not belong to another user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req *models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return lookupError(err, "User not found")
		}

		if req.Username != nil {
			username := strings.TrimSpace(*req.Username)
			if username == "" {
				return models.NewValidationError("Username cannot be empty")
			}
			user.Username = username
		}
		if req.Email != nil {
			user.Email = models.NormalizeEmail(req.Email)
		}

		if err := ensureUnique(tx, user.ID, user.Username, user.Email); err != nil {
			return err
		}
		return writeError(tx.Select("username", "email", "updated_at").Updates(&user).Error, "User already exists")
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes the user together with their posts and every comment
// that would otherwise point at a deleted post or user.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return lookupError(err, "User not found!")
		}

		ownedPosts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("user_id = ? OR post_id IN (?)", id, ownedPosts).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}

func ensureUnique(tx *gorm.DB, selfID uint, username string, email *string) error {
	taken := func(column string, value any) (bool, error) {
		var count int64
		err := tx.Model(&models.User{}).
			Where(column+" = ? AND id <> ?", value, selfID).
			Count(&count).Error
		return count > 0, err
	}

	if email != nil {
		exists, err := taken("email", *email)
		if err != nil {
			return err
		}
		if exists {
			return models.NewConflictError("Email already exists")
		}
	}

	exists, err := taken("username", username)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("Username already exists")
	}
	return nil
}
