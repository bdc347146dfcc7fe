package repository

import (
	"context"

	"gorm.io/gorm"

	"fleamart/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByIDAndUsername(ctx context.Context, id uint, username string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDAndUsername matches on both columns so that a token whose identity
// no longer lines up with the stored account resolves to nothing.
func (r *userRepository) FindByIDAndUsername(ctx context.Context, id uint, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ? AND username = ?", id, username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
