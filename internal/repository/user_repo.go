package repository

import (
	"context"
	"errors"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository 회원 저장소 인터페이스
type UserRepository interface {
	GetID(ctx context.Context, username string) (uint64, error)
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 생성자
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetID username -> id, 없으면 common.ErrUserNotFound
func (r *userRepository) GetID(ctx context.Context, username string) (uint64, error) {
	if username == "" {
		return 0, common.ErrUserNotFound
	}

	var user domain.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("username = ?", username).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, common.ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 회원 생성, username 중복 시 common.ErrUserAlreadyExists
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrUserAlreadyExists
	}
	return err
}
