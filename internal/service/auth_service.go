package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/repository"
	"github.com/boardflab/boardflab-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	Me(ctx context.Context, username string) (*domain.UserResponse, error)
}

type authService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		users:      users,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, common.ErrInvalidInput
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username: req.Username,
		Password: string(hashed),
		Nickname: strings.TrimSpace(req.Nickname),
	}
	// 중복 username은 저장소에서 ErrUserAlreadyExists로 변환
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Login authenticates user and returns an access token
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	// 1. Find user
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, common.ErrUserNotFound) {
		return nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// 2. Verify password
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	// 3. Generate JWT
	accessToken, err := s.jwtManager.GenerateAccessToken(user.Username, user.Nickname)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &domain.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   s.jwtManager.ExpiresIn(),
		User:        user.ToResponse(),
	}, nil
}

// Me returns the profile of the authenticated user
func (s *authService) Me(ctx context.Context, username string) (*domain.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}
