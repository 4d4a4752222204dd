package repository

import (
	"context"
	"errors"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"gorm.io/gorm"
)

// BoardRepository 게시판 저장소 인터페이스
type BoardRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	IsLoginRequired(ctx context.Context, id uint64) (bool, error)
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository 생성자
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) FindByID(ctx context.Context, id uint64) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	err := r.db.WithContext(ctx).Order("id ASC").Find(&boards).Error
	return boards, err
}

// IsLoginRequired 게시판 로그인 필요 여부
func (r *boardRepository) IsLoginRequired(ctx context.Context, id uint64) (bool, error) {
	board, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return board.LoginRequired, nil
}
