package service

import (
	"context"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/repository"
)

// BoardService 게시판 목록 조회
type BoardService interface {
	ListBoards(ctx context.Context) ([]*domain.Board, error)
}

type boardService struct {
	boards repository.BoardRepository
}

// NewBoardService creates a new BoardService
func NewBoardService(boards repository.BoardRepository) BoardService {
	return &boardService{boards: boards}
}

func (s *boardService) ListBoards(ctx context.Context) ([]*domain.Board, error) {
	return s.boards.FindAll(ctx)
}
