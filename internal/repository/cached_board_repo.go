package repository

import (
	"context"
	"errors"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/pkg/cache"
	"github.com/boardflab/boardflab-backend/pkg/logger"
)

// CachedBoardRepository 로그인 필요 여부를 Redis에 캐시하는 게시판 저장소
type CachedBoardRepository struct {
	repo  BoardRepository
	cache cache.Service
}

// NewCachedBoardRepository 캐시 적용 게시판 저장소 생성
// 캐시를 사용할 수 없으면 원본 저장소를 그대로 반환
func NewCachedBoardRepository(repo BoardRepository, cacheService cache.Service) BoardRepository {
	if cacheService == nil || !cacheService.IsAvailable() {
		return repo
	}
	return &CachedBoardRepository{repo: repo, cache: cacheService}
}

func (r *CachedBoardRepository) FindByID(ctx context.Context, id uint64) (*domain.Board, error) {
	return r.repo.FindByID(ctx, id)
}

func (r *CachedBoardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	return r.repo.FindAll(ctx)
}

// IsLoginRequired 캐시 우선 조회, 실패 시 DB 조회 후 캐시 저장
func (r *CachedBoardRepository) IsLoginRequired(ctx context.Context, id uint64) (bool, error) {
	var loginRequired bool
	err := r.cache.GetBoard(ctx, id, &loginRequired)
	if err == nil {
		return loginRequired, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("board cache read failed: board_id=%d, err=%v", id, err)
	}

	loginRequired, err = r.repo.IsLoginRequired(ctx, id)
	if err != nil {
		return false, err
	}

	if err := r.cache.SetBoard(ctx, id, loginRequired); err != nil {
		logger.Warn("board cache write failed: board_id=%d, err=%v", id, err)
	}
	return loginRequired, nil
}
