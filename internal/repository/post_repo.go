package repository

import (
	"context"
	"errors"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository 게시글 저장소 인터페이스
type PostRepository interface {
	// 조회
	FindByID(ctx context.Context, id uint64) (*domain.Post, error)
	ListByBoard(ctx context.Context, boardID uint64, limit, offset int) ([]*domain.PostSummary, error)
	IsLoginRequired(ctx context.Context, id uint64) (bool, error)

	// 작성/수정/삭제
	Create(ctx context.Context, post *domain.Post) error
	UpdateContent(ctx context.Context, id uint64, content string) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)

	// 통계
	IncrementViews(ctx context.Context, id uint64) (uint64, error)
}

// postRepository GORM 구현체
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 생성자
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByID 게시글 상세 조회
func (r *postRepository) FindByID(ctx context.Context, id uint64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByBoard 게시판별 게시글 목록 (최신순)
// 작성자명: 회원이면 users.nickname, 비회원이면 non_mem_nick
func (r *postRepository) ListByBoard(ctx context.Context, boardID uint64, limit, offset int) ([]*domain.PostSummary, error) {
	var rows []*domain.PostSummary
	err := r.db.WithContext(ctx).
		Table("posts AS p").
		Select("p.id, p.title, COALESCE(u.nickname, p.non_mem_nick, '') AS writer, p.views, p.updated_at").
		Joins("LEFT JOIN users AS u ON u.id = p.writer_user_id").
		Where("p.board_id = ?", boardID).
		Order("p.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*domain.PostSummary{}
	}
	return rows, nil
}

// loginRequiredRow posts -> boards 조인 결과
type loginRequiredRow struct {
	PostID        uint64  `gorm:"column:post_id"`
	BoardID       *uint64 `gorm:"column:board_id"`
	LoginRequired *bool   `gorm:"column:login_required"`
}

// IsLoginRequired 게시글이 속한 게시판의 로그인 필요 여부
func (r *postRepository) IsLoginRequired(ctx context.Context, id uint64) (bool, error) {
	var row loginRequiredRow
	err := r.db.WithContext(ctx).
		Table("posts AS p").
		Select("p.id AS post_id, b.id AS board_id, b.login_required").
		Joins("LEFT JOIN boards AS b ON b.id = p.board_id").
		Where("p.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, common.ErrPostNotFound
	}
	if err != nil {
		return false, err
	}

	// 게시판이 삭제된 경우
	if row.BoardID == nil || row.LoginRequired == nil {
		return false, common.ErrBoardNotFound
	}
	return *row.LoginRequired, nil
}

// Create 게시글 작성 (ID는 post.ID에 채워짐)
func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	post.Views = 0
	return r.db.WithContext(ctx).Create(post).Error
}

// UpdateContent 본문만 수정, 영향받은 행 수 반환
func (r *postRepository) UpdateContent(ctx context.Context, id uint64, content string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		Update("content", content)
	return result.RowsAffected, result.Error
}

// Delete 게시글 삭제 (hard delete), 영향받은 행 수 반환
func (r *postRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Post{})
	return result.RowsAffected, result.Error
}

// IncrementViews 조회수 증가 후 증가된 값 반환
// UPDATE와 SELECT를 하나의 트랜잭션으로 묶어 읽기/쓰기 사이의 틈이 없음
func (r *postRepository) IncrementViews(ctx context.Context, id uint64) (uint64, error) {
	var views uint64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Post{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrPostNotFound
		}

		return tx.Model(&domain.Post{}).
			Select("views").
			Where("id = ?", id).
			Row().
			Scan(&views)
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}
