package repository

import (
	"context"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"gorm.io/gorm"
)

// ImageRepository 첨부 이미지 조회 (업로드는 별도 서비스 담당)
type ImageRepository interface {
	GetIDs(ctx context.Context, postID uint64) ([]uint64, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository 생성자
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// GetIDs 게시글에 첨부된 이미지 ID 목록 (오름차순)
func (r *imageRepository) GetIDs(ctx context.Context, postID uint64) ([]uint64, error) {
	ids := []uint64{}
	err := r.db.WithContext(ctx).
		Model(&domain.Image{}).
		Where("post_id = ?", postID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
