package migration

import (
	"github.com/boardflab/boardflab-backend/internal/domain"
	"gorm.io/gorm"
)

// Models every table managed by this service
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Board{},
		&domain.Post{},
		&domain.Image{},
	}
}

// AutoMigrate 테이블 없으면 생성, 있으면 누락된 컬럼/인덱스만 추가
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Run executes AutoMigrate and seeds default boards if the boards table is empty.
func Run(db *gorm.DB) error {
	if err := AutoMigrate(db); err != nil {
		return err
	}

	// Seed - boards 테이블이 비어있을 때만 기본 게시판 삽입
	var count int64
	if err := db.Model(&domain.Board{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return seedBoards(db)
	}

	return nil
}

func seedBoards(db *gorm.DB) error {
	boards := []domain.Board{
		{Slug: "free", Name: "자유게시판", LoginRequired: false},
		{Slug: "qna", Name: "질문과 답변", LoginRequired: false},
		{Slug: "members", Name: "회원 전용", LoginRequired: true},
	}
	return db.Create(&boards).Error
}
