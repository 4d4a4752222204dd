package repository

import (
	"testing"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// 단일 커넥션: :memory: DB는 커넥션마다 별개
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.AutoMigrate(db))
	return db
}

func seedBoard(t *testing.T, db *gorm.DB, slug string, loginRequired bool) *domain.Board {
	t.Helper()
	board := &domain.Board{Slug: slug, Name: slug, LoginRequired: loginRequired}
	require.NoError(t, db.Create(board).Error)
	return board
}

func seedUser(t *testing.T, db *gorm.DB, username, nickname string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Password: "hash", Nickname: nickname}
	require.NoError(t, db.Create(user).Error)
	return user
}
