package migration

import (
	"testing"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestRun_SeedsBoardsOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var boards []domain.Board
	require.NoError(t, db.Order("id ASC").Find(&boards).Error)
	require.Len(t, boards, 3)
	assert.Equal(t, "free", boards[0].Slug)
	assert.False(t, boards[0].LoginRequired)
	assert.Equal(t, "members", boards[2].Slug)
	assert.True(t, boards[2].LoginRequired)

	for _, m := range []interface{}{&domain.User{}, &domain.Post{}, &domain.Image{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
}
