package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/social-core/internal/model"
)

// setupTestDB 内存 sqlite，TranslateError 开启以便唯一键冲突可识别
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Follow{},
		&model.Story{},
		&model.Post{},
		&model.Engagement{},
		&model.Poll{},
		&model.PollOption{},
		&model.Message{},
	))
	return db
}
