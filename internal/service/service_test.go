package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
)

type testRepos struct {
	db     *gorm.DB
	follow repository.FollowRepository
	story  repository.StoryRepository
	post   repository.PostRepository
	eng    repository.EngagementRepository
	poll   repository.PollRepository
	msg    repository.MessageRepository
}

func setupRepos(t *testing.T) *testRepos {
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
	return &testRepos{
		db:     db,
		follow: repository.NewFollowRepository(db),
		story:  repository.NewStoryRepository(db),
		post:   repository.NewPostRepository(db),
		eng:    repository.NewEngagementRepository(db),
		poll:   repository.NewPollRepository(db),
		msg:    repository.NewMessageRepository(db),
	}
}
