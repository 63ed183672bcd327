package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/model"
)

func createTestPoll(t *testing.T, repo PollRepository) (*model.Poll, []*model.PollOption) {
	t.Helper()
	ctx := context.Background()
	poll := &model.Poll{PostID: 1, Question: "tabs or spaces?"}
	require.NoError(t, repo.Create(ctx, poll, []string{"tabs", "spaces"}))
	opts, err := repo.ListOptions(ctx, poll.ID)
	require.NoError(t, err)
	require.Len(t, opts, 2)
	return poll, opts
}

func TestPollVote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()
	poll, opts := createTestPoll(t, repo)

	require.NoError(t, repo.Vote(ctx, poll.ID, opts[0].ID, 7))

	got, err := repo.GetOption(ctx, opts[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.Votes)

	voted, err := repo.HasVoted(ctx, poll.ID, 7)
	require.NoError(t, err)
	require.True(t, voted)
}

func TestPollDuplicateVoteRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()
	poll, opts := createTestPoll(t, repo)

	require.NoError(t, repo.Vote(ctx, poll.ID, opts[0].ID, 7))
	// 第二票硬冲突，换选项也不行
	err := repo.Vote(ctx, poll.ID, opts[1].ID, 7)
	require.ErrorIs(t, err, ErrDuplicateVote)

	// 回滚保证计票没有被重复累加
	a, err := repo.GetOption(ctx, opts[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, a.Votes)
	b, err := repo.GetOption(ctx, opts[1].ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, b.Votes)

	// 不同用户不受影响
	require.NoError(t, repo.Vote(ctx, poll.ID, opts[1].ID, 8))
}

func TestPollDeleteWithDependents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPollRepository(db)
	ctx := context.Background()
	poll, opts := createTestPoll(t, repo)
	require.NoError(t, repo.Vote(ctx, poll.ID, opts[0].ID, 7))

	require.NoError(t, repo.DeleteWithDependents(ctx, poll.ID))

	_, err := repo.Get(ctx, poll.ID)
	require.Error(t, err)
	remaining, err := repo.ListOptions(ctx, poll.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	var votes int64
	require.NoError(t, db.Model(&model.Engagement{}).
		Where("subject_type = ?", model.SubjectPollVote).Count(&votes).Error)
	require.EqualValues(t, 0, votes)
}
