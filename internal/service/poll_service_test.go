package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
)

func newTestPoll(t *testing.T) (*testRepos, PollService, *model.Post) {
	t.Helper()
	repos := setupRepos(t)
	svc := NewPollService(repos.poll, repos.post)
	post := &model.Post{OwnerID: 1, Title: "question time"}
	require.NoError(t, repos.post.Create(context.Background(), post))
	return repos, svc, post
}

func TestPollCreateOwnerOnly(t *testing.T) {
	_, svc, post := newTestPoll(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, post.ID, identity.Actor{ID: 2}, "q?", []string{"a", "b"})
	require.ErrorIs(t, err, ErrNotPostOwner)

	_, err = svc.Create(ctx, post.ID, identity.Actor{ID: 1}, "q?", []string{"only one"})
	require.Error(t, err)

	view, err := svc.Create(ctx, post.ID, identity.Actor{ID: 1}, "q?", []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, post.ID, view.PostID)
	require.Len(t, view.Options, 3)
	require.False(t, view.Voted)
}

func TestPollVoteFlow(t *testing.T) {
	_, svc, post := newTestPoll(t)
	ctx := context.Background()
	owner := identity.Actor{ID: 1}
	view, err := svc.Create(ctx, post.ID, owner, "q?", []string{"a", "b"})
	require.NoError(t, err)

	voter := identity.Actor{ID: 2}
	after, err := svc.Vote(ctx, view.PollID, view.Options[0].ID, voter)
	require.NoError(t, err)
	require.True(t, after.Voted)
	require.EqualValues(t, 1, after.Options[0].Votes)

	// 第二票是硬冲突，计票不变
	_, err = svc.Vote(ctx, view.PollID, view.Options[1].ID, voter)
	require.ErrorIs(t, err, ErrAlreadyVoted)

	got, err := svc.Get(ctx, post.ID, voter)
	require.NoError(t, err)
	require.True(t, got.Voted)
	require.EqualValues(t, 1, got.Options[0].Votes)
	require.EqualValues(t, 0, got.Options[1].Votes)

	// 匿名视角 voted 恒 false
	anon, err := svc.Get(ctx, post.ID, identity.Anonymous)
	require.NoError(t, err)
	require.False(t, anon.Voted)
}

func TestPollVoteWrongOption(t *testing.T) {
	repos, svc, post := newTestPoll(t)
	ctx := context.Background()
	view, err := svc.Create(ctx, post.ID, identity.Actor{ID: 1}, "q?", []string{"a", "b"})
	require.NoError(t, err)

	// 另一个 poll 的选项不能用
	otherPost := &model.Post{OwnerID: 1, Title: "other"}
	require.NoError(t, repos.post.Create(ctx, otherPost))
	other, err := svc.Create(ctx, otherPost.ID, identity.Actor{ID: 1}, "q2?", []string{"x", "y"})
	require.NoError(t, err)

	_, err = svc.Vote(ctx, view.PollID, other.Options[0].ID, identity.Actor{ID: 2})
	require.ErrorIs(t, err, ErrOptionNotFound)

	_, err = svc.Vote(ctx, 999, view.Options[0].ID, identity.Actor{ID: 2})
	require.ErrorIs(t, err, ErrPollNotFound)
}

func TestPollDeletePermissions(t *testing.T) {
	_, svc, post := newTestPoll(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, post.ID, identity.Actor{ID: 1}, "q?", []string{"a", "b"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, post.ID, identity.Actor{ID: 2}), ErrNotPostOwner)

	admin := identity.Actor{ID: 3, Roles: []identity.Role{identity.RoleAdmin}}
	require.NoError(t, svc.Delete(ctx, post.ID, admin))

	_, err = svc.Get(ctx, post.ID, identity.Anonymous)
	require.ErrorIs(t, err, ErrPollNotFound)
}
