package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
)

func TestPurgeUserPermissions(t *testing.T) {
	repos := setupRepos(t)
	svc := NewAccountService(repos.follow, repos.story, repos.post, repos.poll, repos.eng, repos.msg)
	ctx := context.Background()

	// 别人不能替你注销
	require.ErrorIs(t, svc.PurgeUser(ctx, 1, identity.Actor{ID: 2}), ErrPurgeForbidden)
	// 自己可以
	require.NoError(t, svc.PurgeUser(ctx, 1, identity.Actor{ID: 1}))
	// 管理员可以
	require.NoError(t, svc.PurgeUser(ctx, 1, identity.Actor{ID: 9, Roles: []identity.Role{identity.RoleAdmin}}))
}

func TestPurgeUserRemovesEverything(t *testing.T) {
	repos := setupRepos(t)
	svc := NewAccountService(repos.follow, repos.story, repos.post, repos.poll, repos.eng, repos.msg)
	ctx := context.Background()
	now := time.Now()

	// u1 的数据
	require.NoError(t, repos.follow.Create(ctx, 1, 2))
	require.NoError(t, repos.follow.Create(ctx, 3, 1))
	require.NoError(t, repos.story.Create(ctx, &model.Story{OwnerID: 1, MediaRef: "blob://s", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repos.msg.Create(ctx, &model.Message{SenderID: 1, RecipientID: 2, Text: "hi", CreatedAt: now}))

	post := &model.Post{OwnerID: 1, Title: "mine", CreatedAt: now}
	require.NoError(t, repos.post.Create(ctx, post))
	poll := &model.Poll{PostID: post.ID, Question: "q?"}
	require.NoError(t, repos.poll.Create(ctx, poll, []string{"a", "b"}))
	require.NoError(t, repos.eng.Record(ctx, model.SubjectPostLike, post.ID, 2, "")) // 别人点的赞也随帖子清掉

	// 别人的数据要留下
	otherPost := &model.Post{OwnerID: 2, Title: "keep", CreatedAt: now}
	require.NoError(t, repos.post.Create(ctx, otherPost))

	require.NoError(t, svc.PurgeUser(ctx, 1, identity.Actor{ID: 1}))

	n, err := repos.follow.CountAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	_, total, err := repos.story.ListAll(ctx, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)

	msgs, err := repos.msg.RecentInvolving(ctx, 1, 10)
	require.NoError(t, err)
	require.Empty(t, msgs)

	_, err = repos.post.Get(ctx, post.ID)
	require.Error(t, err)
	_, err = repos.poll.Get(ctx, poll.ID)
	require.Error(t, err)

	likes, err := repos.eng.Count(ctx, model.SubjectPostLike, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, likes)

	kept, err := repos.post.Get(ctx, otherPost.ID)
	require.NoError(t, err)
	require.Equal(t, "keep", kept.Title)
}
