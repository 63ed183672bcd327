package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

func TestFollowingFeedOrderAndScope(t *testing.T) {
	repos := setupRepos(t)
	svc := NewFeedService(repos.post, repos.story)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	// reader(1) 关注 2、3；4 不在关注集合里
	require.NoError(t, repos.follow.Create(ctx, 1, 2))
	require.NoError(t, repos.follow.Create(ctx, 1, 3))

	mk := func(owner int64, title string, minute int) {
		require.NoError(t, repos.post.Create(ctx, &model.Post{
			OwnerID: owner, Title: title, CreatedAt: base.Add(time.Duration(minute) * time.Minute),
		}))
	}
	mk(2, "u2 early", 0)
	mk(3, "u3 late", 10)
	mk(4, "stranger", 20)

	var req pagination.Request
	page, err := svc.FollowingFeed(ctx, 1, req)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalElements)
	// 新帖在前
	require.Equal(t, "u3 late", page.Content[0].Title)
	require.Equal(t, "u2 early", page.Content[1].Title)
}

func TestFollowingFeedPaging(t *testing.T) {
	repos := setupRepos(t)
	svc := NewFeedService(repos.post, repos.story)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	require.NoError(t, repos.follow.Create(ctx, 1, 2))
	for i := 0; i < 15; i++ {
		require.NoError(t, repos.post.Create(ctx, &model.Post{
			OwnerID: 2, Title: "p", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, err := svc.FollowingFeed(ctx, 1, pagination.Request{Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 10)
	require.EqualValues(t, 15, page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
	require.False(t, page.Last)

	page, err = svc.FollowingFeed(ctx, 1, pagination.Request{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 5)
	require.True(t, page.Last)
}

func TestGlobalFeedIncludesEveryone(t *testing.T) {
	repos := setupRepos(t)
	svc := NewFeedService(repos.post, repos.story)
	ctx := context.Background()

	require.NoError(t, repos.post.Create(ctx, &model.Post{OwnerID: 2, Title: "a", CreatedAt: time.Now()}))
	require.NoError(t, repos.post.Create(ctx, &model.Post{OwnerID: 4, Title: "b", CreatedAt: time.Now()}))

	var req pagination.Request
	page, err := svc.GlobalFeed(ctx, req)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalElements)
}

func TestFollowingStoriesSkipExpired(t *testing.T) {
	repos := setupRepos(t)
	svc := NewFeedService(repos.post, repos.story)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repos.follow.Create(ctx, 1, 2))
	require.NoError(t, repos.story.Create(ctx, &model.Story{
		OwnerID: 2, MediaRef: "blob://live", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, repos.story.Create(ctx, &model.Story{
		OwnerID: 2, MediaRef: "blob://dead", CreatedAt: now.Add(-30 * time.Hour), ExpiresAt: now.Add(-6 * time.Hour),
	}))

	var req pagination.Request
	page, err := svc.FollowingStories(ctx, 1, now, req)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.TotalElements)
	require.Equal(t, "blob://live", page.Content[0].MediaRef)
}
