package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

func newTestEngagement(t *testing.T) (*testRepos, EngagementService, []*model.Post) {
	t.Helper()
	repos := setupRepos(t)
	svc := NewEngagementService(repos.eng, repos.post)
	ctx := context.Background()
	posts := make([]*model.Post, 3)
	for i := range posts {
		posts[i] = &model.Post{OwnerID: 9, Title: "post"}
		require.NoError(t, repos.post.Create(ctx, posts[i]))
	}
	return repos, svc, posts
}

func TestLikeRequiresExistingPost(t *testing.T) {
	_, svc, _ := newTestEngagement(t)
	err := svc.Like(context.Background(), 999, 1)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikeFoldAndCount(t *testing.T) {
	_, svc, posts := newTestEngagement(t)
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, posts[0].ID, 1))
	require.NoError(t, svc.Like(ctx, posts[0].ID, 1)) // 重复点赞 no-op
	require.NoError(t, svc.Like(ctx, posts[0].ID, 2))

	n, err := svc.LikeCount(ctx, posts[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	liked, err := svc.IsLiked(ctx, posts[0].ID, 1)
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, svc.Unlike(ctx, posts[0].ID, 1))
	require.NoError(t, svc.Unlike(ctx, posts[0].ID, 1)) // 幂等

	n, err = svc.LikeCount(ctx, posts[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestBookmarksRoundTrip(t *testing.T) {
	_, svc, posts := newTestEngagement(t)
	ctx := context.Background()

	require.NoError(t, svc.Bookmark(ctx, posts[0].ID, 1))
	require.NoError(t, svc.Bookmark(ctx, posts[0].ID, 1)) // 重复收藏一条记录
	require.NoError(t, svc.Bookmark(ctx, posts[2].ID, 1))

	var req pagination.Request
	page, err := svc.MyBookmarks(ctx, 1, req)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalElements)
	got := []int64{page.Content[0].ID, page.Content[1].ID}
	require.ElementsMatch(t, []int64{posts[0].ID, posts[2].ID}, got)

	require.NoError(t, svc.RemoveBookmark(ctx, posts[0].ID, 1))
	page, err = svc.MyBookmarks(ctx, 1, req)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.TotalElements)
	require.Equal(t, posts[2].ID, page.Content[0].ID)
}

func TestPostDeleteCascadesEngagements(t *testing.T) {
	repos, svc, posts := newTestEngagement(t)
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, posts[0].ID, 1))
	require.NoError(t, svc.Bookmark(ctx, posts[0].ID, 1))

	postSvc := NewPostService(repos.post, repos.poll, repos.eng)
	require.NoError(t, postSvc.Delete(ctx, posts[0].ID, identity.Actor{ID: 9}))

	n, err := svc.LikeCount(ctx, posts[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	var req pagination.Request
	page, err := svc.MyBookmarks(ctx, 1, req)
	require.NoError(t, err)
	require.EqualValues(t, 0, page.TotalElements)
}
