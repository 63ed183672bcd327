package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/model"
)

func TestEngagementRecordIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, model.SubjectPostBookmark, 10, 1, ""))
	// 重复收藏折叠为成功
	require.NoError(t, repo.Record(ctx, model.SubjectPostBookmark, 10, 1, ""))

	cnt, err := repo.Count(ctx, model.SubjectPostBookmark, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)

	// 类型维度隔离：同一对象的点赞互不影响
	require.NoError(t, repo.Record(ctx, model.SubjectPostLike, 10, 1, ""))
	cnt, err = repo.Count(ctx, model.SubjectPostLike, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
}

func TestEngagementRemoveIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, model.SubjectPostLike, 10, 1, ""))
	require.NoError(t, repo.Remove(ctx, model.SubjectPostLike, 10, 1))
	require.NoError(t, repo.Remove(ctx, model.SubjectPostLike, 10, 1))

	ok, err := repo.Exists(ctx, model.SubjectPostLike, 10, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEngagementListSubjectIDsByActor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	for _, id := range []int64{10, 20, 30} {
		require.NoError(t, repo.Record(ctx, model.SubjectPostBookmark, id, 1, ""))
	}
	// 别人的收藏不掺进来
	require.NoError(t, repo.Record(ctx, model.SubjectPostBookmark, 99, 2, ""))

	ids, total, err := repo.ListSubjectIDsByActor(ctx, model.SubjectPostBookmark, 1, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.ElementsMatch(t, []int64{10, 20, 30}, ids)
}

func TestEngagementRemoveBySubject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, model.SubjectPostLike, 10, 1, ""))
	require.NoError(t, repo.Record(ctx, model.SubjectPostLike, 10, 2, ""))
	require.NoError(t, repo.Record(ctx, model.SubjectPostLike, 11, 1, ""))

	require.NoError(t, repo.RemoveBySubject(ctx, model.SubjectPostLike, 10))

	cnt, err := repo.Count(ctx, model.SubjectPostLike, 10)
	require.NoError(t, err)
	require.EqualValues(t, 0, cnt)
	cnt, err = repo.Count(ctx, model.SubjectPostLike, 11)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
}
