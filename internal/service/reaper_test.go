package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/model"
)

func TestSweepOnce(t *testing.T) {
	repos := setupRepos(t)
	now := time.Now()
	ctx := context.Background()

	mk := func(ref string, expires time.Time) {
		require.NoError(t, repos.story.Create(ctx, &model.Story{
			OwnerID: 1, MediaRef: ref, CreatedAt: now.Add(-30 * time.Hour), ExpiresAt: expires,
		}))
	}
	mk("blob://dead1", now.Add(-2*time.Hour))
	mk("blob://dead2", now.Add(-time.Minute))
	mk("blob://live", now.Add(time.Hour))

	r := NewReaper(repos.story, time.Minute)
	r.now = func() time.Time { return now }

	n, err := r.SweepOnce(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// 第二轮无事可做
	n, err = r.SweepOnce(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	remaining, total, err := repos.story.ListAll(ctx, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "blob://live", remaining[0].MediaRef)
}

func TestReaperStartStop(t *testing.T) {
	repos := setupRepos(t)
	r := NewReaper(repos.story, 10*time.Millisecond)
	stop := r.Start()
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, stop(context.Background()))
}

func TestReaperDefaultInterval(t *testing.T) {
	repos := setupRepos(t)
	r := NewReaper(repos.story, 0)
	require.Equal(t, 30*time.Minute, r.interval)
}
