package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/logger"
)

// Metric names exposed by the insights cache.
const (
	MetricActiveStories   = "active_stories"
	MetricTotalPosts      = "total_posts"
	MetricTotalFollows    = "total_follows"
	MetricMessages24h     = "messages_24h"
	MetricMostViewedStory = "most_viewed_story"
)

var insightMetrics = []string{
	MetricActiveStories,
	MetricTotalPosts,
	MetricTotalFollows,
	MetricMessages24h,
	MetricMostViewedStory,
}

// InsightsCache is a process-wide read-through cache for admin metrics,
// keyed by metric name. It starts empty, populates on first read or on
// the refresh timer, and replaces values atomically via a pipeline —
// readers never observe a partially updated set.
type InsightsCache struct {
	cache      *redis.Client
	storyRepo  repository.StoryRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	msgRepo    repository.MessageRepository
	ttl        time.Duration
	interval   time.Duration
	now        func() time.Time
}

func NewInsightsCache(
	cache *redis.Client,
	storyRepo repository.StoryRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	msgRepo repository.MessageRepository,
	ttl, refreshInterval time.Duration,
) *InsightsCache {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if refreshInterval <= 0 {
		refreshInterval = time.Hour
	}
	return &InsightsCache{
		cache:      cache,
		storyRepo:  storyRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		msgRepo:    msgRepo,
		ttl:        ttl,
		interval:   refreshInterval,
		now:        time.Now,
	}
}

func insightKey(metric string) string { return "insights:" + metric }

// Start launches the periodic refresh loop; returns a stop func.
func (c *InsightsCache) Start() func(context.Context) error {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if err := c.Refresh(context.Background()); err != nil {
					logger.Error("insights refresh failed", zap.Error(err))
				}
			}
		}
	}()
	return func(ctx context.Context) error { close(stop); return nil }
}

// Refresh recomputes every metric from the primary store and replaces
// the cached set in one pipeline.
func (c *InsightsCache) Refresh(ctx context.Context) error {
	now := c.now()

	activeStories, err := c.storyRepo.CountActive(ctx, now)
	if err != nil {
		return err
	}
	totalPosts, err := c.postRepo.Count(ctx)
	if err != nil {
		return err
	}
	totalFollows, err := c.followRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	messages24h, err := c.msgRepo.CountSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return err
	}
	mostViewed := "no data"
	if s, err := c.storyRepo.MostViewed(ctx); err != nil {
		return err
	} else if s != nil {
		mostViewed = fmt.Sprintf("story %d (%d views)", s.ID, s.ViewCount)
	}

	values := map[string]string{
		MetricActiveStories:   strconv.FormatInt(activeStories, 10),
		MetricTotalPosts:      strconv.FormatInt(totalPosts, 10),
		MetricTotalFollows:    strconv.FormatInt(totalFollows, 10),
		MetricMessages24h:     strconv.FormatInt(messages24h, 10),
		MetricMostViewedStory: mostViewed,
	}

	pipe := c.cache.Pipeline()
	for metric, val := range values {
		pipe.Set(ctx, insightKey(metric), val, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	logger.Info("insights refreshed", zap.Int("metrics", len(values)))
	return nil
}

// Get reads one metric through the cache, refreshing the whole set on miss.
func (c *InsightsCache) Get(ctx context.Context, metric string) (string, error) {
	val, err := c.cache.Get(ctx, insightKey(metric)).Result()
	if err == nil {
		return val, nil
	}
	if err != redis.Nil {
		return "", err
	}
	if err := c.Refresh(ctx); err != nil {
		return "", err
	}
	return c.cache.Get(ctx, insightKey(metric)).Result()
}

// GetAll returns every metric, populating the cache if empty.
func (c *InsightsCache) GetAll(ctx context.Context) (map[string]string, error) {
	keys := make([]string, len(insightMetrics))
	for i, m := range insightMetrics {
		keys[i] = insightKey(m)
	}
	vals, err := c.cache.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	missing := false
	for _, v := range vals {
		if v == nil {
			missing = true
			break
		}
	}
	if missing {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
		if vals, err = c.cache.MGet(ctx, keys...).Result(); err != nil {
			return nil, err
		}
	}
	out := make(map[string]string, len(insightMetrics))
	for i, m := range insightMetrics {
		if s, ok := vals[i].(string); ok {
			out[m] = s
		}
	}
	return out, nil
}
