package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/logger"
)

// Reaper 定时清理过期 story。失败只记日志，下个 tick 重试，
// 永远不影响启动和请求路径。
type Reaper struct {
	storyRepo repository.StoryRepository
	interval  time.Duration
	now       func() time.Time
}

func NewReaper(storyRepo repository.StoryRepository, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Reaper{storyRepo: storyRepo, interval: interval, now: time.Now}
}

// Start 启动后台清扫循环；返回停止函数。
func (r *Reaper) Start() func(context.Context) error {
	stop := make(chan struct{})
	go r.loop(stop)
	return func(ctx context.Context) error { close(stop); return nil }
}

func (r *Reaper) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if _, err := r.SweepOnce(context.Background()); err != nil {
				logger.Error("story sweep failed, will retry next tick", zap.Error(err))
			}
		}
	}
}

// SweepOnce 单次清扫：一条批量 DELETE，返回清掉的行数
func (r *Reaper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := r.storyRepo.DeleteExpired(ctx, r.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("expired stories reaped", zap.Int64("count", n))
	}
	return n, nil
}
