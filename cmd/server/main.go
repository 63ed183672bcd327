package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/config"
	"github.com/d60-Lab/social-core/internal/api/handler"
	"github.com/d60-Lab/social-core/internal/api/router"
	"github.com/d60-Lab/social-core/internal/blob"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/notify"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/internal/service"
	"github.com/d60-Lab/social-core/pkg/database"
	"github.com/d60-Lab/social-core/pkg/logger"
	"github.com/d60-Lab/social-core/pkg/tracing"
)

// @title social-core API
// @version 1.0
// @description 关注关系、限时动态、信息流、互动与私信服务
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer logger.Sync()
	log := logger.L()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			log.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, "social-core", cfg.Trace.Endpoint)
	if err != nil {
		log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.Follow{},
		&model.Story{},
		&model.Post{},
		&model.Engagement{},
		&model.Poll{},
		&model.PollOption{},
		&model.Message{},
	); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis ping", zap.Error(err))
	}

	followRepo := repository.NewFollowRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	engRepo := repository.NewEngagementRepository(db)
	pollRepo := repository.NewPollRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	dispatcher := notify.NewDispatcher(notify.NopNotifier{}, 10000)
	stopDispatcher := dispatcher.Start(4)

	relService := service.NewRelationshipService(followRepo, dispatcher)
	storyService := service.NewStoryService(storyRepo, blob.Discard{})
	postService := service.NewPostService(postRepo, pollRepo, engRepo)
	feedService := service.NewFeedService(postRepo, storyRepo)
	engService := service.NewEngagementService(engRepo, postRepo)
	pollService := service.NewPollService(pollRepo, postRepo)
	msgService := service.NewMessageService(msgRepo, dispatcher)
	acctService := service.NewAccountService(followRepo, storyRepo, postRepo, pollRepo, engRepo, msgRepo)
	insights := service.NewInsightsCache(rdb, storyRepo, postRepo, followRepo, msgRepo,
		cfg.Insights.TTL, cfg.Insights.RefreshInterval)

	reaper := service.NewReaper(storyRepo, cfg.Reaper.Interval)
	stopReaper := reaper.Start()
	stopInsights := insights.Start()

	h := handler.New(relService, storyService, postService, feedService,
		engService, pollService, msgService, acctService, insights)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.New(cfg, h),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", cfg.Server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	stopReaper(shutdownCtx)
	stopInsights(shutdownCtx)
	stopDispatcher(shutdownCtx)
	rdb.Close()

	log.Info("server exited")
}
