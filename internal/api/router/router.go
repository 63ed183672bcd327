package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/social-core/config"
	_ "github.com/d60-Lab/social-core/docs"
	"github.com/d60-Lab/social-core/internal/api/handler"
	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/pkg/logger"
)

// New 装配 gin 引擎：中间件、路由分组、swagger
func New(cfg *config.Config, h *handler.Handler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("social-core"))
	r.Use(middleware.RateLimit(rate.Limit(100), 200))
	r.Use(middleware.Identity(cfg.JWT.Secret))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// 匿名可读
	v1.GET("/posts/:post_id", h.GetPost)
	v1.GET("/posts/:post_id/like", h.LikeStatus)
	v1.GET("/posts/:post_id/poll", h.GetPoll)
	v1.GET("/stories/:story_id", h.ViewStory)
	v1.GET("/feed/global", h.GlobalFeed)
	v1.GET("/feed/global/stories", h.GlobalStories)
	v1.GET("/users/:user_id/follow", h.FollowStats)
	v1.GET("/users/:user_id/following", h.ListFollowing)

	// 登录后可用
	auth := v1.Group("", middleware.RequireAuth())
	{
		auth.POST("/users/:user_id/follow", h.Follow)
		auth.DELETE("/users/:user_id/follow", h.Unfollow)

		auth.POST("/stories", h.CreateStory)
		auth.DELETE("/stories/:story_id", h.DeleteStory)
		auth.GET("/stories", h.MyStories)

		auth.POST("/posts", h.CreatePost)
		auth.DELETE("/posts/:post_id", h.DeletePost)

		auth.GET("/feed", h.FollowingFeed)
		auth.GET("/feed/stories", h.FollowingStories)

		auth.POST("/posts/:post_id/like", h.Like)
		auth.DELETE("/posts/:post_id/like", h.Unlike)
		auth.POST("/posts/:post_id/bookmark", h.Bookmark)
		auth.DELETE("/posts/:post_id/bookmark", h.RemoveBookmark)
		auth.GET("/bookmarks", h.MyBookmarks)

		auth.POST("/posts/:post_id/poll", h.CreatePoll)
		auth.DELETE("/posts/:post_id/poll", h.DeletePoll)
		auth.POST("/polls/:poll_id/vote", h.Vote)

		auth.GET("/chats", h.Dialogs)
		auth.GET("/chats/:peer_id/messages", h.Conversation)
		auth.POST("/chats/:peer_id/messages", h.SendMessage)
		auth.GET("/chats/:peer_id/messages/new", h.NewMessages)
		auth.POST("/chats/:peer_id/read", h.MarkRead)
	}

	// 管理端
	admin := v1.Group("/admin", middleware.RequireAuth(), middleware.RequireRole(identity.RoleAdmin))
	{
		admin.GET("/stories", h.AllStories)
		admin.GET("/insights", h.Insights)
		admin.DELETE("/users/:user_id", h.PurgeUser)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.L().Info("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
