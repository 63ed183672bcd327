package handler

import (
	"github.com/d60-Lab/social-core/internal/service"
)

// Handler 聚合各业务服务，gin 路由的唯一入口
type Handler struct {
	relService   service.RelationshipService
	storyService service.StoryService
	postService  service.PostService
	feedService  service.FeedService
	engService   service.EngagementService
	pollService  service.PollService
	msgService   service.MessageService
	acctService  service.AccountService
	insights     *service.InsightsCache
}

func New(
	relService service.RelationshipService,
	storyService service.StoryService,
	postService service.PostService,
	feedService service.FeedService,
	engService service.EngagementService,
	pollService service.PollService,
	msgService service.MessageService,
	acctService service.AccountService,
	insights *service.InsightsCache,
) *Handler {
	return &Handler{
		relService:   relService,
		storyService: storyService,
		postService:  postService,
		feedService:  feedService,
		engService:   engService,
		pollService:  pollService,
		msgService:   msgService,
		acctService:  acctService,
		insights:     insights,
	}
}
