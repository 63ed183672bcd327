package service

import (
	"context"
	"time"

	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

// FeedService 拉模式时间线：每次读都走关注集合过滤，
// 不维护物化收件箱。页与页之间不保证快照一致 ——
// reaper 并发清理可能让上一页见过的 story 在下一页消失。
type FeedService interface {
	FollowingFeed(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[*model.Post], error)
	FollowingStories(ctx context.Context, userID int64, now time.Time, req pagination.Request) (pagination.Page[*model.Story], error)
	GlobalFeed(ctx context.Context, req pagination.Request) (pagination.Page[*model.Post], error)
	GlobalStories(ctx context.Context, req pagination.Request) (pagination.Page[*model.Story], error)
}

type feedService struct {
	postRepo  repository.PostRepository
	storyRepo repository.StoryRepository
}

func NewFeedService(postRepo repository.PostRepository, storyRepo repository.StoryRepository) FeedService {
	return &feedService{postRepo: postRepo, storyRepo: storyRepo}
}

func (s *feedService) FollowingFeed(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[*model.Post], error) {
	req.Normalize()
	items, total, err := s.postRepo.ListFollowing(ctx, userID, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}

func (s *feedService) FollowingStories(ctx context.Context, userID int64, now time.Time, req pagination.Request) (pagination.Page[*model.Story], error) {
	req.Normalize()
	items, total, err := s.storyRepo.ListFollowingActive(ctx, userID, now, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Story]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}

func (s *feedService) GlobalFeed(ctx context.Context, req pagination.Request) (pagination.Page[*model.Post], error) {
	req.Normalize()
	items, total, err := s.postRepo.ListAll(ctx, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}

func (s *feedService) GlobalStories(ctx context.Context, req pagination.Request) (pagination.Page[*model.Story], error) {
	req.Normalize()
	items, total, err := s.storyRepo.ListAll(ctx, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Story]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}
