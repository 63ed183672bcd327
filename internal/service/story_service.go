package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/blob"
	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/logger"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

// StoryTTL story 存活时长
const StoryTTL = 24 * time.Hour

var (
	ErrStoryNotFound  = apperr.NotFound("story not found")
	ErrOwnerBanned    = apperr.Forbidden("user is banned")
	ErrDeleteNotOwner = apperr.Forbidden("you are not allowed to delete this story")
)

// StoryService 限时内容服务
type StoryService interface {
	Create(ctx context.Context, actor identity.Actor, mediaRef string) (*model.Story, error)
	View(ctx context.Context, storyID int64, viewer identity.Actor) (*model.Story, error)
	Delete(ctx context.Context, storyID int64, actor identity.Actor) error
	MyStories(ctx context.Context, ownerID int64, now time.Time, req pagination.Request) (pagination.Page[*model.Story], error)
	AllStories(ctx context.Context, req pagination.Request) (pagination.Page[*model.Story], error)
}

type storyService struct {
	storyRepo repository.StoryRepository
	blobs     blob.Store
	now       func() time.Time
}

func NewStoryService(storyRepo repository.StoryRepository, blobs blob.Store) StoryService {
	return &storyService{storyRepo: storyRepo, blobs: blobs, now: time.Now}
}

func (s *storyService) Create(ctx context.Context, actor identity.Actor, mediaRef string) (*model.Story, error) {
	if actor.Banned {
		logger.Warn("banned user tried to create story", zap.Int64("user", actor.ID))
		return nil, ErrOwnerBanned
	}
	if mediaRef == "" {
		return nil, apperr.InvalidArgument("media ref is empty")
	}
	now := s.now()
	story := &model.Story{
		OwnerID:   actor.ID,
		MediaRef:  mediaRef,
		CreatedAt: now,
		ExpiresAt: now.Add(StoryTTL),
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	logger.Info("story created", zap.Int64("user", actor.ID), zap.Int64("story", story.ID))
	return story, nil
}

// View 返回 story 并计数。匿名或非 owner 每次调用都 +1 ——
// 不按 viewer 去重，同一用户反复刷新会持续累加（沿用线上行为）。
func (s *storyService) View(ctx context.Context, storyID int64, viewer identity.Actor) (*model.Story, error) {
	story, err := s.storyRepo.Get(ctx, storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	if viewer.IsAnonymous() || viewer.ID != story.OwnerID {
		if err := s.storyRepo.IncrementViews(ctx, storyID); err != nil {
			return nil, err
		}
		story.ViewCount++
	}
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, storyID int64, actor identity.Actor) error {
	story, err := s.storyRepo.Get(ctx, storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}
	isOwner := story.OwnerID == actor.ID
	if !isOwner && !actor.HasRole(identity.RoleAdmin) {
		logger.Warn("forbidden story delete attempt",
			zap.Int64("user", actor.ID), zap.Int64("story", storyID))
		return ErrDeleteNotOwner
	}
	// 媒体删除尽力而为，失败不阻断
	blob.DeleteBestEffort(ctx, s.blobs, story.MediaRef)
	if err := s.storyRepo.Delete(ctx, storyID); err != nil {
		return err
	}
	logger.Info("story deleted", zap.Int64("story", storyID), zap.Int64("by", actor.ID))
	return nil
}

func (s *storyService) MyStories(ctx context.Context, ownerID int64, now time.Time, req pagination.Request) (pagination.Page[*model.Story], error) {
	req.Normalize()
	items, total, err := s.storyRepo.ListByOwnerActive(ctx, ownerID, now, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Story]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}

func (s *storyService) AllStories(ctx context.Context, req pagination.Request) (pagination.Page[*model.Story], error) {
	req.Normalize()
	items, total, err := s.storyRepo.ListAll(ctx, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Story]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}
