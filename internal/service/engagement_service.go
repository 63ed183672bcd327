package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

var ErrPostNotFound = apperr.NotFound("post not found")

// EngagementService 点赞 / 收藏，统一互动账本的薄封装。
// 重复操作一律折叠为 no-op，删除幂等。
type EngagementService interface {
	Like(ctx context.Context, postID, actorID int64) error
	Unlike(ctx context.Context, postID, actorID int64) error
	IsLiked(ctx context.Context, postID, actorID int64) (bool, error)
	LikeCount(ctx context.Context, postID int64) (int64, error)
	Bookmark(ctx context.Context, postID, actorID int64) error
	RemoveBookmark(ctx context.Context, postID, actorID int64) error
	MyBookmarks(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[*model.Post], error)
}

type engagementService struct {
	engRepo  repository.EngagementRepository
	postRepo repository.PostRepository
}

func NewEngagementService(engRepo repository.EngagementRepository, postRepo repository.PostRepository) EngagementService {
	return &engagementService{engRepo: engRepo, postRepo: postRepo}
}

func (s *engagementService) record(ctx context.Context, st model.SubjectType, postID, actorID int64) error {
	if _, err := s.postRepo.Get(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.engRepo.Record(ctx, st, postID, actorID, "")
}

func (s *engagementService) Like(ctx context.Context, postID, actorID int64) error {
	return s.record(ctx, model.SubjectPostLike, postID, actorID)
}

func (s *engagementService) Unlike(ctx context.Context, postID, actorID int64) error {
	return s.engRepo.Remove(ctx, model.SubjectPostLike, postID, actorID)
}

func (s *engagementService) IsLiked(ctx context.Context, postID, actorID int64) (bool, error) {
	return s.engRepo.Exists(ctx, model.SubjectPostLike, postID, actorID)
}

func (s *engagementService) LikeCount(ctx context.Context, postID int64) (int64, error) {
	return s.engRepo.Count(ctx, model.SubjectPostLike, postID)
}

func (s *engagementService) Bookmark(ctx context.Context, postID, actorID int64) error {
	return s.record(ctx, model.SubjectPostBookmark, postID, actorID)
}

func (s *engagementService) RemoveBookmark(ctx context.Context, postID, actorID int64) error {
	return s.engRepo.Remove(ctx, model.SubjectPostBookmark, postID, actorID)
}

// MyBookmarks 收藏列表：先取 subject_id 分页，再回表取 post
func (s *engagementService) MyBookmarks(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[*model.Post], error) {
	req.Normalize()
	ids, total, err := s.engRepo.ListSubjectIDsByActor(ctx, model.SubjectPostBookmark, actorID, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}
	posts, err := s.postRepo.ListByIDs(ctx, ids)
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}
	// 回表结果按收藏时间顺序重排
	byID := make(map[int64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return pagination.NewPage(ordered, req.Page, req.Size, total), nil
}
