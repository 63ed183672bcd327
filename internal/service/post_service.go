package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
)

var ErrDeletePostForbidden = apperr.Forbidden("you are not allowed to delete this post")

// PostService 帖子的最小生命周期：feed 组装需要创建与级联删除，
// 编辑等完整逻辑不在本核心内。
type PostService interface {
	Create(ctx context.Context, actor identity.Actor, title, body string) (*model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	Delete(ctx context.Context, id int64, actor identity.Actor) error
}

type postService struct {
	postRepo repository.PostRepository
	pollRepo repository.PollRepository
	engRepo  repository.EngagementRepository
}

func NewPostService(postRepo repository.PostRepository, pollRepo repository.PollRepository, engRepo repository.EngagementRepository) PostService {
	return &postService{postRepo: postRepo, pollRepo: pollRepo, engRepo: engRepo}
}

func (s *postService) Create(ctx context.Context, actor identity.Actor, title, body string) (*model.Post, error) {
	if actor.Banned {
		return nil, ErrOwnerBanned
	}
	if title == "" {
		return nil, apperr.InvalidArgument("title is empty")
	}
	post := &model.Post{OwnerID: actor.ID, Title: title, Body: body}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// Delete 显式级联：poll 及其附属 -> 互动记录 -> 帖子本体。
// 不依赖数据库隐式 cascade，删除路径可单测。
func (s *postService) Delete(ctx context.Context, id int64, actor identity.Actor) error {
	post, err := s.postRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.OwnerID != actor.ID && !actor.HasRole(identity.RoleAdmin) {
		return ErrDeletePostForbidden
	}
	if poll, _, err := s.pollRepo.GetByPostID(ctx, id); err == nil {
		if err := s.pollRepo.DeleteWithDependents(ctx, poll.ID); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.engRepo.RemoveBySubject(ctx, model.SubjectPostLike, id); err != nil {
		return err
	}
	if err := s.engRepo.RemoveBySubject(ctx, model.SubjectPostBookmark, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
