package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/logger"
)

var ErrPurgeForbidden = apperr.Forbidden("admin role required")

// AccountService 账号注销级联。身份本体归外部系统管，
// 这里只负责清掉本核心五张表里属于该用户的所有行。
type AccountService interface {
	PurgeUser(ctx context.Context, userID int64, actor identity.Actor) error
}

type accountService struct {
	followRepo repository.FollowRepository
	storyRepo  repository.StoryRepository
	postRepo   repository.PostRepository
	pollRepo   repository.PollRepository
	engRepo    repository.EngagementRepository
	msgRepo    repository.MessageRepository
}

func NewAccountService(
	followRepo repository.FollowRepository,
	storyRepo repository.StoryRepository,
	postRepo repository.PostRepository,
	pollRepo repository.PollRepository,
	engRepo repository.EngagementRepository,
	msgRepo repository.MessageRepository,
) AccountService {
	return &accountService{
		followRepo: followRepo,
		storyRepo:  storyRepo,
		postRepo:   postRepo,
		pollRepo:   pollRepo,
		engRepo:    engRepo,
		msgRepo:    msgRepo,
	}
}

// PurgeUser 显式遍历删除，顺序：关系边 -> 私信 -> 互动 -> story -> 帖子及附属。
// 不靠数据库隐式 cascade，便于逐步校验。
func (s *accountService) PurgeUser(ctx context.Context, userID int64, actor identity.Actor) error {
	if actor.ID != userID && !actor.HasRole(identity.RoleAdmin) {
		return ErrPurgeForbidden
	}
	if err := s.followRepo.DeleteAllFor(ctx, userID); err != nil {
		return err
	}
	if err := s.msgRepo.DeleteAllFor(ctx, userID); err != nil {
		return err
	}
	if err := s.engRepo.RemoveAllForActor(ctx, userID); err != nil {
		return err
	}
	if err := s.storyRepo.DeleteAllFor(ctx, userID); err != nil {
		return err
	}
	postIDs, err := s.postRepo.ListIDsByOwner(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range postIDs {
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
		if err := s.postRepo.Delete(ctx, id); err != nil {
			return err
		}
	}
	logger.Info("user purged", zap.Int64("user", userID), zap.Int("posts", len(postIDs)))
	return nil
}
