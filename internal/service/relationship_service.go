package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/internal/notify"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/logger"
)

// ErrFollowSelf 自己关注自己
var ErrFollowSelf = apperr.InvalidArgument("cannot follow self")

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, fromUserID, toUserID int64) error
	Unfollow(ctx context.Context, fromUserID, toUserID int64) error
	IsFollowing(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
	ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]int64, error)
	RemoveAllEdgesFor(ctx context.Context, userID int64) error
}

type relationshipService struct {
	followRepo repository.FollowRepository
	dispatcher *notify.Dispatcher
}

func NewRelationshipService(followRepo repository.FollowRepository, dispatcher *notify.Dispatcher) RelationshipService {
	return &relationshipService{followRepo: followRepo, dispatcher: dispatcher}
}

func (s *relationshipService) Follow(ctx context.Context, fromUserID, toUserID int64) error {
	if fromUserID == toUserID {
		return ErrFollowSelf
	}
	// 重复关注在存储层折叠为 no-op
	if err := s.followRepo.Create(ctx, fromUserID, toUserID); err != nil {
		return err
	}
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(notify.Event{Kind: notify.EventFollow, UserID: toUserID, PeerID: fromUserID})
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, fromUserID, toUserID int64) error {
	// 幂等：边不存在也不报错
	return s.followRepo.Delete(ctx, fromUserID, toUserID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	if fromUserID == toUserID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, fromUserID, toUserID)
}

func (s *relationshipService) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *relationshipService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]int64, error) {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		pageSize = 10
	}
	items, err := s.followRepo.ListFollowings(ctx, userID, page*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]int64, len(items))
	for i, it := range items {
		res[i] = it.FolloweeID
	}
	return res, nil
}

// RemoveAllEdgesFor 账号注销时调用，双向清理
func (s *relationshipService) RemoveAllEdgesFor(ctx context.Context, userID int64) error {
	if err := s.followRepo.DeleteAllFor(ctx, userID); err != nil {
		return err
	}
	logger.Info("removed all follow edges", zap.Int64("user", userID))
	return nil
}
