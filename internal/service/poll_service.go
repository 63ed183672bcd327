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

var (
	ErrPollNotFound   = apperr.NotFound("poll not found")
	ErrOptionNotFound = apperr.NotFound("option not found")
	ErrAlreadyVoted   = apperr.Conflict("you already voted")
	ErrNotPostOwner   = apperr.Forbidden("you cannot modify someone else's poll")
)

// PollView 投票视图
type PollView struct {
	PollID   int64               `json:"poll_id"`
	PostID   int64               `json:"post_id"`
	Question string              `json:"question"`
	Options  []*model.PollOption `json:"options"`
	Voted    bool                `json:"voted"`
}

// PollService 帖子投票。与通用互动账本不同，重复投票是硬错误：
// 投票会修改共享计数器，静默折叠会导致双重计票。
type PollService interface {
	Create(ctx context.Context, postID int64, actor identity.Actor, question string, options []string) (*PollView, error)
	Get(ctx context.Context, postID int64, actor identity.Actor) (*PollView, error)
	Vote(ctx context.Context, pollID, optionID int64, actor identity.Actor) (*PollView, error)
	Delete(ctx context.Context, postID int64, actor identity.Actor) error
}

type pollService struct {
	pollRepo repository.PollRepository
	postRepo repository.PostRepository
}

func NewPollService(pollRepo repository.PollRepository, postRepo repository.PostRepository) PollService {
	return &pollService{pollRepo: pollRepo, postRepo: postRepo}
}

func (s *pollService) view(ctx context.Context, poll *model.Poll, voted bool) (*PollView, error) {
	opts, err := s.pollRepo.ListOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	return &PollView{PollID: poll.ID, PostID: poll.PostID, Question: poll.Question, Options: opts, Voted: voted}, nil
}

func (s *pollService) Create(ctx context.Context, postID int64, actor identity.Actor, question string, options []string) (*PollView, error) {
	post, err := s.postRepo.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	// 只有帖子作者能挂投票
	if post.OwnerID != actor.ID {
		return nil, ErrNotPostOwner
	}
	if question == "" || len(options) < 2 {
		return nil, apperr.InvalidArgument("poll needs a question and at least two options")
	}
	poll := &model.Poll{PostID: postID, Question: question}
	if err := s.pollRepo.Create(ctx, poll, options); err != nil {
		return nil, err
	}
	return s.view(ctx, poll, false)
}

func (s *pollService) Get(ctx context.Context, postID int64, actor identity.Actor) (*PollView, error) {
	poll, opts, err := s.pollRepo.GetByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}
	voted := false
	if !actor.IsAnonymous() {
		if voted, err = s.pollRepo.HasVoted(ctx, poll.ID, actor.ID); err != nil {
			return nil, err
		}
	}
	return &PollView{PollID: poll.ID, PostID: poll.PostID, Question: poll.Question, Options: opts, Voted: voted}, nil
}

func (s *pollService) Vote(ctx context.Context, pollID, optionID int64, actor identity.Actor) (*PollView, error) {
	poll, err := s.pollRepo.Get(ctx, pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}
	option, err := s.pollRepo.GetOption(ctx, optionID)
	if err != nil || option.PollID != pollID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, ErrOptionNotFound
	}
	// 计票 + 投票记录单事务；并发重复投票由唯一键裁决，只有一个成功
	if err := s.pollRepo.Vote(ctx, pollID, optionID, actor.ID); err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}
	return s.view(ctx, poll, true)
}

func (s *pollService) Delete(ctx context.Context, postID int64, actor identity.Actor) error {
	poll, _, err := s.pollRepo.GetByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPollNotFound
		}
		return err
	}
	post, err := s.postRepo.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != actor.ID && !actor.HasRole(identity.RoleAdmin) {
		return ErrNotPostOwner
	}
	// 显式级联：投票记录 -> 选项 -> poll
	return s.pollRepo.DeleteWithDependents(ctx, poll.ID)
}
