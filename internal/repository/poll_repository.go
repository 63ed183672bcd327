package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/model"
)

// ErrDuplicateVote 同一 (poll, actor) 的第二次投票
var ErrDuplicateVote = errors.New("duplicate vote")

type PollRepository interface {
	Create(ctx context.Context, poll *model.Poll, options []string) error
	GetByPostID(ctx context.Context, postID int64) (*model.Poll, []*model.PollOption, error)
	Get(ctx context.Context, pollID int64) (*model.Poll, error)
	GetOption(ctx context.Context, optionID int64) (*model.PollOption, error)
	ListOptions(ctx context.Context, pollID int64) ([]*model.PollOption, error)
	Vote(ctx context.Context, pollID, optionID, actorID int64) error
	HasVoted(ctx context.Context, pollID, actorID int64) (bool, error)
	DeleteWithDependents(ctx context.Context, pollID int64) error
}

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository { return &pollRepository{db: db} }

// Create 同一事务内落地 poll 与全部选项
func (r *pollRepository) Create(ctx context.Context, poll *model.Poll, options []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(poll).Error; err != nil {
			return err
		}
		opts := make([]model.PollOption, 0, len(options))
		for _, text := range options {
			opts = append(opts, model.PollOption{PollID: poll.ID, Text: text})
		}
		return tx.Create(&opts).Error
	})
}

func (r *pollRepository) GetByPostID(ctx context.Context, postID int64) (*model.Poll, []*model.PollOption, error) {
	var p model.Poll
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&p).Error; err != nil {
		return nil, nil, err
	}
	opts, err := r.ListOptions(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return &p, opts, nil
}

func (r *pollRepository) Get(ctx context.Context, pollID int64) (*model.Poll, error) {
	var p model.Poll
	if err := r.db.WithContext(ctx).First(&p, pollID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pollRepository) GetOption(ctx context.Context, optionID int64) (*model.PollOption, error) {
	var o model.PollOption
	if err := r.db.WithContext(ctx).First(&o, optionID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *pollRepository) ListOptions(ctx context.Context, pollID int64) ([]*model.PollOption, error) {
	var opts []*model.PollOption
	err := r.db.WithContext(ctx).Where("poll_id = ?", pollID).Order("id ASC").Find(&opts).Error
	return opts, err
}

// Vote 计票与投票记录在同一事务内：要么都生效要么都回滚。
// 投票记录不走 DoNothing —— 重复投票是硬错误，唯一键冲突翻译成 ErrDuplicateVote，
// 事务回滚保证 votes 不被重复累加。
func (r *pollRepository) Vote(ctx context.Context, pollID, optionID, actorID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := &model.Engagement{
			ID:          uuid.New().String(),
			SubjectType: model.SubjectPollVote,
			SubjectID:   pollID,
			ActorID:     actorID,
			Payload:     strconv.FormatInt(optionID, 10),
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return tx.Model(&model.PollOption{}).
			Where("id = ? AND poll_id = ?", optionID, pollID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateVote
	}
	return err
}

func (r *pollRepository) HasVoted(ctx context.Context, pollID, actorID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Engagement{}).
		Where("subject_type = ? AND subject_id = ? AND actor_id = ?", model.SubjectPollVote, pollID, actorID).
		Count(&cnt).Error
	return cnt > 0, err
}

// DeleteWithDependents 显式级联：先删投票记录与选项，再删 poll 本体
func (r *pollRepository) DeleteWithDependents(ctx context.Context, pollID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_type = ? AND subject_id = ?", model.SubjectPollVote, pollID).
			Delete(&model.Engagement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id = ?", pollID).Delete(&model.PollOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Poll{}, pollID).Error
	})
}
