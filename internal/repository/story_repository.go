package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/model"
)

type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) error
	Get(ctx context.Context, id int64) (*model.Story, error)
	IncrementViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListByOwnerActive(ctx context.Context, ownerID int64, now time.Time, offset, limit int) ([]*model.Story, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]*model.Story, int64, error)
	ListFollowingActive(ctx context.Context, userID int64, now time.Time, offset, limit int) ([]*model.Story, int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteAllFor(ctx context.Context, ownerID int64) error
	CountActive(ctx context.Context, now time.Time) (int64, error)
	MostViewed(ctx context.Context) (*model.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository { return &storyRepository{db: db} }

func (r *storyRepository) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) Get(ctx context.Context, id int64) (*model.Story, error) {
	var s model.Story
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// IncrementViews 单条 SQL 自增，并发观看不丢计数
func (r *storyRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Story{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *storyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Story{}, id).Error
}

func (r *storyRepository) ListByOwnerActive(ctx context.Context, ownerID int64, now time.Time, offset, limit int) ([]*model.Story, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Story{}).
		Where("owner_id = ? AND expires_at > ?", ownerID, now)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Story
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// ListAll 管理端列表，不过滤过期
func (r *storyRepository) ListAll(ctx context.Context, offset, limit int) ([]*model.Story, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Story{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Story
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// ListFollowingActive 关注流：owner 在关注集合内且未过期
func (r *storyRepository) ListFollowingActive(ctx context.Context, userID int64, now time.Time, offset, limit int) ([]*model.Story, int64, error) {
	followees := r.db.Model(&model.Follow{}).Select("followee_id").Where("follower_id = ?", userID)
	q := r.db.WithContext(ctx).Model(&model.Story{}).
		Where("owner_id IN (?) AND expires_at > ?", followees, now)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Story
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// DeleteExpired reaper 专用：批量删除过期 story，返回删除行数
func (r *storyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.Story{})
	return res.RowsAffected, res.Error
}

func (r *storyRepository) DeleteAllFor(ctx context.Context, ownerID int64) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Story{}).Error
}

func (r *storyRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Story{}).Where("expires_at > ?", now).Count(&cnt).Error
	return cnt, err
}

func (r *storyRepository) MostViewed(ctx context.Context) (*model.Story, error) {
	var s model.Story
	err := r.db.WithContext(ctx).Order("view_count DESC, id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
