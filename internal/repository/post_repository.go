package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Get(ctx context.Context, id int64) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context, offset, limit int) ([]*model.Post, int64, error)
	ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*model.Post, int64, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Post, error)
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Get(ctx context.Context, id int64) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]*model.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// ListFollowing 关注流：owner 在我的关注集合内，时间倒序、id 倒序兜底
func (r *postRepository) ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]*model.Post, int64, error) {
	followees := r.db.Model(&model.Follow{}).Select("followee_id").Where("follower_id = ?", userID)
	q := r.db.WithContext(ctx).Model(&model.Post{}).Where("owner_id IN (?)", followees)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Post
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *postRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	var res []*model.Post
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (r *postRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}
