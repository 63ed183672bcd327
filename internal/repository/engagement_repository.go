package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/social-core/internal/model"
)

type EngagementRepository interface {
	Record(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64, payload string) error
	Exists(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64) (bool, error)
	Count(ctx context.Context, subjectType model.SubjectType, subjectID int64) (int64, error)
	Remove(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64) error
	ListSubjectIDsByActor(ctx context.Context, subjectType model.SubjectType, actorID int64, offset, limit int) ([]int64, int64, error)
	RemoveBySubject(ctx context.Context, subjectType model.SubjectType, subjectID int64) error
	RemoveAllForActor(ctx context.Context, actorID int64) error
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository { return &engagementRepository{db: db} }

// Record insert-or-ignore：唯一键竞争折叠为成功（“别人先做了”不算错）
func (r *engagementRepository) Record(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64, payload string) error {
	e := &model.Engagement{
		ID:          uuid.New().String(),
		SubjectType: subjectType,
		SubjectID:   subjectID,
		ActorID:     actorID,
		Payload:     payload,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(e).Error
}

func (r *engagementRepository) Exists(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Engagement{}).
		Where("subject_type = ? AND subject_id = ? AND actor_id = ?", subjectType, subjectID, actorID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *engagementRepository) Count(ctx context.Context, subjectType model.SubjectType, subjectID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Engagement{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Count(&cnt).Error
	return cnt, err
}

func (r *engagementRepository) Remove(ctx context.Context, subjectType model.SubjectType, subjectID, actorID int64) error {
	return r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND actor_id = ?", subjectType, subjectID, actorID).
		Delete(&model.Engagement{}).Error
}

// ListSubjectIDsByActor 某用户的收藏/点赞对象列表（时间倒序）
func (r *engagementRepository) ListSubjectIDsByActor(ctx context.Context, subjectType model.SubjectType, actorID int64, offset, limit int) ([]int64, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Engagement{}).
		Where("subject_type = ? AND actor_id = ?", subjectType, actorID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ids []int64
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Pluck("subject_id", &ids).Error
	return ids, total, err
}

// RemoveBySubject 对象被删时级联清理其互动记录
func (r *engagementRepository) RemoveBySubject(ctx context.Context, subjectType model.SubjectType, subjectID int64) error {
	return r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&model.Engagement{}).Error
}

func (r *engagementRepository) RemoveAllForActor(ctx context.Context, actorID int64) error {
	return r.db.WithContext(ctx).Where("actor_id = ?", actorID).Delete(&model.Engagement{}).Error
}
