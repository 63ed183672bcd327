package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-core/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	Conversation(ctx context.Context, userA, userB int64, offset, limit int) ([]*model.Message, int64, error)
	NewSince(ctx context.Context, userA, userB, afterID int64) ([]*model.Message, error)
	MarkRead(ctx context.Context, userID, peerID int64, now time.Time) (int64, error)
	RecentInvolving(ctx context.Context, userID int64, limit int) ([]*model.Message, error)
	DeleteAllFor(ctx context.Context, userID int64) error
	CountSince(ctx context.Context, t time.Time) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepository{db: db} }

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func pairScope(db *gorm.DB, a, b int64) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		a, b, b, a,
	)
}

// Conversation 双向消息，按 (created_at, id) 升序；同一时间戳靠 id 决胜
func (r *messageRepository) Conversation(ctx context.Context, userA, userB int64, offset, limit int) ([]*model.Message, int64, error) {
	q := pairScope(r.db.WithContext(ctx).Model(&model.Message{}), userA, userB)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Message
	err := q.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// NewSince 增量同步游标：只取 id > afterID 的会话消息，afterID=0 表示从头
func (r *messageRepository) NewSince(ctx context.Context, userA, userB, afterID int64) ([]*model.Message, error) {
	var res []*model.Message
	err := pairScope(r.db.WithContext(ctx).Model(&model.Message{}), userA, userB).
		Where("id > ?", afterID).
		Order("created_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

// MarkRead 批量置已读：只动 peer -> user 且 read_at 为空的行，天然幂等
func (r *messageRepository) MarkRead(ctx context.Context, userID, peerID int64, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read_at IS NULL", peerID, userID).
		UpdateColumn("read_at", now)
	return res.RowsAffected, res.Error
}

// RecentInvolving 会话摘要扫描窗口：该用户最近的 limit 条消息（倒序）
func (r *messageRepository) RecentInvolving(ctx context.Context, userID int64, limit int) ([]*model.Message, error) {
	var res []*model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *messageRepository) DeleteAllFor(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Delete(&model.Message{}).Error
}

func (r *messageRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).Where("created_at >= ?", t).Count(&cnt).Error
	return cnt, err
}
