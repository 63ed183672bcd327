package model

import "time"

// SubjectType 互动对象类型
type SubjectType string

const (
	SubjectPostLike     SubjectType = "post_like"
	SubjectPostBookmark SubjectType = "post_bookmark"
	SubjectPollVote     SubjectType = "poll_vote"
)

// Engagement 统一互动记录（点赞 / 收藏 / 投票）
type Engagement struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)"`
	SubjectType SubjectType `gorm:"type:varchar(32);not null;index:idx_engagement_key,unique"`
	SubjectID   int64       `gorm:"not null;index:idx_engagement_key,unique;index:idx_engagement_subject"`
	ActorID     int64       `gorm:"not null;index:idx_engagement_key,unique;index:idx_engagement_actor"`
	// 复合唯一键，保证同一 actor 对同一对象至多一条记录
	// idx_engagement_key = (subject_type, subject_id, actor_id)
	Payload   string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (Engagement) TableName() string { return "engagements" }
