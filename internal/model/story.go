package model

import "time"

// Story 限时内容，expires_at 之后由 reaper 清除
type Story struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64     `gorm:"not null;index:idx_story_owner"`
	MediaRef  string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"index:idx_story_created"`
	ExpiresAt time.Time `gorm:"not null;index:idx_story_expires"`
	ViewCount int64     `gorm:"not null;default:0"`
}

func (Story) TableName() string { return "stories" }
