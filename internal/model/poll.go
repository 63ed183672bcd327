package model

import "time"

// Poll 帖子下的投票
type Poll struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PostID    int64  `gorm:"not null;uniqueIndex:ux_poll_post"`
	Question  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

func (Poll) TableName() string { return "polls" }

// PollOption 投票选项，votes 与投票记录在同一事务内更新
type PollOption struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	PollID int64  `gorm:"not null;index:idx_option_poll"`
	Text   string `gorm:"type:varchar(255);not null"`
	Votes  int64  `gorm:"not null;default:0"`
}

func (PollOption) TableName() string { return "poll_options" }
