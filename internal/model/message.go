package model

import "time"

// Message 私信，追加写；read_at 只允许 null -> 时间戳 单向迁移
type Message struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	SenderID    int64     `gorm:"not null;index:idx_msg_sender"`
	RecipientID int64     `gorm:"not null;index:idx_msg_recipient"`
	Text        string    `gorm:"type:varchar(2000);not null"`
	CreatedAt   time.Time `gorm:"index:idx_msg_created"`
	ReadAt      *time.Time
}

func (Message) TableName() string { return "messages" }

// Dialog 会话摘要（派生数据，不落库）：每个对端仅保留最近一条消息
type Dialog struct {
	PeerID        int64     `json:"peer_id"`
	LastText      string    `json:"last_text"`
	LastMessageAt time.Time `json:"last_message_at"`
	LastSenderID  int64     `json:"last_sender_id"`
}
