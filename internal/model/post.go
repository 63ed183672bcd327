package model

import "time"

// Post 内容主体
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64     `gorm:"not null;index:idx_post_owner"`
	Title     string    `gorm:"type:varchar(255)"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_post_created"`
}

func (Post) TableName() string { return "posts" }
