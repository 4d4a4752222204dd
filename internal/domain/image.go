package domain

import "time"

// Image an image attached to a post (images table)
type Image struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID     uint64    `gorm:"column:post_id;index;not null" json:"post_id"`
	StoredName string    `gorm:"column:stored_name;type:varchar(255)" json:"stored_name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Image) TableName() string { return "images" }
