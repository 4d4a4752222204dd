package domain

import "time"

// Board represents a board (boards table)
type Board struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Slug          string    `gorm:"column:slug;type:varchar(50);uniqueIndex" json:"slug"`
	Name          string    `gorm:"column:name;type:varchar(100)" json:"name"`
	LoginRequired bool      `gorm:"column:login_required;not null;default:false" json:"login_required"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Board) TableName() string { return "boards" }
