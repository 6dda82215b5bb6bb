package model

import (
	"time"
)

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(64);not null;uniqueIndex:idx_slug"`
	Description string `gorm:"type:text"`
	IsPublished bool   `gorm:"type:tinyint(1);not null;default:1"`
	CreatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
