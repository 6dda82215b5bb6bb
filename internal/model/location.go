package model

import (
	"time"
)

type Location struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	IsPublished bool   `gorm:"type:tinyint(1);not null;default:1"`
	CreatedAt   time.Time
}

func (Location) TableName() string {
	return "locations"
}
