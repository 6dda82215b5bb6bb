package model

import (
	"time"
)

type Post struct {
	ID          uint64  `gorm:"primaryKey"`
	AuthorID    uint64  `gorm:"not null;index:idx_author_id" json:"author_id"`
	CategoryID  uint64  `gorm:"not null;index:idx_category_id" json:"category_id"`
	LocationID  *uint64 `gorm:"index:idx_location_id" json:"location_id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Text        string  `gorm:"not null" json:"text"`
	ImageURL    string  `gorm:"type:varchar(255)" json:"image_url"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date" json:"pub_date"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	IsDeleted   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CommentCount 只读统计列，由查询的子查询填充，每次查询实时计算，不落库
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Category Category  `gorm:"foreignKey:CategoryID;references:ID"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// Visible 公开可见性判定：帖子已发布、发布时间不晚于 now、且所属分类已发布
func (p *Post) Visible(now time.Time) bool {
	return p.IsPublished && !p.PubDate.After(now) && p.Category.IsPublished
}
