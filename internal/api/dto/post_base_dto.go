package dto

import "time"

type PostBaseDTO struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Text        string     `json:"text" binding:"required,min=1"`
	CategoryID  uint64     `json:"category_id" binding:"required"`
	LocationID  *uint64    `json:"location_id,omitempty"`
	ImageURL    string     `json:"image_url,omitempty" binding:"omitempty,max=255"`
	PubDate     *time.Time `json:"pub_date,omitempty"`
	IsPublished *bool      `json:"is_published,omitempty"`
}
