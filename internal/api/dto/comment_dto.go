package dto

import "time"

type CommentBaseDTO struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	AuthorNickname string `json:"author_nickname,omitempty"`
}
