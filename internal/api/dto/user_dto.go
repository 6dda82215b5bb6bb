package dto

import "time"

type UserDTO struct {
	UserID    uint64     `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Nickname  string     `json:"nickname,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type UserUpdateDTO struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Nickname  *string `json:"nickname,omitempty" binding:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" binding:"omitempty,max=200"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,max=255"`
}
