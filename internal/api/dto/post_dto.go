package dto

import "time"

type PostDTO struct {
	// Post
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	ImageURL     string    `json:"image_url,omitempty"`
	PubDate      time.Time `json:"pub_date"`
	IsPublished  bool      `json:"is_published"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`

	// Author
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	AuthorNickname string `json:"author_nickname,omitempty"`

	// Category
	CategoryTitle string `json:"category_title"`
	CategorySlug  string `json:"category_slug"`

	// Location
	LocationName *string `json:"location_name,omitempty"`
}

// PostPageDTO 帖子列表的一页
type PostPageDTO struct {
	List       []*PostDTO `json:"list"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int64      `json:"total"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
}

// CategoryPageDTO 分类页：分类信息 + 该分类下已发布帖子的一页
type CategoryPageDTO struct {
	Category *CategoryDTO `json:"category"`
	Posts    *PostPageDTO `json:"posts"`
}

// ProfilePageDTO 个人主页：用户信息 + 按可见性规则统计的总帖数 + 帖子一页
type ProfilePageDTO struct {
	Profile    *UserDTO     `json:"profile"`
	TotalPosts int64        `json:"total_posts"`
	Posts      *PostPageDTO `json:"posts"`
}

// PostDetailDTO 帖子详情：评论按创建时间正序，CanComment 表示是否开放评论
type PostDetailDTO struct {
	Post       *PostDTO      `json:"post"`
	Comments   []*CommentDTO `json:"comments"`
	CanComment bool          `json:"can_comment"`
}

type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
