package repository

import (
	"Inkstone/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentCountExpr 实时统计评论数的子查询，每次查询重新计算，不做缓存
const commentCountExpr = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.is_deleted = 0)"

// PostQuery 帖子列表的过滤条件
type PostQuery struct {
	CategoryID  uint64 // 大于 0 时按分类过滤
	AuthorID    uint64 // 大于 0 时按作者过滤
	OnlyVisible bool   // 仅公开可见：已发布 + 发布时间不晚于 Now + 分类已发布
	Now         time.Time
	Offset      int
	Limit       int // 小于等于 0 时不限制
}

type PostRepo interface {
	ListPosts(ctx context.Context, q PostQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context, q PostQuery) (int64, error)
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// baseQuery 所有帖子读取的基础查询：预加载作者/分类/位置，附带实时评论数
func (s *PostRepoImpl) baseQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("posts.*, "+commentCountExpr+" AS comment_count").
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Where("posts.is_deleted = 0")
}

// visibleScope 公开可见过滤
func visibleScope(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = 1").
			Where("posts.pub_date <= ?", now).
			Where("categories.is_published = 1")
	}
}

func applyFilters(db *gorm.DB, q PostQuery) *gorm.DB {
	if q.CategoryID > 0 {
		db = db.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.AuthorID > 0 {
		db = db.Where("posts.author_id = ?", q.AuthorID)
	}
	if q.OnlyVisible {
		now := q.Now
		if now.IsZero() {
			now = time.Now()
		}
		db = db.Scopes(visibleScope(now))
	}
	return db
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, q PostQuery) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	db := applyFilters(s.baseQuery(ctx), q).
		Order("posts.pub_date DESC, posts.id DESC").
		Offset(q.Offset)
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, q PostQuery) (int64, error) {
	var count int64
	db := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("posts.is_deleted = 0")
	if err := applyFilters(db, q).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetPost 按主键取单个帖子，不区分发布状态，可见性判定交给上层
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.baseQuery(ctx).Where("posts.id = ?", id).First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("title", "text", "image_url", "pub_date", "is_published", "category_id", "location_id").
		Updates(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// PurgeDeleted 物理清除早于 before 软删除的帖子及其评论，由定时任务调用
func (s *PostRepoImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	var purged int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("is_deleted = 1 AND updated_at < ?", before).
			Delete(&model.Post{})
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return tx.
			Where("post_id NOT IN (SELECT id FROM posts)").
			Delete(&model.Comment{}).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "purge deleted posts")
	}
	return purged, nil
}
