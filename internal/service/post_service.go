package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/pagination"
	"Inkstone/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	HomePosts(ctx context.Context, page int) (*dto.PostPageDTO, error)
	CategoryPosts(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error)
	ProfilePosts(ctx context.Context, viewerID uint64, username string, page int) (*dto.ProfilePageDTO, error)
	GetPostDetail(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error)
	CheckPostOwner(ctx context.Context, viewerID uint64, postID uint64) error
	CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (uint64, error)
	UpdatePost(ctx context.Context, viewerID uint64, postID uint64, req *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, viewerID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	commentRepo  repository.CommentRepo
	userRepo     repository.UserRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

// HomePosts 首页：公开可见的帖子，按发布时间倒序分页
func (s *postServiceImpl) HomePosts(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	q := repository.PostQuery{OnlyVisible: true, Now: time.Now()}
	return s.pagedPosts(ctx, q, page)
}

// CategoryPosts 分类页：分类本身必须已发布，否则视为不存在
func (s *postServiceImpl) CategoryPosts(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error) {
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsPublished {
		return nil, ErrCategoryNotFound
	}

	q := repository.PostQuery{CategoryID: category.ID, OnlyVisible: true, Now: time.Now()}
	posts, err := s.pagedPosts(ctx, q, page)
	if err != nil {
		return nil, err
	}

	categoryDTO := &dto.CategoryDTO{}
	if err := copier.Copy(categoryDTO, category); err != nil {
		return nil, err
	}
	return &dto.CategoryPageDTO{
		Category: categoryDTO,
		Posts:    posts,
	}, nil
}

// ProfilePosts 个人主页：本人可以看到自己全部帖子（含草稿与未到发布时间的），
// 其他访客只能看到公开可见的部分，总帖数按同一条可见性规则统计
func (s *postServiceImpl) ProfilePosts(ctx context.Context, viewerID uint64, username string, page int) (*dto.ProfilePageDTO, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	q := repository.PostQuery{
		AuthorID:    author.ID,
		OnlyVisible: viewerID != author.ID,
		Now:         time.Now(),
	}
	posts, err := s.pagedPosts(ctx, q, page)
	if err != nil {
		return nil, err
	}

	profileDTO := &dto.UserDTO{}
	if err := copier.Copy(profileDTO, author); err != nil {
		return nil, err
	}
	profileDTO.UserID = author.ID
	profileDTO.Email = ""

	return &dto.ProfilePageDTO{
		Profile:    profileDTO,
		TotalPosts: posts.Total,
		Posts:      posts,
	}, nil
}

// GetPostDetail 帖子详情：作者本人不受发布状态限制，其他访客仅能访问公开可见的帖子。
// CanComment 与评论创建使用同一判定，作者本人的草稿同样不开放评论。
func (s *postServiceImpl) GetPostDetail(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	now := time.Now()
	if post.AuthorID != viewerID && !post.Visible(now) {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	postDTO, err := toPostDTO(post)
	if err != nil {
		return nil, err
	}
	commentDTOs, err := batchToCommentDTO(comments)
	if err != nil {
		return nil, err
	}

	return &dto.PostDetailDTO{
		Post:       postDTO,
		Comments:   commentDTOs,
		CanComment: post.Visible(now),
	}, nil
}

// CheckPostOwner 所有权预检。handler 在解析提交内容之前调用，
// 保证非作者在任何表单处理发生前就被拦截
func (s *postServiceImpl) CheckPostOwner(ctx context.Context, viewerID uint64, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != viewerID {
		return ErrNotOwner
	}
	return nil
}

// CreatePost 创建帖子，当前登录用户即作者
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (uint64, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, req.CategoryID)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, ErrCategoryNotFound
	}

	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return 0, err
	}
	post.AuthorID = authorID
	post.IsPublished = true
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if req.PubDate != nil {
		post.PubDate = *req.PubDate
	} else {
		post.PubDate = time.Now()
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// UpdatePost 编辑帖子，仅作者本人；所有权校验先于内容处理
func (s *postServiceImpl) UpdatePost(ctx context.Context, viewerID uint64, postID uint64, req *dto.PostBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != viewerID {
		return ErrNotOwner
	}

	category, err := s.categoryRepo.GetCategoryById(ctx, req.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err := copier.Copy(post, req); err != nil {
		return err
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if req.PubDate != nil {
		post.PubDate = *req.PubDate
	}

	return s.postRepo.UpdatePost(ctx, post)
}

// DeletePost 删除帖子，仅作者本人
func (s *postServiceImpl) DeletePost(ctx context.Context, viewerID uint64, postID uint64) error {
	if err := s.CheckPostOwner(ctx, viewerID, postID); err != nil {
		return err
	}
	return s.postRepo.DeletePost(ctx, postID)
}

// pagedPosts 统一的计数 + 钳页 + 取页流程
func (s *postServiceImpl) pagedPosts(ctx context.Context, q repository.PostQuery, page int) (*dto.PostPageDTO, error) {
	total, err := s.postRepo.CountPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	pg := pagination.New(total, page, pagination.DefaultPerPage)
	q.Offset = pg.Offset()
	q.Limit = pg.PerPage

	posts, err := s.postRepo.ListPosts(ctx, q)
	if err != nil {
		return nil, err
	}

	list, err := batchToPostDTO(posts)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		List:       list,
		Page:       pg.Number,
		TotalPages: pg.TotalPages,
		Total:      pg.TotalItems,
		HasNext:    pg.HasNext,
		HasPrev:    pg.HasPrev,
	}, nil
}

// toPostDTO 将 Model 转换为返回给前端的 DTO
func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.AuthorID = post.AuthorID
	out.AuthorUsername = post.Author.Username
	out.AuthorNickname = post.Author.Nickname
	out.CategoryTitle = post.Category.Title
	out.CategorySlug = post.Category.Slug
	if post.Location != nil {
		out.LocationName = &post.Location.Name
	}
	return out, nil
}

// batchToPostDTO 批量转换辅助
func batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func toCommentDTO(comment *model.Comment) (*dto.CommentDTO, error) {
	out := &dto.CommentDTO{}
	if err := copier.Copy(out, comment); err != nil {
		return nil, err
	}
	out.AuthorID = comment.AuthorID
	out.AuthorUsername = comment.Author.Username
	out.AuthorNickname = comment.Author.Nickname
	return out, nil
}

func batchToCommentDTO(comments []*model.Comment) ([]*dto.CommentDTO, error) {
	out := make([]*dto.CommentDTO, len(comments))
	for i, comment := range comments {
		item, err := toCommentDTO(comment)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
