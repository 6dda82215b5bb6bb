package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/pagination"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	userSvc service.UserService
}

func NewPostHandler(postSvc service.PostService, userSvc service.UserService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		userSvc: userSvc,
	}
}

// HomePosts 首页帖子列表
func (s *PostHandler) HomePosts(c *gin.Context) {
	page := pagination.ParseNumber(c.Query("page"))

	posts, err := s.postSvc.HomePosts(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CategoryPosts 分类页帖子列表
func (s *PostHandler) CategoryPosts(c *gin.Context) {
	slug := c.Param("category_slug")
	page := pagination.ParseNumber(c.Query("page"))

	posts, err := s.postSvc.CategoryPosts(c.Request.Context(), slug, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// ProfilePosts 个人主页帖子列表
func (s *PostHandler) ProfilePosts(c *gin.Context) {
	username := c.Param("username")
	page := pagination.ParseNumber(c.Query("page"))
	viewerID := c.GetUint64("user_id")

	posts, err := s.postSvc.ProfilePosts(c.Request.Context(), viewerID, username, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPostDetail 帖子详情
func (s *PostHandler) GetPostDetail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	detail, err := s.postSvc.GetPostDetail(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// CreatePost 创建帖子，成功后跳转到作者个人主页
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	s.redirectToProfile(c, userID)
}

// UpdatePost 编辑帖子。非作者直接跳回帖子详情页，
// 所有权预检先于请求体解析，提交内容完全不被处理
func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.postSvc.CheckPostOwner(c.Request.Context(), userID, postID)
	if errors.Is(err, service.ErrNotOwner) {
		response.Redirect(c, detailURL(postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, detailURL(postID))
}

// DeletePost 删除帖子。非作者跳回详情页，成功后跳转到作者个人主页
func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.postSvc.DeletePost(c.Request.Context(), userID, postID)
	if errors.Is(err, service.ErrNotOwner) {
		response.Redirect(c, detailURL(postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	s.redirectToProfile(c, userID)
}

func (s *PostHandler) redirectToProfile(c *gin.Context, userID uint64) {
	info, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/api/posts/profile/"+info.Username)
}

func detailURL(postID uint64) string {
	return fmt.Sprintf("/api/posts/detail/%d", postID)
}
