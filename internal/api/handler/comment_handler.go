package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// CreateComment 发表评论，成功后跳回帖子详情页。
// 帖子未公开可见时返回不存在，作者本人也不例外
func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.CreateComment(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, detailURL(postID))
}

// UpdateComment 编辑评论，仅评论作者本人，非作者跳回所属帖子详情页
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	// 所有权预检先于请求体解析，非作者的提交内容完全不被处理
	postID, err := s.commentSvc.CheckCommentOwner(c.Request.Context(), userID, commentID)
	if errors.Is(err, service.ErrNotOwner) {
		response.Redirect(c, detailURL(postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, detailURL(postID))
}

// DeleteComment 删除评论，仅评论作者本人，非作者跳回所属帖子详情页
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	postID, err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID)
	if errors.Is(err, service.ErrNotOwner) {
		response.Redirect(c, detailURL(postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, detailURL(postID))
}
