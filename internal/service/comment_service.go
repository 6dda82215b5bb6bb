package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

// MailSender 通知投递口，实现见 internal/pkg/mail
type MailSender interface {
	Send(to string, subject string, body string) error
}

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, postID uint64, req *dto.CommentBaseDTO) error
	CheckCommentOwner(ctx context.Context, userID uint64, commentID uint64) (uint64, error)
	UpdateComment(ctx context.Context, userID uint64, commentID uint64, req *dto.CommentBaseDTO) (uint64, error)
	DeleteComment(ctx context.Context, userID uint64, commentID uint64) (uint64, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	mail        MailSender
	baseURL     string
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	mail MailSender,
	baseURL string,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		mail:        mail,
		baseURL:     baseURL,
	}
}

// CreateComment 发表评论。
// 目标帖子必须公开可见（已发布、发布时间不晚于当前、分类已发布），
// 作者本人也不能评论自己的草稿。评论成功后给帖子作者发邮件通知，
// 投递失败仅记录日志，不影响评论结果。
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uint64, postID uint64, req *dto.CommentBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || !post.Visible(time.Now()) {
		return ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     req.Text,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return err
	}

	if post.AuthorID != userID {
		s.notifyPostAuthor(ctx, userID, post)
	}
	return nil
}

// CheckCommentOwner 所有权预检。handler 在解析提交内容之前调用，
// 返回所属帖子 ID 供非作者跳转
func (s *commentServiceImpl) CheckCommentOwner(ctx context.Context, userID uint64, commentID uint64) (uint64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return comment.PostID, ErrNotOwner
	}
	return comment.PostID, nil
}

// UpdateComment 编辑评论，仅评论作者本人。返回所属帖子 ID 供跳转
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID uint64, commentID uint64, req *dto.CommentBaseDTO) (uint64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return comment.PostID, ErrNotOwner
	}

	comment.Text = req.Text
	if err := s.commentRepo.UpdateComment(ctx, comment); err != nil {
		return 0, err
	}
	return comment.PostID, nil
}

// DeleteComment 删除评论，仅评论作者本人。返回所属帖子 ID 供跳转
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, commentID uint64) (uint64, error) {
	postID, err := s.CheckCommentOwner(ctx, userID, commentID)
	if err != nil {
		return postID, err
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return 0, err
	}
	return postID, nil
}

// notifyPostAuthor 给帖子作者发新评论通知，尽力而为，失败不向上传播
func (s *commentServiceImpl) notifyPostAuthor(ctx context.Context, commenterID uint64, post *model.Post) {
	commenter, err := s.userRepo.GetUserById(ctx, commenterID)
	if err != nil || commenter == nil {
		log.WarnContext(ctx, "comment notification skipped, commenter lookup failed",
			"commenter_id", commenterID, "err", err)
		return
	}

	postURL := fmt.Sprintf("%s/api/posts/detail/%d", s.baseURL, post.ID)
	subject := "New comment"
	body := fmt.Sprintf("用户 %s 评论了你的帖子《%s》。\n查看评论：%s",
		commenter.Username, post.Title, postURL)

	if err := s.mail.Send(post.Author.Email, subject, body); err != nil {
		log.WarnContext(ctx, "comment notification delivery failed",
			"post_id", post.ID, "recipient", post.Author.Email, "err", err)
	}
}
