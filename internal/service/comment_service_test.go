package service_test

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://blog.example.com"

func newCommentService(postRepo *fakePostRepo, commentRepo *fakeCommentRepo, mail *fakeMailSender) service.CommentService {
	return service.NewCommentService(
		commentRepo,
		postRepo,
		&fakeUserRepo{users: []*model.User{alice, bob}},
		mail,
		testBaseURL,
	)
}

func TestCreateCommentNotifiesPostAuthor(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	commentRepo := &fakeCommentRepo{}
	mail := &fakeMailSender{}
	svc := newCommentService(postRepo, commentRepo, mail)

	err := svc.CreateComment(context.Background(), bob.ID, 1, &dto.CommentBaseDTO{Text: "nice post"})
	require.NoError(t, err)

	require.Len(t, commentRepo.comments, 1)
	assert.Equal(t, "nice post", commentRepo.comments[0].Text)
	assert.Equal(t, bob.ID, commentRepo.comments[0].AuthorID)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, alice.Email, mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, bob.Username)
	assert.Contains(t, mail.sent[0].body, testBaseURL+"/api/posts/detail/1")
}

func TestCreateCommentOnOwnPostSkipsNotification(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	commentRepo := &fakeCommentRepo{}
	mail := &fakeMailSender{}
	svc := newCommentService(postRepo, commentRepo, mail)

	err := svc.CreateComment(context.Background(), alice.ID, 1, &dto.CommentBaseDTO{Text: "note to self"})
	require.NoError(t, err)
	assert.Len(t, commentRepo.comments, 1)
	assert.Empty(t, mail.sent)
}

func TestCreateCommentRejectsInvisiblePosts(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), false),      // 草稿
		newPost(2, alice, techCategory, now.Add(time.Hour), true),        // 未到发布时间
		newPost(3, alice, hiddenCategory, now.Add(-time.Hour), true),     // 分类未发布
	}}
	commentRepo := &fakeCommentRepo{}
	svc := newCommentService(postRepo, commentRepo, &fakeMailSender{})
	ctx := context.Background()

	// 作者本人同样不能评论自己的草稿
	for _, postID := range []uint64{1, 2, 3} {
		err := svc.CreateComment(ctx, alice.ID, postID, &dto.CommentBaseDTO{Text: "hi"})
		assert.ErrorIs(t, err, service.ErrPostNotFound)
	}
	err := svc.CreateComment(ctx, bob.ID, 1, &dto.CommentBaseDTO{Text: "hi"})
	assert.ErrorIs(t, err, service.ErrPostNotFound)

	err = svc.CreateComment(ctx, bob.ID, 42, &dto.CommentBaseDTO{Text: "hi"})
	assert.ErrorIs(t, err, service.ErrPostNotFound)

	assert.Empty(t, commentRepo.comments)
}

func TestCreateCommentSurvivesMailFailure(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	commentRepo := &fakeCommentRepo{}
	mail := &fakeMailSender{err: errors.New("smtp unreachable")}
	svc := newCommentService(postRepo, commentRepo, mail)

	err := svc.CreateComment(context.Background(), bob.ID, 1, &dto.CommentBaseDTO{Text: "still works"})
	require.NoError(t, err)
	assert.Len(t, commentRepo.comments, 1)
}

func TestCheckCommentOwner(t *testing.T) {
	commentRepo := &fakeCommentRepo{comments: []*model.Comment{
		{ID: 1, PostID: 7, AuthorID: bob.ID, Text: "original"},
	}}
	svc := newCommentService(&fakePostRepo{}, commentRepo, &fakeMailSender{})
	ctx := context.Background()

	postID, err := svc.CheckCommentOwner(ctx, bob.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), postID)

	postID, err = svc.CheckCommentOwner(ctx, alice.ID, 1)
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.Equal(t, uint64(7), postID)

	_, err = svc.CheckCommentOwner(ctx, bob.ID, 42)
	assert.ErrorIs(t, err, service.ErrCommentNotFound)
}

func TestUpdateCommentOnlyAuthor(t *testing.T) {
	commentRepo := &fakeCommentRepo{comments: []*model.Comment{
		{ID: 1, PostID: 7, AuthorID: bob.ID, Text: "original"},
	}}
	svc := newCommentService(&fakePostRepo{}, commentRepo, &fakeMailSender{})
	ctx := context.Background()

	postID, err := svc.UpdateComment(ctx, alice.ID, 1, &dto.CommentBaseDTO{Text: "hijacked"})
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.Equal(t, uint64(7), postID)
	assert.Empty(t, commentRepo.updated)

	postID, err = svc.UpdateComment(ctx, bob.ID, 1, &dto.CommentBaseDTO{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), postID)
	require.Len(t, commentRepo.updated, 1)
	assert.Equal(t, "edited", commentRepo.updated[0].Text)

	_, err = svc.UpdateComment(ctx, bob.ID, 42, &dto.CommentBaseDTO{Text: "missing"})
	assert.ErrorIs(t, err, service.ErrCommentNotFound)
}

func TestDeleteCommentOnlyAuthor(t *testing.T) {
	commentRepo := &fakeCommentRepo{comments: []*model.Comment{
		{ID: 1, PostID: 7, AuthorID: bob.ID, Text: "original"},
	}}
	svc := newCommentService(&fakePostRepo{}, commentRepo, &fakeMailSender{})
	ctx := context.Background()

	postID, err := svc.DeleteComment(ctx, alice.ID, 1)
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.Equal(t, uint64(7), postID)
	assert.Empty(t, commentRepo.deleted)

	postID, err = svc.DeleteComment(ctx, bob.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), postID)
	assert.Equal(t, []uint64{1}, commentRepo.deleted)
}
