package service_test

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = &model.User{ID: 1, Username: "alice", Email: "alice@example.com", Nickname: "Alice"}
	bob   = &model.User{ID: 2, Username: "bob", Email: "bob@example.com"}

	techCategory   = &model.Category{ID: 1, Title: "Tech", Slug: "tech", IsPublished: true}
	hiddenCategory = &model.Category{ID: 2, Title: "Hidden", Slug: "hidden", IsPublished: false}
)

func newPost(id uint64, author *model.User, category *model.Category, pubDate time.Time, published bool) *model.Post {
	return &model.Post{
		ID:          id,
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: published,
		Author:      *author,
		Category:    *category,
	}
}

func newPostService(postRepo *fakePostRepo, commentRepo *fakeCommentRepo) service.PostService {
	return service.NewPostService(
		postRepo,
		&fakeCategoryRepo{categories: []*model.Category{techCategory, hiddenCategory}},
		commentRepo,
		&fakeUserRepo{users: []*model.User{alice, bob}},
	)
}

func TestHomePostsFiltersAndOrders(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-3*time.Hour), true),
		newPost(2, alice, techCategory, now.Add(-time.Hour), false),         // 草稿
		newPost(3, bob, techCategory, now.Add(time.Hour), true),             // 未到发布时间
		newPost(4, bob, hiddenCategory, now.Add(-2*time.Hour), true),        // 分类未发布
		newPost(5, bob, techCategory, now.Add(-time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.HomePosts(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, page.List, 2)
	assert.Equal(t, uint64(5), page.List[0].ID)
	assert.Equal(t, uint64(1), page.List[1].ID)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "bob", page.List[0].AuthorUsername)
	assert.Equal(t, "tech", page.List[0].CategorySlug)
}

func TestHomePostsSamePubDateBreaksTiesByNewestID(t *testing.T) {
	now := time.Now()
	pubDate := now.Add(-time.Hour)
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, pubDate, true),
		newPost(2, alice, techCategory, pubDate, true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.HomePosts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.List, 2)
	assert.Equal(t, uint64(2), page.List[0].ID)
	assert.Equal(t, uint64(1), page.List[1].ID)
}

func TestHomePostsOverflowPageClampsToLast(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{}
	for i := 1; i <= 25; i++ {
		postRepo.posts = append(postRepo.posts,
			newPost(uint64(i), alice, techCategory, now.Add(-time.Duration(i)*time.Minute), true))
	}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.HomePosts(context.Background(), 99)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.List, 5)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestCategoryPosts(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
		newPost(2, bob, hiddenCategory, now.Add(-time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.CategoryPosts(context.Background(), "tech", 1)
	require.NoError(t, err)
	assert.Equal(t, "tech", page.Category.Slug)
	require.Len(t, page.Posts.List, 1)
	assert.Equal(t, uint64(1), page.Posts.List[0].ID)
}

func TestCategoryPostsUnpublishedCategoryNotFound(t *testing.T) {
	svc := newPostService(&fakePostRepo{}, &fakeCommentRepo{})

	_, err := svc.CategoryPosts(context.Background(), "hidden", 1)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)

	_, err = svc.CategoryPosts(context.Background(), "no-such-slug", 1)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestProfilePostsOwnerSeesEverything(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
		newPost(2, alice, techCategory, now.Add(-time.Minute), false),   // 草稿
		newPost(3, alice, techCategory, now.Add(time.Hour), true),       // 未到发布时间
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.ProfilePosts(context.Background(), alice.ID, "alice", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.TotalPosts)
	assert.Len(t, page.Posts.List, 3)
	assert.Equal(t, "alice", page.Profile.Username)
	assert.Empty(t, page.Profile.Email)
}

func TestProfilePostsVisitorSeesOnlyPublic(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
		newPost(2, alice, techCategory, now.Add(-time.Minute), false),
		newPost(3, alice, techCategory, now.Add(time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	page, err := svc.ProfilePosts(context.Background(), bob.ID, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalPosts)
	require.Len(t, page.Posts.List, 1)
	assert.Equal(t, uint64(1), page.Posts.List[0].ID)

	// 匿名访客与其他用户同样只能看到公开部分
	page, err = svc.ProfilePosts(context.Background(), 0, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalPosts)
}

func TestProfilePostsUnknownUser(t *testing.T) {
	svc := newPostService(&fakePostRepo{}, &fakeCommentRepo{})
	_, err := svc.ProfilePosts(context.Background(), 0, "nobody", 1)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestGetPostDetailAccess(t *testing.T) {
	now := time.Now()
	visible := newPost(1, alice, techCategory, now.Add(-time.Hour), true)
	draft := newPost(2, alice, techCategory, now.Add(-time.Hour), false)
	scheduled := newPost(3, alice, techCategory, now.Add(time.Hour), true)

	postRepo := &fakePostRepo{posts: []*model.Post{visible, draft, scheduled}}
	svc := newPostService(postRepo, &fakeCommentRepo{})
	ctx := context.Background()

	tests := []struct {
		name        string
		viewerID    uint64
		postID      uint64
		wantErr     error
		wantComment bool
	}{
		{"visitor reads public post", bob.ID, 1, nil, true},
		{"anonymous reads public post", 0, 1, nil, true},
		{"author previews own draft", alice.ID, 2, nil, false},
		{"author previews scheduled post", alice.ID, 3, nil, false},
		{"visitor cannot read draft", bob.ID, 2, service.ErrPostNotFound, false},
		{"visitor cannot read scheduled post", bob.ID, 3, service.ErrPostNotFound, false},
		{"missing post", bob.ID, 42, service.ErrPostNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := svc.GetPostDetail(ctx, tt.viewerID, tt.postID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.postID, detail.Post.ID)
			assert.Equal(t, tt.wantComment, detail.CanComment)
		})
	}
}

func TestGetPostDetailIncludesCommentsInOrder(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	commentRepo := &fakeCommentRepo{comments: []*model.Comment{
		{ID: 2, PostID: 1, AuthorID: bob.ID, Text: "second", CreatedAt: now.Add(-time.Minute), Author: *bob},
		{ID: 1, PostID: 1, AuthorID: bob.ID, Text: "first", CreatedAt: now.Add(-2 * time.Minute), Author: *bob},
		{ID: 3, PostID: 99, AuthorID: bob.ID, Text: "other post", CreatedAt: now, Author: *bob},
	}}
	svc := newPostService(postRepo, commentRepo)

	detail, err := svc.GetPostDetail(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "first", detail.Comments[0].Text)
	assert.Equal(t, "second", detail.Comments[1].Text)
	assert.Equal(t, "bob", detail.Comments[0].AuthorUsername)
}

func TestCreatePost(t *testing.T) {
	postRepo := &fakePostRepo{}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	id, err := svc.CreatePost(context.Background(), alice.ID, &dto.PostBaseDTO{
		Title:      "hello",
		Text:       "body",
		CategoryID: techCategory.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	require.Len(t, postRepo.posts, 1)
	created := postRepo.posts[0]
	assert.Equal(t, alice.ID, created.AuthorID)
	assert.True(t, created.IsPublished)
	assert.WithinDuration(t, time.Now(), created.PubDate, time.Minute)
}

func TestCreatePostFuturePubDateKept(t *testing.T) {
	postRepo := &fakePostRepo{}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	future := time.Now().Add(48 * time.Hour)
	draft := false
	_, err := svc.CreatePost(context.Background(), alice.ID, &dto.PostBaseDTO{
		Title:       "scheduled",
		Text:        "body",
		CategoryID:  techCategory.ID,
		PubDate:     &future,
		IsPublished: &draft,
	})
	require.NoError(t, err)

	created := postRepo.posts[0]
	assert.True(t, created.PubDate.Equal(future))
	assert.False(t, created.IsPublished)
}

func TestCreatePostUnknownCategory(t *testing.T) {
	svc := newPostService(&fakePostRepo{}, &fakeCommentRepo{})
	_, err := svc.CreatePost(context.Background(), alice.ID, &dto.PostBaseDTO{
		Title:      "hello",
		Text:       "body",
		CategoryID: 99,
	})
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestCheckPostOwner(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})
	ctx := context.Background()

	assert.NoError(t, svc.CheckPostOwner(ctx, alice.ID, 1))
	assert.ErrorIs(t, svc.CheckPostOwner(ctx, bob.ID, 1), service.ErrNotOwner)
	assert.ErrorIs(t, svc.CheckPostOwner(ctx, alice.ID, 42), service.ErrPostNotFound)
}

func TestUpdatePostOnlyAuthor(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	err := svc.UpdatePost(context.Background(), bob.ID, 1, &dto.PostBaseDTO{
		Title:      "hijacked",
		Text:       "body",
		CategoryID: techCategory.ID,
	})
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.Empty(t, postRepo.updated)

	err = svc.UpdatePost(context.Background(), alice.ID, 1, &dto.PostBaseDTO{
		Title:      "edited",
		Text:       "body",
		CategoryID: techCategory.ID,
	})
	require.NoError(t, err)
	require.Len(t, postRepo.updated, 1)
	assert.Equal(t, "edited", postRepo.updated[0].Title)
}

func TestDeletePostOnlyAuthor(t *testing.T) {
	now := time.Now()
	postRepo := &fakePostRepo{posts: []*model.Post{
		newPost(1, alice, techCategory, now.Add(-time.Hour), true),
	}}
	svc := newPostService(postRepo, &fakeCommentRepo{})

	err := svc.DeletePost(context.Background(), bob.ID, 1)
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.Empty(t, postRepo.deleted)

	err = svc.DeletePost(context.Background(), alice.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, postRepo.deleted)

	err = svc.DeletePost(context.Background(), alice.ID, 42)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}
