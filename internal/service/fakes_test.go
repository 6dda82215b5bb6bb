package service_test

import (
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"
	"sort"
	"time"
)

// 内存假仓储，按与 SQL 层相同的过滤和排序语义实现，供服务层测试使用

type fakePostRepo struct {
	posts   []*model.Post
	queries []repository.PostQuery
	updated []*model.Post
	deleted []uint64
	nextID  uint64
}

func (f *fakePostRepo) match(p *model.Post, q repository.PostQuery) bool {
	if q.CategoryID > 0 && p.CategoryID != q.CategoryID {
		return false
	}
	if q.AuthorID > 0 && p.AuthorID != q.AuthorID {
		return false
	}
	if q.OnlyVisible && !p.Visible(q.Now) {
		return false
	}
	return true
}

func (f *fakePostRepo) ListPosts(_ context.Context, q repository.PostQuery) ([]*model.Post, error) {
	f.queries = append(f.queries, q)

	var matched []*model.Post
	for _, p := range f.posts {
		if f.match(p, q) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PubDate.Equal(matched[j].PubDate) {
			return matched[i].PubDate.After(matched[j].PubDate)
		}
		return matched[i].ID > matched[j].ID
	})

	if q.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (f *fakePostRepo) CountPosts(_ context.Context, q repository.PostQuery) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if f.match(p, q) {
			count++
		}
	}
	return count, nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.updated = append(f.updated, post)
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePostRepo) PurgeDeleted(_ context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (f *fakeCategoryRepo) GetCategoryBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetCategoryById(_ context.Context, id uint64) (*model.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
	updated  []*model.Comment
	deleted  []uint64
	nextID   uint64
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) ListCommentsByPost(_ context.Context, postID uint64) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeCommentRepo) UpdateComment(_ context.Context, comment *model.Comment) error {
	f.updated = append(f.updated, comment)
	return nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailSender struct {
	sent []sentMail
	err  error
}

func (f *fakeMailSender) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
