package handlers

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/repository"
)

// 内存实现的仓库，只覆盖 handler 用到的语义

func paginate[T any](items []T, page repository.Page) []T {
	if page.All {
		return items
	}
	if page.Offset >= len(items) {
		return []T{}
	}
	end := min(page.Offset+page.Limit, len(items))
	return items[page.Offset:end]
}

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uint]models.User{}}
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user by email: %w", errs.ErrNotFound)
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("find user %d: %w", id, errs.ErrNotFound)
	}
	return &u, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w", errs.ErrConflict)
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleFarmer
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) List(_ context.Context, page repository.Page) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.User
	for _, u := range f.users {
		all = append(all, u)
	}
	slices.SortFunc(all, func(a, b models.User) int { return int(a.ID) - int(b.ID) })
	return paginate(all, page), int64(len(all)), nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, id uint, role models.Role) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("update role of user %d: %w", id, errs.ErrNotFound)
	}
	u.Role = role
	f.users[id] = u
	return &u, nil
}

func (f *fakeUsers) delete(id uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

type fakeArticles struct {
	mu       sync.Mutex
	nextID   uint
	articles []models.Article
}

func (f *fakeArticles) Create(_ context.Context, article *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	article.ID = f.nextID
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.articles = append(f.articles, *article)
	return nil
}

func (f *fakeArticles) List(_ context.Context, filter repository.ArticleFilter, page repository.Page) ([]models.Article, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Article
	for _, a := range slices.Backward(f.articles) {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.AuthorID != 0 && a.AuthorID != filter.AuthorID {
			continue
		}
		matched = append(matched, a)
	}
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeArticles) FindByID(_ context.Context, id uint) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.articles {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("find article %d: %w", id, errs.ErrNotFound)
}

func (f *fakeArticles) Update(_ context.Context, article *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.articles {
		if a.ID == article.ID {
			article.UpdatedAt = time.Now()
			f.articles[i] = *article
			return nil
		}
	}
	return fmt.Errorf("update article %d: %w", article.ID, errs.ErrNotFound)
}

func (f *fakeArticles) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.articles {
		if a.ID == id {
			f.articles = slices.Delete(f.articles, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete article %d: %w", id, errs.ErrNotFound)
}

type fakeForum struct {
	mu      sync.Mutex
	nextID  uint
	posts   []models.ForumPost
	replies []models.ForumReply
}

func (f *fakeForum) CreatePost(_ context.Context, post *models.ForumPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.posts = append(f.posts, *post)
	return nil
}

// thread 要求持有锁
func (f *fakeForum) thread(post models.ForumPost) models.ForumPost {
	post.Replies = nil
	for _, r := range f.replies {
		if r.PostID == post.ID {
			post.Replies = append(post.Replies, r)
		}
	}
	return post
}

func (f *fakeForum) ListPosts(_ context.Context, filter repository.PostFilter, page repository.Page) ([]models.ForumPost, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.ForumPost
	for _, p := range slices.Backward(f.posts) {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, f.thread(p))
	}
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeForum) FindPost(_ context.Context, id uint) (*models.ForumPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			post := f.thread(p)
			return &post, nil
		}
	}
	return nil, fmt.Errorf("find forum post %d: %w", id, errs.ErrNotFound)
}

func (f *fakeForum) IncrementPostViews(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].Views++
			return nil
		}
	}
	return fmt.Errorf("increment views of forum post %d: %w", id, errs.ErrNotFound)
}

func (f *fakeForum) PostExists(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.ContainsFunc(f.posts, func(p models.ForumPost) bool { return p.ID == id }), nil
}

func (f *fakeForum) CreateReply(_ context.Context, reply *models.ForumReply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	reply.ID = f.nextID
	reply.CreatedAt = time.Now()
	f.replies = append(f.replies, *reply)
	return nil
}

type fakeProducts struct {
	mu       sync.Mutex
	nextID   uint
	products []models.Product
}

func (f *fakeProducts) Create(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	product.ID = f.nextID
	product.CreatedAt = time.Now()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProducts) List(_ context.Context, filter repository.ProductFilter, page repository.Page) ([]models.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Product
	for _, p := range slices.Backward(f.products) {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, p)
	}
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeProducts) FindByID(_ context.Context, id uint) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("find product %d: %w", id, errs.ErrNotFound)
}

func (f *fakeProducts) Update(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("update product %d: %w", product.ID, errs.ErrNotFound)
}

func (f *fakeProducts) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == id {
			f.products = slices.Delete(f.products, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete product %d: %w", id, errs.ErrNotFound)
}

type fakeStories struct {
	mu      sync.Mutex
	nextID  uint
	stories []models.SuccessStory
}

func (f *fakeStories) Create(_ context.Context, story *models.SuccessStory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	story.ID = f.nextID
	story.CreatedAt = time.Now()
	f.stories = append(f.stories, *story)
	return nil
}

func (f *fakeStories) List(_ context.Context, page repository.Page) ([]models.SuccessStory, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := slices.Clone(f.stories)
	slices.Reverse(all)
	return paginate(all, page), int64(len(all)), nil
}
