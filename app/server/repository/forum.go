package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"krishi-sathi/app/server/models"
)

type PostFilter struct {
	Category string
	Search   string // 标题包含匹配，大小写不敏感
}

type ForumRepository interface {
	CreatePost(ctx context.Context, post *models.ForumPost) error
	ListPosts(ctx context.Context, filter PostFilter, page Page) ([]models.ForumPost, int64, error)
	FindPost(ctx context.Context, id uint) (*models.ForumPost, error)
	IncrementPostViews(ctx context.Context, id uint) error
	PostExists(ctx context.Context, id uint) (bool, error)
	CreateReply(ctx context.Context, reply *models.ForumReply) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

// withThread 预加载作者和按创建顺序排列的回复
func withThread(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Replies.User")
}

func (r *forumRepository) CreatePost(ctx context.Context, post *models.ForumPost) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error, "create forum post")
}

func (r *forumRepository) filtered(ctx context.Context, filter PostFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.ForumPost{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		q = q.Where("title ILIKE ?", likePattern(filter.Search))
	}
	return q
}

func (r *forumRepository) ListPosts(ctx context.Context, filter PostFilter, page Page) ([]models.ForumPost, int64, error) {
	var (
		posts []models.ForumPost
		count int64
	)

	if err := page.apply(withThread(r.filtered(ctx, filter)).Order("created_at DESC")).Find(&posts).Error; err != nil {
		return nil, 0, translate(err, "list forum posts")
	}
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, translate(err, "count forum posts")
	}

	return posts, count, nil
}

func (r *forumRepository) FindPost(ctx context.Context, id uint) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := withThread(r.db.WithContext(ctx)).First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find forum post %d", id)
	}
	return &post, nil
}

func (r *forumRepository) IncrementPostViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.ForumPost{}).Where("id = ?", id).UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return translate(res.Error, "increment views of forum post %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "increment views of forum post %d", id)
	}
	return nil
}

func (r *forumRepository) PostExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ForumPost{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, "count forum post %d", id)
	}
	return count > 0, nil
}

func (r *forumRepository) CreateReply(ctx context.Context, reply *models.ForumReply) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(reply).Error, "create forum reply")
}
