package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"krishi-sathi/app/server/models"
)

type ArticleFilter struct {
	Category string
	AuthorID uint
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	List(ctx context.Context, filter ArticleFilter, page Page) ([]models.Article, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error, "create article")
}

func (r *articleRepository) filtered(ctx context.Context, filter ArticleFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Article{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	return q
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter, page Page) ([]models.Article, int64, error) {
	var (
		articles []models.Article
		count    int64
	)

	if err := page.apply(r.filtered(ctx, filter).Preload("Author").Order("created_at DESC")).Find(&articles).Error; err != nil {
		return nil, 0, translate(err, "list articles")
	}
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, translate(err, "count articles")
	}

	return articles, count, nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Preload("Author").First(&article, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find article %d", id)
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error, "update article %d", article.ID)
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete article %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete article %d", id)
	}
	return nil
}
