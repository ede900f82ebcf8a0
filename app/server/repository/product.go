package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"krishi-sathi/app/server/models"
)

type ProductFilter struct {
	Category string // 大小写不敏感的包含匹配
	Search   string // 名称包含匹配
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context, filter ProductFilter, page Page) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error, "create product")
}

func (r *productRepository) filtered(ctx context.Context, filter ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.Category != "" {
		q = q.Where("category ILIKE ?", likePattern(filter.Category))
	}
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", likePattern(filter.Search))
	}
	return q
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter, page Page) ([]models.Product, int64, error) {
	var (
		products []models.Product
		count    int64
	)

	if err := page.apply(r.filtered(ctx, filter).Preload("Seller").Order("created_at DESC")).Find(&products).Error; err != nil {
		return nil, 0, translate(err, "list products")
	}
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, translate(err, "count products")
	}

	return products, count, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Seller").First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find product %d", id)
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error, "update product %d", product.ID)
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete product %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete product %d", id)
	}
	return nil
}
