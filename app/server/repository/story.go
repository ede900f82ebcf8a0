package repository

import (
	"context"
	"gorm.io/gorm"
	"krishi-sathi/app/server/models"
)

type StoryRepository interface {
	Create(ctx context.Context, story *models.SuccessStory) error
	List(ctx context.Context, page Page) ([]models.SuccessStory, int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.SuccessStory) error {
	return translate(r.db.WithContext(ctx).Create(story).Error, "create success story")
}

func (r *storyRepository) List(ctx context.Context, page Page) ([]models.SuccessStory, int64, error) {
	var (
		stories []models.SuccessStory
		count   int64
	)

	if err := page.apply(r.db.WithContext(ctx).Model(&models.SuccessStory{}).Order("created_at DESC")).Find(&stories).Error; err != nil {
		return nil, 0, translate(err, "list success stories")
	}
	if err := r.db.WithContext(ctx).Model(&models.SuccessStory{}).Count(&count).Error; err != nil {
		return nil, 0, translate(err, "count success stories")
	}

	return stories, count, nil
}
