package repository

import (
	"context"
	"gorm.io/gorm"
	"krishi-sathi/app/server/models"
)

// UserRepository 是凭据存储，邮箱唯一性由数据库唯一索引保证
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error) // 不加载密码 hash
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, page Page) ([]models.User, int64, error)
	UpdateRole(ctx context.Context, id uint, role models.Role) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err, "find user by email")
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Omit("password").First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find user %d", id)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "create user")
}

func (r *userRepository) List(ctx context.Context, page Page) ([]models.User, int64, error) {
	var (
		users []models.User
		count int64
	)

	if err := page.apply(r.db.WithContext(ctx).Model(&models.User{}).Order("id ASC")).Find(&users).Error; err != nil {
		return nil, 0, translate(err, "list users")
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, translate(err, "count users")
	}

	return users, count, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role models.Role) (*models.User, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return nil, translate(res.Error, "update role of user %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "update role of user %d", id)
	}
	return r.FindByID(ctx, id)
}

