package inits

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"krishi-sathi/app/server/config"
	"krishi-sathi/app/server/models"
)

var ErrNoAdmin = errors.New("database has no users, set ADMIN_EMAIL and ADMIN_PASSWORD to create the first admin")

func DB(cfg *config.Config) (*gorm.DB, error) {
	return openDB(postgres.Open(cfg.System.DBConnectionString), cfg)
}

func openDB(dialector gorm.Dialector, cfg *config.Config) (db *gorm.DB, err error) {
	// 打开连接（唯一索引冲突会被翻译为 gorm.ErrDuplicatedKey）
	if db, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.ForumPost{},
		&models.ForumReply{},
		&models.Product{},
		&models.SuccessStory{},
	)
}

func initData(db *gorm.DB, cfg *config.Config) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，使用配置中的账号添加初始管理员
		if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
			return ErrNoAdmin
		}

		// 创建密码
		var password string
		if password, err = argon2id.CreateHash(cfg.Admin.Password, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Name:     "Platform Admin",
			Email:    cfg.Admin.Email,
			Role:     models.RoleAdmin,
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
