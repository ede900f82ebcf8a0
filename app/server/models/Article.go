package models

import "gorm.io/gorm"

var ArticleCategories = []string{
	"Best Practices",
	"Technology",
	"Soil Health",
	"Crop Management",
	"Market News",
}

type Article struct {
	gorm.Model

	Title      string `gorm:"column:title"`
	Category   string `gorm:"column:category;index"`
	Content    string `gorm:"column:content"`
	CoverImage string `gorm:"column:cover_image"` // 封面地址（上传由外部服务处理）
	ReadTime   int    `gorm:"column:read_time"`   // 预计阅读时间（分钟）
	Views      int64  `gorm:"column:views;default:0"`

	AuthorID uint `gorm:"column:author_id;index"`
	Author   User `gorm:"foreignKey:AuthorID"`
}
