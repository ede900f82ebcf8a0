package models

import "gorm.io/gorm"

var ForumCategories = []string{
	"Crop Management",
	"Pest Control",
	"Soil Health",
	"Trending",
	"Announcements",
}

type ForumPost struct {
	gorm.Model

	Title    string `gorm:"column:title"`
	Body     string `gorm:"column:body"`
	Category string `gorm:"column:category;index"`
	Views    int64  `gorm:"column:views;default:0"`

	UserID uint `gorm:"column:user_id;index"`
	User   User `gorm:"foreignKey:UserID"`

	Replies []ForumReply `gorm:"foreignKey:PostID"` // 按创建顺序排列
}
