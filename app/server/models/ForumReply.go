package models

import "gorm.io/gorm"

type ForumReply struct {
	gorm.Model

	PostID  uint   `gorm:"column:post_id;index"`
	Message string `gorm:"column:message"`

	UserID uint `gorm:"column:user_id;index"`
	User   User `gorm:"foreignKey:UserID"`
}
