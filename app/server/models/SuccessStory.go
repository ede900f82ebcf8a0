package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SuccessStory struct {
	gorm.Model

	Title      string         `gorm:"column:title"`
	FarmerName string         `gorm:"column:farmer_name"`
	Location   string         `gorm:"column:location"`
	Content    string         `gorm:"column:content"`
	Image      string         `gorm:"column:image"`
	Tags       pq.StringArray `gorm:"column:tags;type:text[]"`
}
