package models

import "gorm.io/gorm"

var ProductCategories = []string{
	"Seeds",
	"Tools",
	"Fertilizers",
	"Livestock",
}

type Product struct {
	gorm.Model

	Name        string  `gorm:"column:name;index"`
	Category    string  `gorm:"column:category;index"`
	Price       float64 `gorm:"column:price"`
	Unit        string  `gorm:"column:unit"`
	Description string  `gorm:"column:description"`
	Image       string  `gorm:"column:image"`
	Rating      float64 `gorm:"column:rating"`

	SellerID uint `gorm:"column:seller_id;index"`
	Seller   User `gorm:"foreignKey:SellerID"`
}
