package types

import "time"

type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,product_category"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string  `json:"category" validate:"omitempty,product_category"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Unit        *string  `json:"unit" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type ProductInfo struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Rating      float64   `json:"rating"`
	Seller      UserBrief `json:"seller"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Product *ProductInfo `json:"product"`
}

type ProductListResponse struct {
	Success  bool          `json:"success"`
	Limit    int           `json:"limit"`
	PageMax  int64         `json:"pageMax"`
	Products []ProductInfo `json:"product"`
}
