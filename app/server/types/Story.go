package types

import "time"

type StoryCreateRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	FarmerName string   `json:"farmerName" validate:"required"`
	Location   string   `json:"location"`
	Content    string   `json:"content" validate:"required"`
	Image      string   `json:"image" validate:"omitempty,url"`
	Tags       []string `json:"tags" validate:"max=10,dive,required,max=32"`
}

type StoryInfo struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	FarmerName string    `json:"farmerName"`
	Location   string    `json:"location,omitempty"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StoryResponse struct {
	Success bool       `json:"success"`
	Story   *StoryInfo `json:"story"`
}

type StoryListResponse struct {
	Success bool        `json:"success"`
	Limit   int         `json:"limit"`
	PageMax int64       `json:"pageMax"`
	Stories []StoryInfo `json:"stories"`
}
