package types

import "time"

type ArticleCreateRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Category   string `json:"category" validate:"required,article_category"`
	Content    string `json:"content" validate:"required"`
	CoverImage string `json:"coverImage" validate:"omitempty,url"`
}

// ArticleUpdateRequest 只更新出现的字段
type ArticleUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	Category   *string `json:"category" validate:"omitempty,article_category"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
}

type ArticleInfo struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage,omitempty"`
	ReadTime   int       `json:"readTime"`
	Views      int64     `json:"views"`
	Author     UserBrief `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ArticleResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Article *ArticleInfo `json:"article"`
}

type ArticleListResponse struct {
	Success  bool          `json:"success"`
	Limit    int           `json:"limit"`
	PageMax  int64         `json:"pageMax"`
	Articles []ArticleInfo `json:"article"`
}
