package types

import "time"

type PostCreateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"required,forum_category"`
}

type ReplyCreateRequest struct {
	PostID  uint   `json:"postId" validate:"required"`
	Message string `json:"message" validate:"required,max=4000"`
}

type ReplyInfo struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	Message   string    `json:"message"`
	User      UserBrief `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostInfo struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	Category  string      `json:"category"`
	Views     int64       `json:"views"`
	User      UserBrief   `json:"user"`
	Replies   []ReplyInfo `json:"replies"`
	CreatedAt time.Time   `json:"createdAt"`
}

type PostResponse struct {
	Success bool      `json:"success"`
	Post    *PostInfo `json:"post"`
}

type PostListResponse struct {
	Success bool       `json:"success"`
	Limit   int        `json:"limit"`
	PageMax int64      `json:"pageMax"`
	Posts   []PostInfo `json:"posts"`
}

type ReplyResponse struct {
	Success bool       `json:"success"`
	Reply   *ReplyInfo `json:"reply"`
}
