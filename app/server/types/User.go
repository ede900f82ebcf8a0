package types

import "time"

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=128"`
	Phone       string `json:"phone" validate:"required,max=32"`
	Role        string `json:"role" validate:"omitempty,eq=farmer"` // 更高的角色只能由管理员授予
	Region      string `json:"region" validate:"required"`
	FarmingType string `json:"farmingType" validate:"required"`
	Avatar      string `json:"avatar" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RoleUpdateRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// UserInfo 是对外展示的用户资料，不包含密码
type UserInfo struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Phone       string    `json:"phone,omitempty"`
	Region      string    `json:"region"`
	FarmingType string    `json:"farmingType"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserBrief 用于在文章、帖子与商品里展示作者
type UserBrief struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type UserResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *UserInfo `json:"user"`
}

type UserListResponse struct {
	Success bool       `json:"success"`
	Limit   int        `json:"limit"`
	PageMax int64      `json:"pageMax"`
	Users   []UserInfo `json:"users"`
}
