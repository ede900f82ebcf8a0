package models

import "gorm.io/gorm"

type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model

	// 基础信息
	Name  string `gorm:"column:name;not null"`              // 显示名称
	Email string `gorm:"column:email;uniqueIndex;not null"` // 邮箱，全局唯一（由数据库保证）
	Role  Role   `gorm:"column:role;default:farmer"`        // 角色

	// 个人资料
	Phone       []byte `gorm:"column:phone"`        // 手机号，使用 EncryptSecretKey 加密储存
	Region      string `gorm:"column:region"`       // 所在地区
	FarmingType string `gorm:"column:farming_type"` // 种植类型
	Avatar      string `gorm:"column:avatar"`       // 头像地址

	// 登录认证相关
	Password string `gorm:"column:password;not null" json:"-"` // 密码，使用 argon2id 储存，会话校验加载的用户不包含此字段
}
