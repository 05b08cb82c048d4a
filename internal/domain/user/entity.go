package user

import (
	"time"
)

// User 用户实体（聚合根）
// 密码为bcrypt哈希值，领域实体不带GORM tag
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, username string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
