package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
// 返回应用层DTO，不包含密码
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

// GetProfileUseCase 当前用户信息
type GetProfileUseCase struct {
	userService user.Service
}

// NewGetProfileUseCase 创建用例
func NewGetProfileUseCase(userService user.Service) *GetProfileUseCase {
	return &GetProfileUseCase{userService: userService}
}

// Execute 查询用户
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

// =========================================
// 应用层DTO
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Username string
}

// UserInfo 用户信息
type UserInfo struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
