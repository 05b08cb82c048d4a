package dto

// RegisterRequest 注册请求
// 密码强度、用户名长度由领域服务校验
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@bookstore.com"`
	Password string `json:"password" binding:"required" example:"Passw0rd"`
	Username string `json:"username" binding:"required" example:"admin"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@bookstore.com"`
	Password string `json:"password" binding:"required" example:"Passw0rd"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
