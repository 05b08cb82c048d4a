package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookstore-admin/internal/application/user"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// UserHandler 认证相关HTTP处理器
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
	logoutUseCase   *appuser.LogoutUseCase
	refreshUseCase  *appuser.RefreshTokenUseCase
	profileUseCase  *appuser.GetProfileUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	refreshUseCase *appuser.RefreshTokenUseCase,
	profileUseCase *appuser.GetProfileUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		refreshUseCase:  refreshUseCase,
		profileUseCase:  profileUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=appuser.UserInfo}
// @Failure      400 {object} response.Response "参数错误或密码强度不足"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回Access Token和Refresh Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appuser.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Refresh 刷新Access Token
// @Summary      刷新Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=appuser.RefreshResponse}
// @Failure      401 {object} response.Response "Token无效或已失效"
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 退出登录
// @Summary      退出登录
// @Description  当前Access Token加入黑名单直到过期，并删除会话
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.logoutUseCase.Execute(c.Request.Context(), middleware.GetClaims(c), middleware.GetAccessToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "已退出登录", nil)
}

// Me 当前用户信息
// @Summary      当前用户
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appuser.UserInfo}
// @Router       /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	result, err := h.profileUseCase.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
