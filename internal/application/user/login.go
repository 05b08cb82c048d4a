package user

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 1. 验证邮箱密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Username)
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"username": u.Username,
		"login_at": time.Now().Unix(),
		"ip":       req.ClientIP,
	}
	// 会话有效期 = Refresh Token有效期
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.jwtManager.RefreshTokenExpire()); err != nil {
		// 会话保存失败不影响登录；刷新Token时会要求重新登录
		log.Ctx(ctx).Warn().Err(err).Uint("user_id", u.ID).Msg("保存会话失败")
	}

	return &LoginResponse{
		User:         *toUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// 删除会话（Refresh Token随之失效），Access Token加入黑名单直到过期
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *jwt.Claims, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, claims.UserID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, jwt.RemainingTTL(claims))
}

// RefreshTokenUseCase 刷新Access Token
type RefreshTokenUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewRefreshTokenUseCase 创建刷新用例
func NewRefreshTokenUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

// Execute 会话已删除（登出后）的Refresh Token不能再换取Access Token
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := uc.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	if _, err := uc.sessionStore.GetSession(ctx, claims.UserID); err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeUnauthorized {
			return nil, apperrors.ErrTokenRevoked
		}
		return nil, err
	}

	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{AccessToken: accessToken}, nil
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
	ClientIP string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
