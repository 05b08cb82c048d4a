package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

const (
	ctxKeyUserID      = "user_id"
	ctxKeyEmail       = "email"
	ctxKeyClaims      = "claims"
	ctxKeyAccessToken = "access_token"
)

// AuthMiddleware JWT认证中间件
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("")
//	authorized.Use(authMiddleware.RequireAuth())
//
// 缺失、格式错误、已注销、过期、无效或Refresh类型的Token均返回401
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, apperrors.ErrInvalidToken.WithMessage("Token格式错误"))
			return
		}
		tokenString := strings.TrimSpace(parts[1])

		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Abort(c, err)
			return
		}
		if blacklisted {
			response.Abort(c, apperrors.ErrTokenRevoked)
			return
		}

		claims, err := m.jwtManager.ParseAccessToken(tokenString)
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyAccessToken, tokenString)
		c.Next()
	}
}

// GetUserID 当前登录用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if uid, ok := v.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetClaims 当前Token的Claims
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetAccessToken 当前请求携带的Access Token
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxKeyAccessToken)
}
