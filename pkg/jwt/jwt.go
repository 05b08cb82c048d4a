package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

const issuer = "bookstore-admin"

// TokenType 区分Access Token与Refresh Token，防止Refresh Token被当作Access Token使用
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Manager JWT管理器
// 双Token机制：Access Token（短期）用于API鉴权，Refresh Token（长期）用于换取新的Access Token
type Manager struct {
	secret             []byte
	accessTokenExpire  time.Duration
	refreshTokenExpire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire, refreshTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:             []byte(secret),
		accessTokenExpire:  accessTokenExpire,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// Claims 自定义JWT Claims
type Claims struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair Token对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Access Token有效期（秒）
}

// RefreshTokenExpire Refresh Token有效期（会话TTL与之一致）
func (m *Manager) RefreshTokenExpire() time.Duration {
	return m.refreshTokenExpire
}

// GenerateToken 生成Token对
func (m *Manager) GenerateToken(userID uint, email, username string) (*TokenPair, error) {
	now := time.Now()

	access, err := m.sign(Claims{
		UserID:    userID,
		Email:     email,
		Username:  username,
		TokenType: TokenTypeAccess,
	}, now, m.accessTokenExpire)
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Access Token失败")
	}

	refresh, err := m.sign(Claims{
		UserID:    userID,
		Email:     email,
		Username:  username,
		TokenType: TokenTypeRefresh,
	}, now, m.refreshTokenExpire)
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Refresh Token失败")
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(m.accessTokenExpire.Seconds()),
	}, nil
}

// ParseToken 解析并验证Token（签名、exp、nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// ParseAccessToken 解析Access Token，拒绝Refresh Token
func (m *Manager) ParseAccessToken(tokenString string) (*Claims, error) {
	return m.parseTyped(tokenString, TokenTypeAccess)
}

// RefreshAccessToken 使用Refresh Token换取新的Access Token
func (m *Manager) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := m.parseTyped(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	token, err := m.sign(Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Username:  claims.Username,
		TokenType: TokenTypeAccess,
	}, time.Now(), m.accessTokenExpire)
	if err != nil {
		return "", apperrors.Wrap(err, "刷新Token失败")
	}
	return token, nil
}

// RemainingTTL Token剩余有效期（用于黑名单过期时间）
func RemainingTTL(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 0 {
		return 0
	}
	return ttl
}

func (m *Manager) parseTyped(tokenString string, want TokenType) (*Claims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) sign(claims Claims, now time.Time, ttl time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
