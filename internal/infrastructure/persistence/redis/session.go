package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// SessionStore 会话存储
// Key设计：session:{user_id}、blacklist:{token}
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession 保存用户会话，过期时间与Refresh Token一致
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := sessionKey(userID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, sessionData)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.ErrRedisError.WithMessage("保存会话失败").WithCause(err)
	}
	return nil
}

// GetSession 获取用户会话，不存在时返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, userID uint) (map[string]string, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, apperrors.ErrRedisError.WithMessage("获取会话失败").WithCause(err)
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	return result, nil
}

// DeleteSession 删除用户会话（登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.ErrRedisError.WithMessage("删除会话失败").WithCause(err)
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单，ttl取Token剩余有效期
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithMessage("添加Token到黑名单失败").WithCause(err)
	}
	return nil
}

// IsInBlacklist 检查Token是否在黑名单中
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.ErrRedisError.WithMessage("检查黑名单失败").WithCause(err)
	}
	return exists > 0, nil
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}
