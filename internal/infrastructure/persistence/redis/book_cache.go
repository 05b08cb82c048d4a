package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

// BookCache 图书详情缓存(Cache-Aside)
// 先查缓存，未命中查数据库后回填；更新、删除、下单扣库存后删除缓存
//
// 每本书另有一个失效版本号，Delete时递增。回填只在版本与查库前读到的一致时写入，
// 查库期间发生过失效的旧数据不会写回缓存
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// versionTTL 版本号保留时间，远大于一次查库的耗时
const versionTTL = 24 * time.Hour

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// Get 同时返回当前失效版本；缓存未命中时图书为nil
func (c *BookCache) Get(ctx context.Context, id uint) (*book.Book, int64, error) {
	vals, err := c.client.MGet(ctx, bookKey(id), versionKey(id)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("获取缓存失败: %w", err)
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		return nil, 0, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, nil
	}

	var b book.Book
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, version, fmt.Errorf("反序列化失败: %w", err)
	}
	return &b, version, nil
}

// Set 版本未变化时写入缓存，返回是否写入
func (c *BookCache) Set(ctx context.Context, b *book.Book, version int64) (bool, error) {
	val, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("序列化失败: %w", err)
	}

	vkey := versionKey(b.ID)
	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bookKey(b.ID), val, c.ttl)
			return nil
		})
		stored = err == nil
		return err
	}, vkey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("设置缓存失败: %w", err)
	}
	return stored, nil
}

// Delete 删除缓存并递增失效版本
func (c *BookCache) Delete(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = bookKey(id)
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		for _, id := range ids {
			pipe.Incr(ctx, versionKey(id))
			pipe.Expire(ctx, versionKey(id), versionTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

func parseVersion(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("缓存版本格式错误: %w", err)
	}
	return n, nil
}

// bookKey 格式：bookstore:book:{id}
func bookKey(id uint) string {
	return fmt.Sprintf("bookstore:book:%d", id)
}

// versionKey 格式：bookstore:book:{id}:ver
func versionKey(id uint) string {
	return fmt.Sprintf("bookstore:book:%d:ver", id)
}
