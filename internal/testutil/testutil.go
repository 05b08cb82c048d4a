// Package testutil 测试辅助：基于临时文件的SQLite数据库和miniredis
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
)

// DatabaseConfig 指向临时目录的SQLite配置
func DatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        filepath.Join(t.TempDir(), "bookstore_test.db"),
		AutoMigrate: true,
	}
}

// NewDB 创建已迁移的测试数据库，测试结束自动关闭
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqldb.NewDB(&config.Config{Database: DatabaseConfig(t)})
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqldb.Close(db) })
	return db
}

// NewRedis 启动miniredis并返回客户端
func NewRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// CreateGenre 直接写入一个分类
func CreateGenre(t *testing.T, db *gorm.DB, name string) *genre.Genre {
	t.Helper()

	g := genre.NewGenre(name)
	require.NoError(t, sqldb.NewGenreRepository(db).Create(context.Background(), g))
	return g
}

// CreateBook 直接写入一本图书
func CreateBook(t *testing.T, db *gorm.DB, genreID uint, title string, price int64, stock int) *book.Book {
	t.Helper()

	b := book.NewBook(title, "佚名", "测试出版社", 2020, "", price, stock, genreID)
	require.NoError(t, sqldb.NewBookRepository(db).Create(context.Background(), b))
	return b
}
