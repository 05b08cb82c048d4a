package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  path: /tmp/bookstore-test.db
jwt:
  secret: test-secret
  access_token_expire: 30m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:/tmp/bookstore-test.db?_foreign_keys=on&_busy_timeout=5000", cfg.Database.DSN())
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpire)

	// 未配置的键取默认值
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpire)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr())
	assert.Equal(t, 10*time.Minute, cfg.Cache.DetailTTL)
	assert.Equal(t, "topic", cfg.MQ.ExchangeType)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "database:\n  password: from-file\n")
	t.Setenv("BOOKSTORE_DATABASE_PASSWORD", "from-env")
	t.Setenv("BOOKSTORE_SERVER_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"不支持的驱动", "database:\n  driver: oracle\n"},
		{"端口越界", "server:\n  port: 70000\n"},
		{"生产环境默认密钥", "server:\n  mode: release\n"},
		{"限流参数无效", "rate_limit:\n  enabled: true\n  rps: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	mysql := DatabaseConfig{
		Driver: "mysql", User: "root", Password: "pw", Host: "db", Port: 3306,
		DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", mysql.DSN())

	pg := DatabaseConfig{
		Driver: "postgres", User: "postgres", Password: "pw", Host: "db", Port: 5432,
		DBName: "bookstore", SSLMode: "disable", Loc: "UTC",
	}
	assert.Equal(t, "host=db port=5432 user=postgres password=pw dbname=bookstore sslmode=disable TimeZone=UTC", pg.DSN())
}
