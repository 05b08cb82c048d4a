package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, closeFn, err := New(Options{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info().Msg("被过滤")
	l.Warn().Str("book_id", "7").Msg("库存偏低")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry), "只应有一行warn日志")
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "7", entry["book_id"])
	assert.Equal(t, "库存偏低", entry["message"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Options{Level: "verbose"})
	assert.Error(t, err)
}

func TestInit_SetsGlobalLevel(t *testing.T) {
	closeFn, err := Init(Options{Level: "debug", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	defer closeFn()

	assert.NotNil(t, zerolog.DefaultContextLogger)
	assert.Equal(t, zerolog.DebugLevel, zerolog.DefaultContextLogger.GetLevel())
}
