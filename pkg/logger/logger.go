// Package logger 基于zerolog的结构化日志
//
// 进程启动时调用一次Init，之后统一使用：
//   - log.Info()/log.Error()：全局日志
//   - log.Ctx(ctx)：请求级日志（携带request_id等字段，由中间件注入）
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// New 按配置创建Logger
// 返回的close函数用于关闭日志文件（输出到stdout/stderr时为空操作）
func New(opts Options) (zerolog.Logger, func() error, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	out, closeFn, err := openOutput(opts.Output)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var w io.Writer = out
	if strings.EqualFold(opts.Format, "console") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime, NoColor: out != os.Stdout && out != os.Stderr}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.EnableCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), closeFn, nil
}

// Init 初始化全局Logger
// 同时设置zerolog.DefaultContextLogger，未注入请求logger的ctx也能正常输出
func Init(opts Options) (func() error, error) {
	l, closeFn, err := New(opts)
	if err != nil {
		return nil, err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return closeFn, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}
	return l, nil
}

func openOutput(output string) (*os.File, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, f.Close, nil
}
