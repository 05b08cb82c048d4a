// bookstore 书店后台管理服务
//
//	bookstore serve --config config/config.yaml
//	bookstore migrate
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// @title        Bookstore Admin API
// @version      1.0
// @description  书店后台管理：分类、图书、交易与销售统计
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "bookstore",
		Short:         "书店后台管理服务",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml）")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "启动HTTP服务",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "执行数据库迁移",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(configPath)
			},
		},
	)
	return root
}

// setup 加载配置并初始化日志
func setup(configPath string) (*config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "加载配置失败:", err)
		return nil, nil, err
	}

	closeLog, err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "初始化日志失败:", err)
		return nil, nil, err
	}
	return cfg, func() { _ = closeLog() }, nil
}

func runServe(ctx context.Context, configPath string) error {
	cfg, closeLog, err := setup(configPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			log.Error().Err(err).Msg("初始化链路追踪失败")
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdownTracer(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("关闭TracerProvider失败")
			}
		}()
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Error().Err(err).Msg("初始化应用失败")
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("mode", cfg.Server.Mode).
			Str("db_driver", cfg.Database.Driver).
			Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("服务异常退出")
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("服务关闭超时")
		return err
	}
	log.Info().Msg("服务已关闭")
	return nil
}

func runMigrate(configPath string) error {
	cfg, closeLog, err := setup(configPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg.Database.AutoMigrate = false
	db, err := sqldb.NewDB(cfg)
	if err != nil {
		log.Error().Err(err).Msg("连接数据库失败")
		return err
	}
	defer sqldb.Close(db)

	if err := sqldb.AutoMigrate(db); err != nil {
		log.Error().Err(err).Msg("数据库迁移失败")
		return err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("数据库迁移完成")
	return nil
}
