// Package router 组装Gin引擎：全局中间件、路由分组、运维端点
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookstore-admin/docs"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// slowRequestThreshold 超过该耗时的请求记录为warn
const slowRequestThreshold = time.Second

// Handlers 路由依赖的全部处理器
type Handlers struct {
	User  *handler.UserHandler
	Genre *handler.GenreHandler
	Book  *handler.BookHandler
	Order *handler.OrderHandler
}

// New 创建Gin引擎
//
// 中间件顺序：Recovery → Logger → Tracing → Metrics → CORS → RateLimit
func New(cfg *config.Config, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Recovery(), middleware.Logger(slowRequestThreshold))
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound.WithMessage("接口不存在"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Response{Success: false, Message: "方法不允许"})
	})

	api := r.Group("")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL).Middleware())
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.User.Register)
		authGroup.POST("/login", h.User.Login)
		authGroup.POST("/refresh", h.User.Refresh)
		authGroup.POST("/logout", auth.RequireAuth(), h.User.Logout)
		authGroup.GET("/me", auth.RequireAuth(), h.User.Me)
	}

	authorized := api.Group("")
	authorized.Use(auth.RequireAuth())

	genres := authorized.Group("/genres")
	{
		genres.POST("", h.Genre.Create)
		genres.GET("", h.Genre.List)
		genres.GET("/:id", h.Genre.Get)
		genres.PATCH("/:id", h.Genre.Update)
		genres.DELETE("/:id", h.Genre.Delete)
	}

	books := authorized.Group("/books")
	{
		books.POST("", h.Book.Create)
		books.GET("", h.Book.List)
		books.GET("/genre/:genre_id", h.Book.ListByGenre)
		books.GET("/:id", h.Book.Get)
		books.PATCH("/:id", h.Book.Update)
		books.DELETE("/:id", h.Book.Delete)
	}

	transactions := authorized.Group("/transactions")
	{
		transactions.POST("", h.Order.Create)
		transactions.GET("", h.Order.List)
		transactions.GET("/statistics", h.Order.Statistics)
		transactions.GET("/:id", h.Order.Get)
	}

	return r
}
