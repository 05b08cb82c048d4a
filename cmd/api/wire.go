//go:build wireinject
// +build wireinject

// 依赖注入声明，wire_gen.go由 `wire gen ./cmd/api` 生成

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	appgenre "github.com/xiebiao/bookstore-admin/internal/application/genre"
	apporder "github.com/xiebiao/bookstore-admin/internal/application/order"
	appuser "github.com/xiebiao/bookstore-admin/internal/application/user"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	providePublisher,
	provideEventPublisher,
	provideBookCache,
	provideCacheInvalidator,
	provideJWTManager,
	redis.NewSessionStore,
)

var repositorySet = wire.NewSet(
	sqldb.NewUserRepository,
	sqldb.NewGenreRepository,
	sqldb.NewBookRepository,
	sqldb.NewOrderRepository,
	sqldb.NewTxManager,
	provideTransactor,
	wire.Bind(new(book.Transactor), new(*sqldb.TxManager)),
)

var domainSet = wire.NewSet(
	user.NewService,
	genre.NewService,
	book.NewService,
)

var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewGetProfileUseCase,
	appgenre.NewCreateGenreUseCase,
	appgenre.NewGetGenreUseCase,
	appgenre.NewUpdateGenreUseCase,
	appgenre.NewDeleteGenreUseCase,
	appgenre.NewListGenresUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewListBooksUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewStatisticsUseCase,
)

var interfaceSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewGenreHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
	newApp,
)

// InitializeApp 组装应用，cleanup按创建的逆序释放资源
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
