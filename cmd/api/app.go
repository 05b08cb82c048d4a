package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	apporder "github.com/xiebiao/bookstore-admin/internal/application/order"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
}

func newApp(engine *gin.Engine) *App {
	return &App{Engine: engine}
}

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := sqldb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := sqldb.Close(db); err != nil {
			log.Warn().Err(err).Msg("关闭数据库连接失败")
		}
	}
	return db, cleanup, nil
}

func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("关闭Redis连接失败")
		}
	}
	return client, cleanup, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
}

// provideBookCache cache.enabled=false时不走Redis
func provideBookCache(cfg *config.Config, client *goredis.Client) appbook.Cache {
	if !cfg.Cache.Enabled {
		return appbook.NopCache{}
	}
	return redis.NewBookCache(client, cfg.Cache.DetailTTL)
}

func provideCacheInvalidator(cache appbook.Cache) apporder.CacheInvalidator {
	return cache
}

func provideTransactor(tx *sqldb.TxManager) apporder.Transactor {
	return tx
}

// providePublisher 连接RabbitMQ失败时退化为NoopPublisher，交易不依赖消息队列
func providePublisher(cfg *config.Config) (mq.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return mq.NoopPublisher{}, func() {}, nil
	}

	rabbit, err := mq.NewRabbitPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		log.Warn().Err(err).Msg("消息队列不可用，交易事件将不会发布")
		return mq.NoopPublisher{}, func() {}, nil
	}

	breaker := mq.NewPublisherBreaker("rabbitmq-publisher", cfg.MQ.FailureThreshold, cfg.MQ.OpenTimeout)
	publisher := mq.NewGuardedPublisher(rabbit, breaker, cfg.MQ.PublishTimeout)
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("关闭消息发布者失败")
		}
	}
	return publisher, cleanup, nil
}

func provideEventPublisher(publisher mq.Publisher) order.EventPublisher {
	return messaging.NewOrderEventPublisher(publisher)
}
