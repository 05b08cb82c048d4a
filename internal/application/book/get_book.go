package book

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// GetBookUseCase 图书详情(Cache-Aside)
// 缓存故障只降级为查库，不影响请求
type GetBookUseCase struct {
	bookService book.Service
	cache       Cache
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(bookService book.Service, cache Cache) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService, cache: cache}
}

// Execute 先查缓存，未命中查数据库并按版本回填
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBook")
	defer span.End()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	logger := log.Ctx(ctx)

	cached, version, err := uc.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.RecordCacheResult("book", "error")
		logger.Warn().Err(err).Uint("book_id", id).Msg("读取图书缓存失败")
	case cached != nil:
		metrics.RecordCacheResult("book", "hit")
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return toBookResponse(cached), nil
	default:
		metrics.RecordCacheResult("book", "miss")
	}

	b, err := uc.bookService.Get(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	stored, err := uc.cache.Set(ctx, b, version)
	switch {
	case err != nil:
		logger.Warn().Err(err).Uint("book_id", id).Msg("写入图书缓存失败")
	case !stored:
		logger.Debug().Uint("book_id", id).Msg("查询期间缓存已失效，跳过回填")
	}
	return toBookResponse(b), nil
}
