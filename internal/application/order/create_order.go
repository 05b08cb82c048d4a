package order

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const (
	tracerName = "bookstore-admin/application/order"

	// maxOrderNoAttempts 交易编号冲突时的最大尝试次数
	maxOrderNoAttempts = 3
)

// Transactor 事务执行器（sqldb.TxManager）
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheInvalidator 库存变化后删除图书缓存
type CacheInvalidator interface {
	Delete(ctx context.Context, ids ...uint) error
}

// CreateOrderUseCase 创建交易用例
// 锁定、校验、创建、扣减在同一个事务中完成
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	tx        Transactor
	cache     CacheInvalidator
	publisher order.EventPublisher

	newOrderNo func() string
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	tx Transactor,
	cache CacheInvalidator,
	publisher order.EventPublisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:  orderRepo,
		bookRepo:   bookRepo,
		tx:         tx,
		cache:      cache,
		publisher:  publisher,
		newOrderNo: order.GenerateOrderNo,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID uint // 只取自Token
	Items  []order.LineItem
}

// Execute 执行下单
//
// 防止超卖:
//  1. 按图书ID升序 SELECT ... FOR UPDATE 锁定所有图书（固定加锁顺序，避免死锁）
//  2. 全部明细校验库存，任何一项不足则整体失败
//  3. 创建交易（单价快照）
//  4. UPDATE ... WHERE stock_quantity >= ? 条件扣减，未命中即库存不足
//  5. COMMIT释放锁；任何错误回滚，不留下交易也不改库存
//
// 交易编号冲突时整个事务回滚，换新编号重试
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateOrder")
	defer span.End()

	lines, err := order.MergeLineItems(req.Items)
	if err != nil {
		uc.fail(ctx, start, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	ids := make([]uint, len(lines))
	for i, line := range lines {
		ids[i] = line.BookID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	span.SetAttributes(attribute.Int("order.lines", len(lines)))

	var created *order.Order
	for attempt := 1; ; attempt++ {
		created, err = uc.reserve(ctx, req.UserID, lines, ids)
		if !errors.Is(err, order.ErrOrderNoDuplicate) || attempt == maxOrderNoAttempts {
			break
		}
		log.Ctx(ctx).Warn().Int("attempt", attempt).Msg("交易编号冲突，重新生成")
	}
	if err != nil {
		uc.fail(ctx, start, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	uc.afterCommit(ctx, created, ids)
	metrics.RecordOrderCreated(created.TotalQuantity(), created.TotalPrice, time.Since(start))
	span.SetAttributes(
		attribute.Int64("order.id", int64(created.ID)),
		attribute.Int64("order.total_price", created.TotalPrice),
	)

	log.Ctx(ctx).Info().
		Uint("order_id", created.ID).
		Str("order_no", created.OrderNo).
		Uint("user_id", created.UserID).
		Int64("total_price", created.TotalPrice).
		Msg("交易创建成功")

	return toOrderResponse(created), nil
}

// reserve 在一个事务内锁定图书、创建交易并扣减库存
func (uc *CreateOrderUseCase) reserve(ctx context.Context, userID uint, lines []order.LineItem, ids []uint) (*order.Order, error) {
	var created *order.Order
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		locked := make(map[uint]*book.Book, len(ids))
		for _, id := range ids {
			b, err := uc.bookRepo.LockByID(txCtx, id)
			if err != nil {
				return err
			}
			locked[id] = b
		}

		items := make([]order.OrderItem, len(lines))
		for i, line := range lines {
			b := locked[line.BookID]
			if !b.HasStock(line.Quantity) {
				return book.ErrInsufficientStock.Withf("图书《%s》库存不足，当前库存：%d，需要：%d",
					b.Title, b.StockQuantity, line.Quantity)
			}
			items[i] = order.OrderItem{
				BookID:    b.ID,
				Quantity:  line.Quantity,
				UnitPrice: b.Price,
				Book:      &order.BookSummary{ID: b.ID, Title: b.Title, Price: b.Price},
			}
		}

		o := order.NewOrder(uc.newOrderNo(), userID, items)
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		for _, line := range lines {
			if err := uc.bookRepo.DecrStock(txCtx, line.BookID, line.Quantity); err != nil {
				return err
			}
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// afterCommit 提交后的附带操作，失败只记录日志
func (uc *CreateOrderUseCase) afterCommit(ctx context.Context, o *order.Order, bookIDs []uint) {
	logger := log.Ctx(ctx)

	if err := uc.cache.Delete(ctx, bookIDs...); err != nil {
		logger.Warn().Err(err).Uints("book_ids", bookIDs).Msg("删除图书缓存失败")
	}
	if err := uc.publisher.PublishOrderCreated(ctx, o); err != nil {
		logger.Warn().Err(err).Uint("order_id", o.ID).Msg("发布交易事件失败")
	}
}

func (uc *CreateOrderUseCase) fail(ctx context.Context, start time.Time, err error) {
	reason := failureReason(err)
	metrics.RecordOrderFailed(reason, time.Since(start))
	log.Ctx(ctx).Debug().Err(err).Str("reason", reason).Msg("交易创建失败")
}

// failureReason 指标标签
func failureReason(err error) string {
	if errors.Is(err, book.ErrInsufficientStock) {
		return "insufficient_stock"
	}
	switch apperrors.GetAppError(err).HTTPStatus() {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "internal"
	}
}
