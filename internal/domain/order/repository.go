package order

import (
	"context"
)

// Repository 交易仓储接口
// 写操作通过context中的事务执行
type Repository interface {
	// Create 创建交易(含明细),需在事务中调用
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找交易,明细附带图书摘要(含已删除图书)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// List 按创建时间倒序分页查询
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)

	// Statistics 交易数、售出件数、销售额(按明细中的单价快照)
	Statistics(ctx context.Context) (*Statistics, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page   int
	Limit  int
	UserID uint // 非0时只查该用户的交易
}

// EventPublisher 交易事件发布
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *Order) error
}

// CreatedEvent order.created 事件体
type CreatedEvent struct {
	OrderID    uint               `json:"order_id"`
	OrderNo    string             `json:"order_no"`
	UserID     uint               `json:"user_id"`
	TotalPrice int64              `json:"total_price"`
	Items      []CreatedEventItem `json:"items"`
	CreatedAt  int64              `json:"created_at"`
}

type CreatedEventItem struct {
	BookID    uint  `json:"book_id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

// NewCreatedEvent 由交易构造事件
func NewCreatedEvent(o *Order) CreatedEvent {
	items := make([]CreatedEventItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = CreatedEventItem{BookID: item.BookID, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return CreatedEvent{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Items:      items,
		CreatedAt:  o.CreatedAt.Unix(),
	}
}
