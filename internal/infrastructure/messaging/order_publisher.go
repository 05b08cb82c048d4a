// Package messaging 领域事件到消息队列的适配
package messaging

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

// RoutingKeyOrderCreated 交易创建事件
const RoutingKeyOrderCreated = "order.created"

// OrderEventPublisher 实现order.EventPublisher
type OrderEventPublisher struct {
	publisher mq.Publisher
}

func NewOrderEventPublisher(publisher mq.Publisher) *OrderEventPublisher {
	return &OrderEventPublisher{publisher: publisher}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	return p.publisher.Publish(ctx, RoutingKeyOrderCreated, order.NewCreatedEvent(o))
}
