package order

import (
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
)

// OrderResponse 交易DTO
type OrderResponse struct {
	ID         uint                `json:"id"`
	OrderNo    string              `json:"order_no"`
	UserID     uint                `json:"user_id"`
	TotalPrice int64               `json:"total_price"` // 分
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// OrderItemResponse 明细
// UnitPrice是下单时价格，Book.Price是图书当前价格
type OrderItemResponse struct {
	BookID    uint                 `json:"book_id"`
	Title     string               `json:"title"`
	Quantity  int                  `json:"quantity"`
	UnitPrice int64                `json:"unit_price"`
	Subtotal  int64                `json:"subtotal"`
	Book      *BookSummaryResponse `json:"book,omitempty"`
}

type BookSummaryResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

// StatisticsResponse 销售统计
type StatisticsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	TotalBooksSold    int64 `json:"total_books_sold"`
	TotalRevenue      int64 `json:"total_revenue"`
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if item.Book != nil {
			items[i].Title = item.Book.Title
			items[i].Book = &BookSummaryResponse{ID: item.Book.ID, Title: item.Book.Title, Price: item.Book.Price}
		}
	}
	return &OrderResponse{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}
