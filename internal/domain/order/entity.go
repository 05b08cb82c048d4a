package order

import (
	"time"
)

// Order 交易(聚合根)
// 创建后不可修改;TotalPrice在创建时计算并存储
type Order struct {
	ID         uint
	OrderNo    string // 交易编号,见GenerateOrderNo
	UserID     uint   // 下单用户,只取自Token
	TotalPrice int64  // 总金额(分)
	Items      []OrderItem
	CreatedAt  time.Time
}

// OrderItem 交易明细
// UnitPrice是下单时的单价快照,之后改价不影响历史交易
type OrderItem struct {
	ID        uint
	OrderID   uint
	BookID    uint
	Quantity  int
	UnitPrice int64
	Subtotal  int64

	// Book 图书当前信息(查询时填充,图书可能已被删除)
	Book *BookSummary
}

// BookSummary 明细关联的图书摘要
type BookSummary struct {
	ID    uint
	Title string
	Price int64
}

// NewOrder 创建交易(工厂方法)
// 根据明细计算小计和总额
func NewOrder(orderNo string, userID uint, items []OrderItem) *Order {
	o := &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Items:     items,
		CreatedAt: time.Now(),
	}
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].UnitPrice * int64(o.Items[i].Quantity)
	}
	o.TotalPrice = o.CalculateTotal()
	return o
}

// CalculateTotal 计算总额
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// TotalQuantity 总件数
func (o *Order) TotalQuantity() int64 {
	var n int64
	for _, item := range o.Items {
		n += int64(item.Quantity)
	}
	return n
}

// LineItem 下单请求中的一行
type LineItem struct {
	BookID   uint
	Quantity int
}

// MergeLineItems 校验并合并重复图书
// 同一本书出现多次时数量累加,保持首次出现的顺序
func MergeLineItems(items []LineItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	merged := make([]LineItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if item.BookID == 0 {
			return nil, ErrInvalidBookID
		}
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[item.BookID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.BookID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}

// Statistics 销售统计
type Statistics struct {
	TotalTransactions int64
	TotalBooksSold    int64
	TotalRevenue      int64
}
