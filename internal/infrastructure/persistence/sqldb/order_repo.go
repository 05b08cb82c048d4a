package sqldb

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// orderRepository 交易仓储实现
// 明细和图书摘要通过Preload加载，避免N+1查询
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建交易仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建交易，GORM同时写入Items
// order_no唯一索引冲突返回ErrOrderNoDuplicate
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return order.ErrOrderNoDuplicate
		}
		return apperrors.Wrap(err, "创建交易失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// FindByID 明细关联的图书包含已软删除的记录
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := conn(ctx, r.db).Preload("Items.Book", unscoped).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询交易失败")
	}
	return toOrderEntity(&model), nil
}

// List 按created_at DESC, id DESC排序
func (r *orderRepository) List(ctx context.Context, params order.ListParams) ([]*order.Order, int64, error) {
	query := conn(ctx, r.db).Model(&OrderModel{})
	if params.UserID != 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询交易总数失败")
	}

	var models []OrderModel
	err := query.
		Preload("Items.Book", unscoped).
		Order("created_at DESC").
		Order("id DESC").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询交易列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// Statistics 销售额按明细中的单价快照计算
func (r *orderRepository) Statistics(ctx context.Context) (*order.Statistics, error) {
	db := conn(ctx, r.db)

	var stats order.Statistics
	if err := db.Model(&OrderModel{}).Count(&stats.TotalTransactions).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计交易数失败")
	}

	var row struct {
		BooksSold int64
		Revenue   int64
	}
	err := db.Model(&OrderItemModel{}).
		Select("COALESCE(SUM(quantity), 0) AS books_sold, COALESCE(SUM(quantity * unit_price), 0) AS revenue").
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计销售额失败")
	}

	stats.TotalBooksSold = row.BooksSold
	stats.TotalRevenue = row.Revenue
	return &stats, nil
}

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return &OrderModel{
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

func toOrderEntity(model *OrderModel) *order.Order {
	sort.Slice(model.Items, func(i, j int) bool { return model.Items[i].ID < model.Items[j].ID })

	items := make([]order.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if item.Book != nil {
			items[i].Book = &order.BookSummary{
				ID:    item.Book.ID,
				Title: item.Book.Title,
				Price: item.Book.Price,
			}
		}
	}

	return &order.Order{
		ID:         model.ID,
		OrderNo:    model.OrderNo,
		UserID:     model.UserID,
		TotalPrice: model.TotalPrice,
		Items:      items,
		CreatedAt:  model.CreatedAt,
	}
}
