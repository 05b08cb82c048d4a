package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,已软删除视为不存在
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ExistsByTitle 书名是否已被占用(含已软删除记录)
	// excludeID非0时排除自身
	ExistsByTitle(ctx context.Context, title string, excludeID uint) (bool, error)

	// Update 写入params中非nil字段对应的列,取值来自book(已规整)
	// 未给出的列保持数据库当前值
	Update(ctx context.Context, book *Book, params UpdateParams) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书(SELECT ... FOR UPDATE)
	// 必须在事务内调用;已软删除的图书返回ErrBookNotFound
	LockByID(ctx context.Context, id uint) (*Book, error)

	// DecrStock 条件扣减库存
	// UPDATE books SET stock_quantity = stock_quantity - ? WHERE id = ? AND stock_quantity >= ?
	// 未命中行时返回ErrInsufficientStock
	DecrStock(ctx context.Context, id uint, quantity int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page    int    // 页码(从1开始)
	Limit   int    // 每页数量
	Keyword string // 搜索关键词(标题、作者、出版社,不区分大小写)
	GenreID uint   // 非0时按分类过滤
	SortBy  string // 见SortFields
	Order   string // asc | desc
}

// SortFields 允许排序的字段
var SortFields = []string{"title", "price", "publication_year", "stock_quantity", "created_at"}
