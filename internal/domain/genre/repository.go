package genre

import (
	"context"
)

// Repository 分类仓储接口
// 所有查询只返回未软删除的记录（ExistsByName除外）
type Repository interface {
	Create(ctx context.Context, genre *Genre) error

	// FindByID 不存在或已删除时返回ErrGenreNotFound
	FindByID(ctx context.Context, id uint) (*Genre, error)

	// ExistsByName 名称是否已被占用（含已软删除的记录，与唯一索引一致）
	// excludeID非0时排除该记录自身（用于更新）
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	Update(ctx context.Context, genre *Genre) error

	// Delete 软删除
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, params ListParams) ([]*Genre, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page    int
	Limit   int
	Keyword string // 名称模糊匹配，不区分大小写
	SortBy  string // name | created_at
	Order   string // asc | desc
}

// SortFields 允许排序的字段
var SortFields = []string{"name", "created_at"}
