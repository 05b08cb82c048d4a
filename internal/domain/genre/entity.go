package genre

import (
	"strings"
	"time"
)

// Genre 图书分类
// 软删除后不再出现在任何查询中，但历史图书仍保留genre_id引用
type Genre struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre 创建分类
func NewGenre(name string) *Genre {
	now := time.Now()
	return &Genre{
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename 修改名称
func (g *Genre) Rename(name string) {
	g.Name = strings.TrimSpace(name)
	g.UpdatedAt = time.Now()
}
