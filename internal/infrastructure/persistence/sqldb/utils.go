package sqldb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-admin/pkg/pagination"
)

// isDuplicateError 判断是否为唯一索引冲突
// TranslateError开启后各驱动统一为gorm.ErrDuplicatedKey，文本匹配兜底：
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// orderBy 白名单排序
// 字段不在allowed中时使用fallback；order只接受asc/desc，默认desc
func orderBy(sortBy, order string, allowed []string, fallback string) clause.OrderByColumn {
	column := fallback
	for _, f := range allowed {
		if f == sortBy {
			column = f
			break
		}
	}
	return clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   !strings.EqualFold(order, "asc"),
	}
}

// likeEscape 与likePattern配合使用："LOWER(col) LIKE ? ESCAPE '!'"
const likeEscape = "ESCAPE '!'"

// likePattern 不区分大小写的模糊匹配参数，转义通配符
func likePattern(keyword string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + strings.ToLower(r.Replace(strings.TrimSpace(keyword))) + "%"
}

// paginate 分页scope
func paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	p := pagination.New(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// unscoped 预加载时包含已软删除的记录
func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
