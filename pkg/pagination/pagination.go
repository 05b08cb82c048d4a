package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params 分页参数（page从1开始）
type Params struct {
	Page  int
	Limit int
}

// New 创建分页参数并修正非法值
func New(page, limit int) Params {
	p := Params{Page: page, Limit: limit}
	p.Normalize()
	return p
}

// Normalize page<1取1，limit<1取默认值，limit超过上限截断
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset skip = (page-1) * limit
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages ceil(total / limit)
func (p Params) TotalPages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
