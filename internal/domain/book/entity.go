package book

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Book 图书实体(聚合根)
// 价格使用int64存储最小货币单位(分),避免浮点数精度问题
type Book struct {
	ID              uint
	Title           string // 书名(唯一)
	Writer          string // 作者
	Publisher       string // 出版社
	PublicationYear int    // 出版年份
	Description     string
	Price           int64 // 单价(分)
	StockQuantity   int   // 库存
	GenreID         uint
	GenreName       string // 仅查询时填充
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, writer, publisher string, year int, description string, price int64, stock int, genreID uint) *Book {
	now := time.Now()
	return &Book{
		Title:           strings.TrimSpace(title),
		Writer:          strings.TrimSpace(writer),
		Publisher:       strings.TrimSpace(publisher),
		PublicationYear: year,
		Description:     description,
		Price:           price,
		StockQuantity:   stock,
		GenreID:         genreID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UpdateParams 部分更新,nil表示不修改
type UpdateParams struct {
	Title           *string
	Writer          *string
	Publisher       *string
	PublicationYear *int
	Description     *string
	Price           *int64
	StockQuantity   *int
	GenreID         *uint
}

// Apply 应用部分更新
func (b *Book) Apply(p UpdateParams) {
	if p.Title != nil {
		b.Title = strings.TrimSpace(*p.Title)
	}
	if p.Writer != nil {
		b.Writer = strings.TrimSpace(*p.Writer)
	}
	if p.Publisher != nil {
		b.Publisher = strings.TrimSpace(*p.Publisher)
	}
	if p.PublicationYear != nil {
		b.PublicationYear = *p.PublicationYear
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.StockQuantity != nil {
		b.StockQuantity = *p.StockQuantity
	}
	if p.GenreID != nil {
		b.GenreID = *p.GenreID
	}
	b.UpdatedAt = time.Now()
}

// Validate 校验实体字段
// 出版年份范围:1000 ~ 明年(允许预售)
func (b *Book) Validate(now time.Time) error {
	if n := utf8.RuneCountInString(b.Title); n < 1 || n > 255 {
		return ErrInvalidTitle
	}
	if b.Writer == "" || b.Publisher == "" {
		return ErrMissingAuthorship
	}
	if utf8.RuneCountInString(b.Writer) > MaxAuthorshipLength || utf8.RuneCountInString(b.Publisher) > MaxAuthorshipLength {
		return ErrAuthorshipTooLong
	}
	if b.PublicationYear < MinPublicationYear || b.PublicationYear > now.Year()+1 {
		return ErrInvalidYear
	}
	if b.Price <= 0 {
		return ErrInvalidPrice
	}
	if b.StockQuantity < 0 {
		return ErrInvalidStock
	}
	if b.GenreID == 0 {
		return ErrGenreRequired
	}
	return nil
}

// HasStock 库存是否满足需求
func (b *Book) HasStock(quantity int) bool {
	return b.StockQuantity >= quantity
}

const (
	// MinPublicationYear 最早出版年份
	MinPublicationYear = 1000
	// MaxAuthorshipLength 作者、出版社最大字符数,与列宽一致
	MaxAuthorshipLength = 100
)
