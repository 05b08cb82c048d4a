package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

// CreateBookUseCase 创建图书用例
// 业务规则(分类存在、书名唯一、字段范围)由领域服务负责，这里只做编排
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建请求
type CreateBookRequest struct {
	Title           string
	Writer          string
	Publisher       string
	PublicationYear int
	Description     string
	Price           int64
	StockQuantity   int
	GenreID         uint
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	b := book.NewBook(
		req.Title,
		req.Writer,
		req.Publisher,
		req.PublicationYear,
		req.Description,
		req.Price,
		req.StockQuantity,
		req.GenreID,
	)
	if err := uc.bookService.Create(ctx, b); err != nil {
		return nil, err
	}

	// 回读以带上分类名称
	created, err := uc.bookService.Get(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return toBookResponse(created), nil
}
