package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/pkg/pagination"
)

// ListBooksUseCase 图书列表查询用例
// 支持分页、关键词搜索、白名单排序、按分类过滤
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Page    int
	Limit   int
	Keyword string
	SortBy  string
	Order   string
	GenreID uint // 非0时要求分类存在
}

// ListBooksResponse 分页结果
type ListBooksResponse struct {
	List  []BookResponse
	Total int64
	Page  int
	Limit int
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	p := pagination.New(req.Page, req.Limit)
	params := book.ListParams{
		Page:    p.Page,
		Limit:   p.Limit,
		Keyword: req.Keyword,
		SortBy:  req.SortBy,
		Order:   req.Order,
	}

	var (
		books []*book.Book
		total int64
		err   error
	)
	if req.GenreID != 0 {
		books, total, err = uc.bookService.ListByGenre(ctx, req.GenreID, params)
	} else {
		books, total, err = uc.bookService.List(ctx, params)
	}
	if err != nil {
		return nil, err
	}

	list := make([]BookResponse, len(books))
	for i, b := range books {
		list[i] = *toBookResponse(b)
	}
	return &ListBooksResponse{List: list, Total: total, Page: p.Page, Limit: p.Limit}, nil
}
