package book

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

// UpdateBookUseCase 部分更新图书
type UpdateBookUseCase struct {
	bookService book.Service
	cache       Cache
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(bookService book.Service, cache Cache) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService, cache: cache}
}

// Execute 更新数据库后删除缓存
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, params book.UpdateParams) (*BookResponse, error) {
	if _, err := uc.bookService.Update(ctx, id, params); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, id)

	updated, err := uc.bookService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(updated), nil
}

// DeleteBookUseCase 软删除图书
type DeleteBookUseCase struct {
	bookService book.Service
	cache       Cache
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(bookService book.Service, cache Cache) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, cache: cache}
}

// Execute 删除后清理缓存
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, id)
	return nil
}

func invalidate(ctx context.Context, cache Cache, ids ...uint) {
	if err := cache.Delete(ctx, ids...); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uints("book_ids", ids).Msg("删除图书缓存失败")
	}
}
