package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

const tracerName = "bookstore-admin/application/book"

// Cache 图书详情缓存
type Cache interface {
	// Get 未命中时图书为nil；version为当前失效版本，回填时原样传给Set
	Get(ctx context.Context, id uint) (b *book.Book, version int64, err error)
	// Set 期间发生过Delete则放弃写入
	Set(ctx context.Context, b *book.Book, version int64) (bool, error)
	Delete(ctx context.Context, ids ...uint) error
}

// NopCache 未启用缓存时使用
type NopCache struct{}

func (NopCache) Get(context.Context, uint) (*book.Book, int64, error) { return nil, 0, nil }
func (NopCache) Set(context.Context, *book.Book, int64) (bool, error) { return false, nil }
func (NopCache) Delete(context.Context, ...uint) error                { return nil }

// BookResponse 图书DTO
type BookResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Writer          string    `json:"writer"`
	Publisher       string    `json:"publisher"`
	PublicationYear int       `json:"publication_year"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"` // 价格(分)
	StockQuantity   int       `json:"stock_quantity"`
	GenreID         uint      `json:"genre_id"`
	GenreName       string    `json:"genre_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Writer:          b.Writer,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Description:     b.Description,
		Price:           b.Price,
		StockQuantity:   b.StockQuantity,
		GenreID:         b.GenreID,
		GenreName:       b.GenreName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
