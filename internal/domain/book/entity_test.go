package book

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBook() *Book {
	return NewBook("  Go语言实战 ", "William", "人民邮电出版社", 2016, "", 5900, 10, 1)
}

func TestNewBook_TrimsText(t *testing.T) {
	b := validBook()
	assert.Equal(t, "Go语言实战", b.Title)
	assert.NoError(t, b.Validate(time.Now()))
}

func TestBook_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(b *Book)
		want   error
	}{
		{"空书名", func(b *Book) { b.Title = "" }, ErrInvalidTitle},
		{"缺少作者", func(b *Book) { b.Writer = "" }, ErrMissingAuthorship},
		{"出版社过长", func(b *Book) { b.Publisher = strings.Repeat("社", 101) }, ErrAuthorshipTooLong},
		{"作者100字合法", func(b *Book) { b.Writer = strings.Repeat("名", 100) }, nil},
		{"年份过早", func(b *Book) { b.PublicationYear = 999 }, ErrInvalidYear},
		{"年份超过明年", func(b *Book) { b.PublicationYear = 2027 }, ErrInvalidYear},
		{"价格为0", func(b *Book) { b.Price = 0 }, ErrInvalidPrice},
		{"库存为负", func(b *Book) { b.StockQuantity = -1 }, ErrInvalidStock},
		{"未指定分类", func(b *Book) { b.GenreID = 0 }, ErrGenreRequired},
		{"明年出版合法", func(b *Book) { b.PublicationYear = 2026 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)
			err := b.Validate(now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Same(t, tt.want, err)
		})
	}
}

func TestBook_Apply(t *testing.T) {
	b := validBook()
	price := int64(6900)
	title := " 新书名 "

	b.Apply(UpdateParams{Price: &price, Title: &title})

	assert.Equal(t, int64(6900), b.Price)
	assert.Equal(t, "新书名", b.Title)
	assert.Equal(t, 10, b.StockQuantity, "未传字段保持不变")
	assert.True(t, b.HasStock(10))
	assert.False(t, b.HasStock(11))
}
