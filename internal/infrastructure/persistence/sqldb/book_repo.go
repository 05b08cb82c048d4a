package sqldb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// bookRepository 图书仓储实现
// 负责领域实体与GORM模型之间的转换，数据库错误转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := conn(ctx, r.db).Preload("Genre", unscoped).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// ExistsByTitle 包含已软删除的记录
func (r *bookRepository) ExistsByTitle(ctx context.Context, title string, excludeID uint) (bool, error) {
	query := conn(ctx, r.db).Unscoped().Model(&BookModel{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Update 只更新params给出的列，库存等未修改的列不会被旧值覆盖
func (r *bookRepository) Update(ctx context.Context, b *book.Book, params book.UpdateParams) error {
	result := conn(ctx, r.db).Model(&BookModel{ID: b.ID}).Updates(updateColumns(b, params))
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 软删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 分页查询
// 关键词在书名、作者、出版社中不区分大小写匹配
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := conn(ctx, r.db).Model(&BookModel{})
	if params.GenreID != 0 {
		query = query.Where("genre_id = ?", params.GenreID)
	}
	if params.Keyword != "" {
		kw := likePattern(params.Keyword)
		query = query.Where(
			"LOWER(title) LIKE ? "+likeEscape+" OR LOWER(writer) LIKE ? "+likeEscape+" OR LOWER(publisher) LIKE ? "+likeEscape,
			kw, kw, kw,
		)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	var models []BookModel
	err := query.
		Preload("Genre", unscoped).
		Order(orderBy(params.SortBy, params.Order, book.SortFields, "created_at")).
		Order("id DESC").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// LockByID SELECT ... FOR UPDATE
// 必须使用事务DB，锁在事务提交或回滚时释放
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// DecrStock 条件扣减，库存不足时不修改任何行
func (r *bookRepository) DecrStock(ctx context.Context, id uint, quantity int) error {
	result := conn(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "扣减库存失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrInsufficientStock
	}
	return nil
}

// updateColumns map方式更新，零值也会写入
func updateColumns(b *book.Book, p book.UpdateParams) map[string]interface{} {
	cols := map[string]interface{}{"updated_at": b.UpdatedAt}
	if p.Title != nil {
		cols["title"] = b.Title
	}
	if p.Writer != nil {
		cols["writer"] = b.Writer
	}
	if p.Publisher != nil {
		cols["publisher"] = b.Publisher
	}
	if p.PublicationYear != nil {
		cols["publication_year"] = b.PublicationYear
	}
	if p.Description != nil {
		cols["description"] = b.Description
	}
	if p.Price != nil {
		cols["price"] = b.Price
	}
	if p.StockQuantity != nil {
		cols["stock_quantity"] = b.StockQuantity
	}
	if p.GenreID != nil {
		cols["genre_id"] = b.GenreID
	}
	return cols
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		Writer:          b.Writer,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Description:     b.Description,
		Price:           b.Price,
		StockQuantity:   b.StockQuantity,
		GenreID:         b.GenreID,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		Writer:          model.Writer,
		Publisher:       model.Publisher,
		PublicationYear: model.PublicationYear,
		Description:     model.Description,
		Price:           model.Price,
		StockQuantity:   model.StockQuantity,
		GenreID:         model.GenreID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Genre != nil {
		b.GenreName = model.Genre.Name
	}
	return b
}
