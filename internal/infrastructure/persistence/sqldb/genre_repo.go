package sqldb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{Name: g.Name}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrGenreDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	g.ID = model.ID
	g.CreatedAt = model.CreatedAt
	g.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	var model GenreModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toGenreEntity(&model), nil
}

// ExistsByName 包含已软删除的记录，与唯一索引保持一致
func (r *genreRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := conn(ctx, r.db).Unscoped().Model(&GenreModel{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询分类失败")
	}
	return count > 0, nil
}

func (r *genreRepository) Update(ctx context.Context, g *genre.Genre) error {
	result := conn(ctx, r.db).Model(&GenreModel{ID: g.ID}).Updates(map[string]interface{}{
		"name":       g.Name,
		"updated_at": g.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return genre.ErrGenreDuplicate
		}
		return apperrors.Wrap(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

// Delete 软删除
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&GenreModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func (r *genreRepository) List(ctx context.Context, params genre.ListParams) ([]*genre.Genre, int64, error) {
	query := conn(ctx, r.db).Model(&GenreModel{})
	if params.Keyword != "" {
		query = query.Where("LOWER(name) LIKE ? "+likeEscape, likePattern(params.Keyword))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类总数失败")
	}

	var models []GenreModel
	err := query.
		Order(orderBy(params.SortBy, params.Order, genre.SortFields, "created_at")).
		Order("id DESC").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	genres := make([]*genre.Genre, len(models))
	for i := range models {
		genres[i] = toGenreEntity(&models[i])
	}
	return genres, total, nil
}

func toGenreEntity(model *GenreModel) *genre.Genre {
	return &genre.Genre{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
