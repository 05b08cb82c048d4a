package genre

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/pkg/pagination"
)

// GenreResponse 分类DTO
type GenreResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListGenresRequest 列表查询
type ListGenresRequest struct {
	Page    int
	Limit   int
	Keyword string
	SortBy  string
	Order   string
}

// ListGenresResponse 分页结果
type ListGenresResponse struct {
	List  []GenreResponse
	Total int64
	Page  int
	Limit int
}

// CreateGenreUseCase 创建分类
type CreateGenreUseCase struct {
	genreService genre.Service
}

func NewCreateGenreUseCase(genreService genre.Service) *CreateGenreUseCase {
	return &CreateGenreUseCase{genreService: genreService}
}

func (uc *CreateGenreUseCase) Execute(ctx context.Context, name string) (*GenreResponse, error) {
	g, err := uc.genreService.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return toGenreResponse(g), nil
}

// GetGenreUseCase 分类详情
type GetGenreUseCase struct {
	genreService genre.Service
}

func NewGetGenreUseCase(genreService genre.Service) *GetGenreUseCase {
	return &GetGenreUseCase{genreService: genreService}
}

func (uc *GetGenreUseCase) Execute(ctx context.Context, id uint) (*GenreResponse, error) {
	g, err := uc.genreService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGenreResponse(g), nil
}

// UpdateGenreUseCase 修改分类名称
type UpdateGenreUseCase struct {
	genreService genre.Service
}

func NewUpdateGenreUseCase(genreService genre.Service) *UpdateGenreUseCase {
	return &UpdateGenreUseCase{genreService: genreService}
}

func (uc *UpdateGenreUseCase) Execute(ctx context.Context, id uint, name string) (*GenreResponse, error) {
	g, err := uc.genreService.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return toGenreResponse(g), nil
}

// DeleteGenreUseCase 软删除分类
type DeleteGenreUseCase struct {
	genreService genre.Service
}

func NewDeleteGenreUseCase(genreService genre.Service) *DeleteGenreUseCase {
	return &DeleteGenreUseCase{genreService: genreService}
}

func (uc *DeleteGenreUseCase) Execute(ctx context.Context, id uint) error {
	return uc.genreService.Delete(ctx, id)
}

// ListGenresUseCase 分类列表
type ListGenresUseCase struct {
	genreService genre.Service
}

func NewListGenresUseCase(genreService genre.Service) *ListGenresUseCase {
	return &ListGenresUseCase{genreService: genreService}
}

func (uc *ListGenresUseCase) Execute(ctx context.Context, req ListGenresRequest) (*ListGenresResponse, error) {
	p := pagination.New(req.Page, req.Limit)

	genres, total, err := uc.genreService.List(ctx, genre.ListParams{
		Page:    p.Page,
		Limit:   p.Limit,
		Keyword: req.Keyword,
		SortBy:  req.SortBy,
		Order:   req.Order,
	})
	if err != nil {
		return nil, err
	}

	list := make([]GenreResponse, len(genres))
	for i, g := range genres {
		list[i] = *toGenreResponse(g)
	}
	return &ListGenresResponse{List: list, Total: total, Page: p.Page, Limit: p.Limit}, nil
}

func toGenreResponse(g *genre.Genre) *GenreResponse {
	return &GenreResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
