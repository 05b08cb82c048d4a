package genre

import (
	"context"
	"unicode/utf8"
)

// Service 分类领域服务
type Service interface {
	Create(ctx context.Context, name string) (*Genre, error)
	Get(ctx context.Context, id uint) (*Genre, error)
	Update(ctx context.Context, id uint, name string) (*Genre, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params ListParams) ([]*Genre, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建分类，名称唯一
func (s *service) Create(ctx context.Context, name string) (*Genre, error) {
	g := NewGenre(name)
	if err := validateName(g.Name); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, g.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrGenreDuplicate
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Genre, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 修改名称，唯一性检查排除自身
func (s *service) Update(ctx context.Context, id uint, name string) (*Genre, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Rename(name)
	if err := validateName(g.Name); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, g.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrGenreDuplicate
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete 软删除
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Genre, int64, error) {
	return s.repo.List(ctx, params)
}

func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return ErrInvalidName
	}
	return nil
}
