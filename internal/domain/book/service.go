package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
)

// Service 图书领域服务接口
// 封装跨实体的业务规则:分类必须存在、书名唯一
type Service interface {
	// Create 创建图书
	// 业务规则:
	// - 字段合法(价格>0,库存>=0,出版年份范围)
	// - 分类存在且未删除
	// - 书名唯一
	Create(ctx context.Context, b *Book) error

	// Get 根据ID获取图书
	Get(ctx context.Context, id uint) (*Book, error)

	// Update 部分更新,规则同Create
	// 在事务内锁定行后修改,只写入params中给出的字段
	Update(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// Delete 软删除
	Delete(ctx context.Context, id uint) error

	// List 分页查询
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListByGenre 按分类查询,分类必须存在
	ListByGenre(ctx context.Context, genreID uint, params ListParams) ([]*Book, int64, error)
}

// Transactor 事务执行器,fn内的仓储操作共享同一事务
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	repo      Repository
	genreRepo genre.Repository
	tx        Transactor
	now       func() time.Time
}

// NewService 创建图书领域服务
func NewService(repo Repository, genreRepo genre.Repository, tx Transactor) Service {
	return &service{repo: repo, genreRepo: genreRepo, tx: tx, now: time.Now}
}

func (s *service) Create(ctx context.Context, b *Book) error {
	if err := b.Validate(s.now()); err != nil {
		return err
	}
	if err := s.checkGenre(ctx, b.GenreID); err != nil {
		return err
	}
	if err := s.checkTitle(ctx, b.Title, 0); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	var updated *Book
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		// 与下单共用行锁,避免覆盖并发扣减后的库存
		b, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}

		oldTitle, oldGenre := b.Title, b.GenreID
		b.Apply(params)
		if err := b.Validate(s.now()); err != nil {
			return err
		}

		if b.GenreID != oldGenre {
			if err := s.checkGenre(ctx, b.GenreID); err != nil {
				return err
			}
		}
		if b.Title != oldTitle {
			if err := s.checkTitle(ctx, b.Title, id); err != nil {
				return err
			}
		}

		if err := s.repo.Update(ctx, b, params); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *service) ListByGenre(ctx context.Context, genreID uint, params ListParams) ([]*Book, int64, error) {
	if _, err := s.genreRepo.FindByID(ctx, genreID); err != nil {
		return nil, 0, err
	}
	params.GenreID = genreID
	return s.repo.List(ctx, params)
}

func (s *service) checkGenre(ctx context.Context, genreID uint) error {
	_, err := s.genreRepo.FindByID(ctx, genreID)
	return err
}

func (s *service) checkTitle(ctx context.Context, title string, excludeID uint) error {
	exists, err := s.repo.ExistsByTitle(ctx, title, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrTitleDuplicate
	}
	return nil
}
