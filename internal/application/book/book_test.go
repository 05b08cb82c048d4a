package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/internal/testutil"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

type fixture struct {
	create *CreateBookUseCase
	get    *GetBookUseCase
	update *UpdateBookUseCase
	del    *DeleteBookUseCase
	list   *ListBooksUseCase
	genres genre.Repository
	cache  *redis.BookCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	_, rdb := testutil.NewRedis(t)

	genres := sqldb.NewGenreRepository(db)
	svc := book.NewService(sqldb.NewBookRepository(db), genres, sqldb.NewTxManager(db))
	cache := redis.NewBookCache(rdb, time.Minute)

	return &fixture{
		create: NewCreateBookUseCase(svc),
		get:    NewGetBookUseCase(svc, cache),
		update: NewUpdateBookUseCase(svc, cache),
		del:    NewDeleteBookUseCase(svc, cache),
		list:   NewListBooksUseCase(svc),
		genres: genres,
		cache:  cache,
	}
}

func (f *fixture) genre(t *testing.T, name string) uint {
	t.Helper()
	g := genre.NewGenre(name)
	require.NoError(t, f.genres.Create(context.Background(), g))
	return g.ID
}

func createReq(title string, genreID uint) CreateBookRequest {
	return CreateBookRequest{
		Title:           title,
		Writer:          "Ursula K. Le Guin",
		Publisher:       "Ace",
		PublicationYear: 1969,
		Price:           1999,
		StockQuantity:   3,
		GenreID:         genreID,
	}
}

func TestCreateBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gid := f.genre(t, "Sci-Fi")

	created, err := f.create.Execute(ctx, createReq("The Left Hand of Darkness", gid))
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", created.GenreName)

	_, err = f.create.Execute(ctx, createReq("The Left Hand of Darkness", gid))
	assert.ErrorIs(t, err, apperrors.ErrTitleDuplicate)

	_, err = f.create.Execute(ctx, createReq("Missing Genre", 9999))
	assert.ErrorIs(t, err, apperrors.ErrGenreNotFound)

	bad := createReq("Free Book", gid)
	bad.Price = 0
	_, err = f.create.Execute(ctx, bad)
	assert.Equal(t, 400, apperrors.GetAppError(err).HTTPStatus())
}

func TestCreateBook_DeletedGenreRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gid := f.genre(t, "Obsolete")
	require.NoError(t, f.genres.Delete(ctx, gid))

	_, err := f.create.Execute(ctx, createReq("Orphan", gid))
	assert.ErrorIs(t, err, apperrors.ErrGenreNotFound)
}

func TestGetBook_CacheAsideAndInvalidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gid := f.genre(t, "Fantasy")

	created, err := f.create.Execute(ctx, createReq("A Wizard of Earthsea", gid))
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.StockQuantity)

	cached, _, err := f.cache.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, cached, "首次查询后应回填缓存")

	price := int64(2599)
	updated, err := f.update.Execute(ctx, created.ID, book.UpdateParams{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, price, updated.Price)

	cached, _, err = f.cache.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, cached, "更新后缓存应被删除")

	got, err = f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, price, got.Price)

	require.NoError(t, f.del.Execute(ctx, created.ID))
	_, err = f.get.Execute(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestListBooks_ByGenreAndSoftDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fantasy := f.genre(t, "Fantasy")
	poetry := f.genre(t, "Poetry")

	kept, err := f.create.Execute(ctx, createReq("Tehanu", fantasy))
	require.NoError(t, err)
	removed, err := f.create.Execute(ctx, createReq("The Farthest Shore", fantasy))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, createReq("Finding My Elegy", poetry))
	require.NoError(t, err)

	require.NoError(t, f.del.Execute(ctx, removed.ID))

	res, err := f.list.Execute(ctx, ListBooksRequest{GenreID: fantasy})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.List, 1)
	assert.Equal(t, kept.ID, res.List[0].ID)

	res, err = f.list.Execute(ctx, ListBooksRequest{Keyword: "le guin"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total, "按作者搜索，已删除的不计入")

	_, err = f.list.Execute(ctx, ListBooksRequest{GenreID: 9999})
	assert.ErrorIs(t, err, apperrors.ErrGenreNotFound)
}

func TestNopCache(t *testing.T) {
	var c Cache = NopCache{}
	b, _, err := c.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, b)
	stored, err := c.Set(context.Background(), &book.Book{}, 0)
	assert.NoError(t, err)
	assert.False(t, stored)
	assert.NoError(t, c.Delete(context.Background(), 1))
}
