package sqldb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/internal/testutil"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := sqldb.NewUserRepository(db)
	ctx := context.Background()

	u := user.NewUser("dave@example.com", "hash", "dave")
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	found, err := repo.FindByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "dave", found.Username)

	err = repo.Create(ctx, user.NewUser("dave@example.com", "hash", "dave2"))
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGenreRepository_SoftDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := sqldb.NewGenreRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Fiction")
	testutil.CreateGenre(t, db, "History")

	require.NoError(t, repo.Delete(ctx, g.ID))

	_, err := repo.FindByID(ctx, g.ID)
	assert.ErrorIs(t, err, genre.ErrGenreNotFound)

	// 软删除的名称仍然占用唯一索引
	exists, err := repo.ExistsByName(ctx, "Fiction", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	list, total, err := repo.List(ctx, genre.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "History", list[0].Name)

	assert.ErrorIs(t, repo.Delete(ctx, g.ID), genre.ErrGenreNotFound)
}

func TestBookRepository_ListSearchSortPaginate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := sqldb.NewBookRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Programming")
	other := testutil.CreateGenre(t, db, "Poetry")
	testutil.CreateBook(t, db, g.ID, "The Go Programming Language", 8900, 5)
	testutil.CreateBook(t, db, g.ID, "Learning GO", 4500, 2)
	testutil.CreateBook(t, db, g.ID, "Rust in Action", 7000, 1)
	testutil.CreateBook(t, db, other.ID, "100% Poems", 1200, 9)

	books, total, err := repo.List(ctx, book.ListParams{Page: 1, Limit: 10, Keyword: "go", SortBy: "price", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, books, 2)
	assert.Equal(t, "Learning GO", books[0].Title)
	assert.Equal(t, "Programming", books[0].GenreName)

	// 通配符按字面匹配
	_, total, err = repo.List(ctx, book.ListParams{Keyword: "100%"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	books, total, err = repo.List(ctx, book.ListParams{Page: 2, Limit: 2, GenreID: g.ID, SortBy: "title", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, books, 1)
	assert.Equal(t, "The Go Programming Language", books[0].Title)

	// 不在白名单中的排序字段回退为created_at
	_, _, err = repo.List(ctx, book.ListParams{SortBy: "password; DROP TABLE books"})
	assert.NoError(t, err)
}

func TestBookRepository_DecrStockGuard(t *testing.T) {
	db := testutil.NewDB(t)
	repo := sqldb.NewBookRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Science")
	b := testutil.CreateBook(t, db, g.ID, "Cosmos", 3000, 3)

	require.NoError(t, repo.DecrStock(ctx, b.ID, 2))
	assert.ErrorIs(t, repo.DecrStock(ctx, b.ID, 2), book.ErrInsufficientStock)

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.StockQuantity)
}

func TestBookRepository_TitleUniqueIncludesDeleted(t *testing.T) {
	db := testutil.NewDB(t)
	repo := sqldb.NewBookRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Drama")
	b := testutil.CreateBook(t, db, g.ID, "Hamlet", 1500, 1)
	require.NoError(t, repo.Delete(ctx, b.ID))

	exists, err := repo.ExistsByTitle(ctx, "Hamlet", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, book.NewBook("Hamlet", "W. S.", "Globe", 1603, "", 1500, 1, g.ID))
	assert.ErrorIs(t, err, book.ErrTitleDuplicate)

	_, err = repo.LockByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	tx := sqldb.NewTxManager(db)
	books := sqldb.NewBookRepository(db)
	orders := sqldb.NewOrderRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Travel")
	b := testutil.CreateBook(t, db, g.ID, "On the Road", 2000, 5)

	errAbort := errors.New("abort")
	err := tx.Transaction(ctx, func(ctx context.Context) error {
		o := order.NewOrder(order.GenerateOrderNo(), 1, []order.OrderItem{{BookID: b.ID, Quantity: 2, UnitPrice: b.Price}})
		if err := orders.Create(ctx, o); err != nil {
			return err
		}
		if err := books.DecrStock(ctx, b.ID, 2); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	found, err := books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.StockQuantity)

	_, total, err := orders.List(ctx, order.ListParams{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOrderRepository_HistoryAndStatistics(t *testing.T) {
	db := testutil.NewDB(t)
	orders := sqldb.NewOrderRepository(db)
	books := sqldb.NewBookRepository(db)
	ctx := context.Background()

	g := testutil.CreateGenre(t, db, "Classics")
	b := testutil.CreateBook(t, db, g.ID, "Odyssey", 10, 100)

	first := order.NewOrder("TRX-A", 1, []order.OrderItem{{BookID: b.ID, Quantity: 2, UnitPrice: 10}})
	second := order.NewOrder("TRX-B", 2, []order.OrderItem{{BookID: b.ID, Quantity: 3, UnitPrice: 10}})
	require.NoError(t, orders.Create(ctx, first))
	require.NoError(t, orders.Create(ctx, second))

	require.NoError(t, books.Delete(ctx, b.ID))

	found, err := orders.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	require.NotNil(t, found.Items[0].Book, "已删除的图书仍可通过历史交易读取")
	assert.Equal(t, "Odyssey", found.Items[0].Book.Title)

	mine, total, err := orders.List(ctx, order.ListParams{UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "TRX-B", mine[0].OrderNo)

	stats, err := orders.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.Equal(t, int64(5), stats.TotalBooksSold)
	assert.Equal(t, int64(50), stats.TotalRevenue)

	_, err = orders.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
