package order

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookstore-admin/internal/testutil"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

type recordingCache struct {
	mu      sync.Mutex
	deleted []uint
}

func (c *recordingCache) Delete(_ context.Context, ids ...uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, ids...)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.CreatedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderCreated(_ context.Context, o *order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, order.NewCreatedEvent(o))
	return p.err
}

type fixture struct {
	create    *CreateOrderUseCase
	list      *ListOrdersUseCase
	get       *GetOrderUseCase
	stats     *StatisticsUseCase
	books     book.Repository
	genres    genre.Repository
	tx        *sqldb.TxManager
	cache     *recordingCache
	publisher *recordingPublisher
	genreID   uint
	t         *testing.T
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)

	orders := sqldb.NewOrderRepository(db)
	books := sqldb.NewBookRepository(db)
	tx := sqldb.NewTxManager(db)
	cache := &recordingCache{}
	publisher := &recordingPublisher{}

	return &fixture{
		create:    NewCreateOrderUseCase(orders, books, tx, cache, publisher),
		list:      NewListOrdersUseCase(orders),
		get:       NewGetOrderUseCase(orders),
		stats:     NewStatisticsUseCase(orders),
		books:     books,
		genres:    sqldb.NewGenreRepository(db),
		tx:        tx,
		cache:     cache,
		publisher: publisher,
		genreID:   testutil.CreateGenre(t, db, "Fantasy").ID,
		t:         t,
	}
}

func (f *fixture) book(title string, price int64, stock int) *book.Book {
	f.t.Helper()
	b := book.NewBook(title, "佚名", "测试出版社", 2020, "", price, stock, f.genreID)
	require.NoError(f.t, f.books.Create(context.Background(), b))
	return b
}

func (f *fixture) stock(id uint) int {
	f.t.Helper()
	b, err := f.books.FindByID(context.Background(), id)
	require.NoError(f.t, err)
	return b.StockQuantity
}

func TestCreateOrder_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("A Wizard of Earthsea", 1000, 5)
	b := f.book("The Tombs of Atuan", 2500, 2)

	resp, err := f.create.Execute(ctx, CreateOrderRequest{
		UserID: 7,
		Items: []order.LineItem{
			{BookID: b.ID, Quantity: 1},
			{BookID: a.ID, Quantity: 2},
			{BookID: b.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Regexp(t, `^TRX\d+$`, resp.OrderNo)
	assert.Equal(t, uint(7), resp.UserID)
	assert.Equal(t, int64(2*1000+2*2500), resp.TotalPrice)
	require.Len(t, resp.Items, 2, "重复图书合并为一行")
	assert.Equal(t, b.ID, resp.Items[0].BookID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, int64(5000), resp.Items[0].Subtotal)
	assert.Equal(t, "The Tombs of Atuan", resp.Items[0].Title)

	assert.Equal(t, 3, f.stock(a.ID))
	assert.Equal(t, 0, f.stock(b.ID))

	assert.ElementsMatch(t, []uint{a.ID, b.ID}, f.cache.deleted)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, resp.ID, f.publisher.events[0].OrderID)
}

func TestCreateOrder_InsufficientStockLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("Tehanu", 1000, 5)
	b := f.book("The Other Wind", 1000, 1)

	_, err := f.create.Execute(ctx, CreateOrderRequest{
		UserID: 1,
		Items:  []order.LineItem{{BookID: a.ID, Quantity: 2}, {BookID: b.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "The Other Wind")

	assert.Equal(t, 5, f.stock(a.ID))
	assert.Equal(t, 1, f.stock(b.ID))

	list, err := f.list.Execute(ctx, ListOrdersRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
	assert.Empty(t, f.publisher.events)
	assert.Empty(t, f.cache.deleted)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("Lavinia", 1000, 5)

	tests := []struct {
		name  string
		items []order.LineItem
		want  error
	}{
		{"空明细", nil, apperrors.ErrInvalidParams},
		{"数量为0", []order.LineItem{{BookID: a.ID, Quantity: 0}}, apperrors.ErrInvalidParams},
		{"图书ID为0", []order.LineItem{{BookID: 0, Quantity: 1}}, apperrors.ErrInvalidParams},
		{"图书不存在", []order.LineItem{{BookID: 9999, Quantity: 1}}, apperrors.ErrBookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: tt.items})
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 5, f.stock(a.ID))
}

func TestCreateOrder_PublishFailureKeepsOrder(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")
	a := f.book("Always Coming Home", 1000, 1)

	resp, err := f.create.Execute(context.Background(), CreateOrderRequest{
		UserID: 1,
		Items:  []order.LineItem{{BookID: a.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 0, f.stock(a.ID))
}

func TestCreateOrder_ConcurrentNoOversell(t *testing.T) {
	f := newFixture(t)
	a := f.book("The Dispossessed", 1000, 10)

	const workers = 8
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := f.create.Execute(context.Background(), CreateOrderRequest{
				UserID: userID,
				Items:  []order.LineItem{{BookID: a.ID, Quantity: 2}},
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrInsufficientStock):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(uint(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 3, insufficient)
	assert.Equal(t, 0, f.stock(a.ID))
}

func TestOrderHistorySurvivesBookDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("The Lathe of Heaven", 1000, 10)

	first, err := f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 2}}})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateOrderRequest{UserID: 2, Items: []order.LineItem{{BookID: a.ID, Quantity: 3}}})
	require.NoError(t, err)

	// 改价不影响历史交易的销售额
	price := int64(9900)
	_, err = book.NewService(f.books, f.genres, f.tx).Update(ctx, a.ID, book.UpdateParams{Price: &price})
	require.NoError(t, err)
	require.NoError(t, f.books.Delete(ctx, a.ID))

	_, err = f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)

	got, err := f.get.Execute(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "The Lathe of Heaven", got.Items[0].Title)
	assert.Equal(t, int64(1000), got.Items[0].UnitPrice)

	stats, err := f.stats.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.Equal(t, int64(5), stats.TotalBooksSold)
	assert.Equal(t, int64(5000), stats.TotalRevenue)
}

func TestCreateOrder_RetriesOnOrderNoCollision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("Tehanu", 1000, 10)

	first, err := f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 1}}})
	require.NoError(t, err)

	calls := 0
	f.create.newOrderNo = func() string {
		calls++
		if calls == 1 {
			return first.OrderNo
		}
		return order.GenerateOrderNo()
	}

	second, err := f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 2}}})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NotEqual(t, first.OrderNo, second.OrderNo)
	assert.Equal(t, 7, f.stock(a.ID), "冲突的那次事务已回滚，只扣减一次")
}

func TestCreateOrder_OrderNoCollisionGivesUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("The Other Wind", 1000, 10)

	first, err := f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 1}}})
	require.NoError(t, err)

	calls := 0
	f.create.newOrderNo = func() string {
		calls++
		return first.OrderNo
	}

	_, err = f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, order.ErrOrderNoDuplicate)
	assert.Equal(t, 409, apperrors.GetAppError(err).HTTPStatus())
	assert.Equal(t, maxOrderNoAttempts, calls)
	assert.Equal(t, 9, f.stock(a.ID))
}

// lockHookRepo 在图书被锁定后执行一次hook
type lockHookRepo struct {
	book.Repository
	once sync.Once
	hook func()
}

func (r *lockHookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	b, err := r.Repository.LockByID(ctx, id)
	if err == nil {
		r.once.Do(r.hook)
	}
	return b, err
}

func TestBookUpdateKeepsConcurrentStockDecrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("The Dispossessed", 1000, 10)

	var (
		wg       sync.WaitGroup
		orderErr error
	)
	repo := &lockHookRepo{Repository: f.books}
	repo.hook = func() {
		// 编辑已读到库存10,此时下单
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, orderErr = f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 3}}})
		}()
		time.Sleep(50 * time.Millisecond)
	}

	title := "The Dispossessed: An Ambiguous Utopia"
	updated, err := book.NewService(repo, f.genres, f.tx).Update(ctx, a.ID, book.UpdateParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	wg.Wait()
	require.NoError(t, orderErr)
	assert.Equal(t, 7, f.stock(a.ID))
}

func TestBookUpdateWritesOnlyGivenColumns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("Four Ways to Forgiveness", 1200, 10)

	stale, err := f.books.FindByID(ctx, a.ID)
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateOrderRequest{UserID: 1, Items: []order.LineItem{{BookID: a.ID, Quantity: 4}}})
	require.NoError(t, err)

	// 过期实体只带标题变更写回,库存保持下单后的值
	stale.Title = "Four Ways to Forgiveness (2nd ed.)"
	require.NoError(t, f.books.Update(ctx, stale, book.UpdateParams{Title: &stale.Title}))

	cur, err := f.books.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Four Ways to Forgiveness (2nd ed.)", cur.Title)
	assert.Equal(t, 6, cur.StockQuantity)
	assert.Equal(t, int64(1200), cur.Price)
}

func TestListOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book("Four Ways to Forgiveness", 1000, 10)

	for _, uid := range []uint{1, 2, 1} {
		_, err := f.create.Execute(ctx, CreateOrderRequest{UserID: uid, Items: []order.LineItem{{BookID: a.ID, Quantity: 1}}})
		require.NoError(t, err)
	}

	all, err := f.list.Execute(ctx, ListOrdersRequest{UserID: 1, Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Len(t, all.List, 2)
	assert.Greater(t, all.List[0].ID, all.List[1].ID, "按创建时间倒序")

	mine, err := f.list.Execute(ctx, ListOrdersRequest{UserID: 1, Mine: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Total)
	for _, o := range mine.List {
		assert.Equal(t, uint(1), o.UserID)
	}

	_, err = f.get.Execute(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "insufficient_stock", failureReason(book.ErrInsufficientStock.WithMessage("x")))
	assert.Equal(t, "validation", failureReason(order.ErrEmptyItems))
	assert.Equal(t, "not_found", failureReason(book.ErrBookNotFound))
	assert.Equal(t, "internal", failureReason(errors.New("boom")))
}
