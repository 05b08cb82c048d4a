package order

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/pkg/pagination"
)

// ListOrdersUseCase 交易列表
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest Mine为true时只返回调用者自己的交易
type ListOrdersRequest struct {
	UserID uint
	Mine   bool
	Page   int
	Limit  int
}

// ListOrdersResponse 分页结果
type ListOrdersResponse struct {
	List  []OrderResponse
	Total int64
	Page  int
	Limit int
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	p := pagination.New(req.Page, req.Limit)
	params := order.ListParams{Page: p.Page, Limit: p.Limit}
	if req.Mine {
		params.UserID = req.UserID
	}

	orders, total, err := uc.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	list := make([]OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = *toOrderResponse(o)
	}
	return &ListOrdersResponse{List: list, Total: total, Page: p.Page, Limit: p.Limit}, nil
}

// GetOrderUseCase 交易详情
type GetOrderUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// StatisticsUseCase 销售统计
// 销售额按明细中的单价快照计算，改价不影响历史数据
type StatisticsUseCase struct {
	orderRepo order.Repository
}

func NewStatisticsUseCase(orderRepo order.Repository) *StatisticsUseCase {
	return &StatisticsUseCase{orderRepo: orderRepo}
}

func (uc *StatisticsUseCase) Execute(ctx context.Context) (*StatisticsResponse, error) {
	stats, err := uc.orderRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &StatisticsResponse{
		TotalTransactions: stats.TotalTransactions,
		TotalBooksSold:    stats.TotalBooksSold,
		TotalRevenue:      stats.TotalRevenue,
	}, nil
}
