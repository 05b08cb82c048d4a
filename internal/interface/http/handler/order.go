package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookstore-admin/internal/application/order"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// OrderHandler 交易HTTP处理器
type OrderHandler struct {
	createUseCase     *apporder.CreateOrderUseCase
	listUseCase       *apporder.ListOrdersUseCase
	getUseCase        *apporder.GetOrderUseCase
	statisticsUseCase *apporder.StatisticsUseCase
}

// NewOrderHandler 创建交易处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	getUseCase *apporder.GetOrderUseCase,
	statisticsUseCase *apporder.StatisticsUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		statisticsUseCase: statisticsUseCase,
	}
}

// Create 创建交易
// @Summary      创建交易
// @Description  锁定图书行、校验库存、创建交易并扣减库存，全部在一个事务中完成
// @Tags         交易
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "交易明细"
// @Success      201 {object} response.Response{data=apporder.OrderResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "库存不足"
// @Router       /transactions [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]order.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.LineItem{BookID: item.BookID, Quantity: item.Quantity}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID: middleware.GetUserID(c),
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 交易列表
// @Summary      交易列表
// @Tags         交易
// @Produce      json
// @Security     BearerAuth
// @Param        mine  query bool false "只看自己的交易"
// @Param        page  query int  false "页码"
// @Param        limit query int  false "每页数量(1-100)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /transactions [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		UserID: middleware.GetUserID(c),
		Mine:   q.Mine,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.Limit)
}

// Get 交易详情
// @Summary      交易详情
// @Tags         交易
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "交易ID"
// @Success      200 {object} response.Response{data=apporder.OrderResponse}
// @Failure      404 {object} response.Response "交易不存在"
// @Router       /transactions/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Statistics 销售统计
// @Summary      销售统计
// @Description  交易数、售出件数、销售额（按下单时单价计算）
// @Tags         交易
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=apporder.StatisticsResponse}
// @Router       /transactions/statistics [get]
func (h *OrderHandler) Statistics(c *gin.Context) {
	result, err := h.statisticsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
