package dto

// CreateOrderRequest 创建交易
// 下单用户取自Token，请求体中不接受user_id
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemRequest 交易明细
type OrderItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1" example:"2"`
}

// ListOrdersQuery 交易列表查询参数
type ListOrdersQuery struct {
	Mine  bool `form:"mine"`
	Page  int  `form:"page" binding:"omitempty,min=1"`
	Limit int  `form:"limit" binding:"omitempty,min=1,max=100"`
}
