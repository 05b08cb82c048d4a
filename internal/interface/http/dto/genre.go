package dto

// GenreRequest 创建/修改分类
type GenreRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"科幻"`
}

// ListGenresQuery 分类列表查询参数
type ListGenresQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=name created_at" example:"created_at"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc" example:"desc"`
}
