package dto

// CreateBookRequest 创建图书
// price单位为分
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=255" example:"三体"`
	Writer          string `json:"writer" binding:"required,max=100" example:"刘慈欣"`
	Publisher       string `json:"publisher" binding:"required,max=100" example:"重庆出版社"`
	PublicationYear int    `json:"publication_year" binding:"required" example:"2008"`
	Description     string `json:"description" binding:"max=5000"`
	Price           int64  `json:"price" binding:"required,gt=0" example:"2300"`
	StockQuantity   int    `json:"stock_quantity" binding:"min=0" example:"100"`
	GenreID         uint   `json:"genre_id" binding:"required" example:"1"`
}

// UpdateBookRequest 部分更新，未传的字段不修改
type UpdateBookRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Writer          *string `json:"writer" binding:"omitempty,max=100"`
	Publisher       *string `json:"publisher" binding:"omitempty,max=100"`
	PublicationYear *int    `json:"publication_year"`
	Description     *string `json:"description" binding:"omitempty,max=5000"`
	Price           *int64  `json:"price" binding:"omitempty,gt=0"`
	StockQuantity   *int    `json:"stock_quantity" binding:"omitempty,min=0"`
	GenreID         *uint   `json:"genre_id"`
}

// ListBooksQuery 图书列表查询参数
// keyword匹配书名、作者、出版社（不区分大小写）
type ListBooksQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=title price publication_year stock_quantity created_at" example:"created_at"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc" example:"desc"`
}
