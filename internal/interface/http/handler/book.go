package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	getUseCase    *appbook.GetBookUseCase
	updateUseCase *appbook.UpdateBookUseCase
	deleteUseCase *appbook.DeleteBookUseCase
	listUseCase   *appbook.ListBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 创建图书
// @Summary      创建图书
// @Description  分类必须存在；书名唯一；价格单位为分
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "书名已存在"
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:           req.Title,
		Writer:          req.Writer,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Description:     req.Description,
		Price:           req.Price,
		StockQuantity:   req.StockQuantity,
		GenreID:         req.GenreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "页码"
// @Param        limit   query int    false "每页数量(1-100)"
// @Param        keyword query string false "书名/作者/出版社关键字"
// @Param        sort_by query string false "title|price|publication_year|stock_quantity|created_at"
// @Param        order   query string false "asc|desc"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	h.list(c, 0)
}

// ListByGenre 按分类查询图书
// @Summary      分类下的图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        genre_id path  int    true  "分类ID"
// @Param        page     query int    false "页码"
// @Param        limit    query int    false "每页数量(1-100)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /books/genre/{genre_id} [get]
func (h *BookHandler) ListByGenre(c *gin.Context) {
	genreID, ok := pathID(c, "genre_id")
	if !ok {
		return
	}
	h.list(c, genreID)
}

func (h *BookHandler) list(c *gin.Context, genreID uint) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:    q.Page,
		Limit:   q.Limit,
		Keyword: q.Keyword,
		SortBy:  q.SortBy,
		Order:   q.Order,
		GenreID: genreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.Limit)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
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

// Update 修改图书（部分更新）
// @Summary      修改图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Router       /books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), id, book.UpdateParams{
		Title:           req.Title,
		Writer:          req.Writer,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Description:     req.Description,
		Price:           req.Price,
		StockQuantity:   req.StockQuantity,
		GenreID:         req.GenreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除图书（软删除，历史交易仍可查看）
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "图书已删除", nil)
}
