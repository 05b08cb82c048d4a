package handler

import (
	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/bookstore-admin/internal/application/genre"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// GenreHandler 分类HTTP处理器
type GenreHandler struct {
	createUseCase *appgenre.CreateGenreUseCase
	getUseCase    *appgenre.GetGenreUseCase
	updateUseCase *appgenre.UpdateGenreUseCase
	deleteUseCase *appgenre.DeleteGenreUseCase
	listUseCase   *appgenre.ListGenresUseCase
}

func NewGenreHandler(
	createUseCase *appgenre.CreateGenreUseCase,
	getUseCase *appgenre.GetGenreUseCase,
	updateUseCase *appgenre.UpdateGenreUseCase,
	deleteUseCase *appgenre.DeleteGenreUseCase,
	listUseCase *appgenre.ListGenresUseCase,
) *GenreHandler {
	return &GenreHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.GenreRequest true "分类"
// @Success      201 {object} response.Response{data=appgenre.GenreResponse}
// @Failure      409 {object} response.Response "分类名已存在"
// @Router       /genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "页码"
// @Param        limit   query int    false "每页数量(1-100)"
// @Param        keyword query string false "名称关键字"
// @Param        sort_by query string false "name|created_at"
// @Param        order   query string false "asc|desc"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	var q dto.ListGenresQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appgenre.ListGenresRequest{
		Page:    q.Page,
		Limit:   q.Limit,
		Keyword: q.Keyword,
		SortBy:  q.SortBy,
		Order:   q.Order,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.Limit)
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=appgenre.GenreResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /genres/{id} [get]
func (h *GenreHandler) Get(c *gin.Context) {
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

// Update 修改分类名
// @Summary      修改分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int              true "分类ID"
// @Param        request body dto.GenreRequest true "分类"
// @Success      200 {object} response.Response{data=appgenre.GenreResponse}
// @Router       /genres/{id} [patch]
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除分类（软删除）
// @Summary      删除分类
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Router       /genres/{id} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "分类已删除", nil)
}
