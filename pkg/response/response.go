package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Response 统一响应结构
// 所有接口都返回 {success, message, data?}，HTTP状态码表达错误类别
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 200响应
func Success(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, "success", data)
}

// SuccessWithMessage 200响应（自定义提示）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "created",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	message := appErr.Message
	logger := log.Ctx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		// 5xx不向客户端暴露内部细节
		logger.Error().Err(err).Int("code", appErr.Code).Str("path", c.FullPath()).Msg("请求处理失败")
		message = "系统内部错误"
	} else if appErr.Err != nil {
		logger.Warn().Err(appErr.Err).Int("code", appErr.Code).Msg(appErr.Message)
	}

	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// Abort 错误响应并终止后续Handler（用于中间件）
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List       interface{} `json:"list"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// NewPageData 创建分页数据
func NewPageData(list interface{}, total int64, page, limit int) *PageData {
	totalPages := 0
	if limit > 0 {
		totalPages = int(total) / limit
		if int(total)%limit != 0 {
			totalPages++
		}
	}

	return &PageData{
		List:       list,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, limit int) {
	Success(c, NewPageData(list, total, page, limit))
}
