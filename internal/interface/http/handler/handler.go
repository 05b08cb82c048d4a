// Package handler HTTP处理器
// 只负责解析请求、调用应用层用例、返回统一响应，不包含业务规则
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// bindError 参数绑定失败统一返回400
func bindError(c *gin.Context, err error) {
	response.Error(c, apperrors.ErrBindError.WithMessage("参数错误: "+err.Error()))
}

// pathID 解析路径中的正整数ID
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrInvalidParams.Withf("无效的%s", name))
		return 0, false
	}
	return uint(id), true
}
