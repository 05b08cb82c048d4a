package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 应用错误
// Code是业务错误码，前三位即HTTP状态码（40910 → 409）
// Message返回给客户端，Err只写日志
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码匹配，带详细信息的实例仍能匹配预定义错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 由错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 || http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// WithMessage 复制错误并替换提示信息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{Code: e.Code, Message: message, Err: e.Err}
}

// Withf 复制错误并格式化提示信息
func (e *AppError) Withf(format string, args ...interface{}) *AppError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithCause 复制错误并附加底层原因（只写日志，不返回给客户端）
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Err: err}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（数据库、网络等），对外只暴露message
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码/100 = HTTP状态码

const (
	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误(通用)
	ErrCodeBindError     = 40001 // 参数绑定失败
	ErrCodeWeakPassword  = 40002 // 密码强度不足

	// 认证错误（40100-40199）
	ErrCodeUnauthorized       = 40100 // 未登录
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidCredentials = 40103 // 邮箱或密码错误
	ErrCodeTokenRevoked       = 40104 // Token已注销

	// 资源错误（40400-40499）
	ErrCodeNotFound      = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound  = 40401 // 用户不存在
	ErrCodeBookNotFound  = 40402 // 图书不存在
	ErrCodeOrderNotFound = 40403 // 交易不存在
	ErrCodeGenreNotFound = 40404 // 分类不存在

	// 冲突（40900-40999）
	ErrCodeConflict          = 40900 // 重复记录(通用)
	ErrCodeEmailDuplicate    = 40901 // 邮箱已存在
	ErrCodeTitleDuplicate    = 40902 // 书名已存在
	ErrCodeGenreDuplicate    = 40903 // 分类名已存在
	ErrCodeOrderNoDuplicate  = 40904 // 交易编号冲突
	ErrCodeInsufficientStock = 40910 // 库存不足

	// 限流（42900）
	ErrCodeTooManyRequests = 42900

	// 系统错误（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
)

// =========================================
// 预定义错误
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证
	ErrUnauthorized       = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "邮箱或密码错误")
	ErrTokenRevoked       = New(ErrCodeTokenRevoked, "Token已失效，请重新登录")

	// 资源不存在
	ErrNotFound      = New(ErrCodeNotFound, "资源不存在")
	ErrUserNotFound  = New(ErrCodeUserNotFound, "用户不存在")
	ErrBookNotFound  = New(ErrCodeBookNotFound, "图书不存在")
	ErrOrderNotFound = New(ErrCodeOrderNotFound, "交易不存在")
	ErrGenreNotFound = New(ErrCodeGenreNotFound, "分类不存在")

	// 冲突
	ErrConflict          = New(ErrCodeConflict, "记录已存在")
	ErrEmailDuplicate    = New(ErrCodeEmailDuplicate, "邮箱已被注册")
	ErrTitleDuplicate    = New(ErrCodeTitleDuplicate, "书名已存在")
	ErrGenreDuplicate    = New(ErrCodeGenreDuplicate, "分类名已存在")
	ErrOrderNoDuplicate  = New(ErrCodeOrderNoDuplicate, "交易编号冲突，请重试")
	ErrInsufficientStock = New(ErrCodeInsufficientStock, "库存不足")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrWeakPassword  = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")

	ErrTooManyRequests = New(ErrCodeTooManyRequests, "请求过于频繁，请稍后再试")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
