package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{ErrInvalidParams, http.StatusBadRequest},
		{ErrWeakPassword, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrGenreNotFound, http.StatusNotFound},
		{ErrEmailDuplicate, http.StatusConflict},
		{ErrInsufficientStock, http.StatusConflict},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{ErrDatabaseError, http.StatusInternalServerError},
		{New(12345, "奇怪的错误码"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Error())
	}
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInsufficientStock.Withf("图书《%s》库存不足", "Go语言")

	assert.True(t, errors.Is(detailed, ErrInsufficientStock))
	assert.False(t, errors.Is(detailed, ErrBookNotFound))
	assert.Equal(t, "图书《Go语言》库存不足", detailed.Message)
	// 预定义错误本身不被修改
	assert.Equal(t, "库存不足", ErrInsufficientStock.Message)

	wrapped := fmt.Errorf("下单失败: %w", detailed)
	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "查询图书失败")

	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrBookNotFound)
		assert.Same(t, ErrBookNotFound, GetAppError(wrapped))
	})

	t.Run("普通错误包装成内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
		assert.False(t, IsAppError(errors.New("boom")))
	})
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := ErrRedisError.WithCause(cause)

	assert.NotSame(t, ErrRedisError, err)
	assert.Nil(t, ErrRedisError.Err, "预定义错误不被修改")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrRedisError)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}
