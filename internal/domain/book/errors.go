package book

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在(或已删除)
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.ErrTitleDuplicate

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.ErrInsufficientStock

	ErrInvalidTitle      = apperrors.ErrInvalidParams.WithMessage("书名长度应为1-255个字符")
	ErrMissingAuthorship = apperrors.ErrInvalidParams.WithMessage("作者和出版社不能为空")
	ErrAuthorshipTooLong = apperrors.ErrInvalidParams.WithMessage("作者和出版社不能超过100个字符")
	ErrInvalidYear       = apperrors.ErrInvalidParams.WithMessage("出版年份不合法")
	ErrInvalidPrice      = apperrors.ErrInvalidParams.WithMessage("价格必须大于0")
	ErrInvalidStock      = apperrors.ErrInvalidParams.WithMessage("库存不能为负数")
	ErrGenreRequired     = apperrors.ErrInvalidParams.WithMessage("必须指定分类")
)
