package order

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 交易领域错误定义
var (
	// ErrOrderNotFound 交易不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrOrderNoDuplicate 交易编号已被占用
	ErrOrderNoDuplicate = apperrors.ErrOrderNoDuplicate

	// ErrEmptyItems 明细为空
	ErrEmptyItems = apperrors.ErrInvalidParams.WithMessage("交易明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.ErrInvalidParams.WithMessage("购买数量必须大于0")

	// ErrInvalidBookID 图书ID不合法
	ErrInvalidBookID = apperrors.ErrInvalidParams.WithMessage("图书ID不合法")
)
