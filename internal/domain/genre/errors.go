package genre

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 分类领域错误
var (
	ErrGenreNotFound  = apperrors.ErrGenreNotFound
	ErrGenreDuplicate = apperrors.ErrGenreDuplicate
	ErrInvalidName    = apperrors.ErrInvalidParams.WithMessage("分类名称长度应为1-100个字符")
)
