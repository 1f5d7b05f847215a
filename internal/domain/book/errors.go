package book

import (
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// 图书领域错误定义(本地校验类,未发起网络请求即返回)
var (
	// ErrTitleRequired 标题必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "title must not be empty")

	// ErrAuthorRequired 作者必填
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "author must not be empty")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "price must not be negative")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "stock must not be negative")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")
)
