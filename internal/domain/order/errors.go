package order

import (
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在(重新拉取后按ID定位失败)
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "order not found")

	// ErrNotPayable 订单状态不允许支付
	ErrNotPayable = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "only pending orders can be paid")

	// ErrEmptyOrder 订单必须至少包含一件商品
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "order must contain at least one item")

	// ErrInvalidQuantity 购买数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "quantity must be greater than zero")
)
