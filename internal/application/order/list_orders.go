package order

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// ListOrdersUseCase 订单列表用例
// 只拉取当前用户的订单(认证接口);总金额由domain层按明细计算,仅供展示
type ListOrdersUseCase struct {
	apiClient *api.Client
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(apiClient *api.Client) *ListOrdersUseCase {
	return &ListOrdersUseCase{apiClient: apiClient}
}

// Execute 拉取当前用户的订单列表
func (uc *ListOrdersUseCase) Execute(ctx context.Context) ([]order.Order, error) {
	return uc.apiClient.ListOrders(ctx)
}
