package order

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// RequestPaymentUseCase 发起支付确认用例
// 设计说明:
// 1. 不信任已渲染的缓存:重新拉取订单列表后按ID定位,
//    防止渲染与用户操作之间的数据过期(别处已支付、订单消失)
// 2. 只有pending状态的订单能进入确认步骤
type RequestPaymentUseCase struct {
	apiClient *api.Client
}

// PaymentPrompt 支付确认界面需要的数据(订单号、件数、计算总额)
type PaymentPrompt struct {
	OrderID   int
	ItemCount int
	Total     float64
}

// NewRequestPaymentUseCase 创建发起支付用例
func NewRequestPaymentUseCase(apiClient *api.Client) *RequestPaymentUseCase {
	return &RequestPaymentUseCase{apiClient: apiClient}
}

// Execute 构造支付确认数据
func (uc *RequestPaymentUseCase) Execute(ctx context.Context, orderID int) (*PaymentPrompt, error) {
	orders, err := uc.apiClient.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	target, found := order.FindByID(orders, orderID)
	if !found {
		return nil, order.ErrOrderNotFound
	}
	if !target.Status.Payable() {
		return nil, order.ErrNotPayable
	}

	return &PaymentPrompt{
		OrderID:   target.ID,
		ItemCount: target.ItemCount(),
		Total:     target.Total(),
	}, nil
}
