package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// Method 支付方式(固定枚举)
type Method string

const (
	MethodCredit Method = "credit"
	MethodPix    Method = "pix"
	MethodBoleto Method = "boleto"
)

// Label 支付方式的展示文案
func (m Method) Label() string {
	switch m {
	case MethodCredit:
		return "Credit card"
	case MethodPix:
		return "PIX"
	case MethodBoleto:
		return "Boleto"
	default:
		return string(m)
	}
}

// ParseMethod 解析用户输入的支付方式
func ParseMethod(value string) (Method, error) {
	switch Method(value) {
	case MethodCredit, MethodPix, MethodBoleto:
		return Method(value), nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidParams, "payment method must be one of: credit, pix, boleto")
	}
}

// NoticeDismissAfter 成功通知的自动消失延迟
const NoticeDismissAfter = 3 * time.Second

// ConfirmPaymentUseCase 确认支付用例
// 设计说明:
// 1. 支付方式只用于成功通知的展示——后端的pay调用不携带任何方式参数。
//    这是后端协议的既有不对称(方式被收集但从不传输),此处原样保留而非擅自"修复"
// 2. 成功后刷新订单列表,让状态徽章反映pending→paid的转换
type ConfirmPaymentUseCase struct {
	apiClient *api.Client
}

// PaymentReceipt 支付成功通知的数据
type PaymentReceipt struct {
	OrderID      int
	MethodLabel  string        // 所选支付方式的展示文案(仅展示用途)
	DismissAfter time.Duration // 通知自动消失延迟
}

// NewConfirmPaymentUseCase 创建确认支付用例
func NewConfirmPaymentUseCase(apiClient *api.Client) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{apiClient: apiClient}
}

// Execute 执行支付确认
// 返回成功通知数据与刷新后的订单列表
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, orderID int, method Method) (*PaymentReceipt, []order.Order, error) {
	if _, err := uc.apiClient.PayOrder(ctx, orderID); err != nil {
		return nil, nil, err
	}

	orders, err := uc.apiClient.ListOrders(ctx)
	if err != nil {
		return nil, nil, err
	}

	receipt := &PaymentReceipt{
		OrderID:      orderID,
		MethodLabel:  method.Label(),
		DismissAfter: NoticeDismissAfter,
	}
	return receipt, orders, nil
}
