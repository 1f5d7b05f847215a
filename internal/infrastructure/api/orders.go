package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xiebiao/bookshop-client/internal/domain/order"
)

// 订单相关端点封装(全部需要Bearer认证)
// 对应后端:
// - GET  /orders/         当前用户的订单列表
// - POST /orders/         创建订单{items:[{book_id,quantity}]}
// - POST /orders/{id}/pay 请求支付转换(无请求体)

type orderItemPayload struct {
	BookID    int         `json:"book_id"`
	Quantity  int         `json:"quantity"`
	ItemPrice float64     `json:"item_price"`
	Book      bookPayload `json:"book"`
}

type orderPayload struct {
	ID        int                `json:"id"`
	Status    string             `json:"status"`
	CreatedAt string             `json:"created_at"`
	Items     []orderItemPayload `json:"items"`
}

type orderCreatePayload struct {
	Items []orderLinePayload `json:"items"`
}

type orderLinePayload struct {
	BookID   int `json:"book_id"`
	Quantity int `json:"quantity"`
}

func (p orderPayload) toDomain() order.Order {
	items := make([]order.Item, len(p.Items))
	for i, item := range p.Items {
		items[i] = order.Item{
			Book:      item.Book.toDomain(),
			Quantity:  item.Quantity,
			ItemPrice: item.ItemPrice,
		}
	}
	return order.Order{
		ID:        p.ID,
		Status:    order.Status(p.Status),
		CreatedAt: parseTimestamp(p.CreatedAt),
		Items:     items,
	}
}

// parseTimestamp 解析后端时间戳
// 后端以UTC naive格式下发(无时区后缀),同时兼容标准RFC3339;
// 全部解析失败时返回零值,时间仅用于展示,不让格式问题阻断渲染
func parseTimestamp(value string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// ListOrders 拉取当前用户的订单列表
func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	data, err := c.do(ctx, http.MethodGet, "/orders/", nil, true)
	if err != nil {
		return nil, err
	}

	var payloads []orderPayload
	if err := decode(data, &payloads); err != nil {
		return nil, err
	}
	orders := make([]order.Order, len(payloads))
	for i, p := range payloads {
		orders[i] = p.toDomain()
	}
	return orders, nil
}

// CreateOrder 创建订单
func (c *Client) CreateOrder(ctx context.Context, lines []order.Line) (order.Order, error) {
	payload := orderCreatePayload{Items: make([]orderLinePayload, len(lines))}
	for i, line := range lines {
		payload.Items[i] = orderLinePayload{BookID: line.BookID, Quantity: line.Quantity}
	}

	data, err := c.do(ctx, http.MethodPost, "/orders/", payload, true)
	if err != nil {
		return order.Order{}, err
	}

	var created orderPayload
	if err := decode(data, &created); err != nil {
		return order.Order{}, err
	}
	return created.toDomain(), nil
}

// PayOrder 请求订单支付转换
// 注意:该调用不携带任何请求体——支付方式不在协议内(见确认支付用例的说明)
func (c *Client) PayOrder(ctx context.Context, id int) (order.Order, error) {
	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/pay", id), nil, true)
	if err != nil {
		return order.Order{}, err
	}

	var paid orderPayload
	if err := decode(data, &paid); err != nil {
		return order.Order{}, err
	}
	return paid.toDomain(), nil
}
