package order

import (
	"time"

	"github.com/xiebiao/bookshop-client/internal/domain/book"
)

// Status 订单状态
// 设计说明:
// 1. 后端以字符串形式下发,客户端原样建模,不做数值映射
// 2. 状态流转由后端权威决定,客户端只请求pending→paid的转换并重新拉取观察结果
// 3. 后端另有shipped/cancelled两种状态,客户端原样渲染但不提供操作入口
type Status string

const (
	StatusPending   Status = "pending"   // 待支付
	StatusPaid      Status = "paid"      // 已支付
	StatusShipped   Status = "shipped"   // 已发货(仅展示)
	StatusCancelled Status = "cancelled" // 已取消(仅展示)
)

// Payable 是否允许发起支付
// 业务规则:只有pending状态暴露支付动作
func (s Status) Payable() bool {
	return s == StatusPending
}

// Order 订单实体
// 从客户端视角订单不可变,唯一的变化是服务端权威的pending→paid转换
type Order struct {
	ID        int
	Status    Status
	CreatedAt time.Time
	Items     []Item // 订单明细(有序)
}

// Item 订单明细项
// Book字段是下单时刻的图书快照,ItemPrice是下单时的单价(历史价格快照)
type Item struct {
	Book      book.Book
	Quantity  int
	ItemPrice float64
}

// Line 创建订单时的输入行
type Line struct {
	BookID   int
	Quantity int
}

// Total 计算订单总金额 = Σ(单价×数量)
// 设计说明:仅用于展示,权威金额由后端掌握;空明细返回0
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.ItemPrice * float64(item.Quantity)
	}
	return total
}

// ItemCount 明细行数(支付确认界面展示用)
func (o Order) ItemCount() int {
	return len(o.Items)
}

// FindByID 在订单列表中按ID查找
// 用途:支付确认前重新拉取列表后按ID定位,防止渲染与用户操作之间的数据过期
func FindByID(orders []Order, id int) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
