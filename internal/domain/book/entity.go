package book

import (
	"strings"
)

// Book 图书实体
// 设计说明:
// 1. 数据的权威来源是后端,客户端只持有渲染周期内的只读快照
//    (任何变更操作成功后整体重新拉取,不做本地修补)
// 2. 价格直接使用后端的浮点表示,仅用于展示,不参与权威计算
type Book struct {
	ID          int
	Title       string // 书名
	Author      string // 作者
	Description string // 图书描述(后端可为null,映射为空串)
	Price       float64
	Stock       int // 库存数量(stock_quantity)
}

// StockTier 库存展示档位
// 阈值为精确闭区间: stock<=0 售罄 / 1<=stock<=3 库存告急 / 其余 有货
type StockTier int

const (
	TierOutOfStock StockTier = iota // 售罄,禁止购买
	TierLowStock                    // 库存告急,可购买
	TierInStock                     // 正常有货
)

// String 档位的展示文案
func (t StockTier) String() string {
	switch t {
	case TierOutOfStock:
		return "out of stock"
	case TierLowStock:
		return "low stock"
	default:
		return "in stock"
	}
}

// Tier 根据库存计算展示档位
func (b Book) Tier() StockTier {
	switch {
	case b.Stock <= 0:
		return TierOutOfStock
	case b.Stock <= 3:
		return TierLowStock
	default:
		return TierInStock
	}
}

// Purchasable 是否允许发起购买
func (b Book) Purchasable() bool {
	return b.Stock > 0
}

// Filter 客户端过滤:对书名或作者做大小写不敏感的子串匹配
// 设计说明:
// 1. 纯函数,不触发网络请求,不修改books本身,只收窄可见集合
// 2. 幂等且无损:Filter(books, "")返回完整切片,底层数据不变
func Filter(books []Book, term string) []Book {
	if term == "" {
		return books
	}
	needle := strings.ToLower(term)
	matched := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Draft 图书草稿(创建与更新共用同一形态)
// EditingID为0表示新建(POST),非0表示更新指定图书(PATCH)
type Draft struct {
	Title       string
	Author      string
	Description string
	Price       float64
	Stock       int
}

// Validate 发起网络请求前的本地校验
// 业务规则:标题与作者必填,价格与库存不能为负
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(d.Author) == "" {
		return ErrAuthorRequired
	}
	if d.Price < 0 {
		return ErrInvalidPrice
	}
	if d.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
