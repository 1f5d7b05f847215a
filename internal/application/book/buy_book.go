package book

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// BuyBookUseCase 购买图书用例(目录页的"立即购买")
// 设计说明:
// 1. 固定数量1的单品订单
// 2. 不做乐观更新:下单失败时已渲染状态原样保留,无需回滚
// 3. 成功后目录与订单两个视图都要刷新(库存扣减、新订单出现),
//    两次GET互不依赖,用errgroup并发拉取
type BuyBookUseCase struct {
	apiClient *api.Client
}

// BuyResult 购买成功后的刷新结果
type BuyResult struct {
	Order  order.Order   // 刚创建的订单
	Books  []book.Book   // 刷新后的目录
	Orders []order.Order // 刷新后的订单列表
}

// NewBuyBookUseCase 创建购买用例
func NewBuyBookUseCase(apiClient *api.Client) *BuyBookUseCase {
	return &BuyBookUseCase{apiClient: apiClient}
}

// Execute 执行购买
func (uc *BuyBookUseCase) Execute(ctx context.Context, bookID int) (*BuyResult, error) {
	created, err := uc.apiClient.CreateOrder(ctx, []order.Line{{BookID: bookID, Quantity: 1}})
	if err != nil {
		return nil, err
	}

	result := &BuyResult{Order: created}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		books, err := uc.apiClient.ListBooks(gctx)
		if err != nil {
			return err
		}
		result.Books = books
		return nil
	})
	g.Go(func() error {
		orders, err := uc.apiClient.ListOrders(gctx)
		if err != nil {
			return err
		}
		result.Orders = orders
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
