package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/testutil"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T) (*testutil.FakeBackend, *api.Client) {
	t.Helper()
	fb := testutil.NewFakeBackend()
	t.Cleanup(fb.Close)
	fb.AddToken("tok-reader", "reader@example.com", false)
	return fb, api.NewClient(fb.Config(), staticToken("tok-reader"))
}

func TestLoadCatalog(t *testing.T) {
	fb, client := newClient(t)
	fb.AddBook("Go in Action", "William Kennedy", 39.9, 10)
	fb.AddBook("Clean Architecture", "Robert Martin", 44.5, 0)

	books, err := NewLoadCatalogUseCase(client).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.True(t, books[0].Purchasable())
	assert.False(t, books[1].Purchasable())
}

func TestBuyBook(t *testing.T) {
	fb, client := newClient(t)
	id := fb.AddBook("Go in Action", "William Kennedy", 39.9, 2)

	result, err := NewBuyBookUseCase(client).Execute(context.Background(), id)
	require.NoError(t, err)

	// 固定数量1的单品订单
	assert.Equal(t, order.StatusPending, result.Order.Status)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, 1, result.Order.Items[0].Quantity)
	assert.Equal(t, 39.9, result.Order.Items[0].ItemPrice)

	// 成功后目录与订单两个视图的数据都已刷新
	require.Len(t, result.Books, 1)
	assert.Equal(t, 1, result.Books[0].Stock, "刷新后的目录应反映库存扣减")
	require.Len(t, result.Orders, 1)
	assert.Equal(t, result.Order.ID, result.Orders[0].ID)
}

func TestBuyBookOutOfStock(t *testing.T) {
	fb, client := newClient(t)
	id := fb.AddBook("Sold Out Stories", "Nobody", 9.9, 0)

	_, err := NewBuyBookUseCase(client).Execute(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Message, "insufficient stock")

	// 下单失败时不触发刷新,已渲染状态原样保留
	assert.Equal(t, []string{"POST /api/v1/orders/"}, fb.Requests())
}

func TestBuyUnknownBook(t *testing.T) {
	_, client := newClient(t)

	_, err := NewBuyBookUseCase(client).Execute(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.GetAppError(err).HTTPStatus)
}
