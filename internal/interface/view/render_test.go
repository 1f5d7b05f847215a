package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apporder "github.com/xiebiao/bookshop-client/internal/application/order"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/domain/session"
)

func TestSessionLine(t *testing.T) {
	assert.Equal(t, "not signed in", SessionLine(session.Anonymous()))

	regular := session.NewAuthenticated("tok", session.Profile{FullName: "Avid Reader"})
	assert.Equal(t, "signed in as Avid Reader", SessionLine(regular))

	admin := session.NewAuthenticated("tok", session.Profile{Email: "admin@example.com", Admin: true})
	assert.Equal(t, "signed in as admin@example.com (admin)", SessionLine(admin))
}

func TestBookCards(t *testing.T) {
	out := BookCards([]book.Book{
		{ID: 1, Title: "Go in Action", Author: "William Kennedy", Price: 39.9, Stock: 10},
		{ID: 2, Title: "Clean Architecture", Author: "Robert Martin", Price: 44.5, Stock: 2},
		{ID: 3, Title: "Sold Out Stories", Author: "Nobody", Price: 9.9, Stock: 0},
	})

	assert.Contains(t, out, "Go in Action")
	assert.Contains(t, out, "$39.90 · in stock")
	assert.Contains(t, out, "$44.50 · low stock")
	assert.Contains(t, out, "$9.90 · out of stock · buy disabled")

	// 有货图书不得出现购买禁用标注
	assert.NotContains(t, out, "in stock · buy disabled")
}

func TestBookCardsEmpty(t *testing.T) {
	assert.Equal(t, "no books to show\n", BookCards(nil))
}

func TestOrderLines(t *testing.T) {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	out := OrderLines([]order.Order{
		{
			ID:        7,
			Status:    order.StatusPending,
			CreatedAt: created,
			Items: []order.Item{
				{Book: book.Book{Title: "Go in Action"}, Quantity: 2, ItemPrice: 39.9},
			},
		},
		{ID: 12, Status: order.StatusPaid, CreatedAt: created},
	})

	// 零填充订单号、日期、状态徽章
	assert.Contains(t, out, "order #0007 · 2026-08-30 · [pending]")
	assert.Contains(t, out, "2x Go in Action — $79.80")
	assert.Contains(t, out, "total: $79.80")

	// 仅pending订单提示支付入口
	assert.Contains(t, out, "pay 7")
	assert.NotContains(t, out, "pay 12")
	assert.Contains(t, out, "order #0012 · 2026-08-30 · [paid]")
}

func TestOrderLinesEmpty(t *testing.T) {
	assert.Equal(t, "you have no orders yet\n", OrderLines(nil))
}

func TestOrderLinesUnknownDate(t *testing.T) {
	out := OrderLines([]order.Order{{ID: 1, Status: order.StatusPending}})
	assert.Contains(t, out, "unknown date")
}

func TestAdminTable(t *testing.T) {
	out := AdminTable([]book.Book{
		{ID: 1, Title: "Go in Action", Author: "William Kennedy", Price: 39.9, Stock: 10},
	})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Go in Action")
	assert.Contains(t, out, "$39.90")
}

func TestPaymentPromptView(t *testing.T) {
	out := PaymentPromptView(&apporder.PaymentPrompt{OrderID: 7, ItemCount: 2, Total: 79.8})

	assert.Contains(t, out, "order:  #0007")
	assert.Contains(t, out, "items:  2")
	assert.Contains(t, out, "total:  $79.80")
	assert.Contains(t, out, "credit/pix/boleto")
}

func TestReceiptNotice(t *testing.T) {
	out := ReceiptNotice(&apporder.PaymentReceipt{OrderID: 7, MethodLabel: "PIX"})
	assert.Equal(t, "✓ payment confirmed for order #0007 via PIX\n", out)
}
