package view

import (
	"fmt"
	"strings"
	"text/tabwriter"

	apporder "github.com/xiebiao/bookshop-client/internal/application/order"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/domain/session"
)

// 渲染层:领域数据 → 终端文本
// 设计说明:渲染与取数/决策逻辑完全分离,这里只接受普通数据结构,
// 不发起网络请求,不读写会话状态

// SessionLine 顶栏的会话信息
func SessionLine(s session.Session) string {
	if !s.Authenticated {
		return "not signed in"
	}
	if s.Admin {
		return fmt.Sprintf("signed in as %s (admin)", s.DisplayName)
	}
	return fmt.Sprintf("signed in as %s", s.DisplayName)
}

// BookCards 目录卡片列表
// 每张卡片:书名、作者、价格、库存档位;售罄图书标注购买不可用
func BookCards(books []book.Book) string {
	if len(books) == 0 {
		return "no books to show\n"
	}

	var sb strings.Builder
	for _, b := range books {
		fmt.Fprintf(&sb, "[%d] %s — by %s\n", b.ID, b.Title, b.Author)
		if b.Description != "" {
			fmt.Fprintf(&sb, "    %s\n", b.Description)
		}
		fmt.Fprintf(&sb, "    $%.2f · %s", b.Price, b.Tier())
		if !b.Purchasable() {
			sb.WriteString(" · buy disabled")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// OrderLines 订单列表
// 每单:零填充订单号、创建日期、状态徽章、明细、计算总额;
// 仅pending订单提示支付入口
func OrderLines(orders []order.Order) string {
	if len(orders) == 0 {
		return "you have no orders yet\n"
	}

	var sb strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&sb, "order #%04d · %s · [%s]\n", o.ID, formatDate(o), o.Status)
		for _, item := range o.Items {
			fmt.Fprintf(&sb, "    %dx %s — $%.2f\n", item.Quantity, item.Book.Title, item.ItemPrice*float64(item.Quantity))
		}
		fmt.Fprintf(&sb, "    total: $%.2f\n", o.Total())
		if o.Status.Payable() {
			fmt.Fprintf(&sb, "    → pay with: pay %d\n", o.ID)
		}
	}
	return sb.String()
}

func formatDate(o order.Order) string {
	if o.CreatedAt.IsZero() {
		return "unknown date"
	}
	return o.CreatedAt.Format("2006-01-02")
}

// AdminTable 管理列表表格
func AdminTable(books []book.Book) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPRICE\tSTOCK")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%d\n", b.ID, b.Title, b.Author, b.Price, b.Stock)
	}
	w.Flush()
	return sb.String()
}

// PaymentPromptView 支付确认界面
func PaymentPromptView(p *apporder.PaymentPrompt) string {
	var sb strings.Builder
	sb.WriteString("confirm payment\n")
	fmt.Fprintf(&sb, "    order:  #%04d\n", p.OrderID)
	fmt.Fprintf(&sb, "    items:  %d\n", p.ItemCount)
	fmt.Fprintf(&sb, "    total:  $%.2f\n", p.Total)
	sb.WriteString("payment method (credit/pix/boleto), or empty to cancel: ")
	return sb.String()
}

// ReceiptNotice 支付成功通知(交互层负责在DismissAfter后消除)
func ReceiptNotice(r *apporder.PaymentReceipt) string {
	return fmt.Sprintf("✓ payment confirmed for order #%04d via %s\n", r.OrderID, r.MethodLabel)
}
