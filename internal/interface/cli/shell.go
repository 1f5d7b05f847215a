package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	appadmin "github.com/xiebiao/bookshop-client/internal/application/admin"
	appbook "github.com/xiebiao/bookshop-client/internal/application/book"
	apporder "github.com/xiebiao/bookshop-client/internal/application/order"
	appsession "github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/domain/order"
	"github.com/xiebiao/bookshop-client/internal/interface/view"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// UseCases 交互层依赖的全部用例
type UseCases struct {
	Login          *appsession.LoginUseCase
	Register       *appsession.RegisterUseCase
	Logout         *appsession.LogoutUseCase
	Restore        *appsession.RestoreUseCase
	LoadCatalog    *appbook.LoadCatalogUseCase
	Buy            *appbook.BuyBookUseCase
	ListOrders     *apporder.ListOrdersUseCase
	RequestPayment *apporder.RequestPaymentUseCase
	ConfirmPayment *apporder.ConfirmPaymentUseCase
	AdminList      *appadmin.ListBooksUseCase
	AdminEdit      *appadmin.EditBookUseCase
	AdminSave      *appadmin.SaveBookUseCase
	AdminDelete    *appadmin.DeleteBookUseCase
}

// Shell 交互式命令行外壳
// 设计说明:
// 1. 单控制线程逐命令处理,网络调用在命令内同步等待,
//    命令之间天然串行(会话写入先于后续读取)
// 2. 所有错误在发起调用的命令边界捕获并转成用户可见消息,
//    绝不向上传播导致进程崩溃
// 3. 目录/订单是渲染周期内的只读缓存,变更成功后整体替换
type Shell struct {
	model    *view.Model
	sessions *appsession.Store
	uc       UseCases

	in  *bufio.Scanner
	raw io.Reader // 原始输入(用于判断是否为终端,密码掩码读取)
	out io.Writer

	// 渲染周期内的瞬时缓存(登出时全部丢弃)
	books      []book.Book
	filterTerm string
	orders     []order.Order
	adminBooks []book.Book
}

// New 创建外壳
func New(sessions *appsession.Store, uc UseCases, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		model:    view.NewModel(),
		sessions: sessions,
		uc:       uc,
		in:       bufio.NewScanner(in),
		raw:      in,
		out:      out,
	}
}

// Run 启动交互循环
// 启动顺序:恢复持久化会话 → 按会话状态进入认证区或仪表盘 → 逐命令处理
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "bookshop — terminal storefront")

	restored, err := s.uc.Restore.Execute(ctx)
	if err != nil && apperrors.IsNetwork(err) {
		s.printError(err)
	}
	if restored.Authenticated {
		if refresh, err := s.model.Apply(view.Event{Kind: view.EventLoggedIn, Admin: restored.Admin}); err == nil {
			fmt.Fprintln(s.out, view.SessionLine(restored))
			s.refresh(ctx, refresh)
		}
	}

	s.printHelp()

	for {
		fmt.Fprint(s.out, "\n> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(s.out, "goodbye")
			return nil
		}

		s.dispatch(ctx, cmd, arg)
	}
}

// dispatch 按当前状态派发命令
func (s *Shell) dispatch(ctx context.Context, cmd, arg string) {
	if s.model.State() == view.StateUnauthenticated {
		switch cmd {
		case "login":
			s.handleLogin(ctx)
		case "register":
			s.handleRegister(ctx)
		case "help":
			s.printHelp()
		default:
			fmt.Fprintln(s.out, "unknown command, type `help` for the command list")
		}
		return
	}

	switch cmd {
	case "dashboard":
		s.navigate(ctx, view.SectionDashboard)
	case "books":
		s.navigate(ctx, view.SectionCatalog)
	case "orders":
		s.navigate(ctx, view.SectionOrders)
	case "admin":
		s.navigate(ctx, view.SectionAdmin)
	case "filter":
		s.handleFilter(arg)
	case "buy":
		s.handleBuy(ctx, arg)
	case "pay":
		s.handlePay(ctx, arg)
	case "add":
		s.handleSave(ctx, 0)
	case "edit":
		s.handleEdit(ctx, arg)
	case "delete":
		s.handleDelete(ctx, arg)
	case "whoami":
		fmt.Fprintln(s.out, view.SessionLine(s.sessions.Current()))
	case "logout":
		s.handleLogout()
	case "help":
		s.printHelp()
	default:
		fmt.Fprintln(s.out, "unknown command, type `help` for the command list")
	}
}

// =========================================
// 认证命令
// =========================================

func (s *Shell) handleLogin(ctx context.Context) {
	email := s.readLine("email: ")
	password, err := s.readPassword("password: ")
	if err != nil {
		s.printError(err)
		return
	}

	sess, err := s.uc.Login.Execute(ctx, email, password)
	if err != nil {
		// 登录/注册表单的错误展示在行内,不弹警告
		s.printError(err)
		return
	}

	refresh, err := s.model.Apply(view.Event{Kind: view.EventLoggedIn, Admin: sess.Admin})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, view.SessionLine(sess))
	s.refresh(ctx, refresh)
}

func (s *Shell) handleRegister(ctx context.Context) {
	name := s.readLine("full name: ")
	email := s.readLine("email: ")
	password, err := s.readPassword("password: ")
	if err != nil {
		s.printError(err)
		return
	}

	if err := s.uc.Register.Execute(ctx, name, email, password); err != nil {
		s.printError(err)
		return
	}
	// 注册成功不自动登录,回到登录流程
	fmt.Fprintln(s.out, "account created, please sign in with `login`")
}

func (s *Shell) handleLogout() {
	if err := s.uc.Logout.Execute(); err != nil {
		s.printError(err)
		return
	}
	if _, err := s.model.Apply(view.Event{Kind: view.EventLoggedOut}); err != nil {
		s.printError(err)
		return
	}

	// 等价于一次全新启动:瞬时缓存全部丢弃,下次认证后再拉取
	s.books = nil
	s.filterTerm = ""
	s.orders = nil
	s.adminBooks = nil

	fmt.Fprintln(s.out, "signed out")
	s.printHelp()
}

// =========================================
// 导航与刷新
// =========================================

func (s *Shell) navigate(ctx context.Context, target view.Section) {
	refresh, err := s.model.Apply(view.Event{Kind: view.EventNavigate, Target: target})
	if err != nil {
		s.printError(err)
		return
	}
	s.refresh(ctx, refresh)
	if refresh == view.RefreshNone {
		s.render()
	}
}

// refresh 执行状态机要求的数据拉取,随后重新渲染可见区域
func (s *Shell) refresh(ctx context.Context, r view.Refresh) {
	switch r {
	case view.RefreshDashboard:
		books, err := s.uc.LoadCatalog.Execute(ctx)
		if err != nil {
			s.printError(err)
			return
		}
		orders, err := s.uc.ListOrders.Execute(ctx)
		if err != nil {
			s.printError(err)
			return
		}
		s.books = books
		s.orders = orders
	case view.RefreshOrders:
		orders, err := s.uc.ListOrders.Execute(ctx)
		if err != nil {
			s.printError(err)
			return
		}
		s.orders = orders
	case view.RefreshAdmin:
		books, err := s.uc.AdminList.Execute(ctx)
		if err != nil {
			s.printError(err)
			return
		}
		s.adminBooks = books
	case view.RefreshNone:
		return
	}
	s.render()
}

// render 渲染当前可见区域(可见性完全由状态机推导)
func (s *Shell) render() {
	if s.model.Visible(view.RegionCatalog) {
		fmt.Fprintln(s.out, "\n-- catalog --")
		fmt.Fprint(s.out, view.BookCards(book.Filter(s.books, s.filterTerm)))
	}
	if s.model.Visible(view.RegionOrders) {
		fmt.Fprintln(s.out, "\n-- orders --")
		fmt.Fprint(s.out, view.OrderLines(s.orders))
	}
	if s.model.Visible(view.RegionAdmin) {
		fmt.Fprintln(s.out, "\n-- admin --")
		fmt.Fprint(s.out, view.AdminTable(s.adminBooks))
	}
}

// =========================================
// 目录命令
// =========================================

// handleFilter 客户端过滤:只收窄可见集合,不重新拉取,不改底层数据
func (s *Shell) handleFilter(term string) {
	s.filterTerm = term
	s.render()
}

func (s *Shell) handleBuy(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		s.printError(err)
		return
	}

	result, err := s.uc.Buy.Execute(ctx, id)
	if err != nil {
		// 失败时已渲染状态原样保留(没有乐观更新,无需回滚)
		s.printError(err)
		return
	}

	s.books = result.Books
	s.orders = result.Orders
	fmt.Fprintf(s.out, "✓ order #%04d placed\n", result.Order.ID)
	s.render()
}

// =========================================
// 支付命令
// =========================================

func (s *Shell) handlePay(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		s.printError(err)
		return
	}

	prompt, err := s.uc.RequestPayment.Execute(ctx, id)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprint(s.out, view.PaymentPromptView(prompt))
	if !s.in.Scan() {
		return
	}
	choice := strings.TrimSpace(s.in.Text())
	if choice == "" {
		fmt.Fprintln(s.out, "payment cancelled")
		return
	}

	method, err := apporder.ParseMethod(choice)
	if err != nil {
		s.printError(err)
		return
	}

	receipt, orders, err := s.uc.ConfirmPayment.Execute(ctx, prompt.OrderID, method)
	if err != nil {
		s.printError(err)
		return
	}
	s.orders = orders

	// 终端版的瞬时通知:展示固定时长后清除该行,再渲染刷新后的订单
	fmt.Fprint(s.out, view.ReceiptNotice(receipt))
	time.Sleep(receipt.DismissAfter)
	fmt.Fprint(s.out, "\033[1A\033[2K")
	s.render()
}

// =========================================
// 管理命令
// =========================================

func (s *Shell) handleSave(ctx context.Context, editingID int) {
	draft, err := s.readDraft(book.Draft{})
	if err != nil {
		s.printError(err)
		return
	}

	result, err := s.uc.AdminSave.Execute(ctx, editingID, draft)
	if err != nil {
		s.printError(err)
		return
	}

	// 管理列表与公开目录同步刷新,目录不会展示过期库存/价格
	s.adminBooks = result.Books
	s.books = result.Books
	if result.Created {
		fmt.Fprintf(s.out, "✓ book created: %s\n", result.Saved.Title)
	} else {
		fmt.Fprintf(s.out, "✓ book updated: %s\n", result.Saved.Title)
	}
	s.render()
}

func (s *Shell) handleEdit(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		s.printError(err)
		return
	}

	current, err := s.uc.AdminEdit.Execute(ctx, id)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "editing [%d] %s (empty keeps the current value)\n", current.ID, current.Title)
	draft, err := s.readDraft(book.Draft{
		Title:       current.Title,
		Author:      current.Author,
		Description: current.Description,
		Price:       current.Price,
		Stock:       current.Stock,
	})
	if err != nil {
		s.printError(err)
		return
	}

	result, err := s.uc.AdminSave.Execute(ctx, id, draft)
	if err != nil {
		s.printError(err)
		return
	}
	s.adminBooks = result.Books
	s.books = result.Books
	fmt.Fprintf(s.out, "✓ book updated: %s\n", result.Saved.Title)
	s.render()
}

func (s *Shell) handleDelete(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		s.printError(err)
		return
	}

	// 删除不可撤销,必须显式确认
	answer := s.readLine(fmt.Sprintf("delete book %d? this cannot be undone (yes/no): ", id))
	confirmed := answer == "yes"

	books, err := s.uc.AdminDelete.Execute(ctx, id, confirmed)
	if err != nil {
		if err == appadmin.ErrNotConfirmed {
			fmt.Fprintln(s.out, "deletion cancelled")
			return
		}
		s.printError(err)
		return
	}

	s.adminBooks = books
	s.books = books
	fmt.Fprintln(s.out, "✓ book deleted")
	s.render()
}

// readDraft 逐字段读取图书草稿;defaults非零时空输入保留原值
func (s *Shell) readDraft(defaults book.Draft) (book.Draft, error) {
	draft := defaults

	if v := s.readLine("title: "); v != "" {
		draft.Title = v
	}
	if v := s.readLine("author: "); v != "" {
		draft.Author = v
	}
	if v := s.readLine("description: "); v != "" {
		draft.Description = v
	}

	// 数值字段在发起网络请求前本地校验
	if v := s.readLine("price: "); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return draft, apperrors.New(apperrors.ErrCodeInvalidParams, "price must be a number")
		}
		draft.Price = price
	}
	if v := s.readLine("stock: "); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return draft, apperrors.New(apperrors.ErrCodeInvalidParams, "stock must be an integer")
		}
		draft.Stock = stock
	}

	return draft, nil
}

// =========================================
// 输入输出辅助
// =========================================

func (s *Shell) readLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// readPassword 掩码读取密码;非终端输入(管道、测试)回退为明文行读取
func (s *Shell) readPassword(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if f, ok := s.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(s.out)
		if err != nil {
			return "", apperrors.Wrap(err, "failed to read password")
		}
		return strings.TrimSpace(string(data)), nil
	}
	if !s.in.Scan() {
		return "", nil
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// printError 命令边界的统一错误展示
// 所有错误在此转成用户可见消息,不向上传播
func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "error: %s\n", apperrors.GetAppError(err).Message)
}

func (s *Shell) printHelp() {
	if s.model.State() == view.StateUnauthenticated {
		fmt.Fprintln(s.out, "commands: login · register · help · exit")
		return
	}
	fmt.Fprint(s.out, "commands: dashboard · books · orders · filter <term> · buy <id> · pay <id>")
	if s.model.Admin() {
		fmt.Fprint(s.out, " · admin · add · edit <id> · delete <id>")
	}
	fmt.Fprintln(s.out, " · whoami · logout · exit")
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "a numeric id is required")
	}
	return id, nil
}
