package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop-client/internal/infrastructure/config"
)

// FakeBackend 书店后端替身
// 设计说明:
// 1. 用gin搭建与真实后端同形的REST接口,跑在httptest.Server里,
//    测试完全离线且可对请求序列做断言
// 2. 错误形态与真实后端一致:非2xx + {"detail": "..."}
// 3. 库存扣减、订单状态转换等最小业务规则照搬后端行为,
//    让"下单后库存减少"这类场景可以端到端验证
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	books    []Book
	nextBook int
	users    map[string]User  // token → 用户
	creds    map[string]cred  // email → 凭证
	orders   map[string][]Order // token → 订单
	nextID   int
	requests []string
}

// Book 后端侧的图书记录(JSON形态与真实后端一致)
type Book struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// User 后端侧的用户记录
type User struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type cred struct {
	password string
	token    string
}

// OrderItem 订单明细(JSON形态与真实后端一致)
type OrderItem struct {
	BookID    int     `json:"book_id"`
	Quantity  int     `json:"quantity"`
	ItemPrice float64 `json:"item_price"`
	Book      Book    `json:"book"`
}

// Order 订单记录
type Order struct {
	ID        int         `json:"id"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// NewFakeBackend 启动后端替身
func NewFakeBackend() *FakeBackend {
	fb := &FakeBackend{
		users:  make(map[string]User),
		creds:  make(map[string]cred),
		orders: make(map[string][]Order),
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fb.record)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/token", fb.loginToken)
			auth.POST("/register", fb.register)
			auth.GET("/me", fb.me)
		}
		books := v1.Group("/books")
		{
			books.GET("/", fb.listBooks)
			books.GET("/:id", fb.getBook)
			books.POST("/", fb.requireAuth, fb.createBook)
			books.PATCH("/:id", fb.requireAuth, fb.updateBook)
			books.DELETE("/:id", fb.requireAuth, fb.deleteBook)
		}
		orders := v1.Group("/orders")
		orders.Use(fb.requireAuth)
		{
			orders.GET("/", fb.listOrders)
			orders.POST("/", fb.createOrder)
			orders.POST("/:id/pay", fb.payOrder)
		}
	}

	fb.Server = httptest.NewServer(r)
	return fb
}

// Close 关闭替身
func (fb *FakeBackend) Close() { fb.Server.Close() }

// Config 指向替身的客户端配置
func (fb *FakeBackend) Config() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL: fb.Server.URL + "/api/v1",
			Timeout: 5 * time.Second,
		},
	}
}

// AddUser 注册一个测试用户,返回其固定Token
func (fb *FakeBackend) AddUser(email, password, fullName string, admin bool) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	token := fmt.Sprintf("tok-%s", email)
	fb.users[token] = User{Email: email, FullName: fullName, IsActive: true, IsSuperuser: admin}
	fb.creds[email] = cred{password: password, token: token}
	return token
}

// AddToken 让一个外部构造的Token(如JWT)指向已有用户
func (fb *FakeBackend) AddToken(token, email string, admin bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.users[token] = User{Email: email, IsActive: true, IsSuperuser: admin}
}

// AddBook 植入一本图书
func (fb *FakeBackend) AddBook(title, author string, price float64, stock int) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.nextBook++
	fb.books = append(fb.books, Book{
		ID:            fb.nextBook,
		Title:         title,
		Author:        author,
		Price:         price,
		StockQuantity: stock,
	})
	return fb.nextBook
}

// BookByID 读取替身侧的图书状态(断言库存扣减用)
func (fb *FakeBackend) BookByID(id int) (Book, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, b := range fb.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// Requests 已处理请求的"METHOD path"序列
func (fb *FakeBackend) Requests() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]string, len(fb.requests))
	copy(out, fb.requests)
	return out
}

// RequestCount 请求总数(断言"未发起网络调用"用)
func (fb *FakeBackend) RequestCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

// =========================================
// gin处理器
// =========================================

func (fb *FakeBackend) record(c *gin.Context) {
	fb.mu.Lock()
	fb.requests = append(fb.requests, c.Request.Method+" "+c.Request.URL.Path)
	fb.mu.Unlock()
	c.Next()
}

func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func (fb *FakeBackend) currentToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	token := header[len(prefix):]
	fb.mu.Lock()
	_, ok := fb.users[token]
	fb.mu.Unlock()
	return token, ok
}

func (fb *FakeBackend) requireAuth(c *gin.Context) {
	if _, ok := fb.currentToken(c); !ok {
		detail(c, http.StatusUnauthorized, "Could not validate credentials")
		c.Abort()
		return
	}
	c.Next()
}

func (fb *FakeBackend) loginToken(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	fb.mu.Lock()
	cr, ok := fb.creds[email]
	fb.mu.Unlock()
	if !ok || cr.password != password {
		detail(c, http.StatusBadRequest, "incorrect email or password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": cr.token, "token_type": "bearer"})
}

func (fb *FakeBackend) register(c *gin.Context) {
	var body struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		IsActive bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	fb.mu.Lock()
	_, exists := fb.creds[body.Email]
	fb.mu.Unlock()
	if exists {
		detail(c, http.StatusBadRequest, "a user with this email already exists")
		return
	}

	fb.AddUser(body.Email, body.Password, body.FullName, false)
	c.JSON(http.StatusOK, gin.H{"email": body.Email, "full_name": body.FullName, "is_active": body.IsActive})
}

func (fb *FakeBackend) me(c *gin.Context) {
	token, ok := fb.currentToken(c)
	if !ok {
		detail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	fb.mu.Lock()
	user := fb.users[token]
	fb.mu.Unlock()
	c.JSON(http.StatusOK, user)
}

func (fb *FakeBackend) listBooks(c *gin.Context) {
	fb.mu.Lock()
	books := make([]Book, len(fb.books))
	copy(books, fb.books)
	fb.mu.Unlock()
	c.JSON(http.StatusOK, books)
}

func (fb *FakeBackend) getBook(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if b, ok := fb.BookByID(id); ok {
		c.JSON(http.StatusOK, b)
		return
	}
	detail(c, http.StatusNotFound, "book not found")
}

func (fb *FakeBackend) createBook(c *gin.Context) {
	var body Book
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}
	fb.mu.Lock()
	fb.nextBook++
	body.ID = fb.nextBook
	fb.books = append(fb.books, body)
	fb.mu.Unlock()
	c.JSON(http.StatusOK, body)
}

func (fb *FakeBackend) updateBook(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body Book
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i, b := range fb.books {
		if b.ID == id {
			body.ID = id
			fb.books[i] = body
			c.JSON(http.StatusOK, body)
			return
		}
	}
	detail(c, http.StatusNotFound, "book not found")
}

func (fb *FakeBackend) deleteBook(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i, b := range fb.books {
		if b.ID == id {
			fb.books = append(fb.books[:i], fb.books[i+1:]...)
			c.Status(http.StatusOK)
			return
		}
	}
	detail(c, http.StatusNotFound, "book not found")
}

func (fb *FakeBackend) listOrders(c *gin.Context) {
	token, _ := fb.currentToken(c)
	fb.mu.Lock()
	orders := make([]Order, len(fb.orders[token]))
	copy(orders, fb.orders[token])
	fb.mu.Unlock()
	c.JSON(http.StatusOK, orders)
}

func (fb *FakeBackend) createOrder(c *gin.Context) {
	token, _ := fb.currentToken(c)
	var body struct {
		Items []struct {
			BookID   int `json:"book_id"`
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Items) == 0 {
		detail(c, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	var items []OrderItem
	for _, line := range body.Items {
		idx := -1
		for i, b := range fb.books {
			if b.ID == line.BookID {
				idx = i
				break
			}
		}
		if idx < 0 {
			detail(c, http.StatusNotFound, fmt.Sprintf("book %d not found", line.BookID))
			return
		}
		if fb.books[idx].StockQuantity < line.Quantity {
			detail(c, http.StatusBadRequest, fmt.Sprintf("insufficient stock for '%s'", fb.books[idx].Title))
			return
		}
		fb.books[idx].StockQuantity -= line.Quantity
		items = append(items, OrderItem{
			BookID:    line.BookID,
			Quantity:  line.Quantity,
			ItemPrice: fb.books[idx].Price,
			Book:      fb.books[idx],
		})
	}

	fb.nextID++
	order := Order{
		ID:        fb.nextID,
		Status:    "pending",
		CreatedAt: time.Now().UTC().Format("2006-01-02T15:04:05.999999"),
		Items:     items,
	}
	fb.orders[token] = append(fb.orders[token], order)
	c.JSON(http.StatusOK, order)
}

func (fb *FakeBackend) payOrder(c *gin.Context) {
	token, _ := fb.currentToken(c)
	id, _ := strconv.Atoi(c.Param("id"))

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i, o := range fb.orders[token] {
		if o.ID == id {
			if o.Status != "pending" {
				detail(c, http.StatusBadRequest, "order is not pending")
				return
			}
			fb.orders[token][i].Status = "paid"
			c.JSON(http.StatusOK, fb.orders[token][i])
			return
		}
	}
	detail(c, http.StatusNotFound, "order not found")
}
