package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xiebiao/bookshop-client/internal/domain/book"
)

// 图书相关端点封装
// 对应后端:
// - GET    /books/     公开,图书列表
// - GET    /books/{id} 公开,单本图书
// - POST   /books/     Bearer,创建(管理员)
// - PATCH  /books/{id} Bearer,部分更新(管理员)
// - DELETE /books/{id} Bearer,删除(管理员)

type bookPayload struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

type bookDraftPayload struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

func (p bookPayload) toDomain() book.Book {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	return book.Book{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Description: description,
		Price:       p.Price,
		Stock:       p.StockQuantity,
	}
}

// draftPayload 草稿→请求体;描述为空时传null(与原有前端行为一致)
func draftPayload(d book.Draft) bookDraftPayload {
	var description *string
	if d.Description != "" {
		description = &d.Description
	}
	return bookDraftPayload{
		Title:         d.Title,
		Author:        d.Author,
		Description:   description,
		Price:         d.Price,
		StockQuantity: d.Stock,
	}
}

// ListBooks 拉取完整图书列表(公开接口,不带认证头)
func (c *Client) ListBooks(ctx context.Context) ([]book.Book, error) {
	data, err := c.do(ctx, http.MethodGet, "/books/", nil, false)
	if err != nil {
		return nil, err
	}

	var payloads []bookPayload
	if err := decode(data, &payloads); err != nil {
		return nil, err
	}
	books := make([]book.Book, len(payloads))
	for i, p := range payloads {
		books[i] = p.toDomain()
	}
	return books, nil
}

// GetBook 拉取单本图书(管理端编辑表单预填使用)
func (c *Client) GetBook(ctx context.Context, id int) (book.Book, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, false)
	if err != nil {
		return book.Book{}, err
	}

	var payload bookPayload
	if err := decode(data, &payload); err != nil {
		return book.Book{}, err
	}
	return payload.toDomain(), nil
}

// CreateBook 创建图书(需要管理员权限)
func (c *Client) CreateBook(ctx context.Context, draft book.Draft) (book.Book, error) {
	data, err := c.do(ctx, http.MethodPost, "/books/", draftPayload(draft), true)
	if err != nil {
		return book.Book{}, err
	}

	var payload bookPayload
	if err := decode(data, &payload); err != nil {
		return book.Book{}, err
	}
	return payload.toDomain(), nil
}

// UpdateBook 部分更新图书(需要管理员权限)
func (c *Client) UpdateBook(ctx context.Context, id int, draft book.Draft) (book.Book, error) {
	data, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/books/%d", id), draftPayload(draft), true)
	if err != nil {
		return book.Book{}, err
	}

	var payload bookPayload
	if err := decode(data, &payload); err != nil {
		return book.Book{}, err
	}
	return payload.toDomain(), nil
}

// DeleteBook 删除图书(需要管理员权限,不可撤销)
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, true)
	return err
}
