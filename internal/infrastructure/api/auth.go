package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/xiebiao/bookshop-client/internal/domain/session"
)

// 认证相关端点封装
// 对应后端:
// - POST /auth/token    表单编码的用户名+密码,返回{access_token}
// - POST /auth/register JSON注册
// - GET  /auth/me       Bearer认证,返回当前用户信息

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profilePayload struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type registerPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

// LoginToken 用邮箱密码换取访问Token
// 注意:OAuth2密码模式的表单字段名固定为username,实际传的是邮箱
func (c *Client) LoginToken(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	data, err := c.doForm(ctx, "/auth/token", form)
	if err != nil {
		return "", err
	}

	var payload tokenPayload
	if err := decode(data, &payload); err != nil {
		return "", err
	}
	return payload.AccessToken, nil
}

// Register 注册新用户
// is_active固定传true(与原有前端行为一致);注册成功不自动登录
func (c *Client) Register(ctx context.Context, fullName, email, password string) error {
	payload := registerPayload{
		FullName: fullName,
		Email:    email,
		Password: password,
		IsActive: true,
	}
	_, err := c.do(ctx, http.MethodPost, "/auth/register", payload, false)
	return err
}

// Me 获取当前用户信息(角色派生的唯一来源)
func (c *Client) Me(ctx context.Context) (session.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/me", nil, true)
	if err != nil {
		return session.Profile{}, err
	}

	var payload profilePayload
	if err := decode(data, &payload); err != nil {
		return session.Profile{}, err
	}
	return session.Profile{
		Email:    payload.Email,
		FullName: payload.FullName,
		Admin:    payload.IsSuperuser,
	}, nil
}
