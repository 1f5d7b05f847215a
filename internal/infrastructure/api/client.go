package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xiebiao/bookshop-client/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// TokenSource 提供当前会话Token
// 设计说明:网关自身不持有Token(避免包级全局变量),
// 由会话存储实现该接口注入,登录/登出对Token的写入天然先于后续读取
type TokenSource interface {
	Token() string
}

// Client API网关客户端
// 设计说明:
// 1. 对后端REST接口的薄封装:挂Bearer头、归一化错误响应
// 2. 调用之间无状态:不重试、不缓存、不排队,每次调用独立且至多一次
// 3. 超时是重构时新增的网关级保护(默认10s),通过http.Client下发
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient 创建网关客户端
func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		tokens:  tokens,
	}
}

// do 执行一次JSON请求并返回响应体
// 错误归一化规则:
// - 传输层失败(超时/DNS/连接拒绝) → Network类错误
// - 非2xx → 解析结构化错误体的detail字段;解析失败则按状态码合成通用消息
// 控制器只会观察到这两种形态,原始传输错误不会越过此边界
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authRequired bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req, authRequired)

	return c.send(req)
}

// doForm 执行一次表单编码请求(登录端点专用,OAuth2密码模式要求表单格式)
func (c *Client) doForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req)
}

// authorize 仅在需要认证且Token存在时附加Bearer头,其余情况完全省略
func (c *Client) authorize(req *http.Request, authRequired bool) {
	if !authRequired {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.WrapNetwork(err, "network error, please check your connection")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.WrapNetwork(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewAPI(resp.StatusCode, extractDetail(resp.StatusCode, data))
	}

	return data, nil
}

// extractDetail 从结构化错误体中提取人类可读的detail字段
// 后端错误形态为{"detail": "..."};detail也可能是校验错误数组,
// 无法提取字符串时按状态码合成通用消息
func extractDetail(status int, data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
			return detail
		}
	}
	return fmt.Sprintf("request failed (status %d)", status)
}

// decode 解析成功响应的JSON体
func decode(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.Wrap(err, "failed to decode response")
	}
	return nil
}
