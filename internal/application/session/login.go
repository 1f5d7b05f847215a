package session

import (
	"context"
	"strings"

	"github.com/xiebiao/bookshop-client/internal/domain/session"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// LoginUseCase 用户登录用例
// 设计说明:
// 1. 换取Token → 持久化 → 调用身份端点派生角色,三步构成完整登录
// 2. 角色(Admin)只来自/auth/me的is_superuser,绝不信任本地状态
// 3. 身份端点失败时回滚为匿名(半登录状态不可观察)
type LoginUseCase struct {
	apiClient *api.Client
	sessions  *Store
	tokens    *tokenstore.Store
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(apiClient *api.Client, sessions *Store, tokens *tokenstore.Store) *LoginUseCase {
	return &LoginUseCase{
		apiClient: apiClient,
		sessions:  sessions,
		tokens:    tokens,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (session.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return session.Anonymous(), apperrors.New(apperrors.ErrCodeInvalidParams, "email and password are required")
	}

	// 1. 换取Token(失败消息来自后端detail字段,网关已归一化)
	token, err := uc.apiClient.LoginToken(ctx, email, password)
	if err != nil {
		return session.Anonymous(), err
	}

	// 2. 持久化Token(与浏览器localStorage行为一致:先存再查身份)
	if err := uc.tokens.Save(token); err != nil {
		return session.Anonymous(), err
	}

	// 3. 查身份派生角色
	uc.sessions.adopt(token)
	profile, err := uc.apiClient.Me(ctx)
	if err != nil {
		uc.sessions.reset()
		_ = uc.tokens.Clear()
		return session.Anonymous(), err
	}

	authenticated := session.NewAuthenticated(token, profile)
	uc.sessions.set(authenticated)
	return authenticated, nil
}
