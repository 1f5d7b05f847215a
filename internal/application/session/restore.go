package session

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop-client/internal/domain/session"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
	pkgjwt "github.com/xiebiao/bookshop-client/pkg/jwt"
)

// RestoreUseCase 启动时恢复会话用例
// 设计说明:
// 1. 没有持久化Token ⇒ 匿名会话,受保护视图保持隐藏
// 2. Token必须先通过身份端点验证才视为已认证;失效Token按匿名处理,绝不崩溃
// 3. JWT过期预检:Token本地可判定已过期时直接清除,省一次必然失败的网络往返
// 4. 网络故障与"未登录"区分开:前者返回错误让调用方提示离线,后者静默匿名
type RestoreUseCase struct {
	apiClient *api.Client
	sessions  *Store
	tokens    *tokenstore.Store
}

// NewRestoreUseCase 创建恢复用例
func NewRestoreUseCase(apiClient *api.Client, sessions *Store, tokens *tokenstore.Store) *RestoreUseCase {
	return &RestoreUseCase{
		apiClient: apiClient,
		sessions:  sessions,
		tokens:    tokens,
	}
}

// Execute 执行会话恢复
// 返回的会话可能是匿名的(无凭证或凭证失效),这不是错误
func (uc *RestoreUseCase) Execute(ctx context.Context) (session.Session, error) {
	token, err := uc.tokens.Load()
	if err != nil {
		return session.Anonymous(), err
	}
	if token == "" {
		uc.sessions.reset()
		return session.Anonymous(), nil
	}

	// 本地过期预检(仅对JWT形态的Token生效)
	if pkgjwt.Expired(token, time.Now()) {
		_ = uc.tokens.Clear()
		uc.sessions.reset()
		return session.Anonymous(), nil
	}

	// 对身份端点验证候选Token
	uc.sessions.adopt(token)
	profile, err := uc.apiClient.Me(ctx)
	if err != nil {
		uc.sessions.reset()
		if apperrors.IsNetwork(err) {
			// 离线不等于登出:保留持久化Token,下次启动重试
			return session.Anonymous(), err
		}
		_ = uc.tokens.Clear()
		return session.Anonymous(), nil
	}

	authenticated := session.NewAuthenticated(token, profile)
	uc.sessions.set(authenticated)
	return authenticated, nil
}
