package session

import (
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
)

// LogoutUseCase 用户登出用例
// 设计说明:
// 1. 清除持久化Token + 重置内存会话,等价于一次全新启动
// 2. 后端没有登出端点,Token失效靠过期;登出是纯客户端动作,不发网络请求
// 3. 目录/订单等瞬时缓存由视图层随会话重置一并丢弃
type LogoutUseCase struct {
	sessions *Store
	tokens   *tokenstore.Store
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessions *Store, tokens *tokenstore.Store) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, tokens: tokens}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute() error {
	if err := uc.tokens.Clear(); err != nil {
		return err
	}
	uc.sessions.reset()
	return nil
}
