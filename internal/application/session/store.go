package session

import (
	"github.com/xiebiao/bookshop-client/internal/domain/session"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
)

// Store 会话存储
// 设计说明:
// 1. Session对象由Store独占持有并注入各控制器,取代散落的全局Token变量
// 2. 实现api.TokenSource接口,网关通过它读取当前Token
// 3. 单控制线程逐事件处理,登录/登出的写入天然先于后续读取,无需加锁
type Store struct {
	current session.Session
	tokens  *tokenstore.Store
}

// NewStore 创建会话存储
func NewStore(tokens *tokenstore.Store) *Store {
	return &Store{current: session.Anonymous(), tokens: tokens}
}

// Current 当前会话(只读快照)
func (s *Store) Current() session.Session {
	return s.current
}

// Token 实现api.TokenSource
func (s *Store) Token() string {
	return s.current.Token
}

// set 写入已认证会话(仅登录/恢复用例调用)
func (s *Store) set(sess session.Session) {
	s.current = sess
}

// adopt 暂存候选Token用于恢复验证
// 验证通过前会话仍是未认证状态,只是让身份检查调用能携带该Token
func (s *Store) adopt(token string) {
	s.current = session.Session{Token: token}
}

// reset 重置为匿名会话
func (s *Store) reset() {
	s.current = session.Anonymous()
}
