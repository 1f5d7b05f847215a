package session

// Session 客户端会话实体
// 设计说明:
// 1. Session由会话存储独占持有,所有控制器只读,变更只能通过登录/登出用例
// 2. Admin角色是派生属性:只能来自登录/恢复后对/auth/me的响应,
//    绝不信任客户端本地状态单独声明的角色
// 3. Token对客户端是不透明凭证,只负责携带,不负责解释
type Session struct {
	Token         string // 不透明的Bearer凭证
	Authenticated bool   // 是否已认证
	DisplayName   string // 展示名(full_name为空时回退到email)
	Admin         bool   // 管理员角色(来自is_superuser)
}

// Profile 身份端点(/auth/me)返回的用户信息
type Profile struct {
	Email    string
	FullName string
	Admin    bool
}

// DisplayName 展示名,full_name缺省时回退到email
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}

// Anonymous 匿名会话(进程启动无Token、登出后的状态)
func Anonymous() Session {
	return Session{}
}

// NewAuthenticated 创建已认证会话(工厂方法)
// 只在登录成功或Token恢复验证通过后调用
func NewAuthenticated(token string, profile Profile) Session {
	return Session{
		Token:         token,
		Authenticated: true,
		DisplayName:   profile.DisplayName(),
		Admin:         profile.Admin,
	}
}
