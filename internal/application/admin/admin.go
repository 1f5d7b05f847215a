package admin

import (
	"github.com/xiebiao/bookshop-client/internal/application/session"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// 管理端用例:图书的增删改查,全部以Session.Admin为前置门槛
// 设计说明:
// 1. 角色检查在发起任何网络请求之前完成(未认证/非管理员直接拒绝)
// 2. 客户端检查只是交互层的门槛,真正的权限校验仍由后端执行

// requireAdmin 管理员角色门槛
func requireAdmin(sessions *session.Store) error {
	current := sessions.Current()
	if !current.Authenticated {
		return apperrors.ErrUnauthorized
	}
	if !current.Admin {
		return apperrors.ErrForbidden
	}
	return nil
}
