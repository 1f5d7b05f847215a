package admin

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// DeleteBookUseCase 删除图书用例
// 设计说明:
// 1. 删除不可撤销,必须显式确认;未确认时不发起任何网络请求
// 2. 成功后刷新图书集合(管理列表与目录同步更新)
type DeleteBookUseCase struct {
	apiClient *api.Client
	sessions  *session.Store
}

// ErrNotConfirmed 删除未经确认
var ErrNotConfirmed = apperrors.New(apperrors.ErrCodeInvalidParams, "deletion was not confirmed")

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(apiClient *api.Client, sessions *session.Store) *DeleteBookUseCase {
	return &DeleteBookUseCase{apiClient: apiClient, sessions: sessions}
}

// Execute 执行删除
// confirmed由交互层在用户明确确认后传入
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id int, confirmed bool) ([]book.Book, error) {
	if err := requireAdmin(uc.sessions); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	if err := uc.apiClient.DeleteBook(ctx, id); err != nil {
		return nil, err
	}

	return uc.apiClient.ListBooks(ctx)
}
