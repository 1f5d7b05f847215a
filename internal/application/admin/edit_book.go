package admin

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// EditBookUseCase 编辑预填用例
// 拉取单本图书的当前值填充表单(编辑以服务端最新数据为起点,不用本地缓存)
type EditBookUseCase struct {
	apiClient *api.Client
	sessions  *session.Store
}

// NewEditBookUseCase 创建编辑预填用例
func NewEditBookUseCase(apiClient *api.Client, sessions *session.Store) *EditBookUseCase {
	return &EditBookUseCase{apiClient: apiClient, sessions: sessions}
}

// Execute 拉取待编辑图书
func (uc *EditBookUseCase) Execute(ctx context.Context, id int) (book.Book, error) {
	if err := requireAdmin(uc.sessions); err != nil {
		return book.Book{}, err
	}
	return uc.apiClient.GetBook(ctx, id)
}
