package admin

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// ListBooksUseCase 管理列表用例
// 数据与公开目录来自同一端点,区别只在渲染形态(表格 vs 卡片)与角色门槛
type ListBooksUseCase struct {
	apiClient *api.Client
	sessions  *session.Store
}

// NewListBooksUseCase 创建管理列表用例
func NewListBooksUseCase(apiClient *api.Client, sessions *session.Store) *ListBooksUseCase {
	return &ListBooksUseCase{apiClient: apiClient, sessions: sessions}
}

// Execute 拉取管理列表
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]book.Book, error) {
	if err := requireAdmin(uc.sessions); err != nil {
		return nil, err
	}
	return uc.apiClient.ListBooks(ctx)
}
