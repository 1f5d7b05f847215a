package book

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// LoadCatalogUseCase 目录加载用例
// 设计说明:
// 1. 目录是公开数据,加载不需要认证
// 2. 返回整个图书集合,作为本渲染周期的只读缓存;
//    任何变更成功后整体重新拉取,不做本地修补
// 3. 文本过滤是domain层的纯函数(book.Filter),不在此处,不触发网络
type LoadCatalogUseCase struct {
	apiClient *api.Client
}

// NewLoadCatalogUseCase 创建目录加载用例
func NewLoadCatalogUseCase(apiClient *api.Client) *LoadCatalogUseCase {
	return &LoadCatalogUseCase{apiClient: apiClient}
}

// Execute 拉取完整图书目录
func (uc *LoadCatalogUseCase) Execute(ctx context.Context) ([]book.Book, error) {
	return uc.apiClient.ListBooks(ctx)
}
