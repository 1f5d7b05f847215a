package admin

import (
	"context"

	"github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/domain/book"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
)

// SaveBookUseCase 保存图书用例(创建与更新共用)
// 设计说明:
// 1. 同一份草稿形态服务两种模式:editingID为0 ⇒ 创建(POST),
//    非0 ⇒ 更新指定图书(PATCH)
// 2. 数值字段在发起网络请求前本地校验(Draft.Validate)
// 3. 成功后管理列表与公开目录都要刷新保持一致;两者来自同一公开端点,
//    一次拉取同时服务两个视图,目录不会展示过期的库存/价格
type SaveBookUseCase struct {
	apiClient *api.Client
	sessions  *session.Store
}

// SaveResult 保存成功后的结果
type SaveResult struct {
	Saved   book.Book   // 后端返回的最终实体
	Created bool        // true=新建,false=更新
	Books   []book.Book // 刷新后的图书集合(管理列表与目录共用)
}

// NewSaveBookUseCase 创建保存用例
func NewSaveBookUseCase(apiClient *api.Client, sessions *session.Store) *SaveBookUseCase {
	return &SaveBookUseCase{apiClient: apiClient, sessions: sessions}
}

// Execute 执行保存
func (uc *SaveBookUseCase) Execute(ctx context.Context, editingID int, draft book.Draft) (*SaveResult, error) {
	if err := requireAdmin(uc.sessions); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var saved book.Book
	var err error
	if editingID == 0 {
		saved, err = uc.apiClient.CreateBook(ctx, draft)
	} else {
		saved, err = uc.apiClient.UpdateBook(ctx, editingID, draft)
	}
	if err != nil {
		return nil, err
	}

	books, err := uc.apiClient.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	return &SaveResult{
		Saved:   saved,
		Created: editingID == 0,
		Books:   books,
	}, nil
}
