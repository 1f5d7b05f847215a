package session

import (
	"context"
	"strings"

	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// RegisterUseCase 用户注册用例
// 注册成功不自动登录,用户回到登录流程(与原有前端行为一致)
type RegisterUseCase struct {
	apiClient *api.Client
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(apiClient *api.Client) *RegisterUseCase {
	return &RegisterUseCase{apiClient: apiClient}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, fullName, email, password string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "a valid email is required")
	}
	if password == "" {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "password is required")
	}

	return uc.apiClient.Register(ctx, fullName, email, password)
}
