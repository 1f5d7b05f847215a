package tokenstore

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// Store Token持久化存储
// 设计说明:
// 1. 客户端只持久化一个不透明的认证Token,单键存储
// 2. 落盘位置在用户配置目录下,权限0600(凭证文件不允许其他用户读取)
// 3. 文件缺失⇒匿名会话,不是错误
type Store struct {
	path string
}

// New 创建Token存储
func New(path string) *Store {
	return &Store{path: path}
}

// Load 读取持久化的Token
// 返回空串表示没有持久化凭证(进程启动时按匿名会话处理)
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", apperrors.Wrap(err, "failed to read token file")
	}
	return strings.TrimSpace(string(data)), nil
}

// Save 持久化Token(登录成功后调用)
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apperrors.Wrap(err, "failed to create token dir")
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return apperrors.Wrap(err, "failed to write token file")
	}
	return nil
}

// Clear 清除持久化Token(登出、Token失效时调用)
// 文件本就不存在时视为成功
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(err, "failed to remove token file")
	}
	return nil
}
