package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	// 落盘目录不存在,Save需要自行创建
	return New(filepath.Join(t.TempDir(), "bookshop", "token"))
}

func TestSaveAndLoad(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save("tok-abc123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", token, "Load应去掉写入时的换行")
}

func TestLoadMissingFile(t *testing.T) {
	store := newStore(t)

	// 文件缺失⇒匿名会话,不是错误
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSaveFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := New(path)
	require.NoError(t, store.Save("tok-secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "凭证文件不允许其他用户读取")
}

func TestClear(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Save("tok-abc123"))

	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// 重复清除(文件已不存在)同样视为成功
	require.NoError(t, store.Clear())
}
